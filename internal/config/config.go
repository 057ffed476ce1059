package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/viper"

	"github.com/context-template/context-cli/internal/branding"
	"github.com/context-template/context-cli/internal/logging"
	"github.com/context-template/context-cli/internal/project"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyPackageManager = "package_manager"
	KeyInstall        = "install"
	KeyTemplateDir    = "template_dir"
	KeyLogLevel       = "log_level"
)

var defaultValues = map[string]interface{}{
	KeyPackageManager: string(project.NPM),
	KeyInstall:        true,
	KeyTemplateDir:    "",
	KeyLogLevel:       "warn",
}

// validators check a raw value before Set persists it.
var validators = map[string]func(string) error{
	KeyPackageManager: func(v string) error {
		_, err := project.ParsePackageManager(v)
		return err
	},
	KeyInstall: func(v string) error {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid boolean %q", v)
		}
		return nil
	},
	KeyTemplateDir: func(string) error { return nil },
	KeyLogLevel: func(v string) error {
		_, err := logging.ParseLevel(v)
		return err
	},
}

// Keys returns the recognized keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.context-cli/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaultValues {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := validate(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyInstall {
		b, _ := strconv.ParseBool(value)
		viper.Set(key, b)
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultPackageManager returns the configured package manager, or npm when
// the setting is missing or unsupported.
func DefaultPackageManager() project.PackageManager {
	pm, err := project.ParsePackageManager(viper.GetString(KeyPackageManager))
	if err != nil {
		return project.NPM
	}
	return pm
}

// DefaultInstall returns the default answer to the install prompt.
func DefaultInstall() bool {
	return viper.GetBool(KeyInstall)
}

// TemplateDir returns the on-disk template directory, or "" for the
// embedded tree.
func TemplateDir() string {
	return viper.GetString(KeyTemplateDir)
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// Defaults returns the project settings seeded from configuration.
func Defaults() project.Config {
	return project.Config{
		PackageManager: DefaultPackageManager(),
		ShouldInstall:  DefaultInstall(),
	}
}
