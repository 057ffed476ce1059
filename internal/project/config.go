package project

import (
	"fmt"
	"regexp"
)

// PackageManager identifies the JavaScript package manager used to install
// and run the generated project.
type PackageManager string

// Supported package managers.
const (
	Bun  PackageManager = "bun"
	PNPM PackageManager = "pnpm"
	NPM  PackageManager = "npm"
)

// PackageManagers lists the supported package managers in prompt order.
var PackageManagers = []PackageManager{Bun, PNPM, NPM}

// Valid reports whether pm is one of the supported package managers.
func (pm PackageManager) Valid() bool {
	switch pm {
	case Bun, PNPM, NPM:
		return true
	}
	return false
}

func (pm PackageManager) String() string { return string(pm) }

// ParsePackageManager converts s to a PackageManager, rejecting unknown values.
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(s)
	if !pm.Valid() {
		return "", fmt.Errorf("unsupported package manager %q: must be one of bun, pnpm, npm", s)
	}
	return pm, nil
}

// NamePattern is the accepted shape of a project name. It rules out path
// separators, dots and therefore any traversal sequence.
var NamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidateName checks that name is usable both as a single directory segment
// and as the package.json name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !NamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must contain only lowercase letters, numbers, hyphens, and underscores", name)
	}
	return nil
}

// Config holds the user's choices for a new project.
type Config struct {
	ProjectName    string         `yaml:"projectName" json:"projectName"`
	PackageManager PackageManager `yaml:"packageManager" json:"packageManager"`
	ShouldInstall  bool           `yaml:"shouldInstall" json:"shouldInstall"`

	// Reserved for future template variants. They have no effect on
	// generation today.
	TemplateType    string `yaml:"templateType,omitempty" json:"templateType,omitempty"`       // full, minimal
	WebServer       string `yaml:"webServer,omitempty" json:"webServer,omitempty"`             // none, hono, koa, express
	LLMProvider     string `yaml:"llmProvider,omitempty" json:"llmProvider,omitempty"`         // deepseek, openai, anthropic
	IncludeTests    *bool  `yaml:"includeTests,omitempty" json:"includeTests,omitempty"`       // unset means default
	IncludeExamples *bool  `yaml:"includeExamples,omitempty" json:"includeExamples,omitempty"` // unset means default
}

// Validate checks the fields the scaffold engine builds paths from. An
// unknown package manager is not an error here; command lookup falls back
// to npm.
func (c *Config) Validate() error {
	return ValidateName(c.ProjectName)
}
