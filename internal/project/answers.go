package project

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Decode validates answers (YAML or JSON) against the configuration schema
// and overlays them onto defaults. Fields absent from the answers keep their
// default values; fields the schema does not know are ignored.
func Decode(data []byte, defaults Config) (*Config, error) {
	result, err := ValidateAnswers(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid answers: %s", strings.Join(msgs, "; "))
	}

	cfg := defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and decodes an answers file.
func LoadFile(path string, defaults Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file %s: %w", path, err)
	}
	cfg, err := Decode(data, defaults)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
