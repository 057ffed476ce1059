package project

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"my-app", false},
		{"my_app", false},
		{"app2", false},
		{"a", false},
		{"-leading-hyphen", false},
		{"", true},
		{"My-App", true},
		{"my app", true},
		{"../escape", true},
		{"nested/dir", true},
		{`win\dir`, true},
		{".", true},
		{"..", true},
		{"my.app", true},
		{"app\n", true},
	}

	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateNameEmptyMessage(t *testing.T) {
	err := ValidateName("")
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("expected required error, got %v", err)
	}
}

func TestParsePackageManager(t *testing.T) {
	for _, pm := range PackageManagers {
		got, err := ParsePackageManager(string(pm))
		if err != nil {
			t.Errorf("ParsePackageManager(%q) error: %v", pm, err)
		}
		if got != pm {
			t.Errorf("ParsePackageManager(%q) = %q", pm, got)
		}
	}

	if _, err := ParsePackageManager("yarn"); err == nil {
		t.Error("expected error for yarn")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{ProjectName: "my-app", PackageManager: NPM}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}

	// Unknown package managers fall back at command lookup time.
	cfg = &Config{ProjectName: "my-app", PackageManager: "yarn"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with unknown package manager error: %v", err)
	}

	cfg = &Config{ProjectName: "../etc", PackageManager: NPM}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for traversal name")
	}
}
