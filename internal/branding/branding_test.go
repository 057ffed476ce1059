package branding

import (
	"strings"
	"testing"
)

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "context-cli" {
		t.Errorf("CLIName() = %q, want %q", got, "context-cli")
	}
	if got := HomeDir(); got != ".context-cli" {
		t.Errorf("HomeDir() = %q, want %q", got, ".context-cli")
	}
	if got := EnvPrefix(); got != "CONTEXT_CLI" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "CONTEXT_CLI")
	}
	if !strings.HasPrefix(DocsURL(), "https://") {
		t.Errorf("DocsURL() = %q, want an https URL", DocsURL())
	}
	if DisplayName() == "" || Description() == "" || GoModule() == "" || GitHubRepo() == "" {
		t.Error("identity values should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "CONTEXT_CLI_LOG_LEVEL" {
		t.Errorf("EnvVar() = %q, want %q", got, "CONTEXT_CLI_LOG_LEVEL")
	}
}
