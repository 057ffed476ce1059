package pkgmgr

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tools lists the binaries the doctor command checks, runtime first.
var Tools = []string{"node", "bun", "pnpm", "npm"}

// Tool is the probed state of one binary.
type Tool struct {
	Name    string
	Path    string
	Version *semver.Version
	Err     error // set when the binary is missing or its version is unreadable
}

// Found reports whether the binary was located on PATH.
func (t Tool) Found() bool { return t.Path != "" }

// Prober locates binaries and reads their versions. The zero value uses
// exec.LookPath and runs "<tool> --version".
type Prober struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Probe locates name and parses the output of "name --version".
func (p *Prober) Probe(ctx context.Context, name string) Tool {
	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	output := p.Output
	if output == nil {
		output = execOutput
	}

	tool := Tool{Name: name}
	path, err := lookPath(name)
	if err != nil {
		tool.Err = fmt.Errorf("%s not found", name)
		return tool
	}
	tool.Path = path

	out, err := output(ctx, path, "--version")
	if err != nil {
		tool.Err = fmt.Errorf("reading %s version: %w", name, err)
		return tool
	}
	v, err := ParseVersion(string(out))
	if err != nil {
		tool.Err = err
		return tool
	}
	tool.Version = v
	return tool
}

func execOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ParseVersion extracts a semantic version from version command output such
// as "v20.11.1" or "10.2.4\n". A leading "v" is tolerated.
func ParseVersion(out string) (*semver.Version, error) {
	line := strings.TrimSpace(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.TrimPrefix(line, "v")
	v, err := semver.NewVersion(line)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", line, err)
	}
	return v, nil
}

// Satisfies reports whether v meets constraint, e.g. ">=18.0.0".
func Satisfies(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
