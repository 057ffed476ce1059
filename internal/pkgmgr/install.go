package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/context-template/context-cli/internal/project"
)

// Runner invokes an external program in a working directory. Only success
// or failure is observed.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive the child's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir. A non-zero exit status is returned as
// an error carrying the last line the program wrote to stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	var stderrBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	if err := cmd.Run(); err != nil {
		if last := lastLine(stderrBuf.String()); last != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, last)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Install runs the install command for pm inside dir.
func Install(ctx context.Context, r Runner, pm project.PackageManager, dir string) error {
	fields := strings.Fields(InstallCommand(pm))
	return r.Run(ctx, dir, fields[0], fields[1:]...)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
