// Package prompt collects a project.Config from the user.
//
// Three collectors exist: SurveyCollector for interactive terminals,
// LineCollector for plain line-oriented input such as a pipe, and
// FileCollector for a YAML or JSON answers file. All of them return
// ErrCancelled when the user aborts, which callers treat as a clean exit.
package prompt

import (
	"context"
	"errors"

	"github.com/context-template/context-cli/internal/project"
)

// ErrCancelled is returned when the user aborts input.
var ErrCancelled = errors.New("operation cancelled")

// Collector produces the configuration for a new project.
type Collector interface {
	Collect(ctx context.Context) (*project.Config, error)
}

// Prompt texts shared by the interactive collectors.
const (
	projectNameMessage    = "Project name:"
	projectNameHelp       = "Lowercase letters, numbers, hyphens and underscores, e.g. my-llm-app"
	packageManagerMessage = "Select a package manager:"
	installMessage        = "Install dependencies now?"
)

var packageManagerLabels = map[project.PackageManager]string{
	project.Bun:  "Fast, modern",
	project.PNPM: "Efficient",
	project.NPM:  "Standard",
}

func defaultPackageManager(defaults project.Config) project.PackageManager {
	if defaults.PackageManager.Valid() {
		return defaults.PackageManager
	}
	return project.PackageManagers[0]
}

// FileCollector reads answers from a file instead of prompting.
type FileCollector struct {
	Path     string
	Defaults project.Config
}

func (c *FileCollector) Collect(ctx context.Context) (*project.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return project.LoadFile(c.Path, c.Defaults)
}
