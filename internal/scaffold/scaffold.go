package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/context-template/context-cli/internal/logging"
	"github.com/context-template/context-cli/internal/pkgmgr"
	"github.com/context-template/context-cli/internal/project"
	"github.com/context-template/context-cli/internal/skeleton"
	"github.com/context-template/context-cli/internal/synth"
	"github.com/context-template/context-cli/internal/ui"
)

// Result holds the outcome of a scaffold run.
type Result struct {
	OutputDir string
	// Files lists every written file relative to OutputDir, slash-separated,
	// in write order and without duplicates.
	Files []string
	// Installed is true only when the install step ran and succeeded.
	Installed bool
	// InstallErr records a failed install. The run still succeeds.
	InstallErr error
	Warnings   []string
}

// Scaffolder runs the scaffold pipeline against injected capabilities.
type Scaffolder struct {
	fs       afero.Fs
	template fs.FS
	runner   pkgmgr.Runner
	reporter ui.Reporter
	log      *slog.Logger
	baseDir  string
	docsURL  string
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithFS sets the destination filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(s *Scaffolder) { s.fs = fsys }
}

// WithTemplate sets the template source tree.
func WithTemplate(tree fs.FS) Option {
	return func(s *Scaffolder) { s.template = tree }
}

// WithRunner sets the process runner used for dependency installation.
func WithRunner(r pkgmgr.Runner) Option {
	return func(s *Scaffolder) { s.runner = r }
}

// WithReporter sets the progress reporter.
func WithReporter(r ui.Reporter) Option {
	return func(s *Scaffolder) { s.reporter = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) { s.log = l }
}

// WithBaseDir sets the directory new projects are created in.
func WithBaseDir(dir string) Option {
	return func(s *Scaffolder) { s.baseDir = dir }
}

// WithDocsURL adds a documentation link to the closing summary.
func WithDocsURL(url string) Option {
	return func(s *Scaffolder) { s.docsURL = url }
}

// New creates a Scaffolder. Without options it writes to the OS filesystem
// from the embedded template, installs with os/exec and reports nothing.
// A base directory must be set with WithBaseDir.
func New(opts ...Option) *Scaffolder {
	s := &Scaffolder{
		fs:       afero.NewOsFs(),
		template: skeleton.FS(),
		runner:   &pkgmgr.ExecRunner{},
		reporter: ui.Nop{},
		log:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run scaffolds a project for cfg under the base directory. Stages run in
// order and every failure except the install step aborts the run. Nothing
// written before a failure is removed.
func (s *Scaffolder) Run(ctx context.Context, cfg project.Config) (*Result, error) {
	if s.baseDir == "" {
		return nil, errors.New("scaffold: base directory not set")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outDir := filepath.Join(s.baseDir, cfg.ProjectName)
	result := &Result{OutputDir: outDir}
	seen := make(map[string]bool)
	record := func(rel string) {
		if !seen[rel] {
			seen[rel] = true
			result.Files = append(result.Files, rel)
		}
	}

	s.reporter.Start("Creating project directory...")
	if err := Provision(s.fs, outDir); err != nil {
		return nil, err
	}
	s.log.Debug("created project directory", "dir", outDir)
	s.reporter.Stop("Project directory created!")

	s.reporter.Start("Generating configuration files...")
	for _, f := range synth.Files(cfg) {
		target := filepath.Join(outDir, filepath.FromSlash(f.Path))
		if err := writeFile(s.fs, target, f.Content); err != nil {
			return nil, err
		}
		s.log.Debug("wrote file", "path", target)
		record(f.Path)
	}
	s.reporter.Stop("Configuration files generated!")

	s.reporter.Start("Copying template files...")
	if err := s.copyTemplate(outDir, record); err != nil {
		return nil, err
	}
	s.reporter.Stop("Template files copied!")

	if cfg.ShouldInstall {
		s.install(ctx, cfg, result)
	}

	s.reporter.Outro(Summary(cfg, result.Installed, s.docsURL))
	return result, nil
}

func (s *Scaffolder) copyTemplate(outDir string, record func(string)) error {
	for _, dir := range skeleton.Subtrees {
		if !exists(s.template, dir) {
			s.log.Debug("template subtree missing, skipping", "dir", dir)
			continue
		}
		copied, err := CopyTree(s.template, dir, s.fs, outDir)
		for _, p := range copied {
			s.log.Debug("copied file", "path", p)
			record(p)
		}
		if err != nil {
			return err
		}
	}

	if !exists(s.template, skeleton.EnvExample) {
		s.log.Debug("template file missing, skipping", "file", skeleton.EnvExample)
		return nil
	}
	target := filepath.Join(outDir, skeleton.EnvExample)
	if err := CopyFile(s.template, skeleton.EnvExample, s.fs, target); err != nil {
		return err
	}
	s.log.Debug("copied file", "path", skeleton.EnvExample)
	record(skeleton.EnvExample)
	return nil
}

func (s *Scaffolder) install(ctx context.Context, cfg project.Config, result *Result) {
	s.reporter.Start(fmt.Sprintf("Installing dependencies with %s...", cfg.PackageManager))
	if err := pkgmgr.Install(ctx, s.runner, cfg.PackageManager, result.OutputDir); err != nil {
		s.log.Warn("dependency installation failed", "dir", result.OutputDir, "error", err)
		result.InstallErr = err
		result.Warnings = append(result.Warnings, fmt.Sprintf("dependency installation failed: %v", err))
		s.reporter.Fail("Failed to install dependencies")
		s.reporter.Note("Note", ManualInstallNote(cfg))
		return
	}
	result.Installed = true
	s.reporter.Stop("Dependencies installed!")
}

// ManualInstallNote tells the user how to install dependencies themselves.
func ManualInstallNote(cfg project.Config) string {
	return fmt.Sprintf("You can install dependencies manually:\n  cd %s\n  %s",
		cfg.ProjectName, pkgmgr.InstallCommand(cfg.PackageManager))
}

// NextSteps returns the numbered instructions shown after a run. The
// install step is listed unless dependencies were installed.
func NextSteps(cfg project.Config, installed bool) string {
	steps := []string{"cd " + cfg.ProjectName}
	if !installed {
		steps = append(steps, pkgmgr.InstallCommand(cfg.PackageManager))
	}
	steps = append(steps,
		"Copy .env.example to .env and add your API keys",
		pkgmgr.RunCommand(cfg.PackageManager)+" dev",
	)

	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
	}
	return b.String()
}

// Summary is the closing message of a successful run.
func Summary(cfg project.Config, installed bool, docsURL string) string {
	msg := fmt.Sprintf("Success! Created %s\n\nNext steps:\n%s", cfg.ProjectName, NextSteps(cfg, installed))
	if docsURL != "" {
		msg += "\n\nDocumentation: " + docsURL
	}
	return msg
}
