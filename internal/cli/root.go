package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/context-template/context-cli/internal/branding"
	"github.com/context-template/context-cli/internal/config"
	"github.com/context-template/context-cli/internal/logging"
	"github.com/context-template/context-cli/internal/pkgmgr"
	"github.com/context-template/context-cli/internal/project"
	"github.com/context-template/context-cli/internal/prompt"
	"github.com/context-template/context-cli/internal/scaffold"
	"github.com/context-template/context-cli/internal/skeleton"
	"github.com/context-template/context-cli/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootOpts struct {
	answers     string
	directory   string
	templateDir string
	verbose     bool
	noColor     bool
}

// Seams replaced in tests.
var (
	newRunner = func(stdout, stderr io.Writer) pkgmgr.Runner {
		return &pkgmgr.ExecRunner{Stdout: stdout, Stderr: stderr}
	}
	stdinIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
)

// errReported marks an error the reporter already printed.
type errReported struct{ err error }

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

func init() {
	f := rootCmd.Flags()
	f.StringVar(&rootOpts.answers, "answers", "", "Read answers from a YAML or JSON file instead of prompting")
	f.StringVarP(&rootOpts.directory, "directory", "C", "", "Create the project inside this directory (default: current directory)")
	f.StringVar(&rootOpts.templateDir, "template-dir", "", "Copy template files from this directory instead of the built-in template")
	f.BoolVarP(&rootOpts.verbose, "verbose", "v", false, "Log every file written to stderr")
	f.BoolVar(&rootOpts.noColor, "no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a TypeScript LLM application project wired for context
engineering: an LLM client, a context manager, a tool registry, an agent loop
and evaluation examples.

Run it without arguments to answer three questions (project name, package
manager, whether to install dependencies) and get a ready-to-run project in
a new directory.`,
	Example: `  # Interactive
  ` + branding.CLIName() + `

  # Non-interactive, from an answers file
  ` + branding.CLIName() + ` --answers answers.yaml -C ~/code`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	var reported errReported
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func runCreate(cmd *cobra.Command, _ []string) error {
	config.Load()

	noColor := rootOpts.noColor || os.Getenv("NO_COLOR") != ""
	reporter := ui.NewTerminal(cmd.OutOrStdout(), ui.WithNoColor(noColor))

	err := create(cmd, reporter)
	switch {
	case errors.Is(err, prompt.ErrCancelled):
		reporter.Cancel("Operation cancelled")
		return nil
	case err != nil:
		reporter.Error(err.Error())
		return errReported{err}
	}
	return nil
}

func create(cmd *cobra.Command, reporter ui.Reporter) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	baseDir := rootOpts.directory
	if baseDir == "" {
		if baseDir, err = os.Getwd(); err != nil {
			return fmt.Errorf("resolving current directory: %w", err)
		}
	}

	templateDir := rootOpts.templateDir
	if templateDir == "" {
		templateDir = config.TemplateDir()
	}
	tree, err := skeleton.Open(templateDir)
	if err != nil {
		return fmt.Errorf("opening template directory: %w", err)
	}
	log.Debug("resolved inputs", "base_dir", baseDir, "template_dir", templateDir)

	reporter.Intro(fmt.Sprintf("Create %s project", branding.DisplayName()))

	cfg, err := newCollector(cmd, config.Defaults()).Collect(ctx)
	if err != nil {
		return err
	}

	s := scaffold.New(
		scaffold.WithFS(afero.NewOsFs()),
		scaffold.WithTemplate(tree),
		scaffold.WithRunner(newRunner(io.Discard, cmd.ErrOrStderr())),
		scaffold.WithReporter(reporter),
		scaffold.WithLogger(log),
		scaffold.WithBaseDir(baseDir),
		scaffold.WithDocsURL(branding.DocsURL()),
	)
	result, err := s.Run(ctx, *cfg)
	if err != nil {
		return err
	}
	log.Debug("scaffold complete", "dir", result.OutputDir, "files", len(result.Files), "installed", result.Installed)
	return nil
}

func newLogger(w io.Writer) (*slog.Logger, error) {
	name := config.LogLevel()
	if rootOpts.verbose {
		name = "debug"
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.KeyLogLevel, err)
	}
	return logging.New(w, level), nil
}

func newCollector(cmd *cobra.Command, defaults project.Config) prompt.Collector {
	switch {
	case rootOpts.answers != "":
		return &prompt.FileCollector{Path: rootOpts.answers, Defaults: defaults}
	case cmd.InOrStdin() == os.Stdin && stdinIsTerminal():
		return prompt.NewSurveyCollector(defaults, survey.WithStdio(os.Stdin, os.Stdout, os.Stderr))
	default:
		return prompt.NewLineCollector(cmd.InOrStdin(), cmd.OutOrStdout(), defaults)
	}
}
