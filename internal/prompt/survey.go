package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/context-template/context-cli/internal/project"
)

// AskFunc matches survey.AskOne.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// SurveyCollector asks the three questions with survey prompts.
type SurveyCollector struct {
	Defaults project.Config
	// Options are appended to every question, e.g. survey.WithStdio.
	Options []survey.AskOpt

	ask AskFunc
}

// NewSurveyCollector creates a collector seeded with defaults.
func NewSurveyCollector(defaults project.Config, opts ...survey.AskOpt) *SurveyCollector {
	return &SurveyCollector{Defaults: defaults, Options: opts, ask: survey.AskOne}
}

func (c *SurveyCollector) Collect(ctx context.Context) (*project.Config, error) {
	ask := c.ask
	if ask == nil {
		ask = survey.AskOne
	}
	cfg := c.Defaults

	var name string
	nameOpts := append([]survey.AskOpt{survey.WithValidator(validateName)}, c.Options...)
	if err := ask(&survey.Input{
		Message: projectNameMessage,
		Default: c.Defaults.ProjectName,
		Help:    projectNameHelp,
	}, &name, nameOpts...); err != nil {
		return nil, translate(err)
	}
	cfg.ProjectName = name
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := make([]string, len(project.PackageManagers))
	for i, pm := range project.PackageManagers {
		options[i] = pm.String()
	}
	var pm string
	if err := ask(&survey.Select{
		Message: packageManagerMessage,
		Options: options,
		Default: defaultPackageManager(c.Defaults).String(),
		Description: func(value string, _ int) string {
			return packageManagerLabels[project.PackageManager(value)]
		},
	}, &pm, c.Options...); err != nil {
		return nil, translate(err)
	}
	cfg.PackageManager = project.PackageManager(pm)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	install := c.Defaults.ShouldInstall
	if err := ask(&survey.Confirm{
		Message: installMessage,
		Default: c.Defaults.ShouldInstall,
	}, &install, c.Options...); err != nil {
		return nil, translate(err)
	}
	cfg.ShouldInstall = install

	return &cfg, nil
}

func validateName(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("project name must be text")
	}
	return project.ValidateName(s)
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return fmt.Errorf("reading answer: %w", err)
}
