package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/context-template/context-cli/internal/project"
)

// scriptedAsk answers each prompt type with a fixed value and records the
// prompts it saw.
type scriptedAsk struct {
	name    string
	pm      string
	install bool
	failOn  string
	err     error
	seen    []survey.Prompt
}

func (s *scriptedAsk) ask(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
	s.seen = append(s.seen, p)
	switch p.(type) {
	case *survey.Input:
		if s.failOn == "input" {
			return s.err
		}
		*response.(*string) = s.name
	case *survey.Select:
		if s.failOn == "select" {
			return s.err
		}
		*response.(*string) = s.pm
	case *survey.Confirm:
		if s.failOn == "confirm" {
			return s.err
		}
		*response.(*bool) = s.install
	default:
		return errors.New("unexpected prompt")
	}
	return nil
}

func TestSurveyCollector(t *testing.T) {
	script := &scriptedAsk{name: "my-app", pm: "pnpm", install: false}
	c := NewSurveyCollector(project.Config{PackageManager: project.NPM, ShouldInstall: true})
	c.ask = script.ask

	cfg, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my-app", cfg.ProjectName)
	assert.Equal(t, project.PNPM, cfg.PackageManager)
	assert.False(t, cfg.ShouldInstall)

	require.Len(t, script.seen, 3)
	sel := script.seen[1].(*survey.Select)
	assert.Equal(t, []string{"bun", "pnpm", "npm"}, sel.Options)
	assert.Equal(t, "npm", sel.Default)
	assert.Equal(t, "Efficient", sel.Description("pnpm", 1))

	confirm := script.seen[2].(*survey.Confirm)
	assert.True(t, confirm.Default)
}

func TestSurveyCollectorInterrupt(t *testing.T) {
	for _, step := range []string{"input", "select", "confirm"} {
		t.Run(step, func(t *testing.T) {
			script := &scriptedAsk{name: "my-app", pm: "bun", failOn: step, err: terminal.InterruptErr}
			c := NewSurveyCollector(project.Config{})
			c.ask = script.ask

			_, err := c.Collect(context.Background())
			assert.ErrorIs(t, err, ErrCancelled)
		})
	}
}

func TestSurveyCollectorError(t *testing.T) {
	script := &scriptedAsk{failOn: "input", err: errors.New("tty gone")}
	c := NewSurveyCollector(project.Config{})
	c.ask = script.ask

	_, err := c.Collect(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("my_app-2"))
	assert.Error(t, validateName(""))
	assert.Error(t, validateName("My App"))
	assert.Error(t, validateName("../escape"))
	assert.Error(t, validateName(42))
}
