package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/context-template/context-cli/internal/project"
)

// LineCollector prompts on w and reads one answer per line from r. Invalid
// answers are reported and asked again; end of input cancels.
type LineCollector struct {
	Defaults project.Config

	reader *bufio.Reader
	w      io.Writer
}

// NewLineCollector creates a collector over r and w.
func NewLineCollector(r io.Reader, w io.Writer, defaults project.Config) *LineCollector {
	return &LineCollector{Defaults: defaults, reader: bufio.NewReader(r), w: w}
}

func (c *LineCollector) Collect(ctx context.Context) (*project.Config, error) {
	cfg := c.Defaults

	name, err := c.askName()
	if err != nil {
		return nil, err
	}
	cfg.ProjectName = name
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pm, err := c.selectPackageManager()
	if err != nil {
		return nil, err
	}
	cfg.PackageManager = pm
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	install, err := c.confirm(installMessage, c.Defaults.ShouldInstall)
	if err != nil {
		return nil, err
	}
	cfg.ShouldInstall = install

	return &cfg, nil
}

func (c *LineCollector) askName() (string, error) {
	for {
		if c.Defaults.ProjectName != "" {
			fmt.Fprintf(c.w, "%s (%s) ", projectNameMessage, c.Defaults.ProjectName)
		} else {
			fmt.Fprintf(c.w, "%s ", projectNameMessage)
		}
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			line = c.Defaults.ProjectName
		}
		if err := project.ValidateName(line); err != nil {
			fmt.Fprintf(c.w, "  %v\n", err)
			continue
		}
		return line, nil
	}
}

// selectPackageManager presents a numbered list. An empty answer picks the
// default entry.
func (c *LineCollector) selectPackageManager() (project.PackageManager, error) {
	items := project.PackageManagers
	def := defaultPackageManager(c.Defaults)
	defIdx := 0
	for i, pm := range items {
		if pm == def {
			defIdx = i
		}
	}

	for {
		fmt.Fprintf(c.w, "\n%s\n", packageManagerMessage)
		for i, pm := range items {
			fmt.Fprintf(c.w, "  %d) %s (%s)\n", i+1, pm, packageManagerLabels[pm])
		}
		fmt.Fprintf(c.w, "Enter number [1-%d] (%d): ", len(items), defIdx+1)

		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return items[defIdx], nil
		}
		if pm, err := project.ParsePackageManager(line); err == nil {
			return pm, nil
		}
		num, err := strconv.Atoi(line)
		if err != nil || num < 1 || num > len(items) {
			fmt.Fprintf(c.w, "  invalid selection %q: choose 1-%d\n", line, len(items))
			continue
		}
		return items[num-1], nil
	}
}

func (c *LineCollector) confirm(message string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(c.w, "\n%s [%s]: ", message, hint)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(c.w, "  please answer y or n\n")
	}
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; only an empty read at end of input cancels.
func (c *LineCollector) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
