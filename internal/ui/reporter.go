// Package ui renders scaffold progress for humans.
//
// The Reporter interface mirrors the stages of a run: an intro line, one
// start/stop pair per stage, a closing note with next steps and an outro.
// Terminal renders it with lipgloss; Nop swallows it for tests and
// non-interactive callers.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Reporter receives progress events from a scaffold run.
type Reporter interface {
	Intro(title string)
	Start(msg string)
	Stop(msg string)
	Fail(msg string)
	Note(title, body string)
	Outro(msg string)
	Cancel(msg string)
	Error(msg string)
}

// Styles holds the lipgloss styles used by Terminal.
type Styles struct {
	Title   lipgloss.Style
	Step    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Note    lipgloss.Style
}

// NewStyles builds the style set for renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa")),
		Step:    r.NewStyle().Foreground(lipgloss.Color("#818cf8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#eab308")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
		Muted:   r.NewStyle().Faint(true),
		Note:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Terminal writes styled progress lines to an io.Writer.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styles Styles
	active string
}

// TerminalOption configures a Terminal.
type TerminalOption func(*terminalOptions)

type terminalOptions struct {
	noColor bool
}

// WithNoColor disables ANSI styling.
func WithNoColor(disable bool) TerminalOption {
	return func(o *terminalOptions) { o.noColor = disable }
}

// NewTerminal creates a reporter writing to w. Colors follow the
// terminal's detected profile unless disabled.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	var o terminalOptions
	for _, opt := range opts {
		opt(&o)
	}
	r := lipgloss.NewRenderer(w)
	if o.noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Terminal{w: w, styles: NewStyles(r)}
}

func (t *Terminal) Intro(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "\n%s\n\n", t.styles.Title.Render(title))
}

func (t *Terminal) Start(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = msg
	fmt.Fprintf(t.w, "%s %s\n", t.styles.Step.Render("◒"), msg)
}

func (t *Terminal) Stop(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = ""
	fmt.Fprintf(t.w, "%s %s\n", t.styles.Success.Render("◇"), msg)
}

func (t *Terminal) Fail(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = ""
	fmt.Fprintf(t.w, "%s %s\n", t.styles.Warning.Render("▲"), msg)
}

func (t *Terminal) Note(title, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var b strings.Builder
	if title != "" {
		b.WriteString(t.styles.Title.Render(title))
		b.WriteString("\n\n")
	}
	b.WriteString(body)
	fmt.Fprintf(t.w, "\n%s\n", t.styles.Note.Render(b.String()))
}

func (t *Terminal) Outro(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Only the headline is styled; multi-line renders would pad every line.
	head, rest, found := strings.Cut(msg, "\n")
	fmt.Fprintf(t.w, "\n%s\n", t.styles.Success.Render(head))
	if found {
		fmt.Fprintf(t.w, "%s\n", rest)
	}
}

func (t *Terminal) Cancel(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s\n", t.styles.Muted.Render(msg))
}

// Error prints msg prefixed with "Error:". A stage still in progress is
// closed first so the failure lines up under it.
func (t *Terminal) Error(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != "" {
		fmt.Fprintf(t.w, "%s %s\n", t.styles.Error.Render("■"), t.active)
		t.active = ""
	}
	fmt.Fprintf(t.w, "%s %s\n", t.styles.Error.Render("Error:"), msg)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Intro(string)        {}
func (Nop) Start(string)        {}
func (Nop) Stop(string)         {}
func (Nop) Fail(string)         {}
func (Nop) Note(string, string) {}
func (Nop) Outro(string)        {}
func (Nop) Cancel(string)       {}
func (Nop) Error(string)        {}

var (
	_ Reporter = (*Terminal)(nil)
	_ Reporter = Nop{}
)
