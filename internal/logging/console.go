package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// BannerWidth is the width of console banners.
const BannerWidth = 80

// Console writes styled, human-facing lines. Styling is cosmetic only; with
// colors disabled the text is identical minus the escape sequences.
type Console struct {
	out io.Writer
	err io.Writer

	bold    lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// NewConsole creates a Console writing regular output to out and errors to errOut.
func NewConsole(out, errOut io.Writer, color bool) *Console {
	renderer := lipgloss.NewRenderer(out)
	if color {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		out:     out,
		err:     errOut,
		bold:    renderer.NewStyle().Bold(true),
		info:    renderer.NewStyle().Foreground(lipgloss.Color("12")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("10")),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("11")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// style returns the presentation for a log level.
func (c *Console) style(level Level) lipgloss.Style {
	switch level {
	case LevelSuccess:
		return c.success
	case LevelWarning:
		return c.warning
	case LevelError:
		return c.failure
	default:
		return c.info
	}
}

// Entry prints a formatted log line; ERROR goes to the error stream.
func (c *Console) Entry(level Level, line string) {
	w := c.out
	if level == LevelError {
		w = c.err
	}

	_, _ = fmt.Fprintln(w, c.style(level).Render(line))
}

// Banner prints title between two bold rules.
func (c *Console) Banner(title string) {
	rule := c.bold.Render(strings.Repeat("=", BannerWidth))
	_, _ = fmt.Fprintf(c.out, "\n%s\n%s\n%s\n\n", rule, c.bold.Render(title), rule)
}

// Rule prints a single bold rule.
func (c *Console) Rule() {
	_, _ = fmt.Fprintln(c.out, c.bold.Render(strings.Repeat("=", BannerWidth)))
}

// Success prints a bold green label followed by msg.
func (c *Console) Success(label, msg string) {
	_, _ = fmt.Fprintf(c.out, "%s %s\n", c.success.Bold(true).Render(label+":"), msg)
}

// Fail prints a bold red label followed by msg to the error stream.
func (c *Console) Fail(label, msg string) {
	_, _ = fmt.Fprintf(c.err, "%s %s\n", c.failure.Bold(true).Render(label+":"), msg)
}

// Notice prints msg in the warning style.
func (c *Console) Notice(msg string) {
	_, _ = fmt.Fprintln(c.out, c.warning.Render(msg))
}

// Highlight returns s styled for emphasis, such as an output path.
func (c *Console) Highlight(s string) string {
	return c.info.Render(s)
}

// Println prints plain text.
func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}
