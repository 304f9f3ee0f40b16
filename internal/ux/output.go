// Package ux provides terminal output styling for the fanout CLI.
//
// Styles are rendered with lipgloss and degrade to plain text when stderr is
// not a terminal, so diagnostics stay grep-able when the tool is piped or
// run under CI.
package ux

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Semantic colors. Red for errors and gold for warnings follow the common
// terminal conventions; muted gray is used for secondary detail.
var (
	colorError   = lipgloss.Color("#E74C3C")
	colorWarning = lipgloss.Color("#F4D03F")
	colorMuted   = lipgloss.Color("8")
)

// Styles provides the pre-configured lipgloss styles used across the CLI.
var Styles = struct {
	Error      lipgloss.Style
	ErrorLabel lipgloss.Style
	Warning    lipgloss.Style
	WarnLabel  lipgloss.Style
	Muted      lipgloss.Style
}{
	Error:      lipgloss.NewStyle().Foreground(colorError),
	ErrorLabel: lipgloss.NewStyle().Foreground(colorError).Bold(true),
	Warning:    lipgloss.NewStyle().Foreground(colorWarning),
	WarnLabel:  lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
	Muted:      lipgloss.NewStyle().Foreground(colorMuted),
}

// colorEnabled is decided once at startup: styling applies only when stderr
// is a real terminal (including Cygwin/MSYS2 pseudo-terminals on Windows).
var colorEnabled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// StderrIsTerminal reports whether stderr is attached to a terminal.
// The progress bar uses this to avoid writing carriage-return redraws
// into a pipe.
func StderrIsTerminal() bool {
	return colorEnabled
}

// Render applies the style when color output is enabled and returns the
// string unchanged otherwise.
func Render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// ErrorLabel returns the styled "error:" prefix used on fatal diagnostics.
func ErrorLabel() string {
	return Render(Styles.ErrorLabel, "error:")
}

// WarnLabel returns the styled "warning:" prefix used on non-fatal
// diagnostics such as spawn failures.
func WarnLabel() string {
	return Render(Styles.WarnLabel, "warning:")
}
