// Package ui handles styled terminal output and the small prompts used
// outside the wizard.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Output writes styled messages. Status lines go to Out, problems to Err.
type Output struct {
	Out     io.Writer
	Err     io.Writer
	noColor bool
}

// NewOutput returns an Output on stdout and stderr. Color is dropped when
// NO_COLOR is set.
func NewOutput() *Output {
	return &Output{Out: os.Stdout, Err: os.Stderr, noColor: os.Getenv("NO_COLOR") != ""}
}

// NewPlainOutput returns an uncolored Output on the given writers.
func NewPlainOutput(out, errOut io.Writer) *Output {
	return &Output{Out: out, Err: errOut, noColor: true}
}

func (o *Output) render(s lipgloss.Style, text string) string {
	if o.noColor {
		return text
	}
	return s.Render(text)
}

// Title prints a bold heading followed by a blank line.
func (o *Output) Title(format string, args ...any) {
	fmt.Fprintf(o.Out, "%s\n\n", o.render(titleStyle, fmt.Sprintf(format, args...)))
}

// Success prints a line with a green check mark.
func (o *Output) Success(format string, args ...any) {
	fmt.Fprintf(o.Out, "%s %s\n", o.render(okStyle, "✔"), fmt.Sprintf(format, args...))
}

// Error prints a line with a red cross to Err.
func (o *Output) Error(format string, args ...any) {
	fmt.Fprintf(o.Err, "%s %s\n", o.render(errStyle, "✖"), fmt.Sprintf(format, args...))
}

// Warning prints a line with a yellow exclamation mark to Err.
func (o *Output) Warning(format string, args ...any) {
	fmt.Fprintf(o.Err, "%s %s\n", o.render(warnStyle, "!"), fmt.Sprintf(format, args...))
}

// Println prints a plain line.
func (o *Output) Println(format string, args ...any) {
	fmt.Fprintf(o.Out, format+"\n", args...)
}

// Dim returns text in the muted style.
func (o *Output) Dim(text string) string {
	return o.render(dimStyle, text)
}

// Value returns text in the highlight style.
func (o *Output) Value(text string) string {
	return o.render(valStyle, text)
}

// Color returns text in an ANSI-256 color code such as "12".
func (o *Output) Color(code, text string) string {
	if code == "" {
		return text
	}
	return o.render(lipgloss.NewStyle().Foreground(lipgloss.Color(code)), text)
}

// Field prints an aligned "label: value" line.
func (o *Output) Field(label, value string) {
	fmt.Fprintf(o.Out, "  %-10s %s\n", label+":", o.Value(value))
}

// Table prints rows with columns padded to their widest cell.
func (o *Output) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			pad := 0
			if i < len(widths) {
				pad = widths[i] - lipgloss.Width(c)
			}
			parts[i] = c + strings.Repeat(" ", max(pad, 0))
		}
		return strings.TrimRight("  "+strings.Join(parts, "  "), " ")
	}

	fmt.Fprintln(o.Out, o.render(dimStyle, line(headers)))
	for _, row := range rows {
		fmt.Fprintln(o.Out, line(row))
	}
}
