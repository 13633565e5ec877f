// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Writer handles CLI output formatting. Report lines never pass through a
// Writer; it carries the CLI's own diagnostics, help and outcome messages.
type Writer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	quiet   bool
	verbose bool
}

// New creates a new Writer over stdout and stderr. Color is enabled when
// stdout is a terminal and NO_COLOR is unset.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "",
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables or disables debug messages.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// Out returns the writer used for standard output.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Err returns the writer used for standard error.
func (w *Writer) Err() io.Writer {
	return w.err
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Debug prints a diagnostic message to stderr in verbose mode.
func (w *Writer) Debug(format string, args ...interface{}) {
	if !w.verbose || w.quiet {
		return
	}
	w.Errorln("%s", w.paint(fmt.Sprintf("debug: "+format, args...), color.Faint))
}

// Warning prints a warning message.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Errorln("%s %s", w.paint("warning:", color.FgYellow), msg)
}

// ErrorPrefix prints an error message with conreport prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Errorln("%s %s", w.paint("conreport:", color.FgRed), msg)
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	w.Errorln("%s", w.paint(fmt.Sprintf("hint: "+format, args...), color.Faint))
}

// FinalSuccess prints a final success message to stderr.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Errorln("%s", w.paint(fmt.Sprintf(format, args...), color.FgGreen))
}

// FinalFailure prints a final failure message to stderr.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	w.Errorln("%s", w.paint(fmt.Sprintf(format, args...), color.FgRed))
}

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	w.Println("%s", w.paint(title, color.Bold, color.FgCyan))
}

// HelpSection formats a section header (e.g., "Commands:").
func (w *Writer) HelpSection(title string) {
	w.Println("")
	w.Println("%s", w.paint(title, color.Bold, color.FgYellow))
}

// HelpCommand formats a command with its description.
func (w *Writer) HelpCommand(name, description string, width int) {
	padding := width - len(name)
	if padding < 0 {
		padding = 0
	}
	w.Println("  %s%s  %s", w.paint(name, color.Bold, color.FgCyan), strings.Repeat(" ", padding), w.paint(description, color.Faint))
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	padding := width - len(name)
	if padding < 0 {
		padding = 0
	}
	w.Println("  %s%s  %s", w.paint(name, color.FgYellow), strings.Repeat(" ", padding), w.paint(description, color.Faint))
}

// HelpUsage formats usage lines.
func (w *Writer) HelpUsage(usage string) {
	w.Println("  %s", usage)
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	w.Println("  %s", w.paint(command, color.FgCyan))
	if description != "" {
		w.Println("      %s", w.paint(description, color.Faint))
	}
}

// SummaryHeader prints a summary section header.
func (w *Writer) SummaryHeader(title string) {
	w.Println("")
	w.Println("%s", w.paint("=== "+title+" ===", color.Bold, color.FgCyan))
	w.Println("")
}

// SummaryItem prints a labeled summary value.
func (w *Writer) SummaryItem(label, value string) {
	w.Println("  %s %s", w.paint(label+":", color.Faint), value)
}

// SummaryPassed prints a labeled value in green.
func (w *Writer) SummaryPassed(label, value string) {
	w.Println("  %s %s", w.paint(label+":", color.Faint), w.paint(value, color.FgGreen))
}

// SummaryFailed prints a labeled value in red.
func (w *Writer) SummaryFailed(label, value string) {
	w.Println("  %s %s", w.paint(label+":", color.Faint), w.paint(value, color.FgRed))
}

// SummarySectionLabel prints a dimmed label inside a summary.
func (w *Writer) SummarySectionLabel(label string) {
	w.Println("  %s", w.paint(label, color.Faint))
}

// Table prints a simple table.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	w.Println("%s", joinCells(headers, widths))

	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	w.Println("%s", strings.Join(seps, "  "))

	for _, row := range rows {
		w.Println("%s", joinCells(row, widths))
	}
}

func joinCells(cells []string, widths []int) string {
	var parts []string
	for i, cell := range cells {
		if i < len(widths) {
			parts = append(parts, fmt.Sprintf("%-*s", widths[i], cell))
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// paint applies attributes when color is enabled.
func (w *Writer) paint(text string, attrs ...color.Attribute) string {
	if !w.color {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// isTerminal returns true if f is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
