// Package output provides the console used to print reports and the
// formatted message helpers of the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color is a foreground color from the console palette.
type Color int

const (
	ColorDefault Color = iota
	ColorGreen
	ColorCyan
	ColorGray
)

func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// palette maps console colors to terminal attributes.
// Gray is the standard (non-bright) white, which terminals render as light gray.
var palette = map[Color]color.Attribute{
	ColorGreen: color.FgGreen,
	ColorCyan:  color.FgCyan,
	ColorGray:  color.FgWhite,
}

// Console is the output capability a report printer writes to.
// It holds a current foreground color that applies to subsequent lines.
type Console interface {
	ForegroundColor() Color
	SetForegroundColor(c Color)
	WriteLine(format string, args ...any) error
	WriteEmptyLine() error
	ResetColor()
}

// ColorMode controls whether ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a color mode name. The empty string means auto.
func ParseColorMode(s string) (ColorMode, bool) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, true
	case ColorAuto, ColorAlways, ColorNever:
		return m, true
	default:
		return "", false
	}
}

// Writer handles CLI output formatting and implements Console.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
	fg    Color
}

var _ Console = (*Writer)(nil)

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(os.Stdout),
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

// SetColorMode enables or disables color. Auto enables it only when stdout is a terminal.
func (w *Writer) SetColorMode(mode ColorMode) {
	switch mode {
	case ColorAlways:
		w.color = true
	case ColorNever:
		w.color = false
	default:
		w.color = isTerminal(w.out)
	}
}

// ColorEnabled reports whether ANSI colors are emitted.
func (w *Writer) ColorEnabled() bool {
	return w.color
}

// ForegroundColor returns the color applied to subsequent lines.
func (w *Writer) ForegroundColor() Color {
	return w.fg
}

// SetForegroundColor changes the color applied to subsequent lines.
func (w *Writer) SetForegroundColor(c Color) {
	w.fg = c
}

// ResetColor restores the default foreground color.
func (w *Writer) ResetColor() {
	w.fg = ColorDefault
}

// WriteLine writes a formatted line to stdout in the current foreground color.
func (w *Writer) WriteLine(format string, args ...any) error {
	line := fmt.Sprintf(format, args...)
	if attr, ok := palette[w.fg]; ok && line != "" {
		line = w.style(attr).Sprint(line)
	}
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// WriteEmptyLine writes an uncolored blank line to stdout.
func (w *Writer) WriteEmptyLine() error {
	_, err := fmt.Fprintln(w.out)
	return err
}

// style returns a color printer that honors the writer's color setting
// rather than the global detection of the color package.
func (w *Writer) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if w.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
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

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println(format, args...)
}

// Success prints a success message.
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s", w.style(color.FgGreen).Sprintf(format, args...))
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Errorln("%s %s", w.style(color.FgYellow).Sprint("warning:"), fmt.Sprintf(format, args...))
}

// ErrorPrefix prints an error message with the program prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	w.Errorln("%s %s", w.style(color.FgRed).Sprint("buildreport:"), fmt.Sprintf(format, args...))
}

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	w.Println("%s", w.style(color.Bold, color.FgCyan).Sprint(title))
}

// HelpSection formats a section header (e.g., "Usage:").
func (w *Writer) HelpSection(title string) {
	w.Println("")
	w.Println("%s", w.style(color.Bold, color.FgYellow).Sprint(title))
}

// HelpCommand formats a command with its description.
func (w *Writer) HelpCommand(name, description string, width int) {
	padding := width - len(name)
	if padding < 0 {
		padding = 0
	}
	w.Println("  %s%s  %s", w.style(color.Bold, color.FgCyan).Sprint(name), strings.Repeat(" ", padding), description)
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	w.Println("  %s", w.style(color.FgCyan).Sprint(command))
	if description != "" {
		w.Println("      %s", w.style(color.Faint).Sprint(description))
	}
}

// isTerminal returns true if out is a terminal and NO_COLOR is unset.
func isTerminal(out io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
