// Package report renders build reports: the colored console summary printed
// after a run, plus Markdown and spreadsheet exports and the report file loader.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/locale"
	"github.com/AndreyAkinshin/buildreport/internal/model"
	"github.com/AndreyAkinshin/buildreport/internal/output"
)

const (
	// minNameWidth is the narrowest the task column gets before padding.
	minNameWidth = 29
	// durationWidth is the fixed width of the duration column.
	durationWidth = 20
)

// PrinterOptions configures what the printer shows and in which language.
type PrinterOptions struct {
	Verbosity model.Verbosity
	Language  language.Tag
}

// Printer writes a report summary table to a console.
type Printer struct {
	console output.Console
	opts    PrinterOptions
	titles  locale.Titles
}

// NewPrinter creates a Printer writing to console.
func NewPrinter(console output.Console, opts PrinterOptions) *Printer {
	return &Printer{
		console: console,
		opts:    opts,
		titles:  locale.NewTitles(opts.Language),
	}
}

// Write prints the report. It fails only for a nil report or when the console
// fails to write; the console color is reset on every return path.
func (p *Printer) Write(r *model.Report) error {
	if r == nil {
		return errors.InvalidArgument("report")
	}
	defer p.console.ResetColor()

	entries := r.Entries()
	tw := &tableWriter{
		console:   p.console,
		nameWidth: NameColumnWidth(entries),
	}
	rule := strings.Repeat("-", tw.nameWidth+durationWidth)

	p.console.SetForegroundColor(output.ColorGreen)
	tw.emptyLine()
	tw.row(p.titles.Task, p.titles.Duration)
	tw.line(rule)

	for _, e := range lo.Filter(entries, visibleAt(p.opts.Verbosity)) {
		p.console.SetForegroundColor(entryColor(e))
		tw.row(e.TaskName, durationText(e, p.titles))
	}

	p.console.SetForegroundColor(output.ColorGreen)
	tw.line(rule)
	tw.row(p.titles.Total, FormatDuration(r.TotalDuration()))

	return tw.err
}

// visibleAt returns a filter that hides delegated entries below verbose output.
func visibleAt(v model.Verbosity) func(model.ReportEntry, int) bool {
	return func(e model.ReportEntry, _ int) bool {
		if e.ExecutionStatus == model.StatusDelegated {
			return v >= model.VerbosityVerbose
		}
		return true
	}
}

func durationText(e model.ReportEntry, titles locale.Titles) string {
	if e.ExecutionStatus == model.StatusSkipped {
		return titles.Skipped
	}
	return FormatDuration(e.Duration)
}

func entryColor(e model.ReportEntry) output.Color {
	if e.Category.IsLifecycle() {
		return output.ColorCyan
	}
	if e.ExecutionStatus == model.StatusExecuted {
		return output.ColorGreen
	}
	return output.ColorGray
}

// NameColumnWidth returns the padded width of the task column: the longest
// task name in runes, but at least 29, plus one space of padding.
// Hidden entries count too, so the layout does not depend on verbosity.
func NameColumnWidth(entries []model.ReportEntry) int {
	longest := lo.Max(lo.Map(entries, func(e model.ReportEntry, _ int) int {
		return utf8.RuneCountInString(e.TaskName)
	}))
	return max(minNameWidth, longest) + 1
}

// tableWriter formats rows and keeps the first console error.
// Writes after a failure are dropped.
type tableWriter struct {
	console   output.Console
	nameWidth int
	err       error
}

func (t *tableWriter) row(name, value string) {
	t.line(fmt.Sprintf("%-*s%-*s", t.nameWidth, name, durationWidth, value))
}

func (t *tableWriter) line(s string) {
	if t.err != nil {
		return
	}
	t.err = t.console.WriteLine("%s", s)
}

func (t *tableWriter) emptyLine() {
	if t.err != nil {
		return
	}
	t.err = t.console.WriteEmptyLine()
}
