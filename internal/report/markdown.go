package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/samber/lo"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/locale"
	"github.com/AndreyAkinshin/buildreport/internal/model"
)

// MarkdownWriter renders a report as a Markdown table, for CI job summaries
// and pull request comments.
type MarkdownWriter struct {
	output io.Writer
	opts   PrinterOptions
	titles locale.Titles
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
// Delegated entries follow the same verbosity rule as the console printer.
func NewMarkdownWriter(output io.Writer, opts PrinterOptions) *MarkdownWriter {
	return &MarkdownWriter{
		output: output,
		opts:   opts,
		titles: locale.NewTitles(opts.Language),
	}
}

// Write outputs the report and returns the number of bytes written.
func (w *MarkdownWriter) Write(r *model.Report) (int, error) {
	if r == nil {
		return 0, errors.InvalidArgument("report")
	}

	md := markdown.NewMarkdown(w.output)
	md.H2(w.titles.Title)
	md.PlainText("")

	visible := lo.Filter(r.Entries(), visibleAt(w.opts.Verbosity))
	rows := lo.Map(visible, func(e model.ReportEntry, _ int) []string {
		return []string{e.TaskName, durationText(e, w.titles), e.ExecutionStatus.String(), e.Category.String()}
	})
	rows = append(rows, []string{
		"**" + w.titles.Total + "**",
		"**" + FormatDuration(r.TotalDuration()) + "**",
		"",
		"",
	})

	md.Table(markdown.TableSet{
		Header: []string{w.titles.Task, w.titles.Duration, w.titles.Status, w.titles.Category},
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}
