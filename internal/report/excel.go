package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/locale"
	"github.com/AndreyAkinshin/buildreport/internal/model"
)

// SheetName is the worksheet the spreadsheet export writes to.
const SheetName = "Report"

// ExcelExporter writes a report to an .xlsx workbook. Every entry is
// exported, delegated ones included, since the file is an archive.
type ExcelExporter struct {
	titles locale.Titles
}

// NewExcelExporter creates an exporter using the labels of opts.Language.
func NewExcelExporter(opts PrinterOptions) *ExcelExporter {
	return &ExcelExporter{titles: locale.NewTitles(opts.Language)}
}

// Export writes the report to path.
func (e *ExcelExporter) Export(r *model.Report, path string) error {
	if r == nil {
		return errors.InvalidArgument("report")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	header := []interface{}{e.titles.Task, e.titles.Duration, "Seconds", e.titles.Status, e.titles.Category}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	rowNum := 2
	for _, entry := range r.Entries() {
		row := []interface{}{
			entry.TaskName,
			durationText(entry, e.titles),
			entry.Duration.Seconds(),
			entry.ExecutionStatus.String(),
			entry.Category.String(),
		}
		if err := f.SetSheetRow(SheetName, cellName(1, rowNum), &row); err != nil {
			return errors.Wrap(err, "failed to write row")
		}
		rowNum++
	}

	total := []interface{}{e.titles.Total, FormatDuration(r.TotalDuration()), r.TotalDuration().Seconds()}
	if err := f.SetSheetRow(SheetName, cellName(1, rowNum), &total); err != nil {
		return errors.Wrap(err, "failed to write total")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "failed to create style")
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", bold); err != nil {
		return errors.Wrap(err, "failed to style header")
	}
	if err := f.SetCellStyle(SheetName, cellName(1, rowNum), cellName(5, rowNum), bold); err != nil {
		return errors.Wrap(err, "failed to style total")
	}
	if err := f.SetColWidth(SheetName, "A", "A", float64(NameColumnWidth(r.Entries()))); err != nil {
		return errors.Wrap(err, "failed to size columns")
	}
	if err := f.SetColWidth(SheetName, "B", "B", durationWidth); err != nil {
		return errors.Wrap(err, "failed to size columns")
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "failed to save excel file")
	}
	return nil
}

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		// Only reachable with non-positive coordinates.
		panic(fmt.Sprintf("invalid cell coordinates (%d, %d): %v", col, row, err))
	}
	return name
}
