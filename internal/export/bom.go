package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/battkit/cellplate/internal/model"
)

// BOM writes an Excel workbook with one sheet per plate layout listing
// every cell bore and BMS hole position, plus a summary sheet.
func BOM(path string, jobs []model.PlateJob) error {
	if len(jobs) == 0 {
		return fmt.Errorf("no layouts to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	headers := []interface{}{"Layout", "Plate ID", "Width (mm)", "Length (mm)", "Cells", "BMS holes"}
	if err := f.SetSheetRow(summary, "A1", &headers); err != nil {
		return err
	}

	for i, job := range jobs {
		row := []interface{}{
			job.Strategy.DisplayName(),
			job.ID,
			job.Bounds.Width(),
			job.Bounds.Length(),
			len(job.Cells),
			len(job.BMSHoles),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return err
		}

		if err := writeLayoutSheet(f, job); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeLayoutSheet adds one sheet with the feature positions of a layout.
func writeLayoutSheet(f *excelize.File, job model.PlateJob) error {
	name := sheetName(job.Strategy)
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	headers := []interface{}{"Feature", "Index", "X (mm)", "Y (mm)", "Diameter (mm)"}
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		return err
	}

	row := 2
	for i, c := range job.Cells {
		values := []interface{}{"Cell bore", i + 1, c.X, c.Y, job.Config.CellSize}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}
	for i, h := range job.BMSHoles {
		values := []interface{}{"BMS hole", i + 1, h.X, h.Y, job.Config.HoleDiameter}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}
	return nil
}

// sheetName derives a workbook-safe sheet name from a strategy.
func sheetName(s model.Strategy) string {
	return strings.ReplaceAll(s.DisplayName(), " ", "_")
}
