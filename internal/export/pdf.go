// Package export writes the optional shop-floor artifacts for generated
// plates: a PDF datasheet, 2D DXF drawings, an Excel BOM workbook, and
// QR-coded plate labels.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/battkit/cellplate/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	tableHeight  = 42.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// Datasheet generates a PDF document with one page per plate layout: a
// scaled drawing of the plate with its bores and BMS holes, a stats line,
// and a parameter table.
func Datasheet(path string, jobs []model.PlateJob) error {
	if len(jobs) == 0 {
		return fmt.Errorf("no layouts to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, job := range jobs {
		pdf.AddPage()
		renderPlatePage(pdf, job)
	}

	return pdf.OutputFileAndClose(path)
}

// renderPlatePage draws a single plate layout on the current PDF page.
func renderPlatePage(pdf *fpdf.Fpdf, job model.PlateJob) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%.1f x %.1f mm)", job.Strategy.DisplayName(), job.Bounds.Width(), job.Bounds.Length())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Cells: %d | BMS holes: %d | Bore: %.1f mm | Spacing: %.1f mm | Plate ID: %s",
		len(job.Cells), len(job.BMSHoles), job.Config.CellSize, job.Config.Spacing, job.ID)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area and scale to fit
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - tableHeight

	scaleX := drawWidth / job.Bounds.Width()
	scaleY := drawHeight / job.Bounds.Length()
	scale := math.Min(scaleX, scaleY)

	canvasW := job.Bounds.Width() * scale
	canvasH := job.Bounds.Length() * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// toPage maps centered plate coordinates to page coordinates, with Y
	// flipped so the top row of the plate draws at the top of the page.
	toPage := func(p model.Point2D) (float64, float64) {
		return offsetX + (p.X-job.Bounds.MinX)*scale, offsetY + (job.Bounds.MaxY-p.Y)*scale
	}

	// Plate outline
	pdf.SetFillColor(225, 228, 232)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.4)
	if job.Config.RoundedCorners {
		pdf.RoundedRect(offsetX, offsetY, canvasW, canvasH, job.Config.CornerRadius*scale, "1234", "FD")
	} else {
		pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")
	}

	// Cell bores
	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(30, 90, 160)
	pdf.SetLineWidth(0.3)
	boreR := job.Config.CellRadius() * scale
	for _, c := range job.Cells {
		x, y := toPage(c)
		pdf.Circle(x, y, boreR, "FD")
	}

	// BMS holes
	pdf.SetDrawColor(180, 60, 30)
	holeR := job.Config.HoleDiameter / 2 * scale
	for _, h := range job.BMSHoles {
		x, y := toPage(h)
		pdf.Circle(x, y, holeR, "FD")
	}

	drawDimensionAnnotations(pdf, job.Bounds, offsetX, offsetY, canvasW, canvasH)
	drawParameterTable(pdf, job, offsetY+canvasH+6)
}

// drawDimensionAnnotations adds width and length labels outside the plate.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, bounds model.PlateBounds, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.1f mm", bounds.Width())
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.1f mm", bounds.Length())
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawParameterTable renders the plate parameters under the drawing.
func drawParameterTable(pdf *fpdf.Fpdf, job model.PlateJob, startY float64) {
	cfg := job.Config

	items := []struct {
		label string
		value string
	}{
		{"Plate height", fmt.Sprintf("%.1f mm", cfg.Height)},
		{"Bore diameter", fmt.Sprintf("%.1f mm", cfg.CellSize)},
		{"Terminal recess", fmt.Sprintf("%.1f mm x %.1f mm deep", cfg.TerminalDiameter, cfg.TerminalDepth)},
		{"Ledge width", fmt.Sprintf("%.1f mm", cfg.LedgeWidth)},
		{"Cover thickness", fmt.Sprintf("%.1f mm", cfg.CoverThickness)},
		{"BMS hole diameter", fmt.Sprintf("%.1f mm", cfg.HoleDiameter)},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(60, 5, "Plate parameters", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	y := startY + 6
	x := marginLeft
	for i, item := range items {
		pdf.SetXY(x, y)
		pdf.CellFormat(34, 4, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(32, 4, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)

		// Two columns of three rows
		if i == 2 {
			x = marginLeft + 90
			y = startY + 6
		} else {
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CellPlate - Battery Holder Plate Generator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
