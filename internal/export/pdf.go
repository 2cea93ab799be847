// Package export renders loading plans to printable and CAD file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PipeStack/internal/model"
)

// bundleColor represents an RGB color for a placed bundle.
type bundleColor struct {
	R, G, B int
}

var bundleColors = []bundleColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 24.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for the loading plan. Each truck is
// rendered on its own page as a rear-view cross-section of the trailer
// with every bundle drawn as a circle, followed by a summary page.
func ExportPDF(path string, plan model.LoadingPlan) error {
	if len(plan.Trucks) == 0 {
		return fmt.Errorf("no trucks to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, truck := range plan.Trucks {
		pdf.AddPage()
		renderTruckPage(pdf, truck)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, plan)

	return pdf.OutputFileAndClose(path)
}

// renderTruckPage draws one truck's cross-section on the current page.
func renderTruckPage(pdf *fpdf.Fpdf, truck model.TruckLoad) {
	cfg := truck.Config

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Truck %d: %s (%.0f x %.0f mm cross-section)",
		truck.Number, cfg.Name, cfg.InternalWidthMM, cfg.InternalHeightMM)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Bundles: %d | Pipes: %d | Weight: %.1f kg of %.0f kg (%.1f%%)",
		truck.BundleCount(), truck.PipeCount(), truck.TotalWeight(),
		cfg.MaxPayloadKG, truck.WeightUtilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/cfg.InternalWidthMM, drawHeight/cfg.InternalHeightMM)
	canvasW := cfg.InternalWidthMM * scale
	canvasH := cfg.InternalHeightMM * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Trailer envelope
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Bundle circles. Plan coordinates measure y up from the trailer bed,
	// the PDF y axis runs down the page, so y is flipped.
	for i, p := range truck.Placements {
		col := bundleColors[i%len(bundleColors)]
		r := p.Bundle.Diameter() / 2 * scale
		cx := offsetX + p.Z*scale
		cy := offsetY + canvasH - p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Circle(cx, cy, r, "FD")

		// Inner circles for nested pipes
		pdf.SetLineWidth(0.2)
		for _, inner := range p.Bundle.Pipes[1:] {
			pdf.Circle(cx, cy, inner.OuterDiameterMM()/2*scale, "D")
		}

		if r > 5 {
			pdf.SetFont("Helvetica", "B", circleFontSize(r))
			pdf.SetTextColor(0, 0, 0)
			label := p.Bundle.Host().Code
			labelW := pdf.GetStringWidth(label)
			if labelW < 2*r {
				pdf.SetXY(cx-labelW/2, cy-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, cfg, offsetX, offsetY, canvasW, canvasH)
	drawBundleLegend(pdf, truck, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the envelope.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, cfg model.TruckConfig, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", cfg.InternalWidthMM)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", cfg.InternalHeightMM)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawBundleLegend renders a compact legend of placed bundles below the diagram.
func drawBundleLegend(pdf *fpdf.Fpdf, truck model.TruckLoad, startY float64) {
	if len(truck.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Bundles loaded:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range truck.Placements {
		col := bundleColors[i%len(bundleColors)]
		label := p.Bundle.Host().Code
		if p.Bundle.Depth() > 1 {
			label = fmt.Sprintf("%s (+%d nested)", label, p.Bundle.Depth()-1)
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with plan statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, plan model.LoadingPlan) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10,
		fmt.Sprintf("Loading Plan Summary - Order %s", plan.OrderNumber), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Trucks Needed", fmt.Sprintf("%d", plan.TrucksNeeded())},
		{"Total Pipes", fmt.Sprintf("%d", plan.TotalPipes)},
		{"Nested Pipes", fmt.Sprintf("%d (%.1f%%)", plan.NestedPipes, plan.NestingEfficiency())},
		{"Total Weight", fmt.Sprintf("%.1f kg", plan.TotalWeightKG)},
		{"Pipe Length", fmt.Sprintf("%.1f m", plan.PipeLengthM)},
		{"Avg Weight Utilization", fmt.Sprintf("%.1f%%", plan.AverageUtilization())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Truck Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 65, 30, 30, 45, 40}
	headers := []string{"Truck", "Configuration", "Bundles", "Pipes", "Weight", "Utilization"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, truck := range plan.Trucks {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", truck.Number),
			truck.Config.Name,
			fmt.Sprintf("%d", truck.BundleCount()),
			fmt.Sprintf("%d", truck.PipeCount()),
			fmt.Sprintf("%.1f kg", truck.TotalWeight()),
			fmt.Sprintf("%.1f%%", truck.WeightUtilization()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(plan.Infeasible) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unloadable Bundles", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, b := range plan.Infeasible {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %.0f mm diameter, %.1f kg",
				b.Host().Code, b.Diameter(), b.TotalWeight(plan.PipeLengthM))
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	if len(plan.Warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(180, 120, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Notes", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range plan.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(260, 5, "- "+w, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PipeStack - Pipe Transport Optimizer", "", 0, "C", false, 0, "")
}

// circleFontSize returns an appropriate font size for a circle of radius r mm.
func circleFontSize(r float64) float64 {
	switch {
	case r > 20:
		return 8
	case r > 10:
		return 7
	default:
		return 6
	}
}
