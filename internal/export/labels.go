package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PipeStack/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each bundle label's QR code.
type LabelInfo struct {
	BundleID   string   `json:"bundle"`
	Chain      []string `json:"chain"`
	DiameterMM float64  `json:"diameter_mm"`
	WeightKG   float64  `json:"weight_kg"`
	Truck      int      `json:"truck"`
	Row        int      `json:"row"`
	Z          float64  `json:"z_mm"`
	Y          float64  `json:"y_mm"`
	Extraction bool     `json:"extraction"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns,
// 10 rows per page). Each cell is approximately 66.7mm x 25.4mm on
// US Letter paper.
const (
	labelPageHeight = 279.4
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// ExportLabels generates a PDF of QR-coded labels, one per loaded bundle.
// The labels go on the outermost pipe of each bundle before loading so the
// unloading crew can scan where a bundle sits and what is inside it.
func ExportLabels(path string, plan model.LoadingPlan, extractionThresholdKG float64) error {
	labels := CollectLabelInfos(plan, extractionThresholdKG)
	if len(labels) == 0 {
		return fmt.Errorf("no bundles to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for bundle %q: %w", label.BundleID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.BundleID, info.Truck)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Host code and bundle ID
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	title := fmt.Sprintf("%s  #%s", info.Chain[0], info.BundleID)
	if pdf.GetStringWidth(title) > textW {
		title = info.Chain[0]
	}
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	// Chain contents
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	chain := strings.Join(info.Chain, " > ")
	if pdf.GetStringWidth(chain) > textW {
		chain = fmt.Sprintf("%d pipes nested", len(info.Chain))
	}
	pdf.CellFormat(textW, 3.5, chain, "", 1, "L", false, 0, "")

	// Truck position
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	position := fmt.Sprintf("Truck %d, row %d @ (%.0f, %.0f)", info.Truck, info.Row+1, info.Z, info.Y)
	pdf.CellFormat(textW, 3, position, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%.1f kg, OD %.0f mm", info.WeightKG, info.DiameterMM), "", 1, "L", false, 0, "")

	if info.Extraction {
		pdf.SetXY(textX, y+labelPadding+15.5)
		pdf.SetFont("Helvetica", "B", 6)
		pdf.SetTextColor(180, 0, 0)
		pdf.CellFormat(textW, 3, "MACHINE EXTRACTION REQUIRED", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a loading plan for use
// in testing or alternative export formats.
func CollectLabelInfos(plan model.LoadingPlan, extractionThresholdKG float64) []LabelInfo {
	var labels []LabelInfo
	for _, truck := range plan.Trucks {
		for _, p := range truck.Placements {
			labels = append(labels, LabelInfo{
				BundleID:   p.Bundle.ID,
				Chain:      p.Bundle.ChainCodes(),
				DiameterMM: p.Bundle.Diameter(),
				WeightKG:   p.Bundle.TotalWeight(plan.PipeLengthM),
				Truck:      truck.Number,
				Row:        p.Row,
				Z:          p.Z,
				Y:          p.Y,
				Extraction: p.Bundle.ExtractionWarning(plan.PipeLengthM, extractionThresholdKG),
			})
		}
	}
	return labels
}
