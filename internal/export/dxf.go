package export

import (
	"fmt"

	"github.com/piwi3910/PipeStack/internal/model"
	"github.com/yofu/dxf"
)

// ExportDXF writes the loading plan as a DXF drawing for CAD review.
// Each truck gets its own layer with the trailer envelope drawn as lines
// and every pipe of every bundle as a concentric circle. Trucks are laid
// out side by side with a spacing gap so the drawing stays readable.
func ExportDXF(path string, plan model.LoadingPlan) error {
	if len(plan.Trucks) == 0 {
		return fmt.Errorf("no trucks to export")
	}

	d := dxf.NewDrawing()

	const spacing = 500.0
	offsetX := 0.0

	for _, truck := range plan.Trucks {
		cfg := truck.Config
		layer := fmt.Sprintf("TRUCK_%d", truck.Number)
		if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", layer, err)
		}

		// Trailer envelope, rear view
		w, h := cfg.InternalWidthMM, cfg.InternalHeightMM
		envelope := [][4]float64{
			{offsetX, 0, offsetX + w, 0},
			{offsetX + w, 0, offsetX + w, h},
			{offsetX + w, h, offsetX, h},
			{offsetX, h, offsetX, 0},
		}
		for _, l := range envelope {
			if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
				return fmt.Errorf("failed to draw envelope on %s: %w", layer, err)
			}
		}

		for _, p := range truck.Placements {
			cx := offsetX + p.Z
			for _, pipe := range p.Bundle.Pipes {
				if _, err := d.Circle(cx, p.Y, 0, pipe.OuterDiameterMM()/2); err != nil {
					return fmt.Errorf("failed to draw bundle %s: %w", p.Bundle.ID, err)
				}
			}
		}

		offsetX += w + spacing
	}

	return d.SaveAs(path)
}
