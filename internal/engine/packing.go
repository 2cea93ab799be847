package engine

import (
	"sort"
	"strings"

	"github.com/piwi3910/PipeStack/internal/model"
)

// Assign distributes bundles over as few trucks as possible using
// first-fit decreasing: bundles are sorted heaviest first and each goes
// on the first truck that can take both its weight and its footprint in
// the cross-section. A bundle that cannot be placed even on an empty
// truck is returned as infeasible rather than opening trucks forever.
func Assign(bundles []model.Bundle, cfg model.TruckConfig, lengthM float64, s model.LoadSettings) ([]model.TruckLoad, []model.Bundle) {
	sorted := make([]model.Bundle, len(bundles))
	copy(sorted, bundles)
	sort.Slice(sorted, func(i, j int) bool {
		wi, wj := sorted[i].TotalWeight(lengthM), sorted[j].TotalWeight(lengthM)
		if wi != wj {
			return wi > wj
		}
		if sorted[i].Host().DN != sorted[j].Host().DN {
			return sorted[i].Host().DN > sorted[j].Host().DN
		}
		// Tie-break on chain content, not on the random bundle ID,
		// so identical inputs always produce identical plans.
		return strings.Join(sorted[i].ChainCodes(), ">") < strings.Join(sorted[j].ChainCodes(), ">")
	})

	var trucks []model.TruckLoad
	var states []*TruckState
	var infeasible []model.Bundle

	for _, b := range sorted {
		w := b.TotalWeight(lengthM)
		d := b.Diameter()
		placed := false

		for i := range trucks {
			if trucks[i].TotalWeight()+w > cfg.MaxPayloadKG {
				continue
			}
			if z, y, row, ok := states[i].TryPlace(d); ok {
				trucks[i].Placements = append(trucks[i].Placements, model.Placement{
					Bundle: b, Z: z, Y: y, Row: row,
				})
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		// Open a fresh truck. A bundle too big or too heavy even for an
		// empty trailer can never be shipped with this configuration.
		if w > cfg.MaxPayloadKG {
			infeasible = append(infeasible, b)
			continue
		}
		st := NewTruckState(cfg, s.BundleGapMM)
		z, y, row, ok := st.TryPlace(d)
		if !ok {
			infeasible = append(infeasible, b)
			continue
		}
		trucks = append(trucks, model.TruckLoad{
			Number:      len(trucks) + 1,
			Config:      cfg,
			PipeLengthM: lengthM,
			Placements:  []model.Placement{{Bundle: b, Z: z, Y: y, Row: row}},
		})
		states = append(states, st)
	}

	for i := range trucks {
		trucks[i].AreaUtilization = states[i].Efficiency()
	}

	return trucks, infeasible
}
