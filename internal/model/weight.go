package model

import "fmt"

// WeightCheck is the result of validating a load against a trailer's
// payload limit.
type WeightCheck struct {
	TotalKG       float64 `json:"total_kg"`
	LimitKG       float64 `json:"limit_kg"`
	RemainingKG   float64 `json:"remaining_kg"`
	Utilization   float64 `json:"utilization"`
	Overweight    bool    `json:"overweight"`
	AxleEstimate  float64 `json:"axle_estimate_kg"`
	AxleExceeded  bool    `json:"axle_exceeded"`
}

// CheckWeight validates totalKG against the trailer's payload and axle
// limits. The axle figure is a simple even-split estimate over two axle
// groups and is advisory only; final axle loads depend on load position.
func CheckWeight(totalKG float64, cfg TruckConfig) WeightCheck {
	wc := WeightCheck{
		TotalKG:     totalKG,
		LimitKG:     cfg.MaxPayloadKG,
		RemainingKG: cfg.MaxPayloadKG - totalKG,
		Overweight:  totalKG > cfg.MaxPayloadKG,
	}
	if cfg.MaxPayloadKG > 0 {
		wc.Utilization = totalKG / cfg.MaxPayloadKG * 100
	}
	if cfg.MaxAxleWeightKG > 0 {
		wc.AxleEstimate = totalKG / 2
		wc.AxleExceeded = wc.AxleEstimate > cfg.MaxAxleWeightKG
	}
	return wc
}

// Summary renders the check in the form used in plan warnings and logs.
func (wc WeightCheck) Summary() string {
	if wc.Overweight {
		return fmt.Sprintf("load %.1f kg exceeds payload limit %.0f kg by %.1f kg",
			wc.TotalKG, wc.LimitKG, -wc.RemainingKG)
	}
	return fmt.Sprintf("load %.1f kg of %.0f kg (%.1f%%), %.1f kg remaining",
		wc.TotalKG, wc.LimitKG, wc.Utilization, wc.RemainingKG)
}
