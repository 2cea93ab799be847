package engine

import (
	"fmt"

	"github.com/piwi3910/PipeStack/internal/model"
)

// ClearanceResult describes whether a guest pipe can be slid inside a
// host pipe, with the numbers behind the decision.
type ClearanceResult struct {
	EffectiveInnerMM float64 `json:"effective_inner_mm"`
	RequiredGapMM    float64 `json:"required_gap_mm"`
	AvailableGapMM   float64 `json:"available_gap_mm"`
	OK               bool    `json:"ok"`
	Message          string  `json:"message"`
}

// Clearance evaluates nesting compatibility between a host and a guest.
// The host's inner diameter is derated for ovality (pipes deform slightly
// under their own weight) and the guest must clear a gap that grows with
// the host's outer diameter, so larger pipes demand more slack for the
// insertion and extraction equipment.
func Clearance(host, guest model.PipeType, s model.LoadSettings) ClearanceResult {
	effInner := host.InnerDiameterMM * (1 - s.OvalityFactor)
	reqGap := s.BaseClearanceMM + s.DiameterFactor*host.OuterDiameterMM()
	avail := effInner - guest.OuterDiameterMM()

	r := ClearanceResult{
		EffectiveInnerMM: effInner,
		RequiredGapMM:    reqGap,
		AvailableGapMM:   avail,
		OK:               avail >= reqGap,
	}
	if r.OK {
		r.Message = fmt.Sprintf("%s fits inside %s: gap %.2f mm >= required %.2f mm",
			guest.Code, host.Code, avail, reqGap)
	} else {
		r.Message = fmt.Sprintf("%s does not fit inside %s: gap %.2f mm < required %.2f mm",
			guest.Code, host.Code, avail, reqGap)
	}
	return r
}

// Compatible reports whether guest can be nested inside host.
func Compatible(host, guest model.PipeType, s model.LoadSettings) bool {
	return Clearance(host, guest, s).OK
}
