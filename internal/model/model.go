package model

import "github.com/google/uuid"

// PipeType is an immutable catalog record describing one HDPE pipe
// specification. DN is the nominal outer diameter in mm.
type PipeType struct {
	Code            string  `json:"code"`
	DN              float64 `json:"dn_mm"`
	InnerDiameterMM float64 `json:"inner_diameter_mm"`
	WallMM          float64 `json:"wall_mm"`
	SDR             int     `json:"sdr"`
	PNClass         string  `json:"pn_class"`
	WeightPerMeter  float64 `json:"weight_per_meter"` // kg/m
}

// OuterDiameterMM returns the outer diameter. DN values in the catalog are
// nominal outer diameters, so this is an alias kept for readability at call
// sites that deal with geometry rather than catalog codes.
func (p PipeType) OuterDiameterMM() float64 {
	return p.DN
}

// WeightForLength returns the weight in kg of a single pipe cut to lengthM.
func (p PipeType) WeightForLength(lengthM float64) float64 {
	return p.WeightPerMeter * lengthM
}

// Valid reports whether the record is geometrically consistent.
func (p PipeType) Valid() bool {
	return p.DN > 0 && p.InnerDiameterMM > 0 && p.InnerDiameterMM < p.DN && p.WeightPerMeter > 0
}

// OrderLine is one quantity-annotated entry of an order.
type OrderLine struct {
	Pipe     PipeType `json:"pipe"`
	Quantity int      `json:"quantity"`
}

// LineWeight returns the total weight of the line for the given pipe length.
func (l OrderLine) LineWeight(lengthM float64) float64 {
	return l.Pipe.WeightForLength(lengthM) * float64(l.Quantity)
}

// Order is a customer order: a multiset of pipe types sharing one pipe length.
type Order struct {
	ID          string      `json:"id"`
	Number      string      `json:"number"`
	Lines       []OrderLine `json:"lines"`
	PipeLengthM float64     `json:"pipe_length_m"`
}

func NewOrder(number string, pipeLengthM float64) Order {
	return Order{
		ID:          uuid.New().String()[:8],
		Number:      number,
		PipeLengthM: pipeLengthM,
	}
}

// TotalPipes returns the number of individual pipes in the order.
func (o Order) TotalPipes() int {
	total := 0
	for _, l := range o.Lines {
		total += l.Quantity
	}
	return total
}

// TotalWeight returns the order weight in kg before any optimization.
func (o Order) TotalWeight() float64 {
	var total float64
	for _, l := range o.Lines {
		total += l.LineWeight(o.PipeLengthM)
	}
	return total
}

// Bundle is a telescoped chain of pipes. Pipes is ordered outer to inner:
// Pipes[0] is the host, each following pipe sits inside the previous one.
// A Bundle is immutable once built; a depth-1 bundle is a singleton.
type Bundle struct {
	ID    string     `json:"id"`
	Pipes []PipeType `json:"pipes"`
}

// NewBundle creates a bundle from an outer-to-inner pipe chain.
func NewBundle(chain []PipeType) Bundle {
	pipes := make([]PipeType, len(chain))
	copy(pipes, chain)
	return Bundle{
		ID:    uuid.New().String()[:8],
		Pipes: pipes,
	}
}

// Host returns the outermost pipe of the chain.
func (b Bundle) Host() PipeType {
	return b.Pipes[0]
}

// Depth is the nesting depth: 1 for a bare host, +1 per nested guest.
func (b Bundle) Depth() int {
	return len(b.Pipes)
}

// IsSingleton reports whether the bundle is a single un-nested pipe.
func (b Bundle) IsSingleton() bool {
	return len(b.Pipes) == 1
}

// Diameter returns the cross-section footprint of the bundle, which is the
// host's outer diameter: nested guests never extend past the host wall.
func (b Bundle) Diameter() float64 {
	return b.Pipes[0].DN
}

// TotalWeight returns the combined weight of every pipe in the chain.
func (b Bundle) TotalWeight(lengthM float64) float64 {
	var total float64
	for _, p := range b.Pipes {
		total += p.WeightForLength(lengthM)
	}
	return total
}

// InnerWeight returns the weight of everything nested inside the host.
func (b Bundle) InnerWeight(lengthM float64) float64 {
	return b.TotalWeight(lengthM) - b.Pipes[0].WeightForLength(lengthM)
}

// ExtractionWarning reports whether unloading the nested pipes from this
// bundle needs heavy equipment. Advisory only; never blocks placement.
func (b Bundle) ExtractionWarning(lengthM, thresholdKG float64) bool {
	return b.InnerWeight(lengthM) > thresholdKG
}

// ChainCodes returns the catalog codes of the chain, outer to inner.
func (b Bundle) ChainCodes() []string {
	codes := make([]string, len(b.Pipes))
	for i, p := range b.Pipes {
		codes[i] = p.Code
	}
	return codes
}

// TruckConfig describes one truck/trailer type used for loading.
type TruckConfig struct {
	Name             string  `json:"name"`
	MaxPayloadKG     float64 `json:"max_payload_kg"`
	InternalLengthMM float64 `json:"internal_length_mm"`
	InternalWidthMM  float64 `json:"internal_width_mm"`
	InternalHeightMM float64 `json:"internal_height_mm"`
	MaxAxleWeightKG  float64 `json:"max_axle_weight_kg"`
}

// CrossSectionAreaMM2 returns the width x height envelope used by the packer.
func (t TruckConfig) CrossSectionAreaMM2() float64 {
	return t.InternalWidthMM * t.InternalHeightMM
}

// InternalVolumeM3 returns the cargo volume in cubic meters.
func (t TruckConfig) InternalVolumeM3() float64 {
	return t.InternalLengthMM * t.InternalWidthMM * t.InternalHeightMM / 1e9
}

// Placement is one bundle positioned in a truck's cross-section.
// Z is the center position across the trailer width, Y the center height
// above the bed, both in mm.
type Placement struct {
	Bundle Bundle  `json:"bundle"`
	Z      float64 `json:"z_mm"`
	Y      float64 `json:"y_mm"`
	Row    int     `json:"row"`
}

// TruckLoad is one loaded truck in a plan. It accumulates placements during
// assignment and is never revisited once the next truck opens.
type TruckLoad struct {
	Number      int         `json:"number"`
	Config      TruckConfig `json:"config"`
	PipeLengthM float64     `json:"pipe_length_m"`
	Placements  []Placement `json:"placements"`

	// AreaUtilization is the fraction of the trailer cross-section
	// occupied by bundle circles, for reporting only.
	AreaUtilization float64 `json:"area_utilization"`
}

// TotalWeight returns the combined weight of all placed bundles in kg.
func (t TruckLoad) TotalWeight() float64 {
	var total float64
	for _, p := range t.Placements {
		total += p.Bundle.TotalWeight(t.PipeLengthM)
	}
	return total
}

// RemainingCapacity returns the unused payload in kg.
func (t TruckLoad) RemainingCapacity() float64 {
	return t.Config.MaxPayloadKG - t.TotalWeight()
}

// WeightUtilization returns payload usage as a percentage.
func (t TruckLoad) WeightUtilization() float64 {
	if t.Config.MaxPayloadKG == 0 {
		return 0
	}
	return t.TotalWeight() / t.Config.MaxPayloadKG * 100.0
}

// BundleCount returns the number of bundles on the truck.
func (t TruckLoad) BundleCount() int {
	return len(t.Placements)
}

// PipeCount returns the number of individual pipes on the truck, including
// every pipe nested inside a bundle.
func (t TruckLoad) PipeCount() int {
	total := 0
	for _, p := range t.Placements {
		total += p.Bundle.Depth()
	}
	return total
}

// LoadingPlan is the final result of one optimization run.
type LoadingPlan struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	PipeLengthM float64     `json:"pipe_length_m"`
	Trucks      []TruckLoad `json:"trucks"`

	// Infeasible holds bundles that cannot be placed in any truck because
	// their weight or footprint alone exceeds the truck limits. They are
	// surfaced here rather than silently dropped.
	Infeasible []Bundle `json:"infeasible,omitempty"`

	TotalPipes    int      `json:"total_pipes"`
	NestedPipes   int      `json:"nested_pipes"`
	TotalWeightKG float64  `json:"total_weight_kg"`
	Warnings      []string `json:"warnings"`
}

// TrucksNeeded returns the number of trucks in the plan.
func (p LoadingPlan) TrucksNeeded() int {
	return len(p.Trucks)
}

// NestingEfficiency returns nested pipes as a percentage of all pipes.
func (p LoadingPlan) NestingEfficiency() float64 {
	if p.TotalPipes == 0 {
		return 0
	}
	return float64(p.NestedPipes) / float64(p.TotalPipes) * 100.0
}

// AverageUtilization returns the mean weight utilization across trucks.
func (p LoadingPlan) AverageUtilization() float64 {
	if len(p.Trucks) == 0 {
		return 0
	}
	var sum float64
	for _, t := range p.Trucks {
		sum += t.WeightUtilization()
	}
	return sum / float64(len(p.Trucks))
}

// LoadSettings holds all tunable parameters of the optimization engine.
type LoadSettings struct {
	// Nesting compatibility physics
	OvalityFactor   float64 `json:"ovality_factor"`    // fractional inner diameter loss from ovalisation
	DiameterFactor  float64 `json:"diameter_factor"`   // proportional clearance per mm of host OD
	BaseClearanceMM float64 `json:"base_clearance_mm"` // absolute handling clearance

	// Bundle construction
	EnableNesting         bool    `json:"enable_nesting"`
	MaxNestingLevels      int     `json:"max_nesting_levels"`
	PreferSameSDR         bool    `json:"prefer_same_sdr"`
	AllowMixedSDR         bool    `json:"allow_mixed_sdr"`
	ExtractionThresholdKG float64 `json:"extraction_threshold_kg"`

	// Cross-section placement
	BundleGapMM float64 `json:"bundle_gap_mm"`

	// Input guard: bounds the greedy algorithms' quadratic worst case.
	MaxInputPipes int `json:"max_input_pipes"`
}

func DefaultSettings() LoadSettings {
	return LoadSettings{
		OvalityFactor:         0.04,
		DiameterFactor:        0.015,
		BaseClearanceMM:       15.0,
		EnableNesting:         true,
		MaxNestingLevels:      4,
		PreferSameSDR:         true,
		AllowMixedSDR:         true,
		ExtractionThresholdKG: 2000.0,
		BundleGapMM:           20.0,
		MaxInputPipes:         10000,
	}
}

// MinPipeLengthM and MaxPipeLengthM bound the shared pipe length of an order.
const (
	MinPipeLengthM = 6.0
	MaxPipeLengthM = 18.0
)

// PipeLengthPresets are the standard delivery lengths.
var PipeLengthPresets = []float64{12.0, 12.5, 13.0}
