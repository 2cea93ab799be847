package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/PipeStack/internal/model"
)

// Optimizer runs the pipe loading pipeline: nest pipes into bundles,
// assign bundles to trucks, lay out each truck's cross-section.
type Optimizer struct {
	Settings model.LoadSettings
}

func New(settings model.LoadSettings) *Optimizer {
	return &Optimizer{Settings: settings}
}

// Optimize produces a loading plan for the order on the given trailer
// configuration. Input problems are reported as a single joined error;
// bundles that cannot physically be shipped never fail the run, they come
// back on the plan's Infeasible list with a warning.
func (o *Optimizer) Optimize(order model.Order, cfg model.TruckConfig) (model.LoadingPlan, error) {
	if err := o.validate(order, cfg); err != nil {
		return model.LoadingPlan{}, err
	}

	plan := model.LoadingPlan{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		PipeLengthM: order.PipeLengthM,
		TotalPipes:  order.TotalPipes(),
	}

	bundles, warnings := BuildBundles(order.Lines, o.Settings)
	plan.Warnings = append(plan.Warnings, warnings...)

	trucks, infeasible := Assign(bundles, cfg, order.PipeLengthM, o.Settings)
	plan.Trucks = trucks
	plan.Infeasible = infeasible

	for _, b := range bundles {
		plan.NestedPipes += len(b.Pipes) - 1
	}
	for _, t := range trucks {
		plan.TotalWeightKG += t.TotalWeight()
	}

	for ti := range trucks {
		for _, p := range trucks[ti].Placements {
			if p.Bundle.ExtractionWarning(order.PipeLengthM, o.Settings.ExtractionThresholdKG) {
				plan.Warnings = append(plan.Warnings, fmt.Sprintf(
					"truck %d: bundle %s carries %.1f kg of nested pipe, mechanical extraction equipment required at destination",
					trucks[ti].Number, p.Bundle.ID, p.Bundle.InnerWeight(order.PipeLengthM)))
			}
		}
	}
	for _, b := range infeasible {
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"bundle %s (%s, %.0f mm diameter, %.1f kg) cannot be loaded on %q",
			b.ID, b.Host().Code, b.Diameter(), b.TotalWeight(order.PipeLengthM), cfg.Name))
	}
	if n := len(trucks); n > 0 {
		last := trucks[n-1]
		wc := model.CheckWeight(last.TotalWeight(), cfg)
		if wc.Utilization < 50 && n > 1 {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"truck %d is only %.1f%% loaded, consider combining with another order",
				last.Number, wc.Utilization))
		}
		if wc.AxleExceeded {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"truck %d: estimated axle load %.0f kg exceeds the %.0f kg limit, verify load distribution",
				last.Number, wc.AxleEstimate, cfg.MaxAxleWeightKG))
		}
	}

	return plan, nil
}

func (o *Optimizer) validate(order model.Order, cfg model.TruckConfig) error {
	var errs []error

	if len(order.Lines) == 0 {
		errs = append(errs, errors.New("order has no lines"))
	}
	total := 0
	for i, line := range order.Lines {
		if line.Quantity < 1 {
			errs = append(errs, fmt.Errorf("line %d: quantity %d is not positive", i+1, line.Quantity))
		}
		if !line.Pipe.Valid() {
			errs = append(errs, fmt.Errorf("line %d: pipe %q has invalid dimensions", i+1, line.Pipe.Code))
		}
		total += line.Quantity
	}
	if order.PipeLengthM < model.MinPipeLengthM || order.PipeLengthM > model.MaxPipeLengthM {
		errs = append(errs, fmt.Errorf("pipe length %.1f m outside the transportable range %.0f-%.0f m",
			order.PipeLengthM, model.MinPipeLengthM, model.MaxPipeLengthM))
	}
	if max := o.Settings.MaxInputPipes; max > 0 && total > max {
		errs = append(errs, fmt.Errorf("order has %d pipes, limit is %d", total, max))
	}
	if cfg.MaxPayloadKG <= 0 || cfg.InternalWidthMM <= 0 || cfg.InternalHeightMM <= 0 {
		errs = append(errs, fmt.Errorf("truck configuration %q has invalid dimensions", cfg.Name))
	}

	return errors.Join(errs...)
}
