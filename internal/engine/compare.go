package engine

import (
	"fmt"

	"github.com/piwi3910/PipeStack/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.LoadSettings
}

// ComparisonResult holds the loading plan and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Plan            model.LoadingPlan
	TrucksUsed      int
	NestedPipes     int
	InfeasibleCount int
	AvgUtilization  float64
	Err             error
}

// CompareScenarios runs the optimization for each scenario and returns the
// results in scenario order. This enables side-by-side comparison of
// different loading parameters (nesting depth, SDR mixing, clearances).
func CompareScenarios(scenarios []ComparisonScenario, order model.Order, cfg model.TruckConfig) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Settings)
		plan, err := opt.Optimize(order, cfg)

		results = append(results, ComparisonResult{
			Scenario:        scenario,
			Plan:            plan,
			TrucksUsed:      plan.TrucksNeeded(),
			NestedPipes:     plan.NestedPipes,
			InfeasibleCount: len(plan.Infeasible),
			AvgUtilization:  plan.AverageUtilization(),
			Err:             err,
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(base model.LoadSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	// Scenario: nesting switched off, every pipe ships loose
	if base.EnableNesting {
		noNest := base
		noNest.EnableNesting = false
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "No Nesting",
			Settings: noNest,
		})
	}

	// Scenario: one extra nesting level
	deeper := base
	deeper.MaxNestingLevels = base.MaxNestingLevels + 1
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Nesting Depth %d", deeper.MaxNestingLevels),
		Settings: deeper,
	})

	// Scenario: only same-SDR chains, simpler unloading at the site
	if base.AllowMixedSDR {
		sameSDR := base
		sameSDR.AllowMixedSDR = false
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Same SDR Only",
			Settings: sameSDR,
		})
	}

	return scenarios
}
