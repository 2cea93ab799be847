package engine

import (
	"testing"

	"github.com/piwi3910/PipeStack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenarios_RunsAll(t *testing.T) {
	order := testOrder(t, 13.0,
		model.OrderLine{Pipe: catalogPipe(t, "TPE800/PN6"), Quantity: 4},
		model.OrderLine{Pipe: catalogPipe(t, "TPE630/PN6"), Quantity: 4},
	)

	scenarios := BuildDefaultScenarios(model.DefaultSettings())
	results := CompareScenarios(scenarios, order, model.DefaultTruck())

	require.Len(t, results, len(scenarios))
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, r.Plan.TrucksNeeded(), r.TrucksUsed)
	}
}

func TestCompareScenarios_NoNestingUsesNoChains(t *testing.T) {
	order := testOrder(t, 13.0,
		model.OrderLine{Pipe: catalogPipe(t, "TPE800/PN6"), Quantity: 2},
		model.OrderLine{Pipe: catalogPipe(t, "TPE630/PN6"), Quantity: 2},
	)

	results := CompareScenarios(BuildDefaultScenarios(model.DefaultSettings()), order, model.DefaultTruck())

	var current, noNest *ComparisonResult
	for i := range results {
		switch results[i].Scenario.Name {
		case "Current Settings":
			current = &results[i]
		case "No Nesting":
			noNest = &results[i]
		}
	}
	require.NotNil(t, current)
	require.NotNil(t, noNest)
	assert.Greater(t, current.NestedPipes, 0)
	assert.Zero(t, noNest.NestedPipes)
}

func TestBuildDefaultScenarios_VariantsFromBase(t *testing.T) {
	scenarios := BuildDefaultScenarios(model.DefaultSettings())

	require.GreaterOrEqual(t, len(scenarios), 3)
	assert.Equal(t, "Current Settings", scenarios[0].Name)

	names := make(map[string]bool)
	for _, s := range scenarios {
		names[s.Name] = true
	}
	assert.True(t, names["No Nesting"])
	assert.True(t, names["Same SDR Only"])
	assert.True(t, names["Nesting Depth 5"])
}
