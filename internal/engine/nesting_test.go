package engine

import (
	"testing"

	"github.com/piwi3910/PipeStack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPipes(bundles []model.Bundle) int {
	n := 0
	for _, b := range bundles {
		n += len(b.Pipes)
	}
	return n
}

func TestBuildBundles_TelescopeChain(t *testing.T) {
	// DN400 > DN315 > DN250 > DN200, each step clears the gap requirement,
	// so all four pipes should telescope into a single bundle.
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE400/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE315/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE250/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE200/PN6"), Quantity: 1},
	}

	bundles, _ := BuildBundles(lines, model.DefaultSettings())

	require.Len(t, bundles, 1)
	assert.Equal(t, 4, bundles[0].Depth())
	assert.Equal(t, "TPE400/PN6", bundles[0].Host().Code)
	assert.Equal(t,
		[]string{"TPE400/PN6", "TPE315/PN6", "TPE250/PN6", "TPE200/PN6"},
		bundles[0].ChainCodes())
}

func TestBuildBundles_DepthCap(t *testing.T) {
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE400/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE315/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE250/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE200/PN6"), Quantity: 1},
	}

	s := model.DefaultSettings()
	s.MaxNestingLevels = 2

	bundles, _ := BuildBundles(lines, s)

	// Two chains of two: 400+315 and 250+200.
	require.Len(t, bundles, 2)
	for _, b := range bundles {
		assert.Equal(t, 2, b.Depth())
	}
	assert.Equal(t, 4, countPipes(bundles))
}

func TestBuildBundles_PipeConservation(t *testing.T) {
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE500/PN10"), Quantity: 3},
		{Pipe: catalogPipe(t, "TPE355/PN10"), Quantity: 5},
		{Pipe: catalogPipe(t, "TPE160/PN10"), Quantity: 7},
	}

	bundles, _ := BuildBundles(lines, model.DefaultSettings())

	assert.Equal(t, 15, countPipes(bundles))
}

func TestBuildBundles_NestingDisabled(t *testing.T) {
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE400/PN6"), Quantity: 2},
		{Pipe: catalogPipe(t, "TPE250/PN6"), Quantity: 2},
	}

	s := model.DefaultSettings()
	s.EnableNesting = false

	bundles, _ := BuildBundles(lines, s)

	require.Len(t, bundles, 4)
	for _, b := range bundles {
		assert.True(t, b.IsSingleton())
	}
}

func TestBuildBundles_MixedSDRFilter(t *testing.T) {
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE400/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE315/PN16"), Quantity: 1},
	}

	mixed, _ := BuildBundles(lines, model.DefaultSettings())
	require.Len(t, mixed, 1)
	assert.Equal(t, 2, mixed[0].Depth())

	s := model.DefaultSettings()
	s.AllowMixedSDR = false
	strict, _ := BuildBundles(lines, s)
	assert.Len(t, strict, 2)
}

func TestBuildBundles_PrefersSameSDRGuest(t *testing.T) {
	// Two DN315 candidates fit inside the DN400 host; the selector should
	// take the one matching the host's SDR class.
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE400/PN6"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE315/PN16"), Quantity: 1},
		{Pipe: catalogPipe(t, "TPE315/PN6"), Quantity: 1},
	}

	bundles, _ := BuildBundles(lines, model.DefaultSettings())

	require.NotEmpty(t, bundles)
	host := bundles[0]
	require.GreaterOrEqual(t, host.Depth(), 2)
	assert.Equal(t, "TPE315/PN6", host.Pipes[1].Code)
}

func TestBuildBundles_Deterministic(t *testing.T) {
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE630/PN8"), Quantity: 2},
		{Pipe: catalogPipe(t, "TPE450/PN8"), Quantity: 3},
		{Pipe: catalogPipe(t, "TPE315/PN8"), Quantity: 4},
		{Pipe: catalogPipe(t, "TPE200/PN8"), Quantity: 2},
	}

	first, _ := BuildBundles(lines, model.DefaultSettings())
	second, _ := BuildBundles(lines, model.DefaultSettings())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ChainCodes(), second[i].ChainCodes())
	}
}

func TestBuildBundles_NoOpportunityWarning(t *testing.T) {
	// Identical pipes can never nest into each other.
	lines := []model.OrderLine{
		{Pipe: catalogPipe(t, "TPE315/PN10"), Quantity: 3},
	}

	bundles, warnings := BuildBundles(lines, model.DefaultSettings())

	assert.Len(t, bundles, 3)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no nesting opportunities")
}
