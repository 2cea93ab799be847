package engine

import (
	"testing"

	"github.com/piwi3910/PipeStack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogPipe(t *testing.T, code string) model.PipeType {
	t.Helper()
	p, ok := model.FindPipe(model.BuiltinCatalog(), code)
	require.True(t, ok, "catalog should contain %s", code)
	return p
}

func TestClearance_DN315InsideDN400(t *testing.T) {
	host := catalogPipe(t, "TPE400/PN6")
	guest := catalogPipe(t, "TPE315/PN6")

	r := Clearance(host, guest, model.DefaultSettings())

	// Inner 369.4 derated by 4% ovality, gap requirement 15 + 1.5% of OD 400.
	assert.InDelta(t, 354.62, r.EffectiveInnerMM, 0.01)
	assert.InDelta(t, 21.0, r.RequiredGapMM, 0.01)
	assert.InDelta(t, 39.62, r.AvailableGapMM, 0.01)
	assert.True(t, r.OK)
}

func TestClearance_DN355DoesNotFitDN400(t *testing.T) {
	host := catalogPipe(t, "TPE400/PN6")
	guest := catalogPipe(t, "TPE355/PN6")

	r := Clearance(host, guest, model.DefaultSettings())

	// OD 355 exceeds the derated bore of 354.62 outright.
	assert.Less(t, r.AvailableGapMM, 0.0)
	assert.False(t, r.OK)
	assert.Contains(t, r.Message, "does not fit")
}

func TestCompatible_NotSymmetric(t *testing.T) {
	big := catalogPipe(t, "TPE400/PN6")
	small := catalogPipe(t, "TPE250/PN6")
	s := model.DefaultSettings()

	assert.True(t, Compatible(big, small, s))
	assert.False(t, Compatible(small, big, s))
}

func TestCompatible_SameTypeNeverNests(t *testing.T) {
	p := catalogPipe(t, "TPE315/PN10")
	assert.False(t, Compatible(p, p, model.DefaultSettings()))
}

func TestClearance_ZeroOvalityLoosensFit(t *testing.T) {
	host := catalogPipe(t, "TPE400/PN6")
	guest := catalogPipe(t, "TPE315/PN6")

	s := model.DefaultSettings()
	s.OvalityFactor = 0

	r := Clearance(host, guest, s)
	assert.InDelta(t, 369.4, r.EffectiveInnerMM, 0.01)
	assert.InDelta(t, 54.4, r.AvailableGapMM, 0.01)
	assert.True(t, r.OK)
}
