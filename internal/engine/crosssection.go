package engine

import (
	"math"

	"github.com/piwi3910/PipeStack/internal/model"
)

// rowPitch is the vertical spacing factor between rows of circles packed
// hexagonally: sqrt(3)/2 of the row's largest diameter.
var rowPitch = math.Sqrt(3) / 2

// TruckState tracks the cross-section of one truck while bundles are being
// placed. Bundles fill a row left to right along the trailer width (z axis);
// when a bundle no longer fits the row, the next row starts higher up
// (y axis) with alternating rows offset by half a diameter so bundles rest
// in the valleys of the row below.
type TruckState struct {
	widthMM  float64
	heightMM float64
	gapMM    float64

	z         float64 // occupied width in the current row
	y         float64 // base height of the current row
	rowMax    float64 // largest diameter placed in the current row
	row       int
	offsetRow bool

	placedArea float64
}

func NewTruckState(cfg model.TruckConfig, gapMM float64) *TruckState {
	return &TruckState{
		widthMM:  cfg.InternalWidthMM,
		heightMM: cfg.InternalHeightMM,
		gapMM:    gapMM,
	}
}

// TryPlace attempts to fit a bundle of diameter d into the cross-section.
// On success it returns the center coordinates (z across the width, y up
// from the bed) and the row index, and commits the placement. On failure
// the state is left untouched so the same truck can be retried with a
// different bundle.
func (ts *TruckState) TryPlace(d float64) (centerZ, centerY float64, row int, ok bool) {
	if d <= 0 {
		return 0, 0, 0, false
	}

	z, y := ts.z, ts.y
	rowMax, rowIdx := ts.rowMax, ts.row
	offset := ts.offsetRow

	zStart := z
	if z > 0 {
		zStart = z + ts.gapMM
	} else if offset {
		zStart = d / 2
	}

	if zStart+d > ts.widthMM {
		// Row is full, open the next one above.
		y += rowMax * rowPitch
		rowIdx++
		offset = !offset
		rowMax = 0
		z = 0
		zStart = 0
		if offset {
			zStart = d / 2
		}
		if zStart+d > ts.widthMM {
			return 0, 0, 0, false
		}
	}
	if y+d > ts.heightMM {
		return 0, 0, 0, false
	}

	ts.z = zStart + d
	ts.y = y
	ts.row = rowIdx
	ts.offsetRow = offset
	if d > rowMax {
		rowMax = d
	}
	ts.rowMax = rowMax
	ts.placedArea += math.Pi * d * d / 4

	return zStart + d/2, y + d/2, rowIdx, true
}

// Rows returns how many rows have been started.
func (ts *TruckState) Rows() int {
	if ts.z == 0 && ts.row == 0 && ts.rowMax == 0 {
		return 0
	}
	return ts.row + 1
}

// Efficiency reports the fraction of the cross-section area occupied by
// bundle circles. Informational only; placement is gated by the row
// geometry, never by this number.
func (ts *TruckState) Efficiency() float64 {
	total := ts.widthMM * ts.heightMM
	if total == 0 {
		return 0
	}
	return ts.placedArea / total
}
