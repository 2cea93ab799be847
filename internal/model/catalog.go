package model

import "sort"

// SDRToPN maps the Standard Dimension Ratio of a PE100 pipe to its
// pressure class. Lower SDR means a thicker wall and a higher rating.
var SDRToPN = map[int]string{
	26: "PN6",
	21: "PN8",
	17: "PN10",
	11: "PN16",
}

// PNToSDR is the reverse mapping of SDRToPN.
var PNToSDR = map[string]int{
	"PN6":  26,
	"PN8":  21,
	"PN10": 17,
	"PN16": 11,
}

// StandardDNValues lists the common nominal diameter steps in mm.
var StandardDNValues = []float64{
	20, 25, 32, 40, 50, 63, 75, 90, 110, 125, 140, 160,
	180, 200, 225, 250, 280, 315, 355, 400, 450, 500,
	560, 630, 710, 800, 900, 1000, 1200,
}

// BuiltinCatalog returns the built-in PE100 pipe catalog covering the common
// transport sizes for all four SDR classes. Callers may replace or extend it
// with a persisted catalog; the engine itself treats any []PipeType alike.
func BuiltinCatalog() []PipeType {
	return []PipeType{
		// SDR 26 / PN6 - thinnest walls
		{Code: "TPE110/PN6", DN: 110, InnerDiameterMM: 101.6, WallMM: 4.2, SDR: 26, PNClass: "PN6", WeightPerMeter: 1.42},
		{Code: "TPE160/PN6", DN: 160, InnerDiameterMM: 147.6, WallMM: 6.2, SDR: 26, PNClass: "PN6", WeightPerMeter: 3.03},
		{Code: "TPE200/PN6", DN: 200, InnerDiameterMM: 184.6, WallMM: 7.7, SDR: 26, PNClass: "PN6", WeightPerMeter: 4.73},
		{Code: "TPE250/PN6", DN: 250, InnerDiameterMM: 230.8, WallMM: 9.6, SDR: 26, PNClass: "PN6", WeightPerMeter: 7.34},
		{Code: "TPE315/PN6", DN: 315, InnerDiameterMM: 290.8, WallMM: 12.1, SDR: 26, PNClass: "PN6", WeightPerMeter: 11.71},
		{Code: "TPE355/PN6", DN: 355, InnerDiameterMM: 327.8, WallMM: 13.6, SDR: 26, PNClass: "PN6", WeightPerMeter: 14.79},
		{Code: "TPE400/PN6", DN: 400, InnerDiameterMM: 369.4, WallMM: 15.3, SDR: 26, PNClass: "PN6", WeightPerMeter: 18.80},
		{Code: "TPE450/PN6", DN: 450, InnerDiameterMM: 415.6, WallMM: 17.2, SDR: 26, PNClass: "PN6", WeightPerMeter: 23.72},
		{Code: "TPE500/PN6", DN: 500, InnerDiameterMM: 461.8, WallMM: 19.1, SDR: 26, PNClass: "PN6", WeightPerMeter: 29.34},
		{Code: "TPE630/PN6", DN: 630, InnerDiameterMM: 581.8, WallMM: 24.1, SDR: 26, PNClass: "PN6", WeightPerMeter: 46.64},
		{Code: "TPE710/PN6", DN: 710, InnerDiameterMM: 655.6, WallMM: 27.2, SDR: 26, PNClass: "PN6", WeightPerMeter: 59.28},
		{Code: "TPE800/PN6", DN: 800, InnerDiameterMM: 738.8, WallMM: 30.6, SDR: 26, PNClass: "PN6", WeightPerMeter: 75.19},

		// SDR 21 / PN8
		{Code: "TPE110/PN8", DN: 110, InnerDiameterMM: 99.4, WallMM: 5.3, SDR: 21, PNClass: "PN8", WeightPerMeter: 1.77},
		{Code: "TPE160/PN8", DN: 160, InnerDiameterMM: 144.6, WallMM: 7.7, SDR: 21, PNClass: "PN8", WeightPerMeter: 3.74},
		{Code: "TPE200/PN8", DN: 200, InnerDiameterMM: 180.8, WallMM: 9.6, SDR: 21, PNClass: "PN8", WeightPerMeter: 5.83},
		{Code: "TPE250/PN8", DN: 250, InnerDiameterMM: 226.2, WallMM: 11.9, SDR: 21, PNClass: "PN8", WeightPerMeter: 9.02},
		{Code: "TPE315/PN8", DN: 315, InnerDiameterMM: 285.0, WallMM: 15.0, SDR: 21, PNClass: "PN8", WeightPerMeter: 14.36},
		{Code: "TPE355/PN8", DN: 355, InnerDiameterMM: 321.2, WallMM: 16.9, SDR: 21, PNClass: "PN8", WeightPerMeter: 18.19},
		{Code: "TPE400/PN8", DN: 400, InnerDiameterMM: 361.8, WallMM: 19.1, SDR: 21, PNClass: "PN8", WeightPerMeter: 23.17},
		{Code: "TPE450/PN8", DN: 450, InnerDiameterMM: 407.0, WallMM: 21.5, SDR: 21, PNClass: "PN8", WeightPerMeter: 29.38},
		{Code: "TPE500/PN8", DN: 500, InnerDiameterMM: 452.2, WallMM: 23.9, SDR: 21, PNClass: "PN8", WeightPerMeter: 36.29},
		{Code: "TPE630/PN8", DN: 630, InnerDiameterMM: 570.0, WallMM: 30.0, SDR: 21, PNClass: "PN8", WeightPerMeter: 57.32},
		{Code: "TPE710/PN8", DN: 710, InnerDiameterMM: 642.2, WallMM: 33.9, SDR: 21, PNClass: "PN8", WeightPerMeter: 73.06},
		{Code: "TPE800/PN8", DN: 800, InnerDiameterMM: 723.8, WallMM: 38.1, SDR: 21, PNClass: "PN8", WeightPerMeter: 92.49},

		// SDR 17 / PN10
		{Code: "TPE110/PN10", DN: 110, InnerDiameterMM: 96.8, WallMM: 6.6, SDR: 17, PNClass: "PN10", WeightPerMeter: 2.18},
		{Code: "TPE160/PN10", DN: 160, InnerDiameterMM: 141.0, WallMM: 9.5, SDR: 17, PNClass: "PN10", WeightPerMeter: 4.56},
		{Code: "TPE200/PN10", DN: 200, InnerDiameterMM: 176.2, WallMM: 11.9, SDR: 17, PNClass: "PN10", WeightPerMeter: 7.14},
		{Code: "TPE250/PN10", DN: 250, InnerDiameterMM: 220.4, WallMM: 14.8, SDR: 17, PNClass: "PN10", WeightPerMeter: 11.10},
		{Code: "TPE315/PN10", DN: 315, InnerDiameterMM: 277.6, WallMM: 18.7, SDR: 17, PNClass: "PN10", WeightPerMeter: 17.68},
		{Code: "TPE355/PN10", DN: 355, InnerDiameterMM: 312.8, WallMM: 21.1, SDR: 17, PNClass: "PN10", WeightPerMeter: 22.47},
		{Code: "TPE400/PN10", DN: 400, InnerDiameterMM: 352.6, WallMM: 23.7, SDR: 17, PNClass: "PN10", WeightPerMeter: 28.47},
		{Code: "TPE450/PN10", DN: 450, InnerDiameterMM: 396.6, WallMM: 26.7, SDR: 17, PNClass: "PN10", WeightPerMeter: 36.04},
		{Code: "TPE500/PN10", DN: 500, InnerDiameterMM: 440.6, WallMM: 29.7, SDR: 17, PNClass: "PN10", WeightPerMeter: 44.60},
		{Code: "TPE630/PN10", DN: 630, InnerDiameterMM: 555.2, WallMM: 37.4, SDR: 17, PNClass: "PN10", WeightPerMeter: 70.75},
		{Code: "TPE710/PN10", DN: 710, InnerDiameterMM: 625.8, WallMM: 42.1, SDR: 17, PNClass: "PN10", WeightPerMeter: 89.73},
		{Code: "TPE800/PN10", DN: 800, InnerDiameterMM: 705.2, WallMM: 47.4, SDR: 17, PNClass: "PN10", WeightPerMeter: 113.68},

		// SDR 11 / PN16 - thickest walls, heaviest
		{Code: "TPE110/PN16", DN: 110, InnerDiameterMM: 90.0, WallMM: 10.0, SDR: 11, PNClass: "PN16", WeightPerMeter: 3.19},
		{Code: "TPE160/PN16", DN: 160, InnerDiameterMM: 130.8, WallMM: 14.6, SDR: 11, PNClass: "PN16", WeightPerMeter: 6.78},
		{Code: "TPE200/PN16", DN: 200, InnerDiameterMM: 163.6, WallMM: 18.2, SDR: 11, PNClass: "PN16", WeightPerMeter: 10.57},
		{Code: "TPE250/PN16", DN: 250, InnerDiameterMM: 204.6, WallMM: 22.7, SDR: 11, PNClass: "PN16", WeightPerMeter: 16.45},
		{Code: "TPE315/PN16", DN: 315, InnerDiameterMM: 257.8, WallMM: 28.6, SDR: 11, PNClass: "PN16", WeightPerMeter: 26.13},
		{Code: "TPE355/PN16", DN: 355, InnerDiameterMM: 290.6, WallMM: 32.2, SDR: 11, PNClass: "PN16", WeightPerMeter: 33.11},
		{Code: "TPE400/PN16", DN: 400, InnerDiameterMM: 327.4, WallMM: 36.3, SDR: 11, PNClass: "PN16", WeightPerMeter: 42.09},
		{Code: "TPE450/PN16", DN: 450, InnerDiameterMM: 368.2, WallMM: 40.9, SDR: 11, PNClass: "PN16", WeightPerMeter: 53.35},
		{Code: "TPE500/PN16", DN: 500, InnerDiameterMM: 409.2, WallMM: 45.4, SDR: 11, PNClass: "PN16", WeightPerMeter: 65.80},
		{Code: "TPE630/PN16", DN: 630, InnerDiameterMM: 515.6, WallMM: 57.2, SDR: 11, PNClass: "PN16", WeightPerMeter: 104.47},
		{Code: "TPE710/PN16", DN: 710, InnerDiameterMM: 581.0, WallMM: 64.5, SDR: 11, PNClass: "PN16", WeightPerMeter: 132.68},
		{Code: "TPE800/PN16", DN: 800, InnerDiameterMM: 654.8, WallMM: 72.6, SDR: 11, PNClass: "PN16", WeightPerMeter: 168.70},
	}
}

// FindPipe looks up a pipe type by catalog code.
func FindPipe(catalog []PipeType, code string) (PipeType, bool) {
	for _, p := range catalog {
		if p.Code == code {
			return p, true
		}
	}
	return PipeType{}, false
}

// FindPipeByDNPN looks up a pipe type by nominal diameter and pressure class.
func FindPipeByDNPN(catalog []PipeType, dn float64, pnClass string) (PipeType, bool) {
	for _, p := range catalog {
		if p.DN == dn && p.PNClass == pnClass {
			return p, true
		}
	}
	return PipeType{}, false
}

// PipesByDN returns all catalog entries of a given nominal diameter,
// sorted by SDR ascending (strongest first).
func PipesByDN(catalog []PipeType, dn float64) []PipeType {
	var out []PipeType
	for _, p := range catalog {
		if p.DN == dn {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SDR < out[j].SDR })
	return out
}
