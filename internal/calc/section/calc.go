package section

import (
	"fmt"
	"math"

	"Cantilever/internal/calc/calcerr"
)

type Input struct {
	HeightMM        float64 `json:"height_mm"`
	WidthMM         float64 `json:"width_mm"`
	IsSolid         bool    `json:"is_solid"`
	WallThicknessMM float64 `json:"wall_thickness_mm"`
}

type Result struct {
	MomentOfInertiaM4 float64 `json:"moment_of_inertia_m4"`
}

func Calculate(in Input) (Result, error) {
	I, err := MomentOfInertia(in.HeightMM, in.WidthMM, in.IsSolid, in.WallThicknessMM)
	if err != nil {
		return Result{}, err
	}
	return Result{MomentOfInertiaM4: I}, nil
}

// MomentOfInertia returns the second moment of area (m^4) of a rectangular
// section about the centroidal axis perpendicular to the load. Dimensions are
// in millimetres. For a hollow box the wall thickness is removed on all four
// sides; the wall is ignored when solid is true.
func MomentOfInertia(heightMM, widthMM float64, solid bool, wallMM float64) (float64, error) {
	if err := calcerr.Positive("height_mm", heightMM); err != nil {
		return 0, err
	}
	if err := calcerr.Positive("width_mm", widthMM); err != nil {
		return 0, err
	}

	h := heightMM / 1000.0
	w := widthMM / 1000.0

	var I float64
	if solid {
		// Solid rectangle: I = w h^3 / 12
		I = w * math.Pow(h, 3) / 12.0
	} else {
		if err := calcerr.Positive("wall_thickness_mm", wallMM); err != nil {
			return 0, err
		}
		if 2*wallMM >= heightMM || 2*wallMM >= widthMM {
			return 0, fmt.Errorf("%w: wall thickness %g mm leaves no hollow core in %gx%g mm section",
				calcerr.ErrInvalidGeometry, wallMM, heightMM, widthMM)
		}
		t := wallMM / 1000.0
		// Box: outer rectangle minus the concentric inner one
		I = (w*math.Pow(h, 3) - (w-2*t)*math.Pow(h-2*t, 3)) / 12.0
	}
	if !(I > 0) || math.IsInf(I, 0) {
		return 0, fmt.Errorf("%w: moment of inertia %g out of range", calcerr.ErrInvalidGeometry, I)
	}
	return I, nil
}
