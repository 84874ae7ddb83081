// Package deflection checks a cantilever against a span/ratio deflection limit.
package deflection

import (
	"fmt"

	"Cantilever/internal/calc/beam"
	"Cantilever/internal/calc/calcerr"
)

const DefaultLimitRatio = 250

type Input struct {
	beam.Input
	DeflectionLimitRatio float64 `json:"deflection_limit_ratio"`
}

type Result struct {
	DeflectionMM      float64 `json:"deflection_mm"`
	DeflectionLimitMM float64 `json:"deflection_limit_mm"`
	Utilization       float64 `json:"utilization"`
	OK                bool    `json:"ok"`
	Notes             string  `json:"notes"`
}

// LimitMM is the allowed tip deflection in millimetres for a beam of lengthM
// metres, L/ratio.
func LimitMM(lengthM, ratio float64) float64 {
	if ratio <= 0 {
		ratio = DefaultLimitRatio
	}
	return lengthM * 1000.0 / ratio
}

func Check(in Input) (Result, error) {
	if in.DeflectionLimitRatio < 0 {
		return Result{}, fmt.Errorf("%w: deflection limit ratio must not be negative", calcerr.ErrInvalidGeometry)
	}
	out, err := beam.Calculate(in.Input)
	if err != nil {
		return Result{}, err
	}
	defl := out.Result.MaxDeflectionMM
	limit := LimitMM(in.LengthM, in.DeflectionLimitRatio)
	util := defl / limit
	return Result{
		DeflectionMM:      defl,
		DeflectionLimitMM: limit,
		Utilization:       util,
		OK:                defl <= limit,
		Notes:             "Tip deflection of a cantilever under an end load.",
	}, nil
}
