// Package autodesign sizes a solid rectangular cantilever for stiffness.
package autodesign

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"Cantilever/internal/calc/beam"
	"Cantilever/internal/calc/calcerr"
	"Cantilever/internal/calc/deflection"
)

type BeamAutoInput struct {
	WidthMM              float64 `json:"width_mm"`
	ModulusGPa           float64 `json:"modulus_gpa"`
	LengthM              float64 `json:"length_m"`
	ForceN               float64 `json:"force_n"`
	DeflectionLimitRatio float64 `json:"deflection_limit_ratio"`
	// HeightStepMM rounds the height up to a multiple of this step when > 0.
	HeightStepMM float64 `json:"height_step_mm"`
}

type BeamAutoResult struct {
	RequiredHeightMM  float64      `json:"required_height_mm"`
	DeflectionLimitMM float64      `json:"deflection_limit_mm"`
	OKDeflection      bool         `json:"ok_deflection"`
	Beam              *beam.Result `json:"beam,omitempty"`
	Notes             string       `json:"notes"`
}

// Beam returns the smallest solid height for which the tip deflection stays
// within L/ratio. From F L^3 / (3 E I) <= L / ratio:
// I_req = F L^2 ratio / (3 E), h = cbrt(12 I_req / w).
func Beam(in BeamAutoInput) (BeamAutoResult, error) {
	if err := calcerr.Positive("width_mm", in.WidthMM); err != nil {
		return BeamAutoResult{}, err
	}
	if err := calcerr.Positive("length_m", in.LengthM); err != nil {
		return BeamAutoResult{}, err
	}
	if err := calcerr.Positive("modulus_gpa", in.ModulusGPa); err != nil {
		return BeamAutoResult{}, err
	}
	if err := calcerr.NonNegativeLoad("force_n", in.ForceN); err != nil {
		return BeamAutoResult{}, err
	}
	if in.DeflectionLimitRatio < 0 || in.HeightStepMM < 0 {
		return BeamAutoResult{}, fmt.Errorf("%w: limit ratio and height step must not be negative", calcerr.ErrInvalidGeometry)
	}
	ratio := in.DeflectionLimitRatio
	if ratio == 0 {
		ratio = deflection.DefaultLimitRatio
	}
	limit := deflection.LimitMM(in.LengthM, ratio)

	if in.ForceN == 0 {
		return BeamAutoResult{
			DeflectionLimitMM: limit,
			OKDeflection:      true,
			Notes:             "No load: any height satisfies the deflection limit.",
		}, nil
	}

	E := in.ModulusGPa * 1e9
	w := in.WidthMM / 1000.0
	Ireq := in.ForceN * in.LengthM * in.LengthM * ratio / (3.0 * E)
	hmm := math.Cbrt(12.0*Ireq/w) * 1000.0
	if in.HeightStepMM > 0 {
		hmm = math.Ceil(hmm/in.HeightStepMM) * in.HeightStepMM
	}

	out, err := beam.Calculate(beam.Input{
		HeightMM:   hmm,
		WidthMM:    in.WidthMM,
		IsSolid:    true,
		ModulusGPa: in.ModulusGPa,
		LengthM:    in.LengthM,
		ForceN:     in.ForceN,
		Samples:    2,
	})
	if err != nil {
		return BeamAutoResult{}, err
	}
	defl := out.Result.MaxDeflectionMM
	return BeamAutoResult{
		RequiredHeightMM:  hmm,
		DeflectionLimitMM: limit,
		OKDeflection:      defl <= limit || scalar.EqualWithinRel(defl, limit, 1e-9),
		Beam:              &out.Result,
		Notes:             "Auto-sized solid section (height selected to satisfy deflection).",
	}, nil
}
