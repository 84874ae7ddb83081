// Package beam analyses a rectangular cantilever fixed at x = 0 and loaded by
// a single transverse point load at the free end x = L (Euler-Bernoulli).
package beam

import (
	"fmt"
	"math"

	"Cantilever/internal/calc/calcerr"
	"Cantilever/internal/calc/section"
)

// DefaultSamples is the number of curve points used when none is requested.
const DefaultSamples = 500

type Input struct {
	HeightMM        float64 `json:"height_mm"`
	WidthMM         float64 `json:"width_mm"`
	IsSolid         bool    `json:"is_solid"`
	WallThicknessMM float64 `json:"wall_thickness_mm"`
	ModulusGPa      float64 `json:"modulus_gpa"`
	LengthM         float64 `json:"length_m"`
	ForceN          float64 `json:"force_n"`
	Samples         int     `json:"samples,omitempty"`
}

type Result struct {
	ReactionForceN    float64 `json:"reaction_force_n"`
	MaxMomentNM       float64 `json:"max_moment_n_m"`
	MaxDeflectionMM   float64 `json:"max_deflection_mm"`
	MomentOfInertiaM4 float64 `json:"moment_of_inertia_m4"`
}

type Output struct {
	Result Result `json:"result"`
	Curve  Curve  `json:"curve"`
}

// Calculate validates in, derives the section inertia and analyses the beam.
// It has no side effects; identical inputs give bit-identical outputs.
func Calculate(in Input) (Output, error) {
	I, err := section.MomentOfInertia(in.HeightMM, in.WidthMM, in.IsSolid, in.WallThicknessMM)
	if err != nil {
		return Output{}, err
	}
	res, curve, err := Analyze(in.ForceN, in.LengthM, in.ModulusGPa, I, in.Samples)
	if err != nil {
		return Output{}, err
	}
	return Output{Result: res, Curve: curve}, nil
}

// Analyze computes support reactions, tip deflection and the deflection curve
// for an end load forceN (N) on a cantilever of lengthM (m) with modulus
// modulusGPa (GPa) and second moment of area inertiaM4 (m^4). samples == 0
// selects DefaultSamples.
func Analyze(forceN, lengthM, modulusGPa, inertiaM4 float64, samples int) (Result, Curve, error) {
	if err := calcerr.Positive("length_m", lengthM); err != nil {
		return Result{}, Curve{}, err
	}
	if err := calcerr.Positive("modulus_gpa", modulusGPa); err != nil {
		return Result{}, Curve{}, err
	}
	if err := calcerr.Positive("moment_of_inertia_m4", inertiaM4); err != nil {
		return Result{}, Curve{}, err
	}
	if err := calcerr.NonNegativeLoad("force_n", forceN); err != nil {
		return Result{}, Curve{}, err
	}
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 2 {
		return Result{}, Curve{}, fmt.Errorf("%w: need at least 2 curve samples, got %d", calcerr.ErrInvalidSampling, samples)
	}

	E := modulusGPa * 1e9 // Pa
	EI := E * inertiaM4
	if math.IsInf(EI, 0) || EI <= 0 {
		return Result{}, Curve{}, fmt.Errorf("%w: flexural rigidity out of range", calcerr.ErrInvalidGeometry)
	}

	L3 := math.Pow(lengthM, 3)
	if math.IsInf(L3, 0) {
		return Result{}, Curve{}, fmt.Errorf("%w: length_m %g is too large", calcerr.ErrInvalidGeometry, lengthM)
	}
	// Tip deflection for an end load: F L^3 / (3 E I)
	tip := forceN * L3 / (3.0 * EI) * 1000.0
	curve := Curve{
		lengthM: lengthM,
		scale:   forceN / (6.0 * EI) * 1000.0,
		n:       samples,
	}
	if !finite(tip) || !finite(curve.scale) || !finite(curve.DeflectionAt(lengthM)) {
		return Result{}, Curve{}, fmt.Errorf("%w: deflection out of range for force %g N, length %g m, EI %g N*m^2",
			calcerr.ErrInvalidLoad, forceN, lengthM, EI)
	}

	res := Result{
		ReactionForceN:    forceN,
		MaxMomentNM:       -forceN * lengthM,
		MaxDeflectionMM:   tip,
		MomentOfInertiaM4: inertiaM4,
	}
	return res, curve, nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
