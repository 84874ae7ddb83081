// Package loads turns characteristic end loads into the design point load
// applied at the free end of the cantilever.
package loads

import (
	"fmt"
	"sort"

	"Cantilever/internal/calc/calcerr"
)

type Method string

const (
	MethodSP24 Method = "SP24"
	MethodSP22 Method = "SP22"
	MethodEC7  Method = "EC7"
)

// Combination holds the partial factors of one design method.
type Combination struct {
	Method    Method  `json:"method"`
	Name      string  `json:"name"`
	Permanent float64 `json:"gamma_permanent"`
	LongTerm  float64 `json:"gamma_long_term"`
	ShortTerm float64 `json:"gamma_short_term"`
}

var combinations = map[Method]Combination{
	MethodSP24: {MethodSP24, "SP24 basic", 1.1, 1.2, 1.3},
	MethodSP22: {MethodSP22, "SP22 basic", 1.05, 1.2, 1.3},
	MethodEC7:  {MethodEC7, "EC7 STR/GEO", 1.35, 1.5, 1.5},
}

// Characteristic end loads in kN. An empty method means SP24.
type Input struct {
	Method      Method  `json:"method"`
	PermanentKN float64 `json:"permanent_kn"`
	LongTermKN  float64 `json:"long_term_kn"`
	ShortTermKN float64 `json:"short_term_kn"`
}

type Result struct {
	DesignLoadKN float64     `json:"design_load_kn"`
	DesignLoadN  float64     `json:"design_load_n"`
	Combination  Combination `json:"combination"`
}

// Combinations lists the supported methods ordered by name.
func Combinations() []Combination {
	out := make([]Combination, 0, len(combinations))
	for _, c := range combinations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// Lookup returns the factors of m.
func Lookup(m Method) (Combination, error) {
	if m == "" {
		m = MethodSP24
	}
	c, ok := combinations[m]
	if !ok {
		return Combination{}, fmt.Errorf("%w: unknown load method %q", calcerr.ErrInvalidLoad, m)
	}
	return c, nil
}

// Calculate combines the characteristic loads into F_d = γG·G + γQl·Ql + γQs·Qs.
func Calculate(in Input) (Result, error) {
	for _, l := range []struct {
		name string
		v    float64
	}{
		{"permanent_kn", in.PermanentKN},
		{"long_term_kn", in.LongTermKN},
		{"short_term_kn", in.ShortTermKN},
	} {
		if err := calcerr.NonNegativeLoad(l.name, l.v); err != nil {
			return Result{}, err
		}
	}
	c, err := Lookup(in.Method)
	if err != nil {
		return Result{}, err
	}
	kn := in.PermanentKN*c.Permanent + in.LongTermKN*c.LongTerm + in.ShortTermKN*c.ShortTerm
	return Result{
		DesignLoadKN: kn,
		DesignLoadN:  kn * 1000.0,
		Combination:  c,
	}, nil
}
