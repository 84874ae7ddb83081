package beam

import (
	"encoding/json"
	"iter"
)

type Point struct {
	PositionM    float64 `json:"position_m"`
	DeflectionMM float64 `json:"deflection_mm"`
}

// Curve is the deflection line sampled at evenly spaced positions from the
// fixed support (0) to the free end (L) inclusive. Points are computed on
// demand, so a Curve can be walked any number of times.
type Curve struct {
	lengthM float64
	scale   float64 // F / (6 E I) in mm/m^3
	n       int
}

func (c Curve) Len() int { return c.n }

func (c Curve) LengthM() float64 { return c.lengthM }

// Position returns the i-th sample position in metres. The last one is
// exactly L.
func (c Curve) Position(i int) float64 {
	if i == c.n-1 {
		return c.lengthM
	}
	return c.lengthM * float64(i) / float64(c.n-1)
}

// DeflectionAt returns the deflection in millimetres at x metres from the
// support, F x^2 (3L - x) / (6 E I). Valid for 0 <= x <= L.
func (c Curve) DeflectionAt(x float64) float64 {
	return c.scale * x * x * (3.0*c.lengthM - x)
}

func (c Curve) At(i int) Point {
	if i < 0 || i >= c.n {
		panic("beam: curve index out of range")
	}
	x := c.Position(i)
	return Point{PositionM: x, DeflectionMM: c.DeflectionAt(x)}
}

// All iterates the samples in order of increasing position.
func (c Curve) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := 0; i < c.n; i++ {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

func (c Curve) Points() []Point {
	pts := make([]Point, 0, c.n)
	for _, p := range c.All() {
		pts = append(pts, p)
	}
	return pts
}

func (c Curve) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Points())
}
