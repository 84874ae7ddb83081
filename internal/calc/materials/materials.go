// Package materials is the catalogue used to prefill the elastic modulus.
package materials

import (
	"sort"
	"strings"
)

type Material struct {
	Name       string  `json:"name"`
	ModulusGPa float64 `json:"modulus_gpa"`
}

var catalogue = []Material{
	{Name: "Steel", ModulusGPa: 210},
	{Name: "Aluminum", ModulusGPa: 69},
	{Name: "Titanium", ModulusGPa: 114},
	{Name: "Copper", ModulusGPa: 117},
}

// Default is the material selected when nothing else is chosen.
const Default = "Steel"

// List returns a copy of the catalogue sorted by name.
func List() []Material {
	out := make([]Material, len(catalogue))
	copy(out, catalogue)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Modulus looks a material up by name, ignoring case and surrounding spaces.
func Modulus(name string) (float64, bool) {
	name = strings.TrimSpace(name)
	for _, m := range catalogue {
		if strings.EqualFold(m.Name, name) {
			return m.ModulusGPa, true
		}
	}
	return 0, false
}
