package report

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"Cantilever/internal/calc/beam"
)

// Card is one labelled result value as shown to the user.
type Card struct {
	Title  string `json:"title"`
	Symbol string `json:"symbol"`
	Value  string `json:"value"`
}

// Cards formats a result the way the result panel displays it.
func Cards(res beam.Result) []Card {
	return []Card{
		{Title: "Reaction Force", Symbol: "R_A", Value: humanize.FormatFloat("#,###.##", res.ReactionForceN) + " N"},
		{Title: "Max Moment", Symbol: "M_max", Value: humanize.FormatFloat("#,###.##", res.MaxMomentNM) + " N·m"},
		{Title: "Moment of Inertia", Symbol: "I", Value: fmt.Sprintf("%.4e m⁴", res.MomentOfInertiaM4)},
		{Title: "Max Deflection", Symbol: "δ_B", Value: fmt.Sprintf("%.4f mm", res.MaxDeflectionMM)},
	}
}
