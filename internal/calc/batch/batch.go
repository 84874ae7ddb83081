package batch

import (
	"fmt"

	"Cantilever/internal/calc/beam"
	"Cantilever/internal/calc/calcerr"
)

// MaxItems bounds a single batch request.
const MaxItems = 1000

type BeamBatchInput struct {
	Items []beam.Request `json:"items"`
}

// Item holds either a result or the reason the row was rejected.
type Item struct {
	Index  int          `json:"index"`
	Result *beam.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
	Kind   string       `json:"kind,omitempty"`
}

type BeamBatchResult struct {
	Count   int    `json:"count"`
	Failed  int    `json:"failed"`
	Results []Item `json:"results"`
}

// CalculateBeam evaluates every item independently. Invalid items are
// reported in place and do not abort the batch.
func CalculateBeam(in BeamBatchInput) (BeamBatchResult, error) {
	if len(in.Items) == 0 {
		return BeamBatchResult{}, fmt.Errorf("no items")
	}
	if len(in.Items) > MaxItems {
		return BeamBatchResult{}, fmt.Errorf("too many items: %d > %d", len(in.Items), MaxItems)
	}
	out := BeamBatchResult{Results: make([]Item, 0, len(in.Items))}
	for i, req := range in.Items {
		bi, err := req.Resolve()
		if err != nil {
			out.Results = append(out.Results, Item{Index: i, Error: err.Error(), Kind: calcerr.Kind(err)})
			continue
		}
		out.Results = append(out.Results, Evaluate(i, bi))
	}
	for _, it := range out.Results {
		if it.Result != nil {
			out.Count++
		} else {
			out.Failed++
		}
	}
	return out, nil
}

// Evaluate runs one beam calculation and records its outcome at index.
// Curves are not kept; a batch only reports the result records.
func Evaluate(index int, in beam.Input) Item {
	in.Samples = 2
	res, err := beam.Calculate(in)
	if err != nil {
		return Item{Index: index, Error: err.Error(), Kind: calcerr.Kind(err)}
	}
	return Item{Index: index, Result: &res.Result}
}
