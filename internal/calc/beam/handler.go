package beam

import (
	"encoding/json"
	"net/http"

	"Cantilever/internal/calc/loads"
	"Cantilever/internal/calc/materials"
	"Cantilever/internal/httputil"
)

// Request is Input plus the optional material name used to prefill the
// modulus and the optional characteristic loads used to derive the force.
type Request struct {
	Input
	Material string       `json:"material,omitempty"`
	Load     *loads.Input `json:"load,omitempty"`
}

// Resolve returns the calculation input. The modulus comes from the material
// table when modulus_gpa is zero, and the force is the design load of Load
// when force_n is zero.
func (r Request) Resolve() (Input, error) {
	in := r.Input
	if in.ModulusGPa == 0 && r.Material != "" {
		if e, ok := materials.Modulus(r.Material); ok {
			in.ModulusGPa = e
		}
	}
	if in.ForceN == 0 && r.Load != nil {
		res, err := loads.Calculate(*r.Load)
		if err != nil {
			return Input{}, err
		}
		in.ForceN = res.DesignLoadN
	}
	return in, nil
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, "Invalid request payload")
		return
	}
	in, err := req.Resolve()
	if err != nil {
		httputil.WriteCalcError(w, err)
		return
	}
	out, err := Calculate(in)
	if err != nil {
		httputil.WriteCalcError(w, err)
		return
	}
	httputil.WriteJSONOK(w, out)
}
