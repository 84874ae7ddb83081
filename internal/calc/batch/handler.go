package batch

import (
	"encoding/json"
	"net/http"

	"Cantilever/internal/httputil"
)

type Handler struct{}

func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var input BeamBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.BadRequest(w, "Invalid request payload")
		return
	}
	res, err := CalculateBeam(input)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	httputil.WriteJSONOK(w, res)
}
