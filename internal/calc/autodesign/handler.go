package autodesign

import (
	"encoding/json"
	"net/http"

	"Cantilever/internal/httputil"
)

type Handler struct{}

func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var input BeamAutoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.BadRequest(w, "Invalid request payload")
		return
	}
	res, err := Beam(input)
	if err != nil {
		httputil.WriteCalcError(w, err)
		return
	}
	httputil.WriteJSONOK(w, res)
}
