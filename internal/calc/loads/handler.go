package loads

import (
	"encoding/json"
	"net/http"

	"Cantilever/internal/httputil"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.BadRequest(w, "Invalid request payload")
		return
	}
	res, err := Calculate(input)
	if err != nil {
		httputil.WriteCalcError(w, err)
		return
	}
	httputil.WriteJSONOK(w, res)
}

func (h *Handler) Methods(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, Combinations())
}
