package materials

import (
	"net/http"

	"Cantilever/internal/httputil"
)

type Handler struct{}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, List())
}
