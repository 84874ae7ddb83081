package report

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"Cantilever/internal/calc/calcerr"
	"Cantilever/internal/httputil"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.BadRequest(w, "Invalid request payload")
		return
	}

	var buf bytes.Buffer
	if err := Generate(&buf, input, time.Now()); err != nil {
		if calcerr.Kind(err) == "" {
			log.Printf("report: %v", err)
		}
		httputil.WriteCalcError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Write(buf.Bytes())
}
