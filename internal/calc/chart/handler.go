package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"Cantilever/internal/calc/beam"
	"Cantilever/internal/httputil"
)

type Handler struct{}

func (h *Handler) curve(w http.ResponseWriter, r *http.Request) (beam.Output, bool) {
	var req beam.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, "Invalid request payload")
		return beam.Output{}, false
	}
	in, err := req.Resolve()
	if err != nil {
		httputil.WriteCalcError(w, err)
		return beam.Output{}, false
	}
	out, err := beam.Calculate(in)
	if err != nil {
		httputil.WriteCalcError(w, err)
		return beam.Output{}, false
	}
	return out, true
}

func (h *Handler) PNG(w http.ResponseWriter, r *http.Request) {
	out, ok := h.curve(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, out.Curve); err != nil {
		log.Printf("png chart: %v", err)
		httputil.InternalServerError(w, "Chart error")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (h *Handler) HTML(w http.ResponseWriter, r *http.Request) {
	out, ok := h.curve(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	sub := fmt.Sprintf("δ max = %.4f mm", out.Result.MaxDeflectionMM)
	if err := WriteHTML(&buf, out.Curve, sub); err != nil {
		log.Printf("html chart: %v", err)
		httputil.InternalServerError(w, "Chart error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
