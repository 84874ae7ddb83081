package importer

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"Cantilever/internal/calc/beam"
	"Cantilever/internal/httputil"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		httputil.BadRequest(w, "File required")
		return
	}
	defer file.Close()

	res, err := ImportBeams(file)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	httputil.WriteJSONOK(w, res)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req beam.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, "Invalid request payload")
		return
	}
	in, err := req.Resolve()
	if err != nil {
		httputil.WriteCalcError(w, err)
		return
	}
	out, err := beam.Calculate(in)
	if err != nil {
		httputil.WriteCalcError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := WriteCurve(&buf, in, out); err != nil {
		log.Printf("xlsx export: %v", err)
		httputil.InternalServerError(w, "Export error")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"deflection.xlsx\"")
	w.Write(buf.Bytes())
}
