package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"retirement-calc/domain"
	"retirement-calc/logger"
)

// writeJSON encodes v into a buffer first so a failed encode never leaves
// a half-written 200 behind.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	log := logger.FromContext(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.ErrorContext(r.Context(), "encoding response", logger.FieldError, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WarnContext(r.Context(), "writing response", logger.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, calcErr domain.CalcError) {
	writeJSON(w, r, status, calcErr)
}
