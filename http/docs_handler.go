package http

import (
	"net/http"

	"gopkg.in/yaml.v2"

	"retirement-calc/logger"
)

type DocsHandler struct {
	doc SwaggerDoc
}

func NewDocsHandler(doc SwaggerDoc) *DocsHandler {
	return &DocsHandler{doc: doc}
}

// Swagger serves the API description as JSON.
func (h *DocsHandler) Swagger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, r, http.StatusOK, h.doc)
}

// SwaggerYAML serves the same description as YAML.
func (h *DocsHandler) SwaggerYAML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	out, err := yaml.Marshal(h.doc)
	if err != nil {
		logger.FromContext(r.Context()).ErrorContext(r.Context(), "encoding swagger yaml", logger.FieldError, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(out)
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
