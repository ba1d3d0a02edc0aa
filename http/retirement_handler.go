package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"retirement-calc/domain"
	"retirement-calc/logger"
	"retirement-calc/service"
)

const (
	maxBodyBytes = 1 << 20

	msgContentType = "Content-Type must be 'application/json'"
	msgInvalidBody = "invalid request body"
)

type RetirementHandler struct {
	service *service.RetirementService
}

func NewRetirementHandler(service *service.RetirementService) *RetirementHandler {
	return &RetirementHandler{service: service}
}

// Calculate handles POST /calc.
func (h *RetirementHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type antes de leer el cuerpo
	if !isJSON(r.Header.Get("Content-Type")) {
		writeError(w, r, http.StatusBadRequest, domain.CalcError{Error: msgContentType})
		return
	}

	log := logger.FromContext(r.Context())

	var body any
	if err := decodeBody(http.MaxBytesReader(w, r.Body, maxBodyBytes), &body); err != nil {
		log.WarnContext(r.Context(), "decoding request body", logger.FieldError, err)
		writeError(w, r, http.StatusBadRequest, domain.CalcError{Error: msgInvalidBody})
		return
	}

	// un cuerpo que no es objeto se valida como objeto vacío
	params, ok := body.(map[string]any)
	if !ok {
		params = map[string]any{}
	}

	result, err := h.service.Calculate(r.Context(), params)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(w, r, http.StatusBadRequest, domain.CalcError{
				Error:    service.MsgInvalidParams,
				Required: verr.Required(),
			})
			return
		}
		log.ErrorContext(r.Context(), "calculating retirement", logger.FieldError, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

// decodeBody reads exactly one JSON value. Numbers stay as json.Number so
// literals beyond float64 range reach validation as ±Inf.
func decodeBody(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// nada más después del documento
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
