package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"retirement-calc/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped logger carrying the request ID
// (taken from X-Request-ID or generated) and logs one line per request.
func RequestLogger(base *logger.Logger, next http.Handler) http.Handler {
	httpLog := base.WithComponent(logger.ComponentHTTP)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		log := httpLog.With(logger.FieldRequestID, requestID)
		ctx := logger.NewContext(r.Context(), log)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		level := levelFor(rec.status)
		log.Log(ctx, level, "request completed",
			logger.FieldMethod, r.Method,
			logger.FieldPath, r.URL.Path,
			logger.FieldStatusCode, rec.status,
			logger.FieldDuration, time.Since(start).Milliseconds(),
			logger.FieldClientIP, clientIP(r),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}
