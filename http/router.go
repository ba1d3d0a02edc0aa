package http

import (
	"log/slog"
	"net/http"

	"retirement-calc/logger"
)

// NewRouter wires the calculator endpoints. Only /calc is rate limited.
func NewRouter(
	retirement *RetirementHandler,
	docs *DocsHandler,
	limiter *RateLimiter,
	log *logger.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/{$}", docs.Swagger)
	mux.HandleFunc("/swagger.yaml", docs.SwaggerYAML)
	mux.HandleFunc("/healthz", Health)

	calc := http.Handler(http.HandlerFunc(retirement.Calculate))
	if limiter != nil {
		calc = RateLimitMiddleware(limiter, calc)
	}
	mux.Handle("/calc", calc)

	return RequestLogger(log, mux)
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
