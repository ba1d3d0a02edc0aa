package http

import (
	"net"
	"net/http"

	"retirement-calc/domain"
	"retirement-calc/logger"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip := clientIP(r)

		if !limiter.Allow(ip) {
			logger.FromContext(r.Context()).
				WithComponent(logger.ComponentRateLimit).
				WarnContext(r.Context(), "rate limit exceeded", logger.FieldClientIP, ip)
			writeError(w, r, http.StatusTooManyRequests, domain.CalcError{Error: "rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
