package middleware

import (
	"net/http"
	"strings"

	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
	"github.com/vfg2006/cashpulse-api/pkg/log"
)

// LimitBody caps the request body at maxBytes. Reads past the cap fail.
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RequireHeader rejects requests without a non-blank header with the given
// API error code.
func RequireHeader(name, code string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.TrimSpace(r.Header.Get(name)) == "" {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warnf("request: missing %s header", name)
				apiErrors.WriteError(w, code, "missing "+name+" header", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
