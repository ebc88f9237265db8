package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
	"github.com/vfg2006/cashpulse-api/pkg/log"
)

const slowRequestThreshold = 2 * time.Second

// Logging tags every request with a correlation id and logs its outcome.
func Logging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set("X-Correlation-ID", correlationID)

			lrw := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(start)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    lrw.statusCode,
				"duration_ms":    elapsed.Milliseconds(),
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
			})

			msg := fmt.Sprintf("%s %s completed in %s", r.Method, r.URL.Path, formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			// analysis requests wait on the language model, so only flag the
			// really slow ones
			if elapsed > slowRequestThreshold {
				logger.Warnf("slow request: %s", elapsed)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	s.statusCode = code
	s.ResponseWriter.WriteHeader(code)
}

// LogPanic turns a panic in a handler into a logged 500.
func LogPanic() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  fmt.Sprint(rec),
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("panic while handling request")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n===================\n", stack)
					} else {
						logger.WithField("stack_trace", string(stack)).Error("panic stack trace")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
