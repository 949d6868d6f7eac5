package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/logging"
	"infinite-experiment/themecookie/internal/ui"
)

// Logging logs every completed request with its status and duration
func Logging(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			sessionID := ""
			if c, err := r.Cookie(ui.SessionCookie); err == nil {
				sessionID = c.Value
			}

			logging.WithRequest(log, RequestID(r.Context()), sessionID, routePattern(r)).Infow("HTTP request completed",
				"method", r.Method,
				"status_code", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
