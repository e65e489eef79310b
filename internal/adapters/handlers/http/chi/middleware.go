package chi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware logs one line per request. Drop and paste batches arrive
// as sizeable multipart posts, so byte counts are recorded in both
// directions; server-side failures surface at warning level.
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path == "/health" {
					return
				}

				level := slog.LevelInfo
				if ww.Status() >= http.StatusInternalServerError {
					level = slog.LevelWarn
				}

				attrs := []any{
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int64("bytes_in", r.ContentLength),
					slog.Int("bytes_out", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
				}
				if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
					attrs = append(attrs, slog.Bool("batch", true))
				}

				l.Log(r.Context(), level, "http_request", attrs...)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
