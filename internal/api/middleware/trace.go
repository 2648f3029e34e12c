// Package middleware contains the HTTP middleware specific to the JSON API:
// request tracing and bearer-token authentication.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/studyplan/internal/api/shared"
	"github.com/phrazzld/studyplan/internal/platform/logger"
)

// TraceMiddleware assigns each request a trace ID and stores a logger tagged
// with it in the request context. Apply it before any handler that logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := logger.FromContext(r.Context()).With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
