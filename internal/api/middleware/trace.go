// Package middleware contains HTTP middleware shared by both services.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/lawdept/justice-api/internal/api/shared"
	"github.com/lawdept/justice-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and stores a request-scoped
// logger carrying it, so store and handler log lines for one request can be
// correlated. Apply it early in the middleware chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
