package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/study-notes-api/internal/api/shared"
	"github.com/phrazzld/study-notes-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and returns it in the
// X-Trace-ID response header. A logger annotated with the trace ID (and chi's
// request ID, when present) is stored in the context for downstream handlers.
// This middleware should be applied early in the middleware chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		w.Header().Set(shared.TraceIDHeader, traceID)

		log := logger.FromContext(ctx).With(slog.String("trace_id", traceID))
		if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
			log = log.With(slog.String("request_id", reqID))
		}
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
