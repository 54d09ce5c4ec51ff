// Package middleware provides the HTTP middleware chain for the
// feelings API: request logging, panic recovery, per-IP rate limiting,
// secure headers, and bearer-token authentication.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// logFieldsKey locates the per-request log record that inner middleware
// (notably RequireAdmin) can annotate before the logger emits it.
const logFieldsKey contextKey = "logFields"

// logFields collects fields that only become known after the logger has
// handed the request down the chain.
type logFields struct {
	admin string
}

// noteAdmin records the authenticated admin's email for the request
// log. No-op outside the Logger chain.
func noteAdmin(ctx context.Context, email string) {
	if f, ok := ctx.Value(logFieldsKey).(*logFields); ok {
		f.admin = email
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
// and the number of body bytes written.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
	written    bool
}

// WriteHeader captures the status code before writing it.
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

// Write ensures a default 200 status if WriteHeader was never called
// and counts the bytes written to the body.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// Logger assigns each request an id, echoes it in the X-Request-Id
// response header, and records method, path, status, response size,
// duration, and client IP. Requests that passed admin authentication
// are logged with the admin's email as well.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		fields := &logFields{}
		ctx := context.WithValue(r.Context(), logFieldsKey, fields)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r.WithContext(ctx))

		attrs := []any{
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"bytes", wrapped.bytes,
			"duration", time.Since(start).String(),
			"client", clientIP(r),
		}
		if fields.admin != "" {
			attrs = append(attrs, "admin", fields.admin)
		}
		slog.Info("http request", attrs...)
	})
}
