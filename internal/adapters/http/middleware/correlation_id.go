package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
)

const headerCorrelationID = "X-Correlation-ID"

type correlationIDKey struct{}

// WithCorrelationID stores id for this package and for outbound calls, so
// every backend request made on behalf of the caller carries it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID ties one UI action to every backend call it causes. The
// frontend may send X-Correlation-ID; a missing or malformed value is
// replaced with the request ID, so RequestID must run first. The chosen ID
// is echoed on the response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !validRequestID(id) {
				id = RequestIDFromContext(r.Context())
			}
			if id != "" {
				w.Header().Set(headerCorrelationID, id)
				r = r.WithContext(WithCorrelationID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
