package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/docflow-bff/internal/app/context"
)

// AppContext returns middleware that gives each request its own
// RequestContext, so backend reads such as a document's approval flow are
// fetched at most once per request however many services ask for them.
//
// Register it after CorrelationID so the RequestContext wraps a context
// that already carries the request and correlation IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
