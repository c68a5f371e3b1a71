// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/handlers"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
// Notification may be nil when the websocket hub is disabled.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Document     *handlers.DocumentHandler
	Approval     *handlers.ApprovalHandler
	Health       *handlers.HealthHandler
	Notification *handlers.NotificationHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. requireSession guards
// every route that needs a signed-in caller.
func NewRouter(
	h Handlers,
	requireSession func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	if h.Notification != nil {
		r.With(requireSession).Get("/ws", h.Notification.Connect)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints resolve the cookie themselves.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/refresh", h.Auth.Refresh)
			r.Get("/session", h.Auth.Session)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireSession)

			r.Get("/profile", h.Profile.GetProfile)
			r.Patch("/profile", h.Profile.UpdateProfile)
			r.Put("/profile/password", h.Profile.ChangePassword)

			r.Get("/documents", h.Document.ListDocuments)
			r.Get("/documents/{id}", h.Document.GetDocument)

			r.Get("/documents/{id}/approval", h.Approval.GetFlow)
			r.Post("/documents/{id}/approve", h.Approval.Approve)
			r.Post("/documents/{id}/reject", h.Approval.Reject)

			r.Get("/approvals/pending", h.Approval.ListPending)
			r.Post("/approvals/bulk", h.Approval.BulkDecide)
		})
	})

	return r
}
