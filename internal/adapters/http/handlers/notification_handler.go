package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/docflow-bff/internal/platform/logging"
)

// NotificationServer upgrades a request to a per-user event stream.
// Implemented by notify.Hub.
type NotificationServer interface {
	Serve(w http.ResponseWriter, r *http.Request, userID string) error
}

// NotificationHandler serves the notifications websocket.
type NotificationHandler struct {
	server NotificationServer
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(server NotificationServer) *NotificationHandler {
	return &NotificationHandler{server: server}
}

// Connect handles GET /ws. The Session middleware has already resolved the
// caller.
func (h *NotificationHandler) Connect(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.server.Serve(w, r, p.User.ID); err != nil {
		// The upgrader has already answered the request.
		logging.FromContext(r.Context()).Debug("websocket not opened",
			slog.String("user_id", p.User.ID),
			slog.Any("error", err),
		)
	}
}
