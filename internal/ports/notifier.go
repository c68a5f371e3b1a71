package ports

// EventType names a push notification.
type EventType string

const (
	EventSessionRefreshed  EventType = "session_refreshed"
	EventSessionExpired    EventType = "session_expired"
	EventApprovalDecided   EventType = "approval_decided"
	EventApprovalRequested EventType = "approval_requested"
)

// Event is a push notification for one user. Payload must be JSON-encodable.
type Event struct {
	Type       EventType `json:"type"`
	DocumentID string    `json:"document_id,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}

// Notifier delivers events to a user's live connections. Delivery is
// best-effort: Notify never blocks and silently drops events for users
// without a connection.
type Notifier interface {
	Notify(userID string, ev Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(userID string, ev Event)

// Notify calls f(userID, ev).
func (f NotifierFunc) Notify(userID string, ev Event) {
	f(userID, ev)
}

// NopNotifier discards every event.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(string, Event) {}
