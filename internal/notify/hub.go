// Package notify pushes session and approval events to browsers over
// websockets.
//
// A Hub owns every connection. Each user joins a room keyed by their user ID;
// an event for that user is written to every connection in the room. Send
// buffers are bounded and a connection that cannot keep up is dropped.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/docflow-bff/internal/platform/config"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/telemetry"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// ErrStopped is returned once the hub's Run loop has exited.
var ErrStopped = errors.New("notification hub stopped")

// eventQueue bounds events waiting for the Run loop.
const eventQueue = 256

// Delivery results, recorded on the notification.total metric.
const (
	resultDelivered    = "delivered"
	resultNoConnection = "no_connection"
	resultQueueFull    = "queue_full"
	resultSlowClient   = "slow_client"
)

// Compile-time interface checks.
var (
	_ ports.Notifier      = (*Hub)(nil)
	_ ports.HealthChecker = (*Hub)(nil)
)

type delivery struct {
	userID string
	event  ports.Event
}

// Hub tracks websocket connections per user.
type Hub struct {
	cfg      config.NotifyConfig
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	upgrader websocket.Upgrader

	register   chan *Client
	unregister chan *Client
	events     chan delivery
	done       chan struct{}
	stopOnce   sync.Once

	mu    sync.Mutex
	rooms map[string]map[*Client]struct{}
}

// NewHub creates a Hub. Call Run to start it. metrics may be nil.
func NewHub(cfg config.NotifyConfig, logger *slog.Logger, metrics *telemetry.Metrics) *Hub {
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	h := &Hub{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan delivery, eventQueue),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Run processes registrations and events until ctx is done, then closes
// every connection.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop()

	for {
		select {
		case c := <-h.register:
			h.add(c)

		case c := <-h.unregister:
			h.remove(c)

		case d := <-h.events:
			h.deliver(ctx, d)

		case <-ctx.Done():
			h.logger.Info("notification hub stopping", slog.Int("connections", h.count()))
			return
		}
	}
}

// Notify queues ev for userID without blocking. Events are dropped when the
// queue is full or the hub has stopped.
func (h *Hub) Notify(userID string, ev ports.Event) {
	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.events <- delivery{userID: userID, event: ev}:
	default:
		h.record(context.Background(), ev.Type, resultQueueFull)
		h.logger.Warn("notification queue full, dropping event",
			slog.String("user_id", userID),
			slog.String("event_type", string(ev.Type)),
		)
	}
}

// Serve upgrades the request to a websocket for userID and starts its pumps.
// On upgrade failure the upgrader has already written the HTTP error.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrading websocket: %w", err)
	}

	c := newClient(h, conn, userID)
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		_ = conn.Close()
		return ErrStopped
	}

	go c.writePump()
	go c.readPump()
	return nil
}

// Connections returns how many connections userID has open.
func (h *Hub) Connections(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[userID])
}

// Name identifies the hub in health results.
func (h *Hub) Name() string {
	return "notifications"
}

// HealthCheck fails once the hub has stopped.
func (h *Hub) HealthCheck(_ context.Context) error {
	select {
	case <-h.done:
		return ErrStopped
	default:
		return nil
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.userID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.userID] = room
	}
	room[c] = struct{}{}

	h.logger.Debug("websocket connected",
		slog.String("user_id", c.userID),
		slog.Int("connections", len(room)),
	)
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked drops c and closes its send channel. The caller holds h.mu.
func (h *Hub) removeLocked(c *Client) {
	room, ok := h.rooms[c.userID]
	if !ok {
		return
	}
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	close(c.send)
	if len(room) == 0 {
		delete(h.rooms, c.userID)
	}
}

func (h *Hub) deliver(ctx context.Context, d delivery) {
	payload, err := json.Marshal(d.event)
	if err != nil {
		h.logger.Error("encoding notification",
			slog.String("event_type", string(d.event.Type)),
			slog.Any("error", err),
		)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[d.userID]
	if len(room) == 0 {
		h.record(ctx, d.event.Type, resultNoConnection)
		return
	}

	for c := range room {
		select {
		case c.send <- payload:
			h.record(ctx, d.event.Type, resultDelivered)
		default:
			h.record(ctx, d.event.Type, resultSlowClient)
			h.logger.Warn("websocket send buffer full, dropping connection",
				slog.String("user_id", c.userID),
			)
			h.removeLocked(c)
		}
	}
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		defer h.mu.Unlock()
		for _, room := range h.rooms {
			for c := range room {
				h.removeLocked(c)
			}
		}
	})
}

func (h *Hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, room := range h.rooms {
		n += len(room)
	}
	return n
}

// checkOrigin accepts same-origin requests when no origins are configured,
// any origin for "*", and otherwise only the listed origins.
func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if len(h.cfg.AllowedOrigins) == 0 {
		return sameOrigin(r, origin)
	}
	return slices.Contains(h.cfg.AllowedOrigins, "*") || slices.Contains(h.cfg.AllowedOrigins, origin)
}

func (h *Hub) record(ctx context.Context, typ ports.EventType, result string) {
	h.metrics.NotificationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEventType.String(string(typ)),
		telemetry.AttrResult.String(result),
	))
}
