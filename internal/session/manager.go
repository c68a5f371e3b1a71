// Package session keeps users' backend tokens server-side and refreshes them
// ahead of expiry.
//
// Each session schedules a refresh at access expiry minus the configured
// leeway. Failed refreshes back off exponentially; a backend 429 imposes a
// cooldown of at least its Retry-After. A rejected refresh token ends the
// session. Concurrent refreshes of one session share a single backend call.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/config"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/logging"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/telemetry"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// ErrClosed is returned by every Manager method after Close.
var ErrClosed = errors.New("session manager closed")

// Refresh triggers, recorded on the session.refresh.total metric.
const (
	TriggerScheduled = "scheduled"
	TriggerOnDemand  = "on_demand"
	TriggerManual    = "manual"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*Manager)(nil)
	_ ports.HealthChecker = (*Manager)(nil)
)

// TokenRefresher exchanges a refresh token for a new pair.
// Satisfied by [ports.AuthClient].
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*auth.IssuedTokens, error)
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithNotifier sets where session events are delivered.
func WithNotifier(n ports.Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

// WithIDGenerator replaces the random UUID session IDs.
func WithIDGenerator(f func() string) Option {
	return func(m *Manager) { m.newID = f }
}

type entry struct {
	id              string
	user            user.User
	tokens          auth.Tokens
	createdAt       time.Time
	lastRefreshedAt time.Time
	refreshAt       time.Time
	cooldownUntil   time.Time
	failures        int
	timer           Timer
	// gen identifies the armed timer; superseded timers see a newer value.
	gen uint64
}

func (e *entry) snapshot() *auth.SessionInfo {
	return &auth.SessionInfo{
		ID:               e.id,
		User:             e.user,
		AccessExpiresAt:  e.tokens.AccessExpiresAt,
		RefreshExpiresAt: e.tokens.RefreshExpiresAt,
		CreatedAt:        e.createdAt,
		LastRefreshedAt:  e.lastRefreshedAt,
		RefreshAt:        e.refreshAt,
		CooldownUntil:    e.cooldownUntil,
		Failures:         e.failures,
	}
}

func (e *entry) coolingDown(now time.Time) bool {
	return now.Before(e.cooldownUntil)
}

// Manager is an in-memory [ports.SessionStore].
type Manager struct {
	cfg       config.SessionConfig
	refresher TokenRefresher
	notifier  ports.Notifier
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	clock     Clock
	newID     func() string

	group singleflight.Group

	mu       sync.Mutex
	sessions map[string]*entry
	closed   bool
}

// NewManager creates a Manager that refreshes through refresher.
func NewManager(cfg config.SessionConfig, refresher TokenRefresher, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		cfg:       cfg,
		refresher: refresher,
		notifier:  ports.NopNotifier{},
		metrics:   telemetry.NewNoopMetrics(),
		logger:    logger,
		clock:     systemClock{},
		newID:     uuid.NewString,
		sessions:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create stores a session for u and schedules its first refresh.
func (m *Manager) Create(_ context.Context, u user.User, issued auth.IssuedTokens) (*auth.SessionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	now := m.clock.Now()
	e := &entry{
		id:              m.newID(),
		user:            u,
		tokens:          ResolveTokens(issued, now, m.cfg.DefaultAccessTTL),
		createdAt:       now,
		lastRefreshedAt: now,
	}
	m.sessions[e.id] = e
	m.schedule(e, now)

	return e.snapshot(), nil
}

// Get returns a snapshot of the session. Unknown sessions and sessions whose
// refresh token has expired yield domain.ErrUnauthenticated; the latter are
// dropped.
func (m *Manager) Get(id string) (*auth.SessionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.lookup(id, m.clock.Now())
	if err != nil {
		return nil, err
	}
	return e.snapshot(), nil
}

// AccessToken returns a usable access token. When the token is expired or
// inside the refresh leeway it refreshes first. During a cooldown it never
// calls the backend: a still-valid token is returned as is, otherwise a
// *domain.RateLimitError reports the remaining cooldown.
func (m *Manager) AccessToken(ctx context.Context, id string) (string, error) {
	m.mu.Lock()
	now := m.clock.Now()
	e, err := m.lookup(id, now)
	if err != nil {
		m.mu.Unlock()
		return "", err
	}
	tokens := e.tokens
	switch {
	case !tokens.NeedsRefresh(now, m.cfg.RefreshLeeway):
		m.mu.Unlock()
		return tokens.AccessToken, nil
	case e.coolingDown(now):
		remaining := e.cooldownUntil.Sub(now)
		m.mu.Unlock()
		if !tokens.AccessExpired(now) {
			return tokens.AccessToken, nil
		}
		return "", &domain.RateLimitError{RetryAfter: remaining}
	}
	m.mu.Unlock()

	if err := m.refresh(ctx, id, TriggerOnDemand); err != nil {
		// A token inside the leeway is still good for this request.
		if !tokens.AccessExpired(m.clock.Now()) && !errors.Is(err, domain.ErrUnauthenticated) {
			return tokens.AccessToken, nil
		}
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	e, err = m.lookup(id, m.clock.Now())
	if err != nil {
		return "", err
	}
	return e.tokens.AccessToken, nil
}

// Refresh forces a refresh and returns the updated snapshot. It is refused
// with a *domain.RateLimitError during a cooldown.
func (m *Manager) Refresh(ctx context.Context, id string) (*auth.SessionInfo, error) {
	if err := m.refresh(ctx, id, TriggerManual); err != nil {
		return nil, err
	}
	return m.Get(id)
}

// Destroy cancels the session's timer and removes it, returning its tokens
// for revocation. It is idempotent.
func (m *Manager) Destroy(_ context.Context, id string) (auth.Tokens, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return auth.Tokens{}, false
	}
	m.remove(e)
	return e.tokens, true
}

// Close cancels every timer and drops all sessions. Later calls fail with
// ErrClosed.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	for _, e := range m.sessions {
		m.remove(e)
	}
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Name identifies the session store in health results.
func (m *Manager) Name() string {
	return "sessions"
}

// HealthCheck fails once the manager is closed.
func (m *Manager) HealthCheck(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	return nil
}

// lookup returns the live entry for id. The caller holds m.mu.
func (m *Manager) lookup(id string, now time.Time) (*entry, error) {
	if m.closed {
		return nil, ErrClosed
	}
	e, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found: %w", domain.ErrUnauthenticated)
	}
	if e.tokens.RefreshExpired(now) {
		m.expire(e, "refresh_token_expired")
		return nil, fmt.Errorf("session expired: %w", domain.ErrUnauthenticated)
	}
	return e, nil
}

// schedule arms the refresh timer for e. The caller holds m.mu.
func (m *Manager) schedule(e *entry, now time.Time) {
	if e.timer != nil {
		e.timer.Stop()
	}

	at := e.tokens.AccessExpiresAt.Add(-m.cfg.RefreshLeeway)
	if earliest := now.Add(m.cfg.MinRefreshDelay); at.Before(earliest) {
		at = earliest
	}
	if at.Before(e.cooldownUntil) {
		at = e.cooldownUntil
	}
	e.refreshAt = at
	e.gen++

	id, gen := e.id, e.gen
	e.timer = m.clock.AfterFunc(at.Sub(now), func() { m.onTimer(id, gen) })
}

func (m *Manager) onTimer(id string, gen uint64) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	stale := !ok || e.gen != gen
	m.mu.Unlock()
	if stale {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RefreshTimeout)
	defer cancel()

	ctx = logging.WithLogger(ctx, m.logger.With(slog.String("session_id", id)))
	_ = m.refresh(ctx, id, TriggerScheduled)
}

// remove stops e's timer and forgets it. The caller holds m.mu.
func (m *Manager) remove(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
	}
	delete(m.sessions, e.id)
}

// expire removes e and tells its user. The caller holds m.mu.
func (m *Manager) expire(e *entry, reason string) {
	m.remove(e)
	m.notifier.Notify(e.user.ID, ports.Event{
		Type:    ports.EventSessionExpired,
		Payload: map[string]string{"reason": reason},
	})
}

// refresh deduplicates concurrent refreshes of one session. The shared call
// is detached from any single caller's cancellation and bounded by the
// refresh timeout.
func (m *Manager) refresh(ctx context.Context, id, trigger string) error {
	ch := m.group.DoChan(id, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.RefreshTimeout)
		defer cancel()
		return nil, m.doRefresh(flightCtx, id, trigger)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) doRefresh(ctx context.Context, id, trigger string) error {
	logger := logging.FromContext(ctx)

	m.mu.Lock()
	now := m.clock.Now()
	e, err := m.lookup(id, now)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if e.coolingDown(now) {
		remaining := e.cooldownUntil.Sub(now)
		m.mu.Unlock()
		return &domain.RateLimitError{RetryAfter: remaining}
	}
	refreshToken := e.tokens.RefreshToken
	m.mu.Unlock()

	issued, refreshErr := m.refresher.Refresh(ctx, refreshToken)

	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.sessions[id]; !ok || current != e {
		return fmt.Errorf("session ended during refresh: %w", domain.ErrUnauthenticated)
	}
	now = m.clock.Now()

	if refreshErr != nil {
		return m.refreshFailed(ctx, logger, e, now, trigger, refreshErr)
	}

	previous := e.tokens
	e.tokens = ResolveTokens(*issued, now, m.cfg.DefaultAccessTTL)
	if e.tokens.RefreshToken == "" {
		e.tokens.RefreshToken = previous.RefreshToken
		e.tokens.RefreshExpiresAt = previous.RefreshExpiresAt
	}
	e.failures = 0
	e.cooldownUntil = time.Time{}
	e.lastRefreshedAt = now
	m.schedule(e, now)

	m.record(ctx, trigger, "success")
	logger.DebugContext(ctx, "session refreshed",
		slog.String("session_id", id),
		slog.String("trigger", trigger),
		slog.Time("access_expires_at", e.tokens.AccessExpiresAt),
	)
	m.notifier.Notify(e.user.ID, ports.Event{
		Type:    ports.EventSessionRefreshed,
		Payload: map[string]time.Time{"access_expires_at": e.tokens.AccessExpiresAt},
	})
	return nil
}

// refreshFailed applies the failure policy. The caller holds m.mu.
func (m *Manager) refreshFailed(
	ctx context.Context, logger *slog.Logger, e *entry, now time.Time, trigger string, err error,
) error {
	attrs := []any{
		slog.String("operation", "session.Refresh"),
		slog.String("session_id", e.id),
		slog.String("trigger", trigger),
		slog.Any("error", err),
	}

	if errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrForbidden) {
		m.record(ctx, trigger, "rejected")
		logger.InfoContext(ctx, "refresh token rejected, ending session", attrs...)
		m.expire(e, "refresh_rejected")
		return fmt.Errorf("refresh token rejected: %w", domain.ErrUnauthenticated)
	}

	e.failures++
	cooldown := m.backoff(e.failures)
	result := "error"

	var rl *domain.RateLimitError
	if errors.As(err, &rl) {
		cooldown = max(cooldown, rl.RetryAfter)
		result = "throttled"
	}
	e.cooldownUntil = now.Add(cooldown)
	m.record(ctx, trigger, result)

	if !e.tokens.RefreshExpiresAt.IsZero() && !e.cooldownUntil.Before(e.tokens.RefreshExpiresAt) {
		logger.InfoContext(ctx, "refresh token expires before retry, ending session", attrs...)
		m.expire(e, "refresh_token_expired")
		return fmt.Errorf("session expired: %w", domain.ErrUnauthenticated)
	}

	m.schedule(e, now)
	logger.WarnContext(ctx, "session refresh failed",
		append(attrs,
			slog.Int("failures", e.failures),
			slog.Duration("cooldown", cooldown),
		)...,
	)

	if rl != nil {
		return &domain.RateLimitError{RetryAfter: cooldown}
	}
	return fmt.Errorf("refreshing session: %w", err)
}

// backoff returns the cooldown after the given number of consecutive
// failures. It has no jitter.
func (m *Manager) backoff(failures int) time.Duration {
	b := m.cfg.Backoff
	delay := float64(b.InitialInterval) * math.Pow(b.Multiplier, float64(failures-1))
	if delay > float64(b.MaxInterval) {
		return b.MaxInterval
	}
	return time.Duration(delay)
}

func (m *Manager) record(ctx context.Context, trigger, result string) {
	m.metrics.SessionRefreshTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrTrigger.String(trigger),
		telemetry.AttrResult.String(result),
	))
}
