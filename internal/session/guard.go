package session

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/config"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/telemetry"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

var _ ports.LoginThrottle = (*LoginGuard)(nil)

type attempts struct {
	failures int
	until    time.Time
	last     time.Time
}

// LoginGuard refuses logins for an email after repeated failures. After
// MaxFailures consecutive failures the account cools down for Cooldown;
// each further failure doubles it, up to MaxCooldown.
type LoginGuard struct {
	cfg     config.LoginConfig
	clock   Clock
	metrics *telemetry.Metrics

	mu      sync.Mutex
	entries map[string]*attempts
}

// NewLoginGuard creates a LoginGuard. clock and metrics may be nil.
func NewLoginGuard(cfg config.LoginConfig, clock Clock, metrics *telemetry.Metrics) *LoginGuard {
	if clock == nil {
		clock = systemClock{}
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	return &LoginGuard{
		cfg:     cfg,
		clock:   clock,
		metrics: metrics,
		entries: make(map[string]*attempts),
	}
}

// Allow returns a *domain.RateLimitError while key is cooling down.
func (g *LoginGuard) Allow(ctx context.Context, key string) error {
	key = user.NormalizeEmail(key)

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	g.prune(now)

	a, ok := g.entries[key]
	if !ok || !now.Before(a.until) {
		return nil
	}
	g.metrics.LoginThrottledTotal.Add(ctx, 1)
	return &domain.RateLimitError{RetryAfter: a.until.Sub(now)}
}

// Failed records a failed attempt and starts or extends the cooldown once
// the failure threshold is reached.
func (g *LoginGuard) Failed(key string) {
	key = user.NormalizeEmail(key)

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	a := g.entry(key)
	a.failures++
	a.last = now

	if a.failures < g.cfg.MaxFailures {
		return
	}
	over := a.failures - g.cfg.MaxFailures
	cooldown := float64(g.cfg.Cooldown) * math.Pow(2, float64(over))
	if cooldown > float64(g.cfg.MaxCooldown) {
		cooldown = float64(g.cfg.MaxCooldown)
	}
	a.until = now.Add(time.Duration(cooldown))
}

// Succeeded forgets key.
func (g *LoginGuard) Succeeded(key string) {
	key = user.NormalizeEmail(key)

	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
}

// Throttle makes key cool down for at least d without counting a failure.
func (g *LoginGuard) Throttle(key string, d time.Duration) {
	if d <= 0 {
		return
	}
	key = user.NormalizeEmail(key)

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	a := g.entry(key)
	a.last = now
	if until := now.Add(d); until.After(a.until) {
		a.until = until
	}
}

func (g *LoginGuard) entry(key string) *attempts {
	a, ok := g.entries[key]
	if !ok {
		a = &attempts{}
		g.entries[key] = a
	}
	return a
}

// prune drops idle entries whose cooldown has passed. The caller holds g.mu.
func (g *LoginGuard) prune(now time.Time) {
	for key, a := range g.entries {
		if !now.Before(a.until) && now.Sub(a.last) > g.cfg.MaxCooldown {
			delete(g.entries, key)
		}
	}
}
