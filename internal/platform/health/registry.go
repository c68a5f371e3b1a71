// Package health tracks the readiness of the BFF's dependencies: the document
// backend, the session store and the notification hub.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// defaultCheckTimeout bounds a single checker when the caller's context has
// no earlier deadline.
const defaultCheckTimeout = 2 * time.Second

// Registry is a thread-safe [ports.HealthRegistry]. Checkers run concurrently
// on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{timeout: defaultCheckTimeout}
}

// Register adds a checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered checker and returns results keyed by name.
// A nil value means healthy. When two checkers share a name the one
// registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = c.HealthCheck(ctx)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
