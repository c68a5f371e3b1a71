package ports

import "context"

// HealthChecker is a dependency the readiness probe reports on: each
// backend API client, the session manager and the notifications hub.
type HealthChecker interface {
	// Name keys the checker in the readiness response, e.g. "account-api".
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns the results by name. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
