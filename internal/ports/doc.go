// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Client ports are implemented by outbound adapters and called by the application layer.
// SessionStore, LoginThrottle and Notifier are implemented by platform-side
// components and consumed by both.
package ports
