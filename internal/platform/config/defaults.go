package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10

	defaultLoginMaxFailures = 5

	defaultNotifySendBuffer     = 256
	defaultNotifyMaxMessageSize = 4096
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by every later layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst":                defaultRateLimitBurst,

		"session.cookie_name":              "docflow_session",
		"session.cookie_secure":            true,
		"session.refresh_leeway":           "60s",
		"session.min_refresh_delay":        "5s",
		"session.refresh_timeout":          "10s",
		"session.default_access_ttl":       "15m",
		"session.backoff.initial_interval": "2s",
		"session.backoff.max_interval":     "2m",
		"session.backoff.multiplier":       defaultRetryMultiplier,

		"login.max_failures": defaultLoginMaxFailures,
		"login.cooldown":     "30s",
		"login.max_cooldown": "15m",

		"notify.enabled":          true,
		"notify.send_buffer":      defaultNotifySendBuffer,
		"notify.write_wait":       "10s",
		"notify.pong_wait":        "60s",
		"notify.max_message_size": defaultNotifyMaxMessageSize,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "docflow-bff",
	}
}
