package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Session.validate(),
		c.Login.validate(),
		c.Notify.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst must be >= 1, got %d", cl.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (s *SessionConfig) validate() error {
	var errs []error

	if s.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name must not be empty"))
	}
	if s.RefreshLeeway < 0 {
		errs = append(errs, errors.New("session.refresh_leeway must not be negative"))
	}
	if s.MinRefreshDelay <= 0 {
		errs = append(errs, errors.New("session.min_refresh_delay must be positive"))
	}
	if s.RefreshTimeout <= 0 {
		errs = append(errs, errors.New("session.refresh_timeout must be positive"))
	}
	if s.DefaultAccessTTL <= 0 {
		errs = append(errs, errors.New("session.default_access_ttl must be positive"))
	}
	if s.Backoff.InitialInterval <= 0 {
		errs = append(errs, errors.New("session.backoff.initial_interval must be positive"))
	}
	if s.Backoff.MaxInterval < s.Backoff.InitialInterval {
		errs = append(errs, errors.New("session.backoff.max_interval must be >= initial_interval"))
	}
	if s.Backoff.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("session.backoff.multiplier must be >= 1, got %f", s.Backoff.Multiplier))
	}

	return errors.Join(errs...)
}

func (l *LoginConfig) validate() error {
	var errs []error

	if l.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("login.max_failures must be >= 1, got %d", l.MaxFailures))
	}
	if l.Cooldown <= 0 {
		errs = append(errs, errors.New("login.cooldown must be positive"))
	}
	if l.MaxCooldown < l.Cooldown {
		errs = append(errs, errors.New("login.max_cooldown must be >= cooldown"))
	}

	return errors.Join(errs...)
}

func (n *NotifyConfig) validate() error {
	if !n.Enabled {
		return nil
	}

	var errs []error

	if n.SendBuffer < 1 {
		errs = append(errs, fmt.Errorf("notify.send_buffer must be >= 1, got %d", n.SendBuffer))
	}
	if n.WriteWait <= 0 {
		errs = append(errs, errors.New("notify.write_wait must be positive"))
	}
	if n.PongWait <= 0 {
		errs = append(errs, errors.New("notify.pong_wait must be positive"))
	}
	if n.MaxMessageSize < 1 {
		errs = append(errs, fmt.Errorf("notify.max_message_size must be >= 1, got %d", n.MaxMessageSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
