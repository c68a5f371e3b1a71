// Package main is the entry point for the BFF. It wires all dependencies
// using samber/do v2, starts the HTTP server and the notification hub, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/docflow-bff/internal/adapters/http"
	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/docflow-bff/internal/app"
	"github.com/jsamuelsen11/docflow-bff/internal/notify"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/config"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/health"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/logging"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/telemetry"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
	"github.com/jsamuelsen11/docflow-bff/internal/session"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	accountClientName  = "account-api"
	documentClientName = "document-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, accountClientName))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, documentClientName))

	sessions := do.MustInvoke[*session.Manager](injector)
	registry.Register(sessions)
	if otel.metrics != nil {
		if err := otel.metrics.ObserveActiveSessions(sessions.Count); err != nil {
			return fmt.Errorf("observing sessions: %w", err)
		}
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	if cfg.Notify.Enabled {
		hub := do.MustInvoke[*notify.Hub](injector)
		registry.Register(hub)
		go hub.Run(hubCtx)
		server.OnShutdown(stopHub)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	stopHub()
	if err := sessions.Close(); err != nil {
		logger.Error("session store shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Outbound clients. Each backend service gets its own breaker and
	// rate limiter.
	for _, name := range []string{accountClientName, documentClientName} {
		do.ProvideNamed(injector, name, func(i do.Injector) (*httpclient.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return httpclient.New(&cfg.Client, name, metrics, logger), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (*acl.AccountClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, accountClientName)
		return acl.NewAccountClient(client), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, documentClientName)
		return acl.NewDocumentClient(client), nil
	})

	// Notifications and sessions.
	do.Provide(injector, func(i do.Injector) (*notify.Hub, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return notify.NewHub(cfg.Notify, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Notifier, error) {
		if !cfg.Notify.Enabled {
			return ports.NopNotifier{}, nil
		}
		return do.MustInvoke[*notify.Hub](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*session.Manager, error) {
		account := do.MustInvoke[*acl.AccountClient](i)
		notifier := do.MustInvoke[ports.Notifier](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return session.NewManager(cfg.Session, account, logger,
			session.WithNotifier(notifier),
			session.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LoginThrottle, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return session.NewLoginGuard(cfg.Login, nil, metrics), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		account := do.MustInvoke[*acl.AccountClient](i)
		sessions := do.MustInvoke[*session.Manager](i)
		guard := do.MustInvoke[ports.LoginThrottle](i)
		return app.NewAuthService(account, sessions, guard, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProfileService, error) {
		account := do.MustInvoke[*acl.AccountClient](i)
		return app.NewProfileService(account, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentService, error) {
		docs := do.MustInvoke[ports.DocumentClient](i)
		return app.NewDocumentService(docs, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ApprovalService, error) {
		docs := do.MustInvoke[ports.DocumentClient](i)
		notifier := do.MustInvoke[ports.Notifier](i)
		return app.NewApprovalService(docs, notifier, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		sessions := do.MustInvoke[*session.Manager](i)
		cookie := handlers.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}

		h := adapthttp.Handlers{
			Auth:     handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i), cookie),
			Profile:  handlers.NewProfileHandler(do.MustInvoke[ports.ProfileService](i)),
			Document: handlers.NewDocumentHandler(do.MustInvoke[ports.DocumentService](i)),
			Approval: handlers.NewApprovalHandler(do.MustInvoke[ports.ApprovalService](i)),
			Health:   handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}
		if cfg.Notify.Enabled {
			h.Notification = handlers.NewNotificationHandler(do.MustInvoke[*notify.Hub](i))
		}

		return adapthttp.NewRouter(h, middleware.Session(sessions, cfg.Session.CookieName),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
