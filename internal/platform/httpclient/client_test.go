package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/docflow-bff/internal/platform/config"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/telemetry"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       1 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func get(t *testing.T, ctx context.Context, client *httpclient.Client, path string) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+path, http.NoBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	return client.Do(ctx, req)
}

func closeBody(resp *http.Response) {
	if resp != nil {
		_ = resp.Body.Close()
	}
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", telemetry.NewNoopMetrics(), testLogger())

	resp, err := get(t, context.Background(), client, "/api/documents")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("got %d %q, want 200 \"ok\"", resp.StatusCode, body)
	}
}

func TestDo_RetryOnRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		failStatus   int
		retryAfter   string
		failCount    int
		wantAttempts int32
	}{
		{name: "5xx retries until success", failStatus: http.StatusBadGateway, failCount: 2, wantAttempts: 3},
		{name: "429 retries until success", failStatus: http.StatusTooManyRequests, failCount: 1, wantAttempts: 2},
		{name: "short Retry-After is honoured", failStatus: http.StatusServiceUnavailable, retryAfter: "0", failCount: 1, wantAttempts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var count atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if int(count.Add(1)) <= tt.failCount {
					if tt.retryAfter != "" {
						w.Header().Set("Retry-After", tt.retryAfter)
					}
					w.WriteHeader(tt.failStatus)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

			resp, err := get(t, context.Background(), client, "/retry")
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			defer closeBody(resp)

			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want 200", resp.StatusCode)
			}
			if got := count.Load(); got != tt.wantAttempts {
				t.Errorf("request count = %d, want %d", got, tt.wantAttempts)
			}
		})
	}
}

func TestDo_LongRetryAfterStopsImmediately(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	start := time.Now()
	resp, err := get(t, context.Background(), client, "/throttled")
	defer closeBody(resp)

	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.RetryAfter != 30*time.Second {
		t.Errorf("RetryAfter = %v, want 30s", statusErr.RetryAfter)
	}
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("resp = %v, want the 429 response", resp)
	}
	if got := count.Load(); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Do() took %v, want it to return without waiting", elapsed)
	}
}

func TestDo_WithoutRetry(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	resp, err := get(t, httpclient.WithoutRetry(context.Background()), client, "/api/auth/refresh")
	defer closeBody(resp)

	if err == nil {
		t.Fatal("Do() error = nil, want StatusError")
	}
	if got := count.Load(); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
}

func TestDo_NoRetryOn4xx(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	resp, err := get(t, context.Background(), client, "/api/users/me")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if got := count.Load(); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
}

func TestDo_MaxRetriesExhausted(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	resp, err := get(t, context.Background(), client, "/unavail")
	if err == nil {
		t.Fatal("Do() error = nil, want non-nil after max retries")
	}
	if got := count.Load(); got != 3 {
		t.Errorf("request count = %d, want 3", got)
	}
	if resp == nil {
		t.Fatal("resp is nil, want last response with body intact")
	}
	defer closeBody(resp)

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "unavailable" {
		t.Errorf("body = %q, want %q", body, "unavailable")
	}
}

func TestDo_RequestBodyPreservedAcrossRetries(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		n := len(bodies)
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		srv.URL+"/api/documents/doc-1/approve", strings.NewReader(`{"comment":"ok"}`))
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 2 {
		t.Fatalf("request count = %d, want 2", len(bodies))
	}
	for i, b := range bodies {
		if b != `{"comment":"ok"}` {
			t.Errorf("attempt %d body = %q", i+1, b)
		}
	}
}

func TestDo_HeaderInjection(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
	ctx = httpclient.WithAccessToken(ctx, "access-abc")

	resp, err := get(t, ctx, client, "/headers")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	closeBody(resp)

	if v := got.Get("X-Request-ID"); v != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", v)
	}
	if v := got.Get("X-Correlation-ID"); v != "corr-456" {
		t.Errorf("X-Correlation-ID = %q, want corr-456", v)
	}
	if v := got.Get("Authorization"); v != "Bearer access-abc" {
		t.Errorf("Authorization = %q, want bearer token", v)
	}
}

func TestDo_ExplicitAuthorizationWins(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())
	ctx := httpclient.WithAccessToken(context.Background(), "from-context")

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/x", http.NoBody)
	req.Header.Set("Authorization", "Bearer explicit")
	resp, err := client.Do(ctx, req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	closeBody(resp)

	if gotAuth != "Bearer explicit" {
		t.Errorf("Authorization = %q, want the explicit header", gotAuth)
	}
}

func TestDo_NoHeadersWithoutContext(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	resp, err := get(t, context.Background(), client, "/noheaders")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	closeBody(resp)

	for _, h := range []string{"X-Request-ID", "X-Correlation-ID", "Authorization"} {
		if v := got.Get(h); v != "" {
			t.Errorf("%s = %q, want empty", h, v)
		}
	}
}

func TestDo_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1

	client := httpclient.New(cfg, "docflow-api", nil, testLogger())

	resp, _ := get(t, context.Background(), client, "/cb")
	closeBody(resp)

	before := count.Load()
	resp, err := get(t, context.Background(), client, "/cb")
	closeBody(resp)

	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want gobreaker.ErrOpenState", err)
	}
	if count.Load() != before {
		t.Error("server was hit while circuit breaker should be open")
	}
	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() = %v, want failing error", err)
	}
}

func TestDo_ThrottlingDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1

	client := httpclient.New(cfg, "docflow-api", nil, testLogger())

	for range 3 {
		resp, err := get(t, context.Background(), client, "/throttled")
		closeBody(resp)
		if errors.Is(err, gobreaker.ErrOpenState) {
			t.Fatal("breaker opened on 429 responses")
		}
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestDo_CircuitBreakerRecovery(t *testing.T) {
	t.Parallel()

	var shouldFail atomic.Bool
	shouldFail.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if shouldFail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1

	client := httpclient.New(cfg, "docflow-api", nil, testLogger())

	resp, _ := get(t, context.Background(), client, "/recover")
	closeBody(resp)

	time.Sleep(150 * time.Millisecond)
	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("HealthCheck() = %v, want degraded error while half-open", err)
	}

	shouldFail.Store(false)

	resp, err := get(t, context.Background(), client, "/recover")
	if err != nil {
		t.Fatalf("Do() error = %v, want nil after recovery", err)
	}
	closeBody(resp)

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil once closed", err)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "docflow-api", nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := get(t, ctx, client, "/cancel")
	closeBody(resp)
	if err == nil {
		t.Fatal("Do() error = nil, want context error")
	}
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://localhost"), "docflow-api", nil, testLogger())

	if got := client.Name(); got != "docflow-api" {
		t.Errorf("Name() = %q, want docflow-api", got)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for a fresh client", err)
	}
}
