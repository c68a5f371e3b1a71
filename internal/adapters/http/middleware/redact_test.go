package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/middleware"
)

const redacted = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		values []string
		want   string
	}{
		{name: "authorization", header: "Authorization", values: []string{"Bearer secret-token"}, want: redacted},
		{name: "proxy authorization", header: "Proxy-Authorization", values: []string{"Basic abc"}, want: redacted},
		{name: "api key", header: "X-Api-Key", values: []string{"key"}, want: redacted},
		{name: "session cookie", header: "Cookie", values: []string{"docflow_session=s1"}, want: redacted},
		{name: "set cookie", header: "Set-Cookie", values: []string{"docflow_session=s1; HttpOnly"}, want: redacted},
		{name: "websocket key", header: "Sec-Websocket-Key", values: []string{"dGhlIHNhbXBsZQ=="}, want: redacted},
		{name: "plain", header: "Content-Type", values: []string{"application/json"}, want: "application/json"},
		{name: "multi value", header: "Accept", values: []string{"text/html", "application/json"}, want: "text/html,application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(http.Header{tt.header: tt.values})

			if len(attrs) != 1 {
				t.Fatalf("len(attrs) = %d, want 1", len(attrs))
			}
			if attrs[0].Key != tt.header || attrs[0].Value.String() != tt.want {
				t.Errorf("attr = %s=%q, want %s=%q", attrs[0].Key, attrs[0].Value.String(), tt.header, tt.want)
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Request-Id":  {"r1"},
		"Authorization": {"Bearer secret"},
		"Content-Type":  {"application/json"},
	})

	got := make([]string, len(attrs))
	for i, a := range attrs {
		got[i] = a.Key
	}
	if strings.Join(got, ",") != "Authorization,Content-Type,X-Request-Id" {
		t.Errorf("order = %v", got)
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", http.NoBody)
	req.Header.Set("Cookie", "docflow_session=secret-session")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "secret-session") {
		t.Error("session cookie leaked into logs")
	}
	if !strings.Contains(out, "headers.Cookie="+redacted) {
		t.Errorf("log output missing redacted cookie: %s", out)
	}
	if !strings.Contains(out, "headers.Accept=application/json") {
		t.Errorf("log output missing Accept header: %s", out)
	}
}
