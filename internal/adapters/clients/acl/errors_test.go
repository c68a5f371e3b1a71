package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
)

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "422 maps to ErrValidation", statusCode: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "401 maps to ErrUnauthenticated", statusCode: http.StatusUnauthorized, wantErr: domain.ErrUnauthenticated},
		{name: "403 maps to ErrForbidden", statusCode: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "429 maps to ErrRateLimited", statusCode: http.StatusTooManyRequests, wantErr: domain.ErrRateLimited},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{},
				Body:       http.NoBody,
			}

			got := TranslateHTTPError(resp)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_RetryAfter(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"45"}},
		Body:       http.NoBody,
	}

	var rl *domain.RateLimitError
	if err := TranslateHTTPError(resp); !errors.As(err, &rl) {
		t.Fatalf("TranslateHTTPError() = %v, want *RateLimitError", err)
	}
	if rl.RetryAfter != 45*time.Second {
		t.Errorf("RetryAfter = %v, want 45s", rl.RetryAfter)
	}
}

func TestTranslateHTTPError_BodyParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		contentType string
		body        string
		wantSubstr  string
	}{
		{
			name:        "extracts detail from RFC 7807 body",
			statusCode:  http.StatusNotFound,
			contentType: "application/problem+json",
			body:        `{"type":"about:blank","title":"Not Found","status":404,"detail":"document 42 not found"}`,
			wantSubstr:  "document 42 not found",
		},
		{
			name:        "extracts message from plain JSON body",
			statusCode:  http.StatusConflict,
			contentType: "application/json; charset=utf-8",
			body:        `{"message":"email already registered"}`,
			wantSubstr:  "email already registered",
		},
		{
			name:       "falls back to status text for non-JSON body",
			statusCode: http.StatusNotFound,
			body:       "Not Found",
			wantSubstr: "Not Found",
		},
		{
			name:        "falls back to status text for malformed JSON",
			statusCode:  http.StatusConflict,
			contentType: "application/json",
			body:        "{",
			wantSubstr:  "Conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			header := http.Header{}
			if tt.contentType != "" {
				header.Set("Content-Type", tt.contentType)
			}

			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     header,
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			got := TranslateHTTPError(resp)

			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationErrorWithDetails(t *testing.T) {
	t.Parallel()

	body := `{
		"title": "Bad Request",
		"status": 400,
		"detail": "validation failed",
		"errors": [
			{"location": "body.email", "message": "is taken"},
			{"field": "phone", "message": "is invalid"}
		]
	}`

	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}

	got := TranslateHTTPError(resp)

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error is not *ValidationError: %v", got)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(verr.Fields))
	}
	if verr.Fields["email"] != "is taken" {
		t.Errorf("Fields[email] = %q, want %q", verr.Fields["email"], "is taken")
	}
	if verr.Fields["phone"] != "is invalid" {
		t.Errorf("Fields[phone] = %q, want %q", verr.Fields["phone"], "is invalid")
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: http.StatusTeapot, Header: http.Header{}, Body: http.NoBody}

	got := TranslateHTTPError(resp)

	if !strings.Contains(got.Error(), "unexpected status 418") {
		t.Errorf("error = %q", got.Error())
	}
}
