// Package acl implements the Anti-Corruption Layer that translates between
// the document backend's REST representations and domain types.
// Resource-specific translators live in subpackages (acl/account, acl/docs);
// shared request handling and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers both RFC 7807 problem details and the backend's plain
// {"message": ...} error shape.
type errorBody struct {
	Title   string        `json:"title"`
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Errors  []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error.
type errorDetail struct {
	Location string `json:"location"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (b *errorBody) detail(status int) string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.Message != "":
		return b.Message
	case b.Title != "":
		return b.Title
	default:
		return http.StatusText(status)
	}
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// It reads JSON and problem+json bodies for a human-readable detail.
// For 400/422 responses with field-level errors, it returns a
// *domain.ValidationError. A 429 becomes a *domain.RateLimitError carrying
// the Retry-After hint.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)
	detail := body.detail(resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthenticated)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := httpclient.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		return &domain.RateLimitError{RetryAfter: retryAfter}

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorBody reads a JSON error body. Returns an empty errorBody for any
// other content type or when parsing fails.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}

// toValidationError converts field-level error details to a domain
// ValidationError. It strips the "body." prefix from locations to produce
// clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := d.Field
		if field == "" {
			field = strings.TrimPrefix(d.Location, "body.")
		}
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
