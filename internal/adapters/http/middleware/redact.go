package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redactedValue = "[REDACTED]"

// sensitiveHeaders are lowercase header names whose values are credentials.
// The session cookie and the websocket handshake key both count.
var sensitiveHeaders = map[string]bool{
	"authorization":          true,
	"proxy-authorization":    true,
	"x-api-key":              true,
	"cookie":                 true,
	"set-cookie":             true,
	"sec-websocket-key":      true,
	"sec-websocket-protocol": true,
}

// RedactHeaders returns headers as log attributes sorted by name, with
// credential values replaced. Multi-value headers are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redactedValue
		if !sensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}

// headersGroup wraps RedactHeaders in a single "headers" group attribute.
func headersGroup(headers http.Header) slog.Attr {
	attrs := RedactHeaders(headers)
	args := make([]any, len(attrs))
	for i := range attrs {
		args[i] = attrs[i]
	}
	return slog.Group("headers", args...)
}
