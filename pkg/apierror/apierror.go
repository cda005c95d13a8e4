// Package apierror turns failed Paykit API responses into structured
// errors. Classify never fails: whatever shape the response body has, the
// caller gets back an *APIError with at least a status code and a message.
package apierror

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is the terminal error for a request the API rejected. It is
// produced once per failed call, after any retries are exhausted.
type APIError struct {
	// StatusCode is the HTTP status the API responded with.
	StatusCode int

	// Message is the human-readable description extracted from the
	// response body, or a static per-status fallback.
	Message string

	// Type is the machine-readable error type or code, when the API
	// provided one.
	Type string

	// RawBody holds the unmodified response body for debugging.
	RawBody string

	// Details carries the structured error payload (validation errors,
	// context objects) verbatim, when present.
	Details json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paykit: HTTP %d: %s", e.StatusCode, e.Message)
}

// Candidate fields searched in order. APIs are inconsistent about where
// they put the interesting parts of an error payload, so each concern has
// its own priority list.
var (
	messageFields = []string{"message", "error", "detail", "description"}
	typeFields    = []string{"type", "code", "error_code", "error_type"}
	detailFields  = []string{"details", "data", "context", "validation_errors"}
)

// statusMessages backs the fallback path for bodies that are not JSON
// objects (HTML error pages, proxies, empty bodies).
var statusMessages = map[int]string{
	400: "Invalid or malformed request",
	401: "Authentication failed",
	403: "Forbidden",
	404: "Resource not found",
	405: "Method not allowed",
	409: "Conflict",
	429: "Rate limit exceeded",
	500: "Internal server error",
	502: "Invalid response from upstream server",
	503: "Service unavailable",
	504: "Upstream request timed out",
}

// Classify builds an *APIError from a non-success response. It degrades
// gracefully: parse failures fall through to the static message table and
// are never surfaced as errors themselves.
func Classify(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		RawBody:    string(body),
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err == nil && payload != nil {
		apiErr.Message = extractMessage(payload)
		apiErr.Type = firstString(payload, typeFields)
		for _, field := range detailFields {
			if raw, ok := payload[field]; ok && len(raw) > 0 {
				apiErr.Details = raw
				break
			}
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = fallbackMessage(status, body)
	}
	return apiErr
}

func extractMessage(payload map[string]json.RawMessage) string {
	if msg := firstString(payload, messageFields); msg != "" {
		return msg
	}

	// Validation-style responses carry an errors array instead of a single
	// message; join the entries so none are silently dropped.
	raw, ok := payload["errors"]
	if !ok {
		return ""
	}
	var entries []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Message != "" {
			parts = append(parts, entry.Message)
		}
	}
	return strings.Join(parts, "; ")
}

func firstString(payload map[string]json.RawMessage, fields []string) string {
	for _, field := range fields {
		raw, ok := payload[field]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

func fallbackMessage(status int, body []byte) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("HTTP %d: %s", status, strings.TrimSpace(string(body)))
}
