package pagerduty

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for common misconfiguration.
var (
	ErrNoCredentials = errors.New("pagerduty: no credentials configured")
	ErrNoSubdomain   = errors.New("pagerduty: no subdomain configured")
	ErrNoServiceKey  = errors.New("pagerduty: no service key configured")
)

// APIError represents a PagerDuty REST API error.
//
// StatusCode and Message default to the raw HTTP status of the failed
// call. When the response body carries a structured error envelope
// ({"error": {"code", "message", "errors"}}), they are replaced by the
// envelope's code and message and Errors carries its sub-errors.
type APIError struct {
	StatusCode int      `json:"code"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("pagerduty: API error %d: %s (%s)", e.StatusCode, e.Message, strings.Join(e.Errors, " | "))
	}
	return fmt.Sprintf("pagerduty: API error %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates authentication failure (401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("pagerduty: authentication failed: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// NotFoundError indicates the requested resource was not found (404).
type NotFoundError struct {
	APIError
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	if e.ResourceType != "" && e.ResourceID != "" {
		return fmt.Sprintf("pagerduty: %s not found: %s", e.ResourceType, e.ResourceID)
	}
	return fmt.Sprintf("pagerduty: resource not found: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ValidationError indicates invalid request data (400), or a request
// rejected locally before any I/O.
type ValidationError struct {
	APIError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pagerduty: validation error: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ValidationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// RateLimitError indicates the API rate limit was exceeded (429).
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("pagerduty: rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "pagerduty: rate limit exceeded"
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *RateLimitError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ServerError indicates an internal server error (5xx).
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("pagerduty: server error %d: %s", e.StatusCode, e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ServerError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// EventError indicates the events endpoint accepted the request but
// reported an application-level failure (status != "success").
type EventError struct {
	Status  string
	Message string
	Errors  []string
}

func (e *EventError) Error() string {
	txt := fmt.Sprintf("pagerduty: %s: %s", e.Status, e.Message)
	for _, sub := range e.Errors {
		txt += "\n* " + sub
	}
	return txt
}

// errorEnvelope is the structured error body the REST API returns.
// Pointer fields distinguish absent keys from zero values: the envelope
// only replaces the HTTP-level defaults when code and message are both
// present.
type errorEnvelope struct {
	Error *struct {
		Code    *int     `json:"code"`
		Message *string  `json:"message"`
		Errors  []string `json:"errors"`
	} `json:"error"`
}

// hasErrorEnvelope reports whether a response body carries a top-level
// "error" key. The REST API uses this envelope even on some 2xx
// responses.
func hasErrorEnvelope(body []byte) bool {
	var probe struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &probe) != nil {
		return false
	}
	return len(probe.Error) > 0 && string(probe.Error) != "null"
}

// parseError converts a failed REST call into the appropriate error type.
//
// The raw HTTP status is always preserved as a default; the structured
// envelope is a best-effort enhancement, and any failure decoding it
// (malformed body, missing keys) is silently ignored.
func parseError(statusCode int, body []byte, headers http.Header) error {
	base := APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}

	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil && env.Error != nil &&
		env.Error.Code != nil && env.Error.Message != nil {
		base.StatusCode = *env.Error.Code
		base.Message = *env.Error.Message
		base.Errors = env.Error.Errors
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case statusCode == http.StatusBadRequest:
		return &ValidationError{APIError: base}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{
			APIError:   base,
			RetryAfter: parseRetryAfter(headers.Get("Retry-After")),
		}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{APIError: base}
	default:
		return &base
	}
}

// parseRetryAfter parses the Retry-After header value.
// It handles both seconds (integer) and HTTP-date formats.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	// Try parsing as seconds first
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 1123)
	if t, err := time.Parse(time.RFC1123, value); err == nil {
		duration := time.Until(t)
		if duration > 0 {
			return duration
		}
	}

	return 0
}
