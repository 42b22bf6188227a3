package apiclient

import (
	"errors"
	"fmt"
)

// Kind classifies client errors. The discriminant is checked by value so
// instances classify correctly across module boundaries.
type Kind int

const (
	// KindHTTP indicates a completed response with a non-2xx status.
	KindHTTP Kind = iota + 1
	// KindTransport indicates a network-level failure before any response.
	KindTransport
	// KindTimeout indicates the per-attempt deadline expired.
	KindTimeout
	// KindCancelled indicates caller-initiated cancellation.
	KindCancelled
	// KindValidation indicates a client-side request construction error.
	KindValidation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindCancelled:
		return "cancelled"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a structured client error with classification.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// StatusCode is the HTTP status code (0 for non-HTTP errors).
	StatusCode int
	// Message describes the error.
	Message string
	// Payload is the decoded response payload, when one could be read.
	// Only set for KindHTTP; may be nil.
	Payload any
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("apiclient: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("apiclient: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an HTTP outcome error from a non-2xx response.
func NewHTTPError(statusCode int, message string, payload any) *Error {
	return &Error{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Message:    message,
		Payload:    payload,
	}
}

// NewTransportError creates a network-level error.
func NewTransportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewTimeoutError creates a timeout error for an expired attempt deadline.
func NewTimeoutError(timeoutMillis int64, err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("Request timed out after %dms", timeoutMillis),
		Err:     err,
	}
}

// NewCancelledError creates a cancellation error.
func NewCancelledError(err error) *Error {
	return &Error{
		Kind:    KindCancelled,
		Message: "request cancelled",
		Err:     err,
	}
}

// NewValidationError creates a request construction error.
func NewValidationError(msg string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: msg,
	}
}

// IsHTTPError checks if an error is an HTTP outcome error.
func IsHTTPError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindHTTP
}

// IsTransport checks if an error is a network-level error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransport
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTimeout
}

// IsCancelled checks if an error is a cancellation error.
func IsCancelled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindCancelled
}

// IsValidation checks if an error is a request construction error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}

// StatusCode extracts the HTTP status code from an error, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
