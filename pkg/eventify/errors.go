package eventify

import (
	"errors"
	"fmt"
)

// Error types for common failure scenarios.
var (
	// ErrNotAuthenticated indicates no auth token is configured.
	ErrNotAuthenticated = errors.New("not authenticated: no token configured")

	// ErrNoToken indicates no saved token was found in the environment
	// or token file.
	ErrNoToken = errors.New("no saved token found")
)

// HTTPError represents a transport-level failure: the request reached the
// server but the response was not a valid API envelope.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsRetryable returns true if the HTTP error is retryable.
func (e *HTTPError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// Error wraps an Eventify API failure with operation context.
//
// An application-level rejection (the envelope's success flag was false)
// has Err == nil and Message carrying the server's message. A transport
// failure wraps the underlying error.
type Error struct {
	// Op is the operation that failed, e.g. "events.create".
	Op string

	// StatusCode is the HTTP status of the response, if one arrived.
	StatusCode int

	// Message is the human-readable message from the envelope, or a
	// description of the underlying failure.
	Message string

	// Err is the underlying error for transport failures.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: [%d] %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newRejection creates an Error for an envelope with success=false.
func newRejection(op string, statusCode int, message string) *Error {
	if message == "" {
		message = "request rejected"
	}
	return &Error{Op: op, StatusCode: statusCode, Message: message}
}

// wrapError wraps a transport or decode error with operation context.
func wrapError(op string, err error) *Error {
	return &Error{Op: op, Err: err, Message: err.Error()}
}

// IsApplicationError returns true if the error is an application-level
// rejection: the request completed but the envelope's success flag was false.
func IsApplicationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Err == nil
}

// IsTransportError returns true if the request never produced a valid
// envelope (network failure, timeout, or a non-envelope response body).
func IsTransportError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return true
	}
	var e *Error
	return errors.As(err, &e) && e.Err != nil
}

// Message returns the server-provided message from an application-level
// rejection, or fallback for any other error. Views use this to decide
// what to show the end user.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Err == nil && e.Message != "" {
		return e.Message
	}
	return fallback
}

// isRetryable returns true if the error is likely transient.
func isRetryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.IsRetryable()
	}
	var e *Error
	if errors.As(err, &e) {
		// Application rejections are final; only transport failures retry.
		return e.Err != nil
	}
	return false
}
