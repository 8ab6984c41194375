// Package apperr provides the classified error taxonomy shared by the API
// client, the load controllers, and the screens.
//
// Usage:
//
//	// In the API client - classify transport failures
//	return nil, apperr.Network("no response from server").WithCause(err)
//
//	// In screens - branch on the code
//	var e *apperr.Error
//	if apperr.As(err, &e) && e.Code == apperr.CodeUnauthenticated {
//	    sessions.Invalidate()
//	}
package apperr

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	// CodeNetwork means no response was received (connectivity, timeout).
	CodeNetwork Code = "NETWORK"
	// CodeClient is a 4xx response; Message carries the server's message
	// when the body had one.
	CodeClient Code = "CLIENT"
	// CodeServer is a 5xx response.
	CodeServer Code = "SERVER"
	// CodeUnauthenticated means the token is missing or was rejected.
	// The session shell clears the session and redirects to login.
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	// CodeValidation is a client-side form validation failure.
	CodeValidation Code = "VALIDATION"
	// CodeDeviceCapabilityDenied means the OS refused a device permission
	// (camera, gallery, location).
	CodeDeviceCapabilityDenied Code = "DEVICE_CAPABILITY_DENIED"
)

// Error is a classified error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Status  int    `json:"status,omitempty"` // HTTP status when applicable
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Retryable reports whether the user re-invoking the action can plausibly
// succeed. Nothing is fatal; this only drives messaging.
func (e *Error) Retryable() bool {
	switch e.Code {
	case CodeNetwork, CodeServer:
		return true
	default:
		return false
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{Code: e.Code, Status: e.Status, Message: e.Message, Details: details, cause: e.cause}
}

// WithCause returns a copy of the error wrapping an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Status: e.Status, Message: e.Message, Details: e.Details, cause: err}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNetwork          = &Error{Code: CodeNetwork, Message: "no response from server"}
	ErrServer           = &Error{Code: CodeServer, Message: "server error"}
	ErrUnauthenticated  = &Error{Code: CodeUnauthenticated, Message: "not authenticated"}
	ErrValidation       = &Error{Code: CodeValidation, Message: "validation error"}
	ErrCapabilityDenied = &Error{Code: CodeDeviceCapabilityDenied, Message: "device capability denied"}
	ErrClient           = &Error{Code: CodeClient, Message: "request rejected"}
)

// Network creates a network error (no response received).
func Network(msg string) *Error {
	return &Error{Code: CodeNetwork, Message: msg}
}

// Client creates a 4xx error carrying the server's status and message.
func Client(status int, msg string) *Error {
	return &Error{Code: CodeClient, Status: status, Message: msg}
}

// Server creates a 5xx error.
func Server(status int) *Error {
	return &Error{Code: CodeServer, Status: status, Message: fmt.Sprintf("server error (%d)", status)}
}

// Unauthenticated creates an unauthenticated error.
func Unauthenticated(msg string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: msg}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with per-field details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// CapabilityDenied creates a device capability denial for a named capability.
func CapabilityDenied(capability string) *Error {
	return &Error{Code: CodeDeviceCapabilityDenied, Message: capability + " permission denied"}
}

// CodeOf returns the code of err, or empty when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}
