package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a morsesub error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrDecodeFailed   ErrorCode = "DECODE_FAILED"   // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
	ErrTimeout        ErrorCode = "TIMEOUT"         // 504
)

// MorseError represents a structured error with code, status, and details.
type MorseError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *MorseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *MorseError {
	return &MorseError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewTooFewMessages creates a 400 error for a chain shorter than two messages.
func NewTooFewMessages(got int) *MorseError {
	return &MorseError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: fmt.Sprintf("at least two messages are required, got %d", got),
		Details: map[string]any{"min_messages": 2, "messages": got},
	}
}

// NewDecodeFailed creates a 422 error for an identifier that is neither a
// known message name nor a valid symbol string.
func NewDecodeFailed(identifier string) *MorseError {
	return &MorseError{
		Code:    ErrDecodeFailed,
		Status:  422,
		Message: fmt.Sprintf("unknown or malformed message %q", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewTimeout creates a 504 error when a search exceeds its deadline.
// A non-positive seconds means the deadline came from the caller.
func NewTimeout(seconds int) *MorseError {
	msg := "search deadline exceeded"
	if seconds > 0 {
		msg = fmt.Sprintf("search did not finish within %ds", seconds)
	}
	return &MorseError{
		Code:    ErrTimeout,
		Status:  504,
		Message: msg,
		Details: map[string]any{"timeout_seconds": seconds},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *MorseError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &MorseError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if err (or anything it wraps) is a MorseError with the given code.
func Is(err error, code ErrorCode) bool {
	var mErr *MorseError
	if stderrors.As(err, &mErr) {
		return mErr.Code == code
	}
	return false
}
