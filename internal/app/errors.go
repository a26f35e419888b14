package app

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a use-case failure for callers and exit codes.
type ErrorCode string

const (
	ErrInvalidArgument    ErrorCode = "INVALID_ARGUMENT"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrFailedPrecondition ErrorCode = "FAILED_PRECONDITION"
	ErrInternal           ErrorCode = "INTERNAL"
)

// Error is the single error type returned across the service boundary.
// Details carries structured context such as the conflicting dates.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Code: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func FailedPrecondition(format string, args ...any) *Error {
	return &Error{Code: ErrFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure. The cause stays reachable through
// errors.Is/As but its text is folded into the message.
func Internal(cause error, msg string) *Error {
	e := &Error{Code: ErrInternal, Message: msg, cause: cause}
	if cause != nil {
		e.Message = msg + ": " + cause.Error()
	}
	return e
}

// WithDetail attaches a structured detail and returns the same error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the code of the first *Error in err's chain, or
// ErrInternal for anything else. A nil error has no code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}
