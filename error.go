package statefulresult

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorName identifies errors created by this package.
const ErrorName = "OperationError"

// Error is the failure value carried by a Result.
// It pairs a numeric status code with a human-readable message.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Not serialized:
	Cause error `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%d: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Name returns ErrorName so callers can tell envelope errors apart
// from other errors without a type assertion.
func (e *Error) Name() string { return ErrorName }

// NewError creates an Error with the given code and message.
// Neither argument is validated or defaulted.
func NewError(code int, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf creates an Error with a formatted message.
func Newf(code int, format string, args ...any) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// Wrap creates an Error that wraps an underlying cause.
// An empty message falls back to the reason phrase for code.
func Wrap(code int, msg string, cause error) *Error {
	if msg == "" {
		msg = StatusText(code)
	}
	return &Error{Code: code, Message: msg, Cause: cause}
}

// Is reports whether any error in err's chain is an *Error with the given code.
func Is(err error, code int) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{
		slog.Int("code", e.Code),
		slog.String("message", e.Message),
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}
