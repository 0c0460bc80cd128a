package statefulresult

import (
	"context"
	"errors"
	"net"
	"net/http"
)

func newDefault(code int, msg string) *Error {
	if msg == "" {
		msg = StatusText(code)
	}
	return NewError(code, msg)
}

// BadRequest creates a bad request error (400).
func BadRequest(msg string) *Error { return newDefault(CodeBadRequest, msg) }

// Unauthorized creates an unauthorized error (401).
func Unauthorized(msg string) *Error { return newDefault(CodeUnauthorized, msg) }

// Forbidden creates a forbidden error (403).
func Forbidden(msg string) *Error { return newDefault(CodeForbidden, msg) }

// NotFound creates a not found error (404).
func NotFound(msg string) *Error { return newDefault(CodeNotFound, msg) }

// Conflict creates a conflict error (409).
func Conflict(msg string) *Error { return newDefault(CodeConflict, msg) }

// UnsupportedMediaType creates an unsupported media type error (415).
func UnsupportedMediaType(msg string) *Error {
	return newDefault(CodeUnsupportedMediaType, msg)
}

// Internal creates an internal server error (500).
func Internal(msg string) *Error { return newDefault(CodeInternalServerError, msg) }

// NotImplemented creates a not implemented error (501).
func NotImplemented(msg string) *Error { return newDefault(CodeNotImplemented, msg) }

// Unavailable creates a service unavailable error (503).
func Unavailable(msg string) *Error { return newDefault(http.StatusServiceUnavailable, msg) }

// Timeout creates a gateway timeout error (504).
func Timeout(msg string) *Error { return newDefault(http.StatusGatewayTimeout, msg) }

// From maps arbitrary errors into an *Error.
// An *Error anywhere in the chain is returned as is. Context and network
// timeouts map to 504, cancellation to 499, everything else to a 500
// wrapping err.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(http.StatusGatewayTimeout, "", err)
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(CodeClientClosedRequest, "Request canceled", err)
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Wrap(http.StatusGatewayTimeout, "", err)
	}

	return Wrap(CodeInternalServerError, "", err)
}

// FromError creates a Result from err. A nil err yields a success with
// no code; otherwise the failure takes its code and message from From(err)
// and carries err itself unchanged.
func FromError[T any](err error) *Result[T] {
	if err == nil {
		return NewSuccess(Props[T]{})
	}
	e := From(err)
	return NewFail(Props[T]{Code: e.Code, Message: e.Message, Error: err})
}

// Of creates a success holding v when err is nil, and FromError(err)
// otherwise.
func Of[T any](v T, err error) *Result[T] {
	if err != nil {
		return FromError[T](err)
	}
	return NewSuccess(Props[T]{Data: v})
}
