// Package statefulresult provides a uniform envelope for the outcome of
// any operation: a tagged success/failure Result carrying data, an error,
// a numeric status code and a human-readable message, plus accessors for
// pulling subsets of that state back out.
package statefulresult

import (
	"encoding/json"
	"log/slog"
	"reflect"
)

// Status is the discriminant of a Result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "fail"
)

// Props holds the construction properties of a Result.
// Every field is optional.
type Props[T any] struct {
	Status  Status
	Data    T
	Error   error
	Code    int
	Message string
}

// Result is an immutable success/failure envelope.
// A Result is safe for concurrent reads; no method modifies it.
type Result[T any] struct {
	status  Status
	data    T
	err     error
	code    int
	message string
}

// Failure is an alias of Result for failure-oriented call sites.
type Failure[T any] = Result[T]

// New creates a Result from p without deriving anything.
// A status other than StatusSuccess is stored as StatusFailure, and a
// typed nil error such as (*Error)(nil) is stored as no error.
func New[T any](p Props[T]) *Result[T] {
	status := p.Status
	if status != StatusSuccess {
		status = StatusFailure
	}
	err := p.Error
	if isAbsent(err) {
		err = nil
	}
	return &Result[T]{
		status:  status,
		data:    p.Data,
		err:     err,
		code:    p.Code,
		message: p.Message,
	}
}

// NewSuccess creates a successful Result.
// If p.Message is empty it is derived from the reason phrase of p.Code.
func NewSuccess[T any](p Props[T]) *Result[T] {
	p.Status = StatusSuccess
	if p.Message == "" {
		p.Message = StatusText(p.Code)
	}
	return New(p)
}

// NewFail creates a failed Result.
// If p.Message is empty it is derived from the reason phrase of p.Code.
// If p.Error is nil a new *Error is created from the code and message;
// a supplied error is carried as is.
func NewFail[T any](p Props[T]) *Result[T] {
	p.Status = StatusFailure
	if p.Message == "" {
		p.Message = StatusText(p.Code)
	}
	if isAbsent(p.Error) {
		p.Error = NewError(p.Code, p.Message)
	}
	return New(p)
}

// IsSuccess reports whether the Result was built as a success.
// It looks at the status only.
func (r *Result[T]) IsSuccess() bool {
	return r.status == StatusSuccess
}

func (r *Result[T]) Status() Status  { return r.status }
func (r *Result[T]) Data() T         { return r.data }
func (r *Result[T]) Err() error      { return r.err }
func (r *Result[T]) Code() int       { return r.code }
func (r *Result[T]) Message() string { return r.message }

// ok implements the leniency shared by the *OrErr accessors: a failure
// with no attached error is not treated as an error.
func (r *Result[T]) ok() bool {
	return r.IsSuccess() || r.err == nil
}

// Value returns the payload, or the contained error when the Result is a
// failure with an attached error.
func (r *Result[T]) Value() (T, error) {
	if !r.ok() {
		var zero T
		return zero, r.err
	}
	return r.data, nil
}

// LogValue implements slog.LogValuer.
func (r *Result[T]) LogValue() slog.Value {
	if r == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{slog.String("status", string(r.status))}
	if r.code != 0 {
		attrs = append(attrs, slog.Int("code", r.code))
	}
	if r.message != "" {
		attrs = append(attrs, slog.String("message", r.message))
	}
	if r.err != nil {
		attrs = append(attrs, slog.Any("error", r.err))
	}
	return slog.GroupValue(attrs...)
}

type resultJSON struct {
	Status  Status `json:"status"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// MarshalJSON renders the envelope. Errors that are not *Error are
// mapped through From so causes are never serialized.
func (r *Result[T]) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Status:  r.status,
		Code:    r.code,
		Message: r.message,
		Error:   From(r.err),
	}
	if !isAbsent(r.data) {
		out.Data = r.data
	}
	return json.Marshal(out)
}

// isAbsent reports whether v is nil, including typed nils.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
