package statefulresult

import "net/http"

// Responder is a sink that sets a status code and sends a body.
type Responder interface {
	Respond(status int, body any) error
}

// ResponderFunc adapts a function to a Responder.
type ResponderFunc func(status int, body any) error

func (f ResponderFunc) Respond(status int, body any) error { return f(status, body) }

// Sender is implemented by every *Result.
type Sender interface {
	SendResponse(res Responder, field Field) error
}

// SendResponse renders r through res exactly once.
//
// The status is r's code, or 200 for success and 500 for failure when the
// code is unset. If field names one of r's own fields (status, data, error,
// code, message) that value is the body. Otherwise a success sends its data,
// falling back to its message and then the reason phrase, and a failure
// sends its message, falling back to the reason phrase.
//
// A nil Result sends 204 with no body.
//
// Errors returned by res are passed through unchanged.
func (r *Result[T]) SendResponse(res Responder, field Field) error {
	if r == nil {
		return res.Respond(http.StatusNoContent, nil)
	}

	code := r.code
	if code == 0 {
		if r.IsSuccess() {
			code = http.StatusOK
		} else {
			code = http.StatusInternalServerError
		}
	}

	body, ok := r.ownField(field)
	if !ok {
		switch {
		case r.IsSuccess() && !isAbsent(r.data):
			body = r.data
		case r.message != "":
			body = r.message
		default:
			body = StatusText(code)
		}
	}
	return res.Respond(code, body)
}

func (r *Result[T]) ownField(f Field) (any, bool) {
	if f == FieldStatus {
		return string(r.status), true
	}
	if f == FieldResult {
		return nil, false
	}
	return r.lookup(f)
}
