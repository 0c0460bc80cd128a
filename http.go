package statefulresult

import (
	"encoding/json"
	"net/http"
)

const (
	// HeaderRequestID is the header used to carry request IDs.
	HeaderRequestID = "X-Request-Id"
)

type httpResponder struct {
	w http.ResponseWriter
	r *http.Request
}

// HTTPResponder returns a Responder writing to w.
//
// Strings are sent as text/plain and byte slices as
// application/octet-stream. Errors are mapped through From and sent as
// JSON like any other body. Nil bodies, 1xx, 204 and 304 responses carry
// headers only. The request ID of r, if any, is echoed in X-Request-Id.
func HTTPResponder(w http.ResponseWriter, r *http.Request) Responder {
	return &httpResponder{w: w, r: r}
}

func (h *httpResponder) Respond(status int, body any) error {
	if id := RequestID(h.r); id != "" {
		h.w.Header().Set(HeaderRequestID, id)
	}

	if err, ok := body.(error); ok {
		body = From(err)
	}
	if isAbsent(body) || !BodyAllowed(status) {
		h.w.WriteHeader(status)
		return nil
	}

	switch b := body.(type) {
	case string:
		h.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		h.w.WriteHeader(status)
		_, err := h.w.Write([]byte(b))
		return err
	case []byte:
		h.w.Header().Set("Content-Type", "application/octet-stream")
		h.w.WriteHeader(status)
		_, err := h.w.Write(b)
		return err
	}

	buf, err := json.Marshal(body)
	if err != nil {
		// Nothing is committed yet, so the client still sees a failure.
		http.Error(h.w, StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	h.w.Header().Set("Content-Type", "application/json")
	h.w.WriteHeader(status)
	_, err = h.w.Write(buf)
	return err
}

// BodyAllowed reports whether a response with status may carry a body.
// 1xx, 204 and 304 responses may not.
func BodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}

// Write renders s to w using its default body.
func Write(w http.ResponseWriter, r *http.Request, s Sender) error {
	return WriteField(w, r, s, "")
}

// WriteField renders s to w using field as the body.
func WriteField(w http.ResponseWriter, r *http.Request, s Sender, field Field) error {
	return s.SendResponse(HTTPResponder(w, r), field)
}

// Handler adapts a function returning an envelope to an http.Handler.
// A nil Sender, including a nil *Result, writes 204 No Content.
func Handler(fn func(r *http.Request) Sender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := fn(r)
		if s == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		// Encoding failures already wrote a 500; what remains is the connection.
		_ = Write(w, r, s)
	})
}
