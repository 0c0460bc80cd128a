// Package chi provides thin adapters for using stateful results with chi.
//
// Chi uses standard net/http handlers, so the root package works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	statefulresult "github.com/blackwell-systems/stateful-result"
)

// Trace is statefulresult.RequestIDMiddleware under a chi-friendly name.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.Trace)
func Trace(next http.Handler) http.Handler {
	return statefulresult.RequestIDMiddleware(next)
}

// Send renders s to w.
func Send(w http.ResponseWriter, r *http.Request, s statefulresult.Sender, field statefulresult.Field) error {
	return statefulresult.WriteField(w, r, s, field)
}

// Handler adapts a function returning an envelope to a chi handler.
//
// Example:
//
//	r.Get("/user/{id}", chi.Handler(func(r *http.Request) statefulresult.Sender {
//	    return lookupUser(chi.URLParam(r, "id"))
//	}))
func Handler(fn func(r *http.Request) statefulresult.Sender) http.HandlerFunc {
	return statefulresult.Handler(fn).ServeHTTP
}
