// Package echo provides adapters for sending stateful results from Echo handlers.
package echo

import (
	"net/http"

	statefulresult "github.com/blackwell-systems/stateful-result"
	echofw "github.com/labstack/echo/v4"
)

// Trace adapts request ID propagation to Echo's middleware interface.
func Trace(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		var err error
		handler := statefulresult.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.SetRequest(r)
			err = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return err
	}
}

// Responder returns a statefulresult.Responder that renders through c.
// 1xx, 204 and 304 responses are sent without a body.
func Responder(c echofw.Context) statefulresult.Responder {
	return statefulresult.ResponderFunc(func(status int, body any) error {
		if id := statefulresult.RequestID(c.Request()); id != "" {
			c.Response().Header().Set(statefulresult.HeaderRequestID, id)
		}
		if !statefulresult.BodyAllowed(status) {
			return c.NoContent(status)
		}
		if err, ok := body.(error); ok {
			body = statefulresult.From(err)
		}
		switch b := body.(type) {
		case nil:
			return c.NoContent(status)
		case *statefulresult.Error:
			if b == nil {
				return c.NoContent(status)
			}
			return c.JSON(status, b)
		case string:
			return c.String(status, b)
		case []byte:
			return c.Blob(status, echofw.MIMEOctetStream, b)
		default:
			return c.JSON(status, b)
		}
	})
}

// Send renders s through c. Errors come from the responder only.
//
// Example:
//
//	e.GET("/user/:id", func(c echo.Context) error {
//	    return Send(c, lookupUser(c.Param("id")), "")
//	})
func Send(c echofw.Context, s statefulresult.Sender, field statefulresult.Field) error {
	return s.SendResponse(Responder(c), field)
}
