// Package gin provides adapters for sending stateful results from Gin handlers.
package gin

import (
	"net/http"

	statefulresult "github.com/blackwell-systems/stateful-result"
	"github.com/gin-gonic/gin"
)

// Trace wires request ID propagation into Gin's middleware chain.
//
// Example:
//
//	r := gin.New()
//	r.Use(Trace())
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		handler := statefulresult.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Responder returns a statefulresult.Responder that renders through c.
// Strings are sent as text, nil bodies and 1xx/204/304 responses as a bare
// status, errors are mapped through statefulresult.From and everything else
// is sent as JSON.
//
// Gin records render failures on c.Errors instead of returning them; the
// responder returns the failure and, if nothing was written, sends a 500.
func Responder(c *gin.Context) statefulresult.Responder {
	return statefulresult.ResponderFunc(func(status int, body any) error {
		if id := statefulresult.RequestID(c.Request); id != "" {
			c.Header(statefulresult.HeaderRequestID, id)
		}
		if !statefulresult.BodyAllowed(status) {
			c.Status(status)
			return nil
		}
		if err, ok := body.(error); ok {
			body = statefulresult.From(err)
		}

		n := len(c.Errors)
		switch b := body.(type) {
		case nil:
			c.Status(status)
		case *statefulresult.Error:
			if b == nil {
				c.Status(status)
				return nil
			}
			c.JSON(status, b)
		case string:
			c.Data(status, "text/plain; charset=utf-8", []byte(b))
		case []byte:
			c.Data(status, "application/octet-stream", b)
		default:
			c.JSON(status, b)
		}
		if len(c.Errors) == n {
			return nil
		}

		err := c.Errors.Last().Err
		if !c.Writer.Written() {
			c.Writer.Header().Del("Content-Type")
			c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8",
				[]byte(statefulresult.StatusText(http.StatusInternalServerError)))
		}
		return err
	})
}

// Send renders s through c.
//
// Example:
//
//	r.GET("/user/:id", func(c *gin.Context) {
//	    Send(c, lookupUser(c.Param("id")), "")
//	})
func Send(c *gin.Context, s statefulresult.Sender, field statefulresult.Field) error {
	return s.SendResponse(Responder(c), field)
}
