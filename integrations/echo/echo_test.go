package echo

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	statefulresult "github.com/blackwell-systems/stateful-result"
	"github.com/labstack/echo/v4"
)

type user struct {
	ID string `json:"id"`
}

func TestTrace(t *testing.T) {
	e := echo.New()
	e.Use(Trace)

	e.GET("/test", func(c echo.Context) error {
		if statefulresult.RequestID(c.Request()) == "" {
			t.Error("expected request ID to be set")
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestTraceWithExistingHeader(t *testing.T) {
	e := echo.New()
	e.Use(Trace)

	e.GET("/test", func(c echo.Context) error {
		if id := statefulresult.RequestID(c.Request()); id != "existing-id-123" {
			t.Errorf("expected existing-id-123, got %s", id)
		}
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(statefulresult.HeaderRequestID, "existing-id-123")
	e.ServeHTTP(httptest.NewRecorder(), req)
}

func TestTracePropagatesHandlerError(t *testing.T) {
	e := echo.New()
	e.Use(Trace)

	e.GET("/test", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rec.Code)
	}
}

func TestSendSuccess(t *testing.T) {
	e := echo.New()
	e.Use(Trace)

	e.GET("/user/:id", func(c echo.Context) error {
		return Send(c, statefulresult.NewSuccess(statefulresult.Props[user]{Data: user{ID: c.Param("id")}}), "")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/user/42", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Header().Get(statefulresult.HeaderRequestID) == "" {
		t.Error("expected request ID in response header")
	}

	var got user
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != "42" {
		t.Errorf("expected id 42, got %s", got.ID)
	}
}

func TestSendFailure(t *testing.T) {
	e := echo.New()

	e.GET("/user/:id", func(c echo.Context) error {
		return Send(c, statefulresult.NewFail(statefulresult.Props[user]{Code: http.StatusNotFound, Message: "user not found"}), "")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/user/9", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if rec.Body.String() != "user not found" {
		t.Errorf("expected body 'user not found', got %q", rec.Body.String())
	}
}

func TestSendErrorField(t *testing.T) {
	e := echo.New()

	e.GET("/fail", func(c echo.Context) error {
		res := statefulresult.NewFail(statefulresult.Props[any]{Code: http.StatusNotFound})
		return Send(c, res, statefulresult.FieldError)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["code"] != float64(http.StatusNotFound) {
		t.Errorf("expected code 404, got %v", response["code"])
	}
	if response["message"] != "Not Found" {
		t.Errorf("expected message 'Not Found', got %v", response["message"])
	}
}

func TestSendNoContent(t *testing.T) {
	e := echo.New()

	e.DELETE("/user/:id", func(c echo.Context) error {
		return Send(c, statefulresult.NewSuccess(statefulresult.Props[any]{Code: http.StatusNoContent}), statefulresult.FieldError)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("DELETE", "/user/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestSendReturnsResponderError(t *testing.T) {
	sinkErr := errors.New("sink closed")
	res := statefulresult.NewSuccess(statefulresult.Props[int]{Data: 1})

	err := res.SendResponse(statefulresult.ResponderFunc(func(int, any) error { return sinkErr }), "")
	if err != sinkErr {
		t.Errorf("expected responder error, got %v", err)
	}
}

func TestSendBodilessStatusOverServer(t *testing.T) {
	e := echo.New()

	sendErrs := make(chan error, 2)
	e.DELETE("/user/:id", func(c echo.Context) error {
		err := Send(c, statefulresult.NewSuccess(statefulresult.Props[any]{Code: http.StatusNoContent}), "")
		sendErrs <- err
		return err
	})
	e.GET("/user/:id", func(c echo.Context) error {
		err := Send(c, statefulresult.NewSuccess(statefulresult.Props[any]{Code: http.StatusNotModified}), statefulresult.FieldMessage)
		sendErrs <- err
		return err
	})

	srv := httptest.NewServer(e)
	defer srv.Close()

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodDelete, http.StatusNoContent},
		{http.MethodGet, http.StatusNotModified},
	}

	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, srv.URL+"/user/1", nil)
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != tt.want {
			t.Errorf("expected status %d, got %d", tt.want, resp.StatusCode)
		}
		if err := <-sendErrs; err != nil {
			t.Errorf("%s: unexpected send error: %v", tt.method, err)
		}
	}
}
