package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goliatone/go-priceform/pkg/predict"
)

func newEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AssignRequestID(), AccessLog(nil), CORS())
	r.GET("/", func(c *gin.Context) {
		*seen = RequestID(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestAssignRequestID(t *testing.T) {
	var seen string
	r := newEngine(&seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(predict.RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if seen != "abc" || rec.Header().Get(predict.RequestIDHeader) != "abc" {
		t.Fatalf("request id = %q, header %q", seen, rec.Header().Get(predict.RequestIDHeader))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("generated id %q: %v", seen, err)
	}
	if rec.Header().Get(predict.RequestIDHeader) != seen {
		t.Fatalf("header %q does not echo %q", rec.Header().Get(predict.RequestIDHeader), seen)
	}
}

func TestCORS_Preflight(t *testing.T) {
	var seen string
	r := newEngine(&seen)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("headers = %v", rec.Header())
	}
	if seen != "" {
		t.Fatal("preflight reached the handler")
	}
}
