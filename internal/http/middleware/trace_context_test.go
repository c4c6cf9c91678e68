package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/funkyrave/funky-backend/internal/requestdata"
)

func TestAttachTraceContextEchoesCallerIDs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/ping", func(c *gin.Context) {
		td := requestdata.GetTraceData(c.Request.Context())
		if td == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, td.RequestID)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "req-abc")
	req.Header.Set("X-Trace-Id", "trace-xyz")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "req-abc" {
		t.Fatalf("request id not propagated to handler context: got=%q", rec.Body.String())
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-abc" {
		t.Fatalf("unexpected request id header: got=%q", got)
	}
	if got := rec.Header().Get("X-Trace-Id"); got != "trace-xyz" {
		t.Fatalf("unexpected trace id header: got=%q", got)
	}
}

func TestAttachTraceContextGeneratesMissingIDs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got == "" {
		t.Fatalf("expected a generated request id header")
	}
	if got := rec.Header().Get("X-Trace-Id"); got == "" {
		t.Fatalf("expected a generated trace id header")
	}
}
