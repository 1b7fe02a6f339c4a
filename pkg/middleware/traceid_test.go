package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func traceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDMinted(t *testing.T) {
	r := traceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Trace-ID")
	if header == "" {
		t.Fatal("no X-Trace-ID header set")
	}
	if w.Body.String() != header {
		t.Errorf("context trace %q != header %q", w.Body.String(), header)
	}
}

func TestTraceIDInboundReused(t *testing.T) {
	r := traceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "client-trace-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-ID"); got != "client-trace-123" {
		t.Errorf("inbound trace not reused, got %q", got)
	}
	if w.Body.String() != "client-trace-123" {
		t.Errorf("context trace = %q", w.Body.String())
	}
}

func TestTraceIDOversizeInboundReplaced(t *testing.T) {
	r := traceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", strings.Repeat("x", 200))
	r.ServeHTTP(w, req)

	got := w.Header().Get("X-Trace-ID")
	if got == "" || len(got) > 64 {
		t.Errorf("oversize inbound trace should be replaced, got %q", got)
	}
}
