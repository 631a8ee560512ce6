package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"db_pass", "hunter2", "plan_id", int64(3), "dangling"})
	if len(out) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("expected password to be redacted, got %v", out[1])
	}
	if out[3] != int64(3) {
		t.Fatalf("expected plan_id untouched, got %v", out[3])
	}
	if out[4] != "dangling" {
		t.Fatalf("expected trailing key kept, got %v", out[4])
	}
}

func TestFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := Nop()

	r := gin.New()
	r.Use(SetToContext(l))
	var got *Logger
	r.GET("/", func(c *gin.Context) {
		got = FromContext(c)
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got != l {
		t.Fatal("expected the logger placed by SetToContext")
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if FromContext(c) == nil {
		t.Fatal("expected a fallback logger when none is set")
	}
}
