package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCacheCapturesWriteStringBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	r := gin.New()
	r.GET("/cache-writestring", Cache(), func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
		c.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := c.Writer.WriteString("plain text body"); err != nil {
			t.Fatalf("WriteString failed: %v", err)
		}
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/cache-writestring", nil))
	if first.Code != http.StatusOK || first.Body.String() != "plain text body" {
		t.Fatalf("first response = %d %q", first.Code, first.Body.String())
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/cache-writestring", nil))
	if second.Code != http.StatusOK {
		t.Fatalf("second response status = %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want the second hit served from cache", calls)
	}
	if second.Body.String() != "plain text body" {
		t.Fatalf("cached body = %q, want the original body", second.Body.String())
	}
}
