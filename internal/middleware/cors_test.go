package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog-server/internal/config"

	"github.com/gin-gonic/gin"
)

func corsRequest(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// 测试内容：验证默认配置允许任意来源。
func TestCORS_AllowAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setTestConfig(t, config.Config{Server: config.ServerConfig{CORSOrigins: "*"}})

	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := corsRequest(r, "http://localhost:3000")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("期望 *，实际为 %q", got)
	}
}

// 测试内容：验证配置了来源列表时只放行列表中的来源。
func TestCORS_AllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setTestConfig(t, config.Config{Server: config.ServerConfig{CORSOrigins: "http://a.example, http://b.example"}})

	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := corsRequest(r, "http://b.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://b.example" {
		t.Fatalf("期望 http://b.example，实际为 %q", got)
	}

	w = corsRequest(r, "http://evil.example")
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" http://a , ,http://b ")
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Fatalf("非预期结果: %v", got)
	}
	if got := splitOrigins(""); len(got) != 0 {
		t.Fatalf("期望空切片，实际为 %v", got)
	}
}
