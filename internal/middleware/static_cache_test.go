package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog-server/internal/config"

	"github.com/gin-gonic/gin"
)

func TestStaticCacheMiddleware_SetsCacheControl(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setTestConfig(t, config.Config{Upload: config.UploadConfig{CacheControl: "public, max-age=60"}})

	r := gin.New()
	r.Use(StaticCacheMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if got := w.Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Fatalf("Cache-Control = %q", got)
	}
}

// 测试内容：验证未配置缓存策略时不写入 Cache-Control。
func TestStaticCacheMiddleware_EmptyPolicy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setTestConfig(t, config.Config{})

	r := gin.New()
	r.Use(StaticCacheMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if got := w.Header().Get("Cache-Control"); got != "" {
		t.Fatalf("期望不设置 Cache-Control，实际为 %q", got)
	}
}
