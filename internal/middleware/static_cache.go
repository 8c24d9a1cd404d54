package middleware

import (
	"movie-catalog-server/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为海报等静态资源添加 Cache-Control 头
// 缓存策略由 upload.cache_control 决定，留空则不设置
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := config.Get().Upload.CacheControl; cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
