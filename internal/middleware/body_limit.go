package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"movie-catalog-server/internal/config"
	"movie-catalog-server/internal/consts"

	"github.com/gin-gonic/gin"
)

const (
	// 非 multipart 请求体（JSON / urlencoded）的上限
	maxPlainBodyBytes int64 = 1 << 20
	// multipart 请求中文本字段与分隔符占用的余量
	multipartSlackBytes int64 = 1 << 20
)

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

// BodyLimitMiddleware 限制 JSON 与表单请求体大小，multipart 请求交给 UploadBodyLimitMiddleware
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isMultipart(c) {
			c.Next()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPlainBodyBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制带海报上传的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isMultipart(c) {
			c.Next()
			return
		}

		upload := config.Get().Upload
		maxBytes := upload.MaxUploadBytes() + multipartSlackBytes

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf(consts.MsgImageTooLarge, upload.MaxUploadBytes()>>20)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
