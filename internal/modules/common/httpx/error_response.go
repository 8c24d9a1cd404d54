package httpx

import (
	"log"
	"net/http"

	"movie-catalog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError 按业务错误码写出统一的错误响应。
// 非业务错误与内部错误只返回 fallbackMessage，详细原因仅记录到服务端日志。
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	serviceErr, ok := service.AsServiceError(err)
	if !ok || serviceErr.Code == service.ErrorCodeInternal {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
		return
	}
	c.JSON(serviceErrorStatus(serviceErr.Code), gin.H{"error": serviceErr.Message})
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
