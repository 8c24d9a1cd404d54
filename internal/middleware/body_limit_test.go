package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog-server/internal/config"

	"github.com/gin-gonic/gin"
)

func multipartPayload(t *testing.T, size int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", "big.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write(bytes.Repeat([]byte("a"), size))
	_ = w.Close()
	return body, w.FormDataContentType()
}

// 测试内容：验证 Content-Length 超过上传上限时直接返回 413。
func TestUploadBodyLimitMiddleware_RejectsTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setTestConfig(t, config.Config{Upload: config.UploadConfig{MaxSizeMB: 1}})

	r := gin.New()
	r.POST("/upload", UploadBodyLimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	body, ct := multipartPayload(t, 3*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Image must not exceed 1MB")) {
		t.Fatalf("非预期响应: %s", w.Body.String())
	}
}

// 测试内容：验证上限以内的上传请求正常放行。
func TestUploadBodyLimitMiddleware_AllowsWithinLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setTestConfig(t, config.Config{Upload: config.UploadConfig{MaxSizeMB: 1}})

	r := gin.New()
	r.POST("/upload", UploadBodyLimitMiddleware(), func(c *gin.Context) {
		if _, err := c.FormFile("image"); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	body, ct := multipartPayload(t, 512*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证非 multipart 请求不受上传中间件影响。
func TestUploadBodyLimitMiddleware_SkipsPlainBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setTestConfig(t, config.Config{Upload: config.UploadConfig{MaxSizeMB: 1}})

	r := gin.New()
	r.POST("/x", UploadBodyLimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	payload := bytes.Repeat([]byte("a"), 3*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}
