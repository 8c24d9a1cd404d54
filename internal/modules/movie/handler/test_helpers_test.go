package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"movie-catalog-server/internal/modules/movie/repo"
	movieservice "movie-catalog-server/internal/modules/movie/service"
	"movie-catalog-server/internal/platform/storage"
	"movie-catalog-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

const testMaxUpload = 1024 * 1024

type testEnv struct {
	router    *gin.Engine
	store     repo.MovieStore
	uploadDir string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	store := repo.NewMovieRepository(gdb)
	uploadDir := filepath.Join(t.TempDir(), "uploads")
	h := New(movieservice.New(store, storage.NewLocalStore(uploadDir, "/uploads/")), testMaxUpload)

	r := gin.New()
	r.GET("/api/movies", h.ListMovies)
	r.GET("/api/movies/:id", h.GetMovie)
	r.POST("/api/movies", h.CreateMovie)
	r.PUT("/api/movies/:id", h.UpdateMovie)
	r.DELETE("/api/movies/:id", h.DeleteMovie)

	return &testEnv{router: r, store: store, uploadDir: uploadDir}
}

func (e *testEnv) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return e.do(method, path, bytes.NewReader(b), "application/json")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("解析响应失败: %v body=%s", err, w.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("期望 %d，实际为 %d body=%s", want, w.Code, w.Body.String())
	}
}

func movieFields() map[string]string {
	return map[string]string{
		"title":    "X",
		"director": "Y",
		"year":     "2020",
		"genre":    "Drama",
		"rating":   "7.5",
	}
}

