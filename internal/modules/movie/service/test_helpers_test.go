package service

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"movie-catalog-server/internal/modules/movie/dto"
	"movie-catalog-server/internal/modules/movie/repo"
	"movie-catalog-server/internal/platform/storage"
	platformservice "movie-catalog-server/internal/platform/service"
	"movie-catalog-server/internal/testutils"
)

type failingImageStore struct{}

func (failingImageStore) Save(*multipart.FileHeader) (string, error) {
	return "", errors.New("disk full")
}

func (failingImageStore) Remove(string) error { return nil }

// setupTestService 返回基于内存 SQLite 与临时上传目录的服务
func setupTestService(t *testing.T) (*Service, repo.MovieStore, string) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	uploadDir := filepath.Join(t.TempDir(), "uploads")
	store := repo.NewMovieRepository(gdb)
	return New(store, storage.NewLocalStore(uploadDir, "/uploads/")), store, uploadDir
}

func validInput() dto.MovieInput {
	return dto.MovieInput{
		Title:    "X",
		Director: "Y",
		Year:     "2020",
		Genre:    "Drama",
		Rating:   "7.5",
		Image:    "http://a/b.jpg",
	}
}

func pngHeader(t *testing.T) *multipart.FileHeader {
	return testutils.FileHeader(t, "poster.png", "image/png", testutils.MinimalPNG())
}

func assertCode(t *testing.T, err error, want platformservice.ErrorCode) {
	t.Helper()
	se, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError(%s)，实际为 %v", want, err)
	}
	if se.Code != want {
		t.Fatalf("期望错误码 %s，实际为 %s (%s)", want, se.Code, se.Message)
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("读取目录失败: %v", err)
	}
	return len(entries)
}
