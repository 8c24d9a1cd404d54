package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"movie-catalog-server/internal/utils"

	"github.com/google/uuid"
)

var ErrForeignReference = errors.New("reference does not belong to this store")

// LocalStore 把上传的海报保存在本地目录，并以 URLPrefix+文件名 的形式对外引用。
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) *LocalStore {
	if root == "" {
		root = "uploads"
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalStore{root: root, urlPrefix: urlPrefix}
}

// Save 以 uuid 生成文件名写入文件，完整写入并关闭后才返回引用。
// 任何一步失败都会清理半成品文件。
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	dst, err := utils.SecureJoin(s.root, filename)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("sync file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close file: %w", err)
	}

	return s.urlPrefix + filename, nil
}

// Remove 删除 Save 返回的引用对应的文件，文件不存在视为成功
func (s *LocalStore) Remove(ref string) error {
	filename, ok := strings.CutPrefix(ref, s.urlPrefix)
	if !ok || filename == "" || strings.ContainsAny(filename, `/\`) {
		return ErrForeignReference
	}

	full, err := utils.SecureJoin(s.root, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
