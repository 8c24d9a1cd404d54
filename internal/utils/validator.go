package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

var (
	ErrImageTooLarge = errors.New("image too large")
	ErrNotAnImage    = errors.New("not an image")
)

// ValidateImageUpload 校验上传的海报：大小不超过 maxBytes，
// 声明的 Content-Type 与嗅探到的内容类型都必须是 image/*。
func ValidateImageUpload(file *multipart.FileHeader, maxBytes int64) error {
	if file.Size > maxBytes {
		return ErrImageTooLarge
	}
	if !IsImageMIME(file.Header.Get("Content-Type")) {
		return ErrNotAnImage
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	sniffed, err := SniffContentType(src)
	if err != nil {
		return err
	}
	if !IsImageMIME(sniffed) {
		return ErrNotAnImage
	}
	return nil
}

// SniffContentType 读取前 512 字节判断内容类型
func SniffContentType(r io.Reader) (string, error) {
	buffer := make([]byte, 512)
	n, err := io.ReadFull(r, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}

func IsImageMIME(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
