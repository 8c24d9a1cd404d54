package service

import (
	"errors"
	"fmt"
	"testing"
)

// 测试内容：验证包装后的业务错误仍可被识别并保留底层原因。
func TestAsServiceError_Wrapped(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("create: %w", NewInternalError("Failed to add movie", cause))

	se, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("期望识别为 ServiceError")
	}
	if se.Code != ErrorCodeInternal || se.Message != "Failed to add movie" {
		t.Fatalf("非预期错误内容: %+v", se)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 errors.Is 可以找到底层原因")
	}
}

func TestAsServiceError_PlainError(t *testing.T) {
	if _, ok := AsServiceError(errors.New("x")); ok {
		t.Fatalf("普通错误不应被识别为 ServiceError")
	}
}

func TestServiceError_ErrorString(t *testing.T) {
	if got := NewValidationError("Image is required").Error(); got != "Image is required" {
		t.Fatalf("非预期错误文本: %q", got)
	}
	if got := NewInternalError("boom", errors.New("db")).Error(); got != "boom: db" {
		t.Fatalf("非预期错误文本: %q", got)
	}
}
