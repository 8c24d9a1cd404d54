package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrAbsolutePath   = errors.New("非法路径: 不允许绝对路径")
	ErrOutsideBaseDir = errors.New("非法路径: 目标超出基目录")
	ErrSymlinkInPath  = errors.New("检测到符号链接穿透风险")
)

// SecureJoin 把相对路径拼接到 basePath 下并返回绝对路径。
// 拒绝绝对路径、".." 越界以及 base 到目标之间已存在的符号链接。
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	cleanRel := filepath.Clean(relativePath)
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(relativePath, "/") {
		return "", ErrAbsolutePath
	}

	targetAbs := filepath.Join(baseAbs, cleanRel)
	if err := EnsureNoSymlinkBetween(baseAbs, targetAbs); err != nil {
		return "", err
	}
	return targetAbs, nil
}

// EnsureNoSymlinkBetween 校验 targetPath 位于 basePath 内，
// 且从 target 回溯到 base 的每个已存在节点都不是符号链接。不存在的节点会被跳过。
func EnsureNoSymlinkBetween(basePath, targetPath string) error {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}
	targetAbs, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	if err := ensureWithinBase(baseAbs, targetAbs); err != nil {
		return err
	}

	for current := targetAbs; ; {
		info, statErr := os.Lstat(current)
		switch {
		case statErr == nil && info.Mode()&os.ModeSymlink != 0:
			return fmt.Errorf("%w: %s", ErrSymlinkInPath, current)
		case statErr != nil && !os.IsNotExist(statErr):
			return fmt.Errorf("检查路径失败: %w", statErr)
		}

		if samePath(current, baseAbs) {
			return nil
		}
		parent := filepath.Dir(current)
		if samePath(parent, current) {
			return ErrOutsideBaseDir
		}
		current = parent
	}
}

func ensureWithinBase(baseAbs, targetAbs string) error {
	baseVol, targetVol := filepath.VolumeName(baseAbs), filepath.VolumeName(targetAbs)
	if !strings.EqualFold(baseVol, targetVol) {
		return ErrOutsideBaseDir
	}

	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutsideBaseDir, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return ErrOutsideBaseDir
	}
	return nil
}

func samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
