package db

import (
	"path/filepath"
	"testing"

	"movie-catalog-server/internal/config"
	"movie-catalog-server/internal/model"
)

// 测试内容：验证使用 sqlite 临时文件初始化数据库并创建 movies 表。
func TestInitDB_SQLiteTempFile(t *testing.T) {
	tmp := t.TempDir()
	config.Set(config.Config{Database: config.DatabaseConfig{
		Type:     "sqlite",
		Filename: filepath.Join(tmp, "db", "test.db"),
	}})

	InitDB()
	defer func() { _ = Close() }()

	if DB == nil {
		t.Fatalf("期望 DB 已初始化")
	}
	if !DB.Migrator().HasTable(&model.Movie{}) {
		t.Fatalf("期望 movies 表存在")
	}
	for _, col := range []string{"title", "director", "year", "genre", "rating", "image", "created_at"} {
		if !DB.Migrator().HasColumn(&model.Movie{}, col) {
			t.Fatalf("期望 movies 表包含列 %s", col)
		}
	}
}

// 测试内容：验证不支持的数据库类型返回错误而不是静默回退。
func TestDialector_UnknownType(t *testing.T) {
	if _, err := Dialector(config.DatabaseConfig{Type: "oracle"}); err == nil {
		t.Fatalf("期望未知数据库类型返回错误")
	}
}

// 测试内容：验证 MySQL 与 PostgreSQL 方言可以在不连接的情况下构造。
func TestDialector_NetworkDrivers(t *testing.T) {
	for _, typ := range []string{"mysql", "postgres"} {
		d, err := Dialector(config.DatabaseConfig{Type: typ, Host: "127.0.0.1", Port: "1", User: "u", Name: "n"})
		if err != nil || d == nil {
			t.Fatalf("%s 方言构造失败: %v", typ, err)
		}
		if d.Name() != typ {
			t.Fatalf("期望方言名称 %s，实际为 %s", typ, d.Name())
		}
	}
}
