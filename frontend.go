package main

import (
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// loadFrontend 返回 server.frontend_dir 对应的文件系统，未配置或目录不可用时返回 nil
func loadFrontend(dir string) fs.FS {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Printf("⚠️ 警告: 前端目录 %q 不可用，仅提供 API 服务", dir)
		return nil
	}
	return os.DirFS(dir)
}

// setupFrontend 挂载 /assets 并预读取 index.html
func setupFrontend(r *gin.Engine, distFS fs.FS) []byte {
	if distFS == nil {
		return nil
	}

	if assetsFS, err := fs.Sub(distFS, "assets"); err == nil {
		r.StaticFS("/assets", http.FS(assetsFS))
	}

	indexData, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		log.Printf("⚠️ 警告: 无法读取前端 index.html: %v", err)
		return nil
	}
	return indexData
}
