package middleware

import (
	"testing"

	"movie-catalog-server/internal/config"
)

func setTestConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	prev := config.Get()
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })
}
