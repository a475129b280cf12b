package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axcelcuno/tienda/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()
	assert.Equal(t, "localhost:8000", cfg.HTTPAddr)
	assert.Equal(t, "frontend", cfg.FrontendDir)
	assert.Equal(t, "tienda", cfg.DBName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3creta")

	cfg := config.Load()
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DSN(), "password=s3creta")
	assert.Contains(t, cfg.DSN(), "dbname=tienda")
}
