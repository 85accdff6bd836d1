package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
user = "calendar"
password = "secret"
dbname = "calendar"

[schedule]
open_time = "10:00"
close_time = "18:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "10:00", cfg.Schedule.OpenTime)
	assert.Equal(t, "18:00", cfg.Schedule.CloseTime)

	// Незаданные значения берутся из дефолтов
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Schedule.SlotDurationMinutes)
	assert.True(t, cfg.Schedule.IncludeClosingSlot)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db.local"
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "calendar",
		Password: "secret",
		DBName:   "calendar",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=calendar password=secret dbname=calendar sslmode=disable",
		cfg.DSN())
}
