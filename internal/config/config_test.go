package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"DATABASE_URL", "POSTGRES_URL", "PGDATABASE_URL", "PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE",
	"REDIS_URL", "REDISHOST", "REDISPORT", "REDISPASSWORD", "REDISDB", "REDIS_SENTINEL_ADDRS", "REDIS_MASTER_NAME",
	"PORT", "ENV", "LOG_LEVEL",
	"STATUS_COLOR_DEFAULT", "STATUS_COLOR_OPACITY", "STATUS_COLOR_STORE", "STATUS_COLOR_REDIS_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	require.NotNil(t, cfg)
	assert.Equal(t, "postgres://postgres@localhost/eccube?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Empty(t, cfg.RedisSentinelAddrs)
	assert.Equal(t, "mymaster", cfg.RedisMasterName)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "#999999", cfg.DefaultColor)
	assert.Equal(t, 0.1, cfg.Opacity)
	assert.Equal(t, StorePostgres, cfg.ColorStore)
	assert.Equal(t, "order_status_color", cfg.RedisColorKey)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoad_DatabaseURLFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("PGHOST", "db")
	t.Setenv("PGPASSWORD", "secret")

	cfg := Load()

	assert.Equal(t, "postgres://postgres:secret@db:5432/eccube?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_RedisFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDISHOST", "cache")
	t.Setenv("REDIS_SENTINEL_ADDRS", "s1:26379, s2:26379,")

	cfg := Load()

	assert.Equal(t, "redis://cache:6379/0", cfg.RedisURL)
	assert.Equal(t, []string{"s1:26379", "s2:26379"}, cfg.RedisSentinelAddrs)
}

func TestLoad_ColorSettings(t *testing.T) {
	tests := []struct {
		name        string
		color       string
		opacity     string
		store       string
		wantColor   string
		wantOpacity float64
		wantStore   string
	}{
		{name: "custom values", color: "ABC", opacity: "0.25", store: "REDIS", wantColor: "#ABC", wantOpacity: 0.25, wantStore: StoreRedis},
		{name: "invalid color", color: "grey", opacity: "", store: "", wantColor: "#999999", wantOpacity: 0.1, wantStore: StorePostgres},
		{name: "opacity above range", color: "", opacity: "3", store: "mysql", wantColor: "#999999", wantOpacity: 1, wantStore: StorePostgres},
		{name: "opacity below range", color: "", opacity: "-0.5", store: "", wantColor: "#999999", wantOpacity: 0, wantStore: StorePostgres},
		{name: "opacity not a number", color: "", opacity: "half", store: "", wantColor: "#999999", wantOpacity: 0.1, wantStore: StorePostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("STATUS_COLOR_DEFAULT", tt.color)
			t.Setenv("STATUS_COLOR_OPACITY", tt.opacity)
			t.Setenv("STATUS_COLOR_STORE", tt.store)

			cfg := Load()

			assert.Equal(t, tt.wantColor, cfg.DefaultColor)
			assert.Equal(t, tt.wantOpacity, cfg.Opacity)
			assert.Equal(t, tt.wantStore, cfg.ColorStore)
		})
	}
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, log.DebugLevel, (&Config{LogLevel: "debug"}).Level())
	assert.Equal(t, log.InfoLevel, (&Config{LogLevel: "loud"}).Level())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to ""
	require.NoError(t, os.Unsetenv("STATUS_COLOR_DEFAULT"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATUS_COLOR_DEFAULT=#123456\n"), 0o600))

	assert.True(t, LoadDotEnv(path))
	assert.Equal(t, "#123456", Load().DefaultColor)
	assert.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
