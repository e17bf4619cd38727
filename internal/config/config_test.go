package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/speaksmart")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
}

func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	old := configPaths
	configPaths = []string{dir}
	t.Cleanup(func() { configPaths = old })
}

func TestLoadDefaults(t *testing.T) {
	withConfigDir(t, t.TempDir())
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Env)
	require.Equal(t, ":3000", cfg.Addr())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	require.Equal(t, 20.0, cfg.Server.RateLimit)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, 720*time.Hour, cfg.Auth.SessionTTL)
	require.False(t, cfg.Auth.EnforceRoles)
	require.Equal(t, 30*time.Second, cfg.Cache.ListTTL)
	require.Equal(t, 1, cfg.Workers.Count)
	require.False(t, cfg.Categories.Strict)
	require.Equal(t, "postgres://localhost/speaksmart", cfg.Database.URL)
}

func TestLoadEnvOverrides(t *testing.T) {
	withConfigDir(t, t.TempDir())
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("LIST_CACHE_TTL", "0s")
	t.Setenv("ENFORCE_ROLES", "true")
	t.Setenv("STRICT_CATEGORIES", "true")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("RATE_LIMIT", "0")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, "pw", cfg.Redis.Password)
	require.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	require.Zero(t, cfg.Cache.ListTTL)
	require.True(t, cfg.Auth.EnforceRoles)
	require.True(t, cfg.Categories.Strict)
	require.Equal(t, 4, cfg.Workers.Count)
	require.Zero(t, cfg.Server.RateLimit)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)
	yaml := "log_level: debug\nserver:\n  port: \"9000\"\nworkers:\n  count: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.test.yaml"), []byte(yaml), 0o600))
	setRequired(t)
	t.Setenv("ENV", "test")
	t.Setenv("WORKER_COUNT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Env)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":9000", cfg.Addr())
	// environment wins over the file
	require.Equal(t, 5, cfg.Workers.Count)
}

func TestLoadErrors(t *testing.T) {
	withConfigDir(t, t.TempDir())

	cases := []struct {
		name string
		env  map[string]string
	}{
		{"missing database", map[string]string{"DATABASE_URL": ""}},
		{"missing redis", map[string]string{"REDIS_ADDR": ""}},
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"bad redis db", map[string]string{"REDIS_DB": "bad"}},
		{"negative redis db", map[string]string{"REDIS_DB": "-1"}},
		{"zero workers", map[string]string{"WORKER_COUNT": "0"}},
		{"bad ttl", map[string]string{"SESSION_TTL": "forever"}},
		{"zero ttl", map[string]string{"SESSION_TTL": "0s"}},
		{"negative cache ttl", map[string]string{"LIST_CACHE_TTL": "-1s"}},
		{"negative rate", map[string]string{"RATE_LIMIT": "-3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadBrokenConfigFile(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.yaml"), []byte("server: [\n"), 0o600))
	setRequired(t)

	_, err := Load()
	require.Error(t, err)
}
