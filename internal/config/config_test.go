package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STOREFRONT_POSTGRES_URL", "postgres://localhost:5432/store")
	t.Setenv("STOREFRONT_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, core.Development, cfg.Environment)
	assert.Equal(t, currency.INR, cfg.Currency.Unit)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, 3, cfg.Redis.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "sid", cfg.Session.Cookie)
	assert.False(t, cfg.Session.Secure)
	assert.Equal(t, 10*time.Second, cfg.Checkout.LockTTL)
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "STOREFRONT_POSTGRES_URL=postgres://db/store\n" +
		"STOREFRONT_REDIS_URL=redis://cache:6379/1\n" +
		"STOREFRONT_ENVIRONMENT=production\n" +
		"STOREFRONT_CURRENCY=EUR\n" +
		"STOREFRONT_SESSION_TTL=30m\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv sets process variables; register them for cleanup first
	for _, key := range []string{
		"STOREFRONT_POSTGRES_URL",
		"STOREFRONT_REDIS_URL",
		"STOREFRONT_ENVIRONMENT",
		"STOREFRONT_CURRENCY",
		"STOREFRONT_SESSION_TTL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, core.Production, cfg.Environment)
	assert.Equal(t, currency.EUR, cfg.Currency.Unit)
	assert.Equal(t, "postgres://db/store", cfg.Postgres.URL)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing postgres url",
			env: map[string]string{
				"STOREFRONT_REDIS_URL": "redis://localhost:6379/0",
			},
		},
		{
			name: "invalid currency",
			env: map[string]string{
				"STOREFRONT_POSTGRES_URL": "postgres://localhost/store",
				"STOREFRONT_REDIS_URL":    "redis://localhost:6379/0",
				"STOREFRONT_CURRENCY":     "NOPE",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STOREFRONT_POSTGRES_URL", "")
			require.NoError(t, os.Unsetenv("STOREFRONT_POSTGRES_URL"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
		})
	}
}
