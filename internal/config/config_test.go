package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_POOL_SIZE", "HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "nba", cfg.DBName)
	assert.Equal(t, DefaultPoolSize, cfg.PoolSize)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_HOST=db.internal\nDB_USER=stats\nDB_PASSWORD=s3cret\nDB_NAME=hoops\nHTTP_PORT=8088\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "HTTP_PORT"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "stats", cfg.DBUser)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "hoops", cfg.DBName)
	assert.Equal(t, "8088", cfg.HTTPPort)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST=from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DBHost)
}

func TestLoadInvalidPoolSize(t *testing.T) {
	clearEnv(t)

	t.Setenv("DB_POOL_SIZE", "five")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("DB_POOL_SIZE", "0")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost:    "localhost",
		DBPort:    "5432",
		DBUser:    "nba",
		DBName:    "stats",
		DBSSLMode: "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=nba dbname=stats sslmode=disable", cfg.DSN())

	cfg.DBPassword = "it's a pass"
	assert.Equal(t,
		`host=localhost port=5432 user=nba dbname=stats sslmode=disable password='it\'s a pass'`,
		cfg.DSN())
}
