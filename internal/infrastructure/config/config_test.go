package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "optica-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[app]
environment = "production"

[http]
port = 9090

[database]
host = "db.internal"
name = "optica_prod"
password = "secret"

[log]
level = "warn"
format = "console"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("OPTICA_DATABASE_PASSWORD", "from-env")
	t.Setenv("OPTICA_HTTP_PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 3000, cfg.HTTP.Port)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("OPTICA_LOG_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "optica",
		Password: "pw",
		Name:     "optica",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=optica password=pw dbname=optica sslmode=disable",
		cfg.DSN())
	assert.Equal(t,
		"postgres://optica:pw@localhost:5432/optica?sslmode=disable",
		cfg.URL())
}
