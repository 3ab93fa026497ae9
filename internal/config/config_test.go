package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, StorageInMemory, c.Storage)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "warn", c.DBLogLevel)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 10, c.HashCost)
	assert.False(t, c.Seed)
}

func TestLoadConfig_DefaultsWithoutInput(t *testing.T) {
	c, err := LoadConfig(nil, env(nil))
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, StorageInMemory, c.Storage)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	c, err := LoadConfig(nil, env(map[string]string{
		"PORT":         "9090",
		"DATABASE_URL": "postgres://u:p@db:5432/posts",
		"STORAGE":      "postgres",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, StoragePostgres, c.Storage)
	assert.Equal(t, "postgres://u:p@db:5432/posts", c.DatabaseDSN)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	args := []string{"-a", ":7000", "-storage", "postgres", "-d", "postgres://flag", "-t", "3s", "-b", "4", "-seed"}
	c, err := LoadConfig(args, env(map[string]string{"PORT": "9090", "DATABASE_URL": "postgres://env"}))
	require.NoError(t, err)
	assert.Equal(t, ":7000", c.Addr)
	assert.Equal(t, "postgres://flag", c.DatabaseDSN)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, 4, c.HashCost)
	assert.True(t, c.Seed)
}

func TestLoadConfig_JSONFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"addr":":6000","log_level":"debug","request_timeout":"2s","shutdown_timeout":1000000000,"hash_cost":5}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := LoadConfig([]string{"-c", path, "-b", "6"}, env(nil))
	require.NoError(t, err)
	assert.Equal(t, ":6000", c.Addr)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
	assert.Equal(t, time.Second, c.ShutdownTimeout)
	assert.Equal(t, 6, c.HashCost)
	// не указанные в файле поля остаются по умолчанию
	assert.Equal(t, StorageInMemory, c.Storage)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-storage", "postgres"}, env(nil))
	assert.ErrorContains(t, err, "DATABASE_URL must be set")

	_, err = LoadConfig([]string{"-storage", "redis"}, env(nil))
	assert.ErrorContains(t, err, "unknown storage type")

	_, err = LoadConfig([]string{"-config=/does/not/exist.json"}, env(nil))
	assert.Error(t, err)

	_, err = LoadConfig([]string{"-unknown"}, env(nil))
	assert.Error(t, err)
}

func TestLoadConfig_HashCostBounds(t *testing.T) {
	for _, cost := range []string{"2", "40"} {
		_, err := LoadConfig([]string{"-b", cost}, env(nil))
		assert.ErrorContains(t, err, "hash cost must be in", cost)
	}

	for _, cost := range []string{"4", "31"} {
		_, err := LoadConfig([]string{"-b", cost}, env(nil))
		assert.NoError(t, err, cost)
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "", configPath([]string{"-a", ":80"}))
	assert.Equal(t, "a.json", configPath([]string{"-c", "a.json"}))
	assert.Equal(t, "b.json", configPath([]string{"-d", "dsn", "--config=b.json"}))
	assert.Equal(t, "", configPath([]string{"-c", "-a"}))
}
