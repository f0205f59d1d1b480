package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_FILE_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_PORT", "")

	require.NoError(t, LoadEnvConfig())
	assert.Equal(t, "", DefaultEnvConfig.LOG_FILE_PATH)
	assert.Equal(t, "info", DefaultEnvConfig.LOG_LEVEL)
	assert.Equal(t, 8080, DefaultEnvConfig.APP_PORT)
}

func TestLoadEnvConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_PORT", "9090")

	require.NoError(t, LoadEnvConfig())
	assert.Equal(t, "debug", DefaultEnvConfig.LOG_LEVEL)
	assert.Equal(t, 9090, DefaultEnvConfig.APP_PORT)
}

func TestLoadEnvConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_PORT=7070\nLOG_FILE_PATH=queries.log\n"), 0o644))
	t.Chdir(dir)
	// godotenv never overrides variables that are already set, even to ""
	for _, key := range []string{"APP_PORT", "LOG_FILE_PATH"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	require.NoError(t, LoadEnvConfig())
	assert.Equal(t, 7070, DefaultEnvConfig.APP_PORT)
	assert.Equal(t, "queries.log", DefaultEnvConfig.LOG_FILE_PATH)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")
	assert.Equal(t, 8080, getEnvInt("APP_PORT", 8080))
}
