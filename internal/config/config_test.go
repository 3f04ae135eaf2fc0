package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	ResetEnv()
	t.Setenv("KEMBANG_API_URL", "http://localhost:9000/api/v1")
	t.Setenv("KEMBANG_PASSPHRASE", "rahasia")
	t.Setenv("NO_COLOR", "1")
	defer ResetEnv()

	env := Env()

	assert.Equal(t, "http://localhost:9000/api/v1", env.APIURL)
	assert.Equal(t, "rahasia", env.Passphrase)
	assert.True(t, env.NoColor)
}

func TestEnvSingleton(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	assert.Same(t, Env(), Env())
}

func TestEnsureHomeWritesDefaultFile(t *testing.T) {
	ResetEnv()
	t.Setenv("KEMBANG_API_URL", "")
	t.Setenv("KEMBANG_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "")
	defer ResetEnv()
	home := filepath.Join(t.TempDir(), DirName)

	require.NoError(t, EnsureHome(home))

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Color)
}

func TestEnsureHomeKeepsExistingFile(t *testing.T) {
	ResetEnv()
	defer ResetEnv()
	home := t.TempDir()
	path := filepath.Join(home, FileName)
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://x/api/v1\n"), 0o600))

	require.NoError(t, EnsureHome(home))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "api_url: http://x/api/v1\n", string(data))
}

func TestLoadFileAndOverrides(t *testing.T) {
	ResetEnv()
	t.Setenv("KEMBANG_API_URL", "")
	t.Setenv("KEMBANG_LOG_LEVEL", "")
	defer ResetEnv()
	home := t.TempDir()
	yaml := "api_url: http://dev.local/api/v1/\ntimeout: 5s\nlog_level: debug\ncolor: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte(yaml), 0o600))

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "http://dev.local/api/v1", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Color)

	ResetEnv()
	t.Setenv("KEMBANG_API_URL", "http://override/api/v1")
	t.Setenv("KEMBANG_LOG_LEVEL", "error")
	cfg, err = Load(home)
	require.NoError(t, err)
	assert.Equal(t, "http://override/api/v1", cfg.APIURL)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	ResetEnv()
	defer ResetEnv()
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("timeout: soon\n"), 0o600))

	_, err := Load(home)
	assert.Error(t, err)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	ResetEnv()
	t.Setenv("KEMBANG_API_URL", "")
	defer ResetEnv()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
}
