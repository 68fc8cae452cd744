package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvTargetNetwork, "")
	t.Setenv("TGPROV_TIMEOUT_REQUEST", "")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, t.TempDir(), `
api_url: https://acme.example.com/api/graphql/
api_key: secret
target_network: Branch-A
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example.com/api/graphql/", cfg.APIURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "Branch-A", cfg.TargetNetwork)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, t.TempDir(), "api_url: [unclosed")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal yaml")
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, t.TempDir(), "api_url:\n  nested: true\n")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode config")
	})
}

func TestLoad_FileAndEnv(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, t.TempDir(), `
api_url: https://file.example.com/api/graphql/
api_key: file-key
target_network: File-Net
`)
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvTargetNetwork, "Env-Net")
	t.Setenv("TGPROV_TIMEOUT_REQUEST", "15s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com/api/graphql/", cfg.APIURL)
	assert.Equal(t, "env-key", cfg.APIKey, "env must override file")
	assert.Equal(t, "Env-Net", cfg.TargetNetwork)
	require.NotNil(t, cfg.Timeouts)
	assert.Equal(t, 15*time.Second, cfg.Timeouts.Request)
}

func TestLoad_EnvOnly(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvAPIURL, "https://env.example.com/api/graphql/")
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvTargetNetwork, "Branch-A")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Branch-A", cfg.TargetNetwork)
}

func TestLoad_MissingSettings(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvAPIURL, "https://env.example.com/api/graphql/")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "api_key is required")
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	clearConfigEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	env := map[string]string{
		EnvAPIURL:        "https://env.example.com",
		EnvTargetNetwork: "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &Config{APIURL: "https://file.example.com", APIKey: "file-key", TargetNetwork: "File-Net"}
	ApplyEnv(cfg, lookup)

	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "File-Net", cfg.TargetNetwork, "empty env value must not override")
}

func TestFindConfigFileFrom(t *testing.T) {
	t.Parallel()

	t.Run("found in parent", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		want := writeConfigFile(t, root, "api_url: x\n")
		child := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(child, 0o755))

		got, err := findConfigFileFrom(child)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		// The temp dir tree is not guaranteed to be free of a config file all the
		// way up to /, so only assert the sentinel when nothing was found.
		got, err := findConfigFileFrom(t.TempDir())
		if err != nil {
			assert.ErrorIs(t, err, ErrConfigNotFound)
			assert.Empty(t, got)
		}
	})
}

func TestLoad_TargetOverride(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvAPIURL, "https://env.example.com/api/graphql/")
	t.Setenv(EnvAPIKey, "env-key")

	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg, err := Load("", WithTargetOverride("Flag-Net"))
	require.NoError(t, err)
	assert.Equal(t, "Flag-Net", cfg.TargetNetwork)

	t.Setenv(EnvTargetNetwork, "Env-Net")
	cfg, err = Load("", WithTargetOverride("Flag-Net"))
	require.NoError(t, err)
	assert.Equal(t, "Flag-Net", cfg.TargetNetwork, "flag must override env")

	cfg, err = Load("", WithTargetOverride(""))
	require.NoError(t, err)
	assert.Equal(t, "Env-Net", cfg.TargetNetwork)
}

func TestLoad_WithoutTarget(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvAPIURL, "https://env.example.com/api/graphql/")
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := Load("", WithoutTarget())
	require.NoError(t, err)
	assert.Empty(t, cfg.TargetNetwork)

	t.Setenv(EnvAPIKey, "")
	_, err = Load("", WithoutTarget())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
