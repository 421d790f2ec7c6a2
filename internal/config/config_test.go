package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Export.Format)
	assert.Empty(t, cfg.Export.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, ".local", "state", "fetchpad", "fetchpad.log"), cfg.Log.Path)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := isolate(t)
	configDir := filepath.Join(home, ".config", "fetchpad")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(strings.Join([]string{
		"[export]",
		`format = "toml"`,
		`path = "/tmp/history.toml"`,
		"",
		"[log]",
		`level = "debug"`,
		"max_backups = 0",
	}, "\n")), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "toml", cfg.Export.Format)
	assert.Equal(t, "/tmp/history.toml", cfg.Export.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0, cfg.Log.MaxBackups)
}

func TestLoadHonoursXDGDirectories(t *testing.T) {
	isolate(t)
	configHome := t.TempDir()
	stateHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "fetchpad"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configHome, "fetchpad", "config.toml"), []byte("[log]\nlevel = \"warn\"\n"), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, filepath.Join(stateHome, "fetchpad", "fetchpad.log"), cfg.Log.Path)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("FETCHPAD_EXPORT_FORMAT", "TOML")
	t.Setenv("FETCHPAD_LOG_LEVEL", "disabled")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "toml", cfg.Export.Format)
	assert.Equal(t, "disabled", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{name: "export format", env: "FETCHPAD_EXPORT_FORMAT", value: "yaml", wantErr: "invalid export.format"},
		{name: "log level", env: "FETCHPAD_LOG_LEVEL", value: "loud", wantErr: "invalid log.level"},
		{name: "log size", env: "FETCHPAD_LOG_MAX_SIZE_MB", value: "0", wantErr: "log.max_size_mb must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, tt.value)

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFailsOnMalformedConfigFile(t *testing.T) {
	home := isolate(t)
	configDir := filepath.Join(home, ".config", "fetchpad")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[export\n"), 0o644))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	for _, key := range []string{"FETCHPAD_EXPORT_FORMAT", "FETCHPAD_EXPORT_PATH", "FETCHPAD_LOG_LEVEL", "FETCHPAD_LOG_PATH", "FETCHPAD_LOG_MAX_SIZE_MB", "FETCHPAD_LOG_MAX_BACKUPS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	return home
}
