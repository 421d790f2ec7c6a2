package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	appName    = "fetchpad"
	configName = "config"
	configType = "toml"
	envPrefix  = "FETCHPAD"

	ExportFormatKey = "export.format"
	ExportPathKey   = "export.path"
	LogLevelKey     = "log.level"
	LogPathKey      = "log.path"
	LogMaxSizeKey   = "log.max_size_mb"
	LogBackupsKey   = "log.max_backups"
)

type Config struct {
	Export ExportConfig
	Log    LogConfig
}

type ExportConfig struct {
	Format string
	Path   string
}

type LogConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// Load reads config.toml from the fetchpad config directory (a missing file
// is fine) and applies FETCHPAD_* environment overrides.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	configDir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	stateDir, err := stateDir()
	if err != nil {
		return Config{}, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(ExportFormatKey, "json")
	v.SetDefault(ExportPathKey, "")
	v.SetDefault(LogLevelKey, zerolog.LevelInfoValue)
	v.SetDefault(LogPathKey, filepath.Join(stateDir, appName+".log"))
	v.SetDefault(LogMaxSizeKey, 10)
	v.SetDefault(LogBackupsKey, 3)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Export: ExportConfig{
			Format: strings.ToLower(strings.TrimSpace(v.GetString(ExportFormatKey))),
			Path:   strings.TrimSpace(v.GetString(ExportPathKey)),
		},
		Log: LogConfig{
			Level:      strings.ToLower(strings.TrimSpace(v.GetString(LogLevelKey))),
			Path:       strings.TrimSpace(v.GetString(LogPathKey)),
			MaxSizeMB:  v.GetInt(LogMaxSizeKey),
			MaxBackups: v.GetInt(LogBackupsKey),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Export.Format {
	case "json", "toml":
	default:
		return fmt.Errorf("invalid %s %q (want json or toml)", ExportFormatKey, c.Export.Format)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid %s %q: %w", LogLevelKey, c.Log.Level, err)
	}
	if c.Log.Path == "" {
		return fmt.Errorf("%s is empty", LogPathKey)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("%s must be positive", LogMaxSizeKey)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("%s must not be negative", LogBackupsKey)
	}

	return nil
}

func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

func stateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "state", appName), nil
}
