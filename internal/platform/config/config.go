package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	fileName  = "huntlog"
	fileType  = "yaml"
	envPrefix = "HUNTLOG"
)

type Config struct {
	DataDir           string
	DBPath            string `mapstructure:"db_path"`
	LogDir            string `mapstructure:"log_dir"`
	FallbackCharacter string `mapstructure:"fallback_character"`
	DefaultLocation   string `mapstructure:"default_location"`
	SeedCharacter     string `mapstructure:"seed_character"`
	Locale            string `mapstructure:"locale"`
	TopCreatures      int    `mapstructure:"top_creatures"`
	LogLevel          string `mapstructure:"log_level"`
	LogFormat         string `mapstructure:"log_format"`
}

// New loads <dataDir>/huntlog.yaml when present and applies HUNTLOG_* overrides.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	v := newViper(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.DataDir = dataDir
	if cfg.TopCreatures < 0 {
		return Config{}, fmt.Errorf("top_creatures must be non-negative, got %d", cfg.TopCreatures)
	}
	return cfg, nil
}

// Path returns the config file location for dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, fileName+"."+fileType)
}

// SetLogDir persists the report directory scanned by check and watch.
func SetLogDir(dataDir, logDir string) error {
	v := newViper(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	v.Set("log_dir", logDir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := v.WriteConfigAs(Path(dataDir)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func newViper(dataDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(dataDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", filepath.Join(dataDir, ".huntlog", "huntlog.db"))
	v.SetDefault("log_dir", "")
	v.SetDefault("fallback_character", "Unknown")
	v.SetDefault("default_location", "Unknown")
	v.SetDefault("seed_character", "Unknown")
	v.SetDefault("locale", "en")
	v.SetDefault("top_creatures", 4)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	return v
}
