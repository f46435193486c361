package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultKey is the storage key the week lives under.
const DefaultKey = "teuxdeux-tasks"

// Config is read from .weekly.yaml and WEEKLY_* environment variables.
type Config struct {
	Path    string       `mapstructure:"path"`
	Backend string       `mapstructure:"backend"`
	Key     string       `mapstructure:"key"`
	Redis   RedisOptions `mapstructure:"redis"`

	// Addr is where "weekly serve" listens.
	Addr string `mapstructure:"addr"`
	// LogLevel is a zap level name.
	LogLevel string `mapstructure:"log_level"`
	// LogFile receives logs instead of stderr when set.
	LogFile string `mapstructure:"log_file"`
	// Demo seeds the demo tasks into an empty week on startup.
	Demo bool `mapstructure:"demo"`
	// CORSOrigins may call the JSON endpoints from other pages.
	CORSOrigins []string `mapstructure:"cors_origins"`
	// EventRate limits browser events per second per client, 0 for no limit.
	EventRate  float64 `mapstructure:"event_rate"`
	EventBurst int     `mapstructure:"event_burst"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.weekly.db")
	v.SetDefault("backend", BackendDisk)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("addr", "127.0.0.1:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("demo", false)
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("event_rate", 20)
	v.SetDefault("event_burst", 40)

	v.SetConfigName(".weekly") // .yaml is implicit
	v.SetEnvPrefix("WEEKLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("WEEKLY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	path, err := homedir.Expand(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("store: expand path %q: %w", cfg.Path, err)
	}
	cfg.Path = path
	if cfg.LogFile != "" {
		if cfg.LogFile, err = homedir.Expand(cfg.LogFile); err != nil {
			return nil, fmt.Errorf("store: expand log file %q: %w", cfg.LogFile, err)
		}
	}
	return cfg, nil
}
