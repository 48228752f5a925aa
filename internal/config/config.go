package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/psantana5/filesim/internal/logging"
	"github.com/psantana5/filesim/internal/outfmt"
)

// EnvPrefix is prepended to every environment variable, e.g. FILESIM_LOG_LEVEL.
const EnvPrefix = "FILESIM"

// Config holds the settings shared by every command
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text or json
	Summary   string `mapstructure:"summary"`    // none, table, json, yaml
	Metrics   bool   `mapstructure:"metrics"`
	Strict    bool   `mapstructure:"strict"`
	Scenarios string `mapstructure:"scenarios"`
}

// SetDefaults registers default values and env bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("summary", outfmt.None)
	v.SetDefault("metrics", false)
	v.SetDefault("strict", false)
	v.SetDefault("scenarios", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the merged configuration out of v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.Summary = strings.ToLower(cfg.Summary)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects formats nothing downstream understands
func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	if !outfmt.Valid(c.Summary) {
		return fmt.Errorf("invalid summary %q: must be none, table, json or yaml", c.Summary)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// NewLogger builds the console logger described by the config.
func (c *Config) NewLogger() *logging.Logger {
	return logging.NewLogger(logging.ParseLevel(c.LogLevel), c.LogFormat == "json")
}
