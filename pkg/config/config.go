package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "VIGENERE"

// Config only carries diagnostics settings. The cipher itself takes nothing
// from the environment.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // console or json
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// LoadConfig reads VIGENERE_* environment variables over the defaults.
func LoadConfig() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	def := DefaultConfig()
	v.SetEnvPrefix(envPrefix) // VIGENERE_LOG_LEVEL, ...
	v.AutomaticEnv()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want console or json", c.LogFormat)
	}
	return nil
}
