// Package config loads bstr tool settings from bstr.yaml, BSTR_* environment
// variables and defaults, in that order of precedence (lowest last).
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Delimiter  string `mapstructure:"delimiter"`
	Separator  string `mapstructure:"separator"`
	LogDB      string `mapstructure:"log_db"`
	LogLevel   string `mapstructure:"log_level"`
	Zstd       bool   `mapstructure:"zstd"`
	ConfigFile string `mapstructure:"config_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Delimiter:  " ",
		Separator:  " ",
		LogLevel:   "info",
		ConfigFile: "bstr",
	}
}

// LoadConfig reads the configuration. An empty configFile searches for
// bstr.yaml in the working directory, /etc/bstr-go and $HOME/.bstr-go; a
// missing file is not an error unless it was named explicitly.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("delimiter", cfg.Delimiter)
	v.SetDefault("separator", cfg.Separator)
	v.SetDefault("log_db", cfg.LogDB)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("zstd", cfg.Zstd)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(cfg.ConfigFile)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/bstr-go/")
		v.AddConfigPath("$HOME/.bstr-go")
	}
	v.SetEnvPrefix("BSTR") // BSTR_DELIMITER, BSTR_LOG_DB, ...
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return cfg, nil
}
