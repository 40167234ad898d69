package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// appConfig holds styling defaults loaded from an optional sofer.yaml.
// Command-line flags override whatever the file sets.
type appConfig struct {
	Font      string `mapstructure:"font"`
	Size      int    `mapstructure:"size"`
	Direction string `mapstructure:"direction"`
}

func configDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "sofer"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "sofer"), nil
}

func loadConfig() (*appConfig, error) {
	viper.SetConfigName("sofer")
	viper.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(".")

	viper.SetDefault("font", "David")
	viper.SetDefault("size", 12)
	viper.SetDefault("direction", "rtl")

	// The config file is optional.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg appConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
