// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the app.
type Config struct {
	DatabasePath string
	Tier         string
}

// Load reads configuration from an optional ~/.flashylearny.yaml file and
// FLASHY_* environment variables (FLASHY_DATABASE_PATH, FLASHY_TIER), with
// sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("tier", "free")

	v.SetEnvPrefix("FLASHY")
	v.AutomaticEnv()
	v.BindEnv("database.path", "FLASHY_DATABASE_PATH")
	v.BindEnv("tier", "FLASHY_TIER")

	v.SetConfigName(".flashylearny")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		DatabasePath: v.GetString("database.path"),
		Tier:         v.GetString("tier"),
	}
	if cfg.Tier != "free" && cfg.Tier != "pro" {
		return nil, fmt.Errorf("invalid tier %q (choose free or pro)", cfg.Tier)
	}
	return cfg, nil
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "flashylearny.db"
	}
	return filepath.Join(home, ".flashylearny", "flashylearny.db")
}
