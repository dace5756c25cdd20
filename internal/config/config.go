// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nyaga/pesa/internal/routes"
	"github.com/nyaga/pesa/internal/theme"
)

// Config holds application configuration.
type Config struct {
	Theme   ThemeConfig
	Haptics HapticsConfig
	UI      UIConfig
}

// ThemeConfig selects the palette variant.
type ThemeConfig struct {
	Mode string
}

// HapticsConfig controls the terminal-bell feedback pulses.
type HapticsConfig struct {
	Enabled bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartRoute string `mapstructure:"start_route"`
	NerdFont   bool   `mapstructure:"nerd_font"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix PESA_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("theme.mode", "auto")
	v.SetDefault("haptics.enabled", true)
	v.SetDefault("ui.start_route", routes.KeyHome)
	v.SetDefault("ui.nerd_font", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PESA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pesa"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PESA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing file is not an error; defaults and env fill in.
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := theme.ParseMode(c.Theme.Mode); err != nil {
		return Config{}, err
	}
	return c, nil
}
