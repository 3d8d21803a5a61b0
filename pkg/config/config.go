package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Settings are process-level options layered on top of the stored profile.
type Settings struct {
	DBPath   string `mapstructure:"db_path"`
	LogLevel string `mapstructure:"log_level"`
	Listen   string `mapstructure:"listen"`   // overrides the stored API address
	Timezone string `mapstructure:"timezone"` // overrides the profile timezone
}

// Load reads settings from the optional YAML file at path and from
// SMARTHOME_* environment variables. Environment variables win.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("listen", "")
	v.SetDefault("timezone", "")

	v.SetEnvPrefix("smarthome")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &s, nil
}

// Location returns the timezone override, or fallback when none is set.
func (s *Settings) Location(fallback *time.Location) (*time.Location, error) {
	if s.Timezone == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Address returns the listen override, or fallback when none is set.
func (s *Settings) Address(fallback string) string {
	if s.Listen == "" {
		return fallback
	}
	return s.Listen
}
