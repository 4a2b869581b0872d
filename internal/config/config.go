// Package config loads runtime configuration for the cosmic CLI and MCP
// server from .cosmic.toml, COSMIC_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// Config holds all runtime configuration.
type Config struct {
	DataDir          string `mapstructure:"data_dir"`
	Profile          string `mapstructure:"profile"`
	CalendarRadius   int    `mapstructure:"calendar_radius"`
	HonorCycleLength bool   `mapstructure:"honor_cycle_length"`
	Verbose          bool   `mapstructure:"verbose"`
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cosmic"
	}
	return filepath.Join(home, ".cosmic")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("profile", profile.DefaultName)
	viper.SetDefault("calendar_radius", insight.DefaultRadius)
	viper.SetDefault("honor_cycle_length", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("config: data_dir must not be empty")
	}
	if c.CalendarRadius < 1 || c.CalendarRadius > insight.MaxRadius {
		return fmt.Errorf("config: calendar_radius %d outside [1, %d]", c.CalendarRadius, insight.MaxRadius)
	}
	return nil
}

// ProfileStore returns the profile store configuration.
func (c Config) ProfileStore() profile.Config {
	return profile.Config{DataDir: c.DataDir}
}

// InsightOptions returns the options passed to the insight adapter.
func (c Config) InsightOptions() insight.Options {
	return insight.Options{HonorCycleLength: c.HonorCycleLength}
}

// Init points viper at cfgFile, or at .cosmic.toml in the working
// directory or home directory, and enables COSMIC_* overrides. A missing
// default config file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".cosmic")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("COSMIC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", viper.ConfigFileUsed(), err)
	}
	return nil
}
