// SPDX-License-Identifier: MPL-2.0

// Package config loads the typst-project configuration. The optional
// markers of the heuristic registry are startup configuration here: a
// config key adds or removes an entry from the marker table, the walk logic
// itself is unconditional.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/tingerrr/typst-project/pkg/heuristics"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "typst-project"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TYPST_PROJECT"
)

// Config is the loaded application configuration.
type Config struct {
	Heuristics HeuristicsConfig `mapstructure:"heuristics"`
	UI         UIConfig         `mapstructure:"ui"`
}

// HeuristicsConfig selects the optional markers of the heuristic registry.
type HeuristicsConfig struct {
	// FormatterConfig enables the formatter config marker.
	FormatterConfig bool `mapstructure:"formatter_config"`
	// FormatterConfigName overrides the formatter config file name.
	FormatterConfigName string `mapstructure:"formatter_config_name"`
}

// UIConfig holds CLI presentation settings.
type UIConfig struct {
	// Verbose enables verbose diagnostic output.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults: only the always-on markers,
// quiet output.
func DefaultConfig() *Config {
	return &Config{
		Heuristics: HeuristicsConfig{
			FormatterConfig:     false,
			FormatterConfigName: heuristics.DefaultFormatterConfigName,
		},
	}
}

// configFilePathOverride is set via the --config flag.
var configFilePathOverride string

// SetConfigFilePathOverride makes Load read the given file instead of the
// per-OS default location.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// ConfigDir returns the typst-project configuration directory using
// platform conventions: %APPDATA% on Windows, ~/Library/Application Support
// on macOS, $XDG_CONFIG_HOME (defaulting to ~/.config) elsewhere.
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration file and environment overrides. A missing
// config file is not an error; defaults apply. An explicitly overridden
// config file must exist.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("heuristics.formatter_config", defaults.Heuristics.FormatterConfig)
	v.SetDefault("heuristics.formatter_config_name", defaults.Heuristics.FormatterConfigName)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFilePathOverride, err)
		}
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Registry builds the heuristic registry selected by the configuration.
func (c *Config) Registry() *heuristics.Registry {
	return heuristics.New(heuristics.Options{
		FormatterConfig:     c.Heuristics.FormatterConfig,
		FormatterConfigName: c.Heuristics.FormatterConfigName,
	})
}
