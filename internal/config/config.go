package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	keyWage     = "wage"
	keyCurrency = "currency"
	keyDataFile = "data_file"
	keyLogLevel = "log_level"

	envPrefix = "PUNCHCLOCK"
)

const (
	// DefaultWage is the hourly wage assumed until the user configures one.
	DefaultWage = 20.00

	DefaultCurrency = "$"
	DefaultLogLevel = "info"
)

// Config holds all punchclock settings.
type Config struct {
	// Wage is the hourly wage used to price rounded hours.
	Wage float64
	// Currency is the symbol printed in front of pay amounts.
	Currency string
	// DataFile overrides the punch file location. Empty selects the XDG
	// default.
	DataFile string
	// LogLevel sets the minimum level written to the log file.
	LogLevel string
}

// FilePath returns the config file location under the XDG config directory,
// creating parent directories as needed.
func FilePath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("punchclock", "config.yml"))
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return path, nil
}

// Load reads the config file at path, writing one with defaults on first
// run. Every key can be overridden through a PUNCHCLOCK_* environment
// variable.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyWage, DefaultWage)
	v.SetDefault(keyCurrency, DefaultCurrency)
	v.SetDefault(keyDataFile, "")
	v.SetDefault(keyLogLevel, DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := v.WriteConfig(); err != nil {
			return nil, fmt.Errorf("writing default config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Wage:     v.GetFloat64(keyWage),
		Currency: v.GetString(keyCurrency),
		DataFile: v.GetString(keyDataFile),
		LogLevel: strings.ToLower(v.GetString(keyLogLevel)),
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Wage < 0 || math.IsNaN(c.Wage) {
		return fmt.Errorf("wage must be zero or greater, got %v", c.Wage)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}
