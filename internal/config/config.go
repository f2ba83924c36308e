// Package config loads the TOML configuration for offtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"offtime/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "offtime"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Timezone defines the timezone for window computation (IANA name, e.g., "Europe/Berlin")
	Timezone string `toml:"timezone"`
	// RulesPath overrides the default rules file location when non-empty
	RulesPath string `toml:"rules_path"`
}

// DefaultConfig returns a Config with sensible defaults.
// - week_start_day: "monday" (ISO 8601 standard)
// - timezone: "Local" (use system local timezone)
// - rules_path: "" (use the default rules file location)
func DefaultConfig() Config {
	return Config{
		WeekStartDay: "monday",
		Timezone:     "Local",
		RulesPath:    "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses the XDG-compliant user config directory and creates the
// application directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at the given path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault reads the config file if it exists, falling back to the
// defaults when it doesn't. A malformed or invalid file is an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Validate checks that all configured values are usable.
func (c Config) Validate() error {
	switch strings.ToLower(c.WeekStartDay) {
	case "monday", "sunday":
	default:
		return fmt.Errorf("invalid week_start_day '%s' (valid values: monday, sunday)", c.WeekStartDay)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", c.Timezone, err)
	}
	return nil
}

// WeekStart returns the configured first day of the week.
func (c Config) WeekStart() time.Weekday {
	if strings.EqualFold(c.WeekStartDay, "sunday") {
		return time.Sunday
	}
	return time.Monday
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
