package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WeekStartDay != "monday" {
		t.Errorf("WeekStartDay = %q, expected \"monday\"", cfg.WeekStartDay)
	}
	if cfg.Timezone != "Local" {
		t.Errorf("Timezone = %q, expected \"Local\"", cfg.Timezone)
	}
	if cfg.RulesPath != "" {
		t.Errorf("RulesPath = %q, expected empty", cfg.RulesPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `week_start_day = "sunday"
timezone = "UTC"
rules_path = "/tmp/custom-rules.conf"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.WeekStartDay != "sunday" {
		t.Errorf("WeekStartDay = %q, expected \"sunday\"", cfg.WeekStartDay)
	}
	if cfg.WeekStart() != time.Sunday {
		t.Errorf("WeekStart() = %v, expected Sunday", cfg.WeekStart())
	}
	if cfg.RulesPath != "/tmp/custom-rules.conf" {
		t.Errorf("RulesPath = %q", cfg.RulesPath)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location unexpected error: %v", err)
	}
	if loc != time.UTC {
		t.Errorf("Location = %v, expected UTC", loc)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `week_start_day = "sunday"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.Timezone != "Local" {
		t.Errorf("Timezone = %q, expected default \"Local\"", cfg.Timezone)
	}
}

func TestLoad_InvalidWeekStartDay(t *testing.T) {
	path := writeConfigFile(t, `week_start_day = "wednesday"`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid week_start_day")
	}
	if !strings.Contains(err.Error(), "week_start_day") {
		t.Errorf("error = %q, expected it to mention week_start_day", err.Error())
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	path := writeConfigFile(t, `timezone = "Not/AZone"`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfigFile(t, `week_start_day = [broken`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults for missing file, got %+v", cfg)
	}
}

func TestWeekStart_DefaultsToMonday(t *testing.T) {
	cfg := Config{WeekStartDay: "monday"}
	if cfg.WeekStart() != time.Monday {
		t.Errorf("WeekStart() = %v, expected Monday", cfg.WeekStart())
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(AppName, ConfigFile)) {
		t.Errorf("GetConfigPath = %q, expected it to end with %s/%s", path, AppName, ConfigFile)
	}
}
