// Package config loads the YAML configuration file and applies environment
// overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppDirName is the directory used under the user config dir.
const AppDirName = "timerboard"

const configFileName = "config.yaml"

// Config is the full application configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Engine  EngineConfig  `yaml:"engine"`
	Storage StorageConfig `yaml:"storage"`
	Alerts  AlertConfig   `yaml:"alerts"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	// Language forces a UI language; empty means detect from the system.
	Language string `yaml:"language"`
	// Font and BoldFont are optional TTF paths replacing the theme fonts.
	Font     string `yaml:"font"`
	BoldFont string `yaml:"bold_font"`
}

type EngineConfig struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	TimestampLayout string        `yaml:"timestamp_layout"`
}

type StorageConfig struct {
	Driver  string `yaml:"driver"`
	DataDir string `yaml:"data_dir"`
	DBFile  string `yaml:"db_file"`
}

type AlertConfig struct {
	Sound           bool          `yaml:"sound"`
	HalfwayToneHz   float64       `yaml:"halfway_tone_hz"`
	CompletedToneHz float64       `yaml:"completed_tone_hz"`
	ToneLength      time.Duration `yaml:"tone_length"`
}

type ExportConfig struct {
	FileName string `yaml:"file_name"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		App: AppConfig{
			Name:         "TimerBoard",
			WindowWidth:  420,
			WindowHeight: 640,
		},
		Engine: EngineConfig{
			TickInterval:    time.Second,
			TimestampLayout: "1/2/2006, 3:04:05 PM",
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DBFile: "timerboard.db",
		},
		Alerts: AlertConfig{
			Sound:           true,
			HalfwayToneHz:   660,
			CompletedToneHz: 880,
			ToneLength:      300 * time.Millisecond,
		},
		Export: ExportConfig{
			FileName: "timer_history.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath resolves the config file location under os.UserConfigDir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, configFileName), nil
}

// Load reads path on top of the defaults. A missing file yields the
// defaults and no error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from TIMERBOARD_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv("TIMERBOARD_LANG")); v != "" {
		c.App.Language = v
	}
	if v := strings.TrimSpace(getenv("TIMERBOARD_DATA_DIR")); v != "" {
		c.Storage.DataDir = v
	}
	if v := strings.TrimSpace(getenv("TIMERBOARD_STORAGE")); v != "" {
		c.Storage.Driver = v
	}
	if v := strings.TrimSpace(getenv("TIMERBOARD_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	c.sanitize()
}

// DBPath is the SQLite file location.
func (c Config) DBPath() (string, error) {
	dir := c.Storage.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, AppDirName)
	}
	return filepath.Join(dir, c.Storage.DBFile), nil
}

// SlogLevel maps Log.Level to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (c *Config) sanitize() {
	def := Default()
	if c.Engine.TickInterval <= 0 {
		slog.Warn("Invalid tick interval, using default", "value", c.Engine.TickInterval)
		c.Engine.TickInterval = def.Engine.TickInterval
	}
	if c.Engine.TimestampLayout == "" {
		c.Engine.TimestampLayout = def.Engine.TimestampLayout
	}
	switch c.Storage.Driver {
	case "sqlite", "memory":
	default:
		slog.Warn("Unknown storage driver, using default", "value", c.Storage.Driver)
		c.Storage.Driver = def.Storage.Driver
	}
	if c.Storage.DBFile == "" {
		c.Storage.DBFile = def.Storage.DBFile
	}
	if c.Alerts.HalfwayToneHz <= 0 {
		c.Alerts.HalfwayToneHz = def.Alerts.HalfwayToneHz
	}
	if c.Alerts.CompletedToneHz <= 0 {
		c.Alerts.CompletedToneHz = def.Alerts.CompletedToneHz
	}
	if c.Alerts.ToneLength <= 0 {
		c.Alerts.ToneLength = def.Alerts.ToneLength
	}
	if c.Export.FileName == "" {
		c.Export.FileName = def.Export.FileName
	}
	if c.App.WindowWidth <= 0 {
		c.App.WindowWidth = def.App.WindowWidth
	}
	if c.App.WindowHeight <= 0 {
		c.App.WindowHeight = def.App.WindowHeight
	}
	if c.App.Name == "" {
		c.App.Name = def.App.Name
	}
}
