// Package config loads the sndparse tool configuration from TOML or
// YAML files, with environment variable overrides under the GEOSND_
// prefix. The format is detected from the file extension; TOML is the
// default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/geosnd/internal/logging"
)

// Config is the full tool configuration.
type Config struct {
	Tables TablesConfig `toml:"tables" yaml:"tables"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Watch  WatchConfig  `toml:"watch" yaml:"watch"`
}

// TablesConfig selects the code tables. An empty Dir means the built-in
// GeoSuite defaults.
type TablesConfig struct {
	Dir string `toml:"dir" yaml:"dir"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// OutputConfig configures record export. Format "none" disables export.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Dir    string `toml:"dir" yaml:"dir"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Pattern string `toml:"pattern" yaml:"pattern"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Output: OutputConfig{Format: "none", Dir: "."},
		Watch:  WatchConfig{Pattern: "*.snd"},
	}
}

// Load reads a configuration file, merges it over the defaults, applies
// environment overrides, and validates the result. An empty path skips
// the file and uses defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(content, &cfg)
		default:
			err = toml.Unmarshal(content, &cfg)
		}
		if err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides file values from GEOSND_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEOSND_TABLES_DIR"); v != "" {
		c.Tables.Dir = v
	}
	if v := os.Getenv("GEOSND_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("GEOSND_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("GEOSND_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("GEOSND_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("GEOSND_WATCH_PATTERN"); v != "" {
		c.Watch.Pattern = v
	}
}

// Validate checks that enum-like fields hold known values.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	switch c.Output.Format {
	case "none", "json", "csv":
	default:
		return fmt.Errorf("output.format: %q is not one of none, json, csv", c.Output.Format)
	}
	if c.Watch.Pattern != "" {
		if _, err := filepath.Match(c.Watch.Pattern, "probe.snd"); err != nil {
			return fmt.Errorf("watch.pattern: %w", err)
		}
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.DefaultLevel()
	}
	return level
}

// LogFormat returns the parsed log format.
func (c Config) LogFormat() logging.Format {
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return logging.FormatText
	}
	return format
}
