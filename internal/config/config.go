// Package config provides configuration management for livraria.
//
// Configuration is optional. Without a config file the store is created at
// ./livraria.db and logs are written as text at info level. A livraria.yaml
// in the working directory overrides those defaults; flags and environment
// variables are not consulted.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Path: DefaultDatabasePath},
		Log:      LogConfig{Level: logrus.InfoLevel.String(), Format: FormatText},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Log.Level == "" {
		c.Log.Level = logrus.InfoLevel.String()
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

// NewLogger builds a logger writing to out with the configured level and
// format. Echoed schema statements are only visible at debug level.
func (c LogConfig) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)

	switch c.Format {
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	case FormatText, "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("log.format: unknown format %q", c.Format)
	}

	return log, nil
}
