// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Amazon  AmazonConfig  `yaml:"amazon"`
	Logging LoggingConfig `yaml:"logging"`
}

// AmazonConfig defines the Product Advertising API settings.
type AmazonConfig struct {
	Host                  string        `yaml:"host"`
	Path                  string        `yaml:"path"`
	Key                   string        `yaml:"key"`
	Secret                string        `yaml:"secret"`
	AssociateTag          string        `yaml:"associate_tag"`
	DefaultSearchCategory string        `yaml:"default_search_category"`
	CacheLast             *bool         `yaml:"cache_last"`
	Timeout               time.Duration `yaml:"timeout"`
	Debug                 bool          `yaml:"debug"`
}

// CacheEnabled reports whether last-request memoization is on.
// Defaults to true when the option is absent from the file.
func (a *AmazonConfig) CacheEnabled() bool {
	return a.CacheLast == nil || *a.CacheLast
}

// LogLevel returns the effective log level; the amazon.debug flag
// forces "debug" regardless of the logging section.
func (c *Config) LogLevel() string {
	if c.Amazon.Debug {
		return "debug"
	}
	return c.Logging.Level
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyAmazonDefaults(&cfg.Amazon)
	applyLoggingDefaults(&cfg.Logging)
}

func applyAmazonDefaults(a *AmazonConfig) {
	if a.Host == "" {
		a.Host = "webservices.amazon.com"
	}
	if a.Path == "" {
		a.Path = "/onca/xml"
	}
	if a.DefaultSearchCategory == "" {
		a.DefaultSearchCategory = "All"
	}
	if a.Timeout == 0 {
		a.Timeout = 10 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Amazon.Key == "" {
		errs = append(errs, fmt.Errorf("amazon.key is required"))
	}
	if cfg.Amazon.Secret == "" {
		errs = append(errs, fmt.Errorf("amazon.secret is required"))
	}

	return errors.Join(errs...)
}
