// Package config loads CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls query defaults and cache behavior for the CLI.
// Durations are given as Go duration strings (e.g. "5m", "15s").
type Config struct {
	MaxResults int    `yaml:"max_results"`
	SortBy     string `yaml:"sort_by"`
	SortOrder  string `yaml:"sort_order"`
	CacheTTL   string `yaml:"cache_ttl"`
	Timeout    string `yaml:"timeout"`
	Format     string `yaml:"format"`
}

var validSortBy = []string{"submittedDate", "lastUpdatedDate", "relevance"}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable
// values, leaving unset variables untouched.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func setDefaults(cfg *Config) {
	if cfg.MaxResults == 0 {
		cfg.MaxResults = 50
	}
	if cfg.SortBy == "" {
		cfg.SortBy = "submittedDate"
	}
	if cfg.SortOrder == "" {
		cfg.SortOrder = "descending"
	}
	if cfg.CacheTTL == "" {
		cfg.CacheTTL = "5m"
	}
	if cfg.Timeout == "" {
		cfg.Timeout = "15s"
	}
	if cfg.Format == "" {
		cfg.Format = "bibtex"
	}
}

func validate(cfg *Config) error {
	if cfg.MaxResults < 0 {
		return fmt.Errorf("config: max_results must not be negative")
	}
	ok := false
	for _, v := range validSortBy {
		if cfg.SortBy == v {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("config: unsupported sort_by %q (supported: %s)", cfg.SortBy, strings.Join(validSortBy, ", "))
	}
	if cfg.SortOrder != "ascending" && cfg.SortOrder != "descending" {
		return fmt.Errorf("config: unsupported sort_order %q (supported: ascending, descending)", cfg.SortOrder)
	}
	if _, err := time.ParseDuration(cfg.CacheTTL); err != nil {
		return fmt.Errorf("config: invalid cache_ttl %q: %w", cfg.CacheTTL, err)
	}
	if _, err := time.ParseDuration(cfg.Timeout); err != nil {
		return fmt.Errorf("config: invalid timeout %q: %w", cfg.Timeout, err)
	}
	switch cfg.Format {
	case "bibtex", "apa", "mla", "ris":
	default:
		return fmt.Errorf("config: unsupported format %q (supported: bibtex, apa, mla, ris)", cfg.Format)
	}
	return nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads the config file, expands environment variables, applies
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads the config file at path, or returns Default() when
// path is empty or the file does not exist. A file that exists but fails
// to parse or validate is still an error.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// CacheTTLDuration returns the parsed cache TTL. Valid after Load.
func (c *Config) CacheTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheTTL)
	return d
}

// TimeoutDuration returns the parsed HTTP timeout. Valid after Load.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}
