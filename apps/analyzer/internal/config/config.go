// Package config loads the analyzer configuration: an optional YAML file
// plus environment overrides for values that differ per environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "repolens.yaml"

// Config carries the analyzer's tunables.
type Config struct {
	// APIBaseURL is the contents API host. Empty means the public GitHub
	// API; point it at apps/mock-github for local development. The
	// GITHUB_API_URL environment variable overrides the file value.
	APIBaseURL string `yaml:"api_base_url"`

	// OutputDir is the root for generated artifacts: documents go under
	// {OutputDir}/md, the URL history under {OutputDir}/json.
	OutputDir string `yaml:"output_dir"`

	// HTTPTimeoutSeconds bounds each API request end to end. Zero means
	// no limit.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`
}

// Load reads the YAML file at path, or DefaultPath when path is empty. A
// missing file is not an error; defaults stand. Environment overrides are
// applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{
		OutputDir:          "output",
		HTTPTimeoutSeconds: 30,
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Optional file, defaults stand.
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	return cfg, nil
}

// MarkdownDir returns the directory generated documents are written to.
func (c *Config) MarkdownDir() string {
	return filepath.Join(c.OutputDir, "md")
}

// HistoryPath returns the location of the JSON history file.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.OutputDir, "json", "repos.json")
}

// HTTPTimeout returns HTTPTimeoutSeconds as a time.Duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
