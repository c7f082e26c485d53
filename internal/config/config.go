package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables carrying the Gemini credentials
const (
	EnvAPIKey  = "GEMINI_API_KEY"
	EnvAPIKeys = "GEMINI_API_KEYS"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Report      ReportConfig      `yaml:"report"`
	Filler      FillerConfig      `yaml:"filler"`
}

type GeminiConfig struct {
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`

	// APIKeys is never read from the YAML file, only from the environment
	APIKeys []string `yaml:"-"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ReportConfig struct {
	Docx         bool `yaml:"docx"`
	PreviewLines int  `yaml:"preview_lines"`
}

type FillerConfig struct {
	Vocabulary []string `yaml:"vocabulary"`
}

// Load reads the YAML file at path and applies credentials from the environment.
// A missing file yields the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.Gemini.APIKeys = apiKeysFromEnv()
	return cfg, nil
}

// apiKeysFromEnv collects GEMINI_API_KEY followed by every key in GEMINI_API_KEYS,
// dropping blanks and duplicates.
func apiKeysFromEnv() []string {
	raw := []string{os.Getenv(EnvAPIKey)}
	raw = append(raw, strings.Split(os.Getenv(EnvAPIKeys), ",")...)

	seen := make(map[string]bool)
	var keys []string
	for _, k := range raw {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("%s is required", EnvAPIKey)
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.Report.PreviewLines < 0 {
		return fmt.Errorf("report.preview_lines must not be negative")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/transcripts"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/reports"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Report.PreviewLines == 0 {
		c.Report.PreviewLines = 6
	}

	return nil
}
