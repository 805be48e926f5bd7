// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeoutSeconds is the whole-call timeout for model requests. Responses
// may involve extended reasoning, so this is generous.
const DefaultTimeoutSeconds = 1800

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// environment variables or CLI flags.
type Config struct {
	// Credentials / model
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	Model  string `json:"model,omitempty"`   // Model name override for all tiers

	// Storage
	DataDir          string   `json:"data_dir,omitempty"`          // Root directory for resumes/interviews/predictions
	ResumeExtensions []string `json:"resume_extensions,omitempty"` // Allowed resume file extensions

	// Behavior
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Model request timeout in seconds
	LogLevel       string `json:"log_level,omitempty"`       // zerolog level name
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed output for each command
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:          "data",
		ResumeExtensions: []string{".pdf", ".docx", ".doc", ".txt"},
		TimeoutSeconds:   DefaultTimeoutSeconds,
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Unset
// variables leave the corresponding field empty so flag/file/default merging
// can fill it in.
func FromEnv() Config {
	cfg := Config{
		APIKey:   os.Getenv("GEMINI_API_KEY"),
		Model:    os.Getenv("INTERVIEW_COPILOT_MODEL"),
		DataDir:  os.Getenv("INTERVIEW_COPILOT_DATA_DIR"),
		LogLevel: os.Getenv("INTERVIEW_COPILOT_LOG_LEVEL"),
	}
	if raw := strings.TrimSpace(os.Getenv("INTERVIEW_COPILOT_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			cfg.TimeoutSeconds = parsed
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: the API key is not checked here since read-only commands
// (list-interviews, show-interview) never touch the model.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	for _, ext := range c.ResumeExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("config error: resume extension %q must start with a dot", ext)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply env/file values beneath CLI flag values.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if len(result.ResumeExtensions) == 0 {
		result.ResumeExtensions = defaults.ResumeExtensions
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Timeout returns the model request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
