// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Behavior
	APIKey        string `json:"api_key,omitempty"`         // Gemini API key
	Model         string `json:"model,omitempty"`           // Gemini model for zero-shot routing
	AllowZeroShot bool   `json:"allow_zero_shot,omitempty"` // Permit the LLM routing fallback
	Verbose       bool   `json:"verbose,omitempty"`         // Print detailed debug information

	// Limits
	MaxChars  int `json:"max_chars,omitempty"`  // Global character cap for payloads
	MaxTokens int `json:"max_tokens,omitempty"` // Token cap for payload text fields

	// Length
	LengthStyle string `json:"length_style,omitempty"` // one_line|short|medium|long (empty = auto)

	// Routing
	ClassifyTimeoutMS int `json:"classify_timeout_ms,omitempty"` // Zero-shot classification timeout
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

// FromEnv fills unset fields from environment variables: GEMINI_API_KEY,
// COACH_MODEL, COACH_MAX_CHARS, COACH_MAX_TOKENS, COACH_LENGTH_STYLE and
// COACH_ALLOW_ZERO_SHOT.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = os.Getenv("COACH_MODEL")
	}
	if c.MaxChars == 0 {
		c.MaxChars = CoerceInt(os.Getenv("COACH_MAX_CHARS"), 0)
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = CoerceInt(os.Getenv("COACH_MAX_TOKENS"), 0)
	}
	if c.LengthStyle == "" {
		c.LengthStyle = os.Getenv("COACH_LENGTH_STYLE")
	}
	if !c.AllowZeroShot {
		switch os.Getenv("COACH_ALLOW_ZERO_SHOT") {
		case "1", "true", "yes":
			c.AllowZeroShot = true
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxChars < 0 {
		return fmt.Errorf("config error: 'max_chars' must be non-negative")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}
	if c.ClassifyTimeoutMS < 0 {
		return fmt.Errorf("config error: 'classify_timeout_ms' must be non-negative")
	}
	switch c.LengthStyle {
	case "", "one_line", "short", "medium", "long":
	default:
		return fmt.Errorf("config error: 'length_style' must be one of one_line, short, medium, long")
	}
	return nil
}

// ClassifyTimeout returns the zero-shot timeout as a duration, zero when
// unset.
func (c *Config) ClassifyTimeout() time.Duration {
	if c.ClassifyTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.ClassifyTimeoutMS) * time.Millisecond
}
