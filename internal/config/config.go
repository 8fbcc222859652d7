// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the assistant.
//
// Settings live in ~/.revitassist/config.toml with sensible defaults and
// environment variable overrides. A missing file is not an error; the
// assistant starts with defaults and whatever the environment provides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete assistant configuration.
type Config struct {
	Gemini  GeminiConfig  `toml:"gemini"`
	UI      UIConfig      `toml:"ui"`
	Speech  SpeechConfig  `toml:"speech"`
	Logging LoggingConfig `toml:"logging"`
}

// GeminiConfig configures the model client.
type GeminiConfig struct {
	// APIKey authenticates against the Gemini API. Usually supplied via
	// GEMINI_API_KEY instead of the file.
	APIKey string `toml:"api_key"`
	// Model is the Gemini model name.
	Model string `toml:"model"`
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string `toml:"base_url"`
	// Temperature for generation. Low keeps answers close to the manuals.
	Temperature float64 `toml:"temperature"`
	// TimeoutSecs bounds one full exchange. 0 disables the deadline.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig configures the terminal front-end.
type UIConfig struct {
	// ShowSidebar controls whether the reference sidebar opens at launch.
	ShowSidebar bool `toml:"show_sidebar"`
	// CompactMode reduces message spacing for small terminals.
	CompactMode bool `toml:"compact_mode"`
}

// SpeechConfig configures optional voice input.
type SpeechConfig struct {
	// Command is an external speech-to-text command. It must record from
	// the microphone and print the transcript to stdout. Empty disables
	// voice input.
	Command string `toml:"command"`
}

// LoggingConfig configures the diagnostics log.
type LoggingConfig struct {
	// Path of the log file. Empty means <config dir>/diag.log.
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:       "gemini-2.5-flash",
			Temperature: 0.1,
		},
		UI: UIConfig{
			ShowSidebar: true,
		},
	}
}

// Dir returns the assistant's config directory (~/.revitassist).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".revitassist"), nil
}

// Path returns the TOML config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath resolves the diagnostics log location for this configuration.
func (c *Config) LogPath() (string, error) {
	if c.Logging.Path != "" {
		return c.Logging.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "diag.log"), nil
}

// Timeout converts the configured exchange bound to a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Gemini.TimeoutSecs) * time.Second
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the default config file, applies environment overrides, and
// validates. A missing file yields defaults plus environment.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides lets the environment override file settings.
// REVITASSIST_API_KEY wins over GEMINI_API_KEY.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("REVITASSIST_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("REVITASSIST_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("REVITASSIST_SPEECH_CMD"); v != "" {
		c.Speech.Command = v
	}
}

// SetDefaults fills any zero values left after file and environment.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Gemini.Model == "" {
		c.Gemini.Model = d.Gemini.Model
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = d.Gemini.Temperature
	}
}

// Validate checks value ranges. It does not require an API key; the
// shell degrades gracefully without one.
func (c *Config) Validate() error {
	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 2 {
		return fmt.Errorf("gemini.temperature %v out of range [0, 2]", c.Gemini.Temperature)
	}
	if c.Gemini.TimeoutSecs < 0 {
		return errors.New("gemini.timeout_secs must not be negative")
	}
	if c.Gemini.BaseURL != "" && !strings.HasPrefix(c.Gemini.BaseURL, "http") {
		return fmt.Errorf("gemini.base_url %q is not an http(s) URL", c.Gemini.BaseURL)
	}
	return nil
}
