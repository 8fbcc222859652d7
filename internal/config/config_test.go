// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REVITASSIST_API_KEY", "")
	t.Setenv("REVITASSIST_MODEL", "")
	t.Setenv("REVITASSIST_SPEECH_CMD", "")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("default model = %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.Temperature != 0.1 {
		t.Errorf("default temperature = %v", cfg.Gemini.Temperature)
	}
	if !cfg.UI.ShowSidebar {
		t.Error("sidebar should default to visible")
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REVITASSIST_API_KEY", "")
	t.Setenv("REVITASSIST_MODEL", "")

	path := writeFile(t, `
[gemini]
api_key = "file-key"
model = "gemini-2.5-pro"
timeout_secs = 30

[ui]
show_sidebar = false

[speech]
command = "whisper-cli --mic"
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gemini.APIKey != "file-key" || cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("gemini section = %+v", cfg.Gemini)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
	if cfg.UI.ShowSidebar {
		t.Error("show_sidebar=false was not honored")
	}
	if cfg.Speech.Command != "whisper-cli --mic" {
		t.Errorf("speech command = %q", cfg.Speech.Command)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, `
[gemini]
api_key = "file-key"
model = "file-model"
`)

	t.Setenv("GEMINI_API_KEY", "gemini-env-key")
	t.Setenv("REVITASSIST_API_KEY", "revit-env-key")
	t.Setenv("REVITASSIST_MODEL", "env-model")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gemini.APIKey != "revit-env-key" {
		t.Errorf("REVITASSIST_API_KEY should win, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "env-model" {
		t.Errorf("model override = %q", cfg.Gemini.Model)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"temperature too high", func(c *Config) { c.Gemini.Temperature = 3 }},
		{"negative timeout", func(c *Config) { c.Gemini.TimeoutSecs = -1 }},
		{"bad base url", func(c *Config) { c.Gemini.BaseURL = "ftp://x" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAllowsMissingKey(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("missing api key must validate: %v", err)
	}
}
