// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging sets up the diagnostics logger.
//
// The TUI owns stdout, so diagnostics go to a file under the user's
// config directory. When the file cannot be opened the application runs
// with a no-op logger rather than failing to start.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is the diagnostics log inside the config directory.
const DefaultFileName = "diag.log"

// New creates a file-backed production logger at path. The parent
// directory is created if missing.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// NewOrNop returns a file-backed logger, or a no-op logger when the
// file cannot be set up. The TUI must start either way.
func NewOrNop(path string) *zap.Logger {
	log, err := New(path)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
