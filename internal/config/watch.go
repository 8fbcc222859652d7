// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the config file whenever it changes and delivers the new
// configuration to onChange. Invalid edits are logged and skipped; the
// previous configuration stays in effect. Close the returned watcher to
// stop.
//
// Editors often replace the file (write to temp, rename over), so the
// watch covers the directory, not the file.
func Watch(path string, log *zap.Logger, onChange func(*Config)) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFromPath(path)
				if err != nil {
					log.Warn("config reload skipped", zap.Error(err))
					continue
				}
				log.Info("config reloaded", zap.String("path", path))
				onChange(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watch error", zap.Error(err))
			}
		}
	}()

	return w, nil
}
