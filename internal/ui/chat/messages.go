// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/vccbim/revitassist-tui/internal/speech"

// speechEventMsg wraps one recognizer event for the update loop.
type speechEventMsg struct {
	event speech.Event
}

// speechClosedMsg signals the recognizer channel closed.
type speechClosedMsg struct{}

// ConfigReloadedMsg is sent by the composition root when config.toml
// changes on disk. The shell surfaces it in the status bar; settings
// that require a restart say so there.
type ConfigReloadedMsg struct{}

// statusClearMsg clears a temporary status notice.
type statusClearMsg struct{}
