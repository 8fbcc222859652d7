// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// streamInterval paces transcript repaints during streaming (~30fps).
const streamInterval = 33 * time.Millisecond

// =============================================================================
// STREAM STATE
// =============================================================================

// streamState bridges the client goroutine and the update loop. The
// client writes the full accumulated answer on every chunk; the tick
// handler reads the latest snapshot. Intermediate snapshots may be
// skipped, the newest always wins.
type streamState struct {
	mu     sync.Mutex
	latest string
	done   bool
}

func newStreamState() *streamState {
	return &streamState{}
}

// write records the newest accumulated answer.
func (s *streamState) write(accumulated string) {
	s.mu.Lock()
	s.latest = accumulated
	s.mu.Unlock()
}

// finish marks the exchange as complete.
func (s *streamState) finish() {
	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
}

// snapshot returns the newest accumulated answer and completion flag.
func (s *streamState) snapshot() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.done
}

// =============================================================================
// COMMANDS
// =============================================================================

// streamTickMsg drives transcript repaints while an answer streams in.
type streamTickMsg struct{ at time.Time }

// exchangeStartedMsg signals that the client goroutine is running.
type exchangeStartedMsg struct{}

// startExchangeCmd launches the model exchange in the background. The
// client never returns an error; failures arrive as the busy notice
// through the same chunk path.
func startExchangeCmd(ctx context.Context, client Sender, text string, st *streamState) tea.Cmd {
	return func() tea.Msg {
		go func() {
			client.SendMessage(ctx, text, st.write)
			st.finish()
		}()
		return exchangeStartedMsg{}
	}
}

// streamTickCmd schedules the next repaint.
func streamTickCmd() tea.Cmd {
	return tea.Tick(streamInterval, func(t time.Time) tea.Msg {
		return streamTickMsg{at: t}
	})
}
