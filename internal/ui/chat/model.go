// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"

	"github.com/vccbim/revitassist-tui/internal/model"
	"github.com/vccbim/revitassist-tui/internal/prompt"
	"github.com/vccbim/revitassist-tui/internal/speech"
	"github.com/vccbim/revitassist-tui/internal/ui/styles"
)

// =============================================================================
// SENDER
// =============================================================================

// Sender is the model client as the shell sees it. *gemini.Client
// satisfies it; tests inject fakes.
type Sender interface {
	// SendMessage streams one answer, calling onChunk with the full
	// accumulated text. Failures degrade to a notice chunk, never an
	// error.
	SendMessage(ctx context.Context, text string, onChunk func(accumulated string))
	// ResetSession drops the conversation context.
	ResetSession()
	// IsConfigured reports whether the client can reach the model.
	IsConfigured() bool
	// Model names the backing model for the status bar.
	Model() string
}

// =============================================================================
// CHAT STATE
// =============================================================================

// State is the shell's exchange state.
type State int

const (
	// StateIdle accepts input.
	StateIdle State = iota
	// StateSending has one exchange in flight; sends are ignored.
	StateSending
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the assistant shell.
type Model struct {
	state State
	theme *styles.Theme
	log   *zap.Logger

	width  int
	height int

	transcript *model.Transcript
	client     Sender
	recognizer speech.Recognizer

	// In-flight exchange
	stream *streamState

	// Voice capture
	listening   bool
	speechStop  func()
	speechQueue <-chan speech.Event

	// Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	sidebar  Sidebar

	keys      KeyMap
	statusMsg string
	ready     bool
}

// New creates the chat shell.
func New(client Sender, recognizer speech.Recognizer, theme *styles.Theme, log *zap.Logger, showSidebar bool) Model {
	if log == nil {
		log = zap.NewNop()
	}
	if recognizer == nil {
		recognizer = speech.Null{}
	}

	input := textinput.New()
	input.Placeholder = "Hỏi về Revit, phím tắt, lỗi thường gặp..."
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		state:      StateIdle,
		theme:      theme,
		log:        log,
		transcript: model.NewTranscript(prompt.Welcome),
		client:     client,
		recognizer: recognizer,
		input:      input,
		spinner:    sp,
		sidebar:    NewSidebar(showSidebar),
		keys:       DefaultKeyMap(),
	}
}

// Transcript exposes the conversation for tests and export.
func (m Model) Transcript() *model.Transcript { return m.transcript }

// State returns the current exchange state.
func (m Model) State() State { return m.state }

// Sending reports whether an exchange is in flight.
func (m Model) Sending() bool { return m.state == StateSending }
