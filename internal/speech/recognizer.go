// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package speech provides optional voice input for the chat shell.
//
// Terminals have no microphone API, so recognition is delegated to an
// external speech-to-text command configured by the user (for example a
// whisper.cpp wrapper). The command records one utterance and prints the
// transcript to stdout. When no command is configured, voice input
// reports ErrUnsupported and the shell hides the feature.
package speech

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrUnsupported indicates no speech-to-text command is configured.
var ErrUnsupported = errors.New("speech recognition not available")

// EventKind discriminates recognizer events.
type EventKind int

const (
	// EventResult carries a final transcript.
	EventResult EventKind = iota
	// EventError carries a recognition failure.
	EventError
	// EventEnd signals the utterance is over and the session closed.
	EventEnd
)

// Event is one recognizer notification.
type Event struct {
	Kind       EventKind
	Transcript string
	Err        error
}

// Recognizer captures one utterance at a time.
type Recognizer interface {
	// Start begins listening. Events arrive on the returned channel,
	// which closes after EventEnd. Returns ErrUnsupported when voice
	// input is not available.
	Start(ctx context.Context) (<-chan Event, error)
	// Stop aborts an in-flight capture, if any.
	Stop()
	// Available reports whether Start can succeed.
	Available() bool
}

// =============================================================================
// COMMAND RECOGNIZER
// =============================================================================

// CommandRecognizer shells out to a configured transcription command.
type CommandRecognizer struct {
	command string
	log     *zap.Logger
	cancel  context.CancelFunc
}

// NewCommandRecognizer creates a recognizer for the configured command.
// An empty command yields a recognizer that is not Available.
func NewCommandRecognizer(command string, log *zap.Logger) *CommandRecognizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommandRecognizer{command: strings.TrimSpace(command), log: log}
}

// Available reports whether a command is configured.
func (r *CommandRecognizer) Available() bool {
	return r.command != ""
}

// Start runs the transcription command and delivers its stdout as one
// EventResult, then EventEnd. A non-zero exit becomes EventError.
func (r *CommandRecognizer) Start(ctx context.Context) (<-chan Event, error) {
	if !r.Available() {
		return nil, ErrUnsupported
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	fields := strings.Fields(r.command)
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	events := make(chan Event, 2)
	go func() {
		defer close(events)
		defer cancel()

		err := cmd.Run()
		if ctx.Err() != nil {
			// Stopped by the user, not an error worth surfacing
			events <- Event{Kind: EventEnd}
			return
		}
		if err != nil {
			r.log.Warn("speech command failed",
				zap.String("command", fields[0]),
				zap.String("stderr", strings.TrimSpace(stderr.String())),
				zap.Error(err))
			events <- Event{Kind: EventError, Err: err}
			events <- Event{Kind: EventEnd}
			return
		}

		transcript := strings.TrimSpace(stdout.String())
		if transcript != "" {
			events <- Event{Kind: EventResult, Transcript: transcript}
		}
		events <- Event{Kind: EventEnd}
	}()

	return events, nil
}

// Stop aborts the running command.
func (r *CommandRecognizer) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

// =============================================================================
// NULL RECOGNIZER
// =============================================================================

// Null is a Recognizer for builds and tests without voice input.
type Null struct{}

func (Null) Start(context.Context) (<-chan Event, error) { return nil, ErrUnsupported }
func (Null) Stop()                                       {}
func (Null) Available() bool                             { return false }
