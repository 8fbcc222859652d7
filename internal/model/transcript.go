// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"time"
)

// Errors returned by transcript mutations.
var (
	// ErrEmptyTranscript is returned when ReplaceLast is called on an
	// empty transcript. Cannot happen through the shell (the transcript is
	// always seeded), but guarded anyway.
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrLastNotModel is returned when ReplaceLast would rewrite a user
	// message. Only the streaming model placeholder may be rewritten.
	ErrLastNotModel = errors.New("last message is not a model message")
)

// Transcript is the ordered, append-only sequence of messages shown in the
// chat view. It lives only for the lifetime of the process: restarting the
// program resets it to the seeded welcome message.
//
// Concurrency: the transcript is mutated only from the Bubble Tea update
// loop; at most one streaming session rewrites the tail at a time because
// input is disabled while a send is in flight.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript seeded with one model welcome message.
// The seed invariant: the sequence always starts with exactly one non-empty
// model message before any interaction.
func NewTranscript(welcome string) *Transcript {
	return &Transcript{
		messages: []Message{NewMessage(RoleModel, welcome)},
	}
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

// ReplaceLast overwrites the content of the most recent message. It is valid
// only while the tail is a model message (the streaming placeholder); it
// never changes the message count or role ordering. Each streamed chunk
// carries the full accumulated text, so replacement is last-write-wins.
func (t *Transcript) ReplaceLast(content string) error {
	if len(t.messages) == 0 {
		return ErrEmptyTranscript
	}
	last := &t.messages[len(t.messages)-1]
	if last.Role != RoleModel {
		return ErrLastNotModel
	}
	last.Content = content
	return nil
}

// Messages returns a read-only snapshot of the transcript for rendering.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent message and true, or a zero message and false
// when the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Reset discards all history and re-seeds the welcome message. The caller is
// responsible for resetting the model session alongside; the two are separate
// sources of truth for "what was said".
func (t *Transcript) Reset(welcome string) {
	t.messages = []Message{NewMessage(RoleModel, welcome)}
}

// BeginExchange appends the user message and the empty model placeholder that
// make up one send cycle, returning the placeholder's ID. Exactly one user
// and one model message are appended before any streamed content arrives.
func (t *Transcript) BeginExchange(userText string) string {
	t.Append(NewUserMessage(userText))
	placeholder := NewModelPlaceholder()
	t.Append(placeholder)
	return placeholder.ID
}

// UpdatedAt returns the timestamp of the newest message, or the zero time.
func (t *Transcript) UpdatedAt() time.Time {
	if len(t.messages) == 0 {
		return time.Time{}
	}
	return t.messages[len(t.messages)-1].Timestamp
}
