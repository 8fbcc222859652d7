// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "Bạn"
	case RoleModel:
		return "Trợ lý BIM"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the transcript. Content of a model message is
// overwritten wholesale while its answer streams in; it always holds the full
// accumulated text so far, never a delta.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// NewMessage creates a message with a generated ID and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        generateID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewModelPlaceholder creates the empty model message appended at the start
// of a send cycle, before any streamed content arrives.
func NewModelPlaceholder() Message {
	return NewMessage(RoleModel, "")
}

// IsEmpty reports whether the message has no content yet. The thinking
// indicator is shown exactly while the streaming placeholder is empty.
func (m Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// Preview returns a rune-safe truncated preview of the content.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// generateID creates a unique message ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
