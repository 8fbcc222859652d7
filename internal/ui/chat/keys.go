// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts for the chat shell.
type KeyMap struct {
	Send          key.Binding
	Quit          key.Binding
	NewSession    key.Binding
	ToggleSidebar key.Binding
	FocusSidebar  key.Binding
	Voice         key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	SidebarUp     key.Binding
	SidebarDown   key.Binding
	SidebarPick   key.Binding
	Back          key.Binding
}

// DefaultKeyMap returns the standard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gửi"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "thoát"),
		),
		NewSession: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "phiên mới"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "tài liệu"),
		),
		FocusSidebar: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "chuyển khung"),
		),
		Voice: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "nói"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "cuộn lên"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "cuộn xuống"),
		),
		SidebarUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "lên"),
		),
		SidebarDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "xuống"),
		),
		SidebarPick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "chọn"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quay lại"),
		),
	}
}
