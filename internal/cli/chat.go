// chat.go - Line-based interactive chat for terminals without a full TTY
// or over SSH sessions where the TUI is unwelcome.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/vccbim/revitassist-tui/internal/config"
	"github.com/vccbim/revitassist-tui/internal/prompt"
	"github.com/vccbim/revitassist-tui/internal/ui/chat"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI wraps liner with persistent input history.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates the line editor and loads history from the config
// directory.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dir, "chat_history"),
	}
	c.loadHistory()
	return c
}

func (c *ChatCLI) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads one line with history navigation.
func (c *ChatCLI) ReadInput(promptText string) (string, error) {
	input, err := c.line.Prompt(promptText)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory persists history with owner-only permissions.
func (c *ChatCLI) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT LOOP
// =============================================================================

// Chat runs the interactive line-based loop until /quit or EOF.
func Chat(ctx context.Context, client chat.Sender, w io.Writer) error {
	cli := NewChatCLI()
	defer cli.Close()

	fmt.Fprintln(w, renderAnswer(prompt.Welcome, false))
	fmt.Fprintln(w, "Lệnh: /new (phiên mới) · /help · /quit")
	fmt.Fprintln(w)

	for {
		input, err := cli.ReadInput("bạn> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(w, "Tạm biệt!")
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		switch {
		case input == "":
			continue
		case input == "/quit" || input == "/exit":
			fmt.Fprintln(w, "Tạm biệt!")
			return nil
		case input == "/new":
			client.ResetSession()
			fmt.Fprintln(w, "Phiên mới: ngữ cảnh hội thoại đã được xoá.")
			continue
		case input == "/help":
			fmt.Fprintln(w, "/new   bắt đầu phiên mới\n/quit  thoát\nCâu hỏi thường: gõ và Enter.")
			continue
		}

		fmt.Fprint(w, "\ntrợ lý> ")
		streamAnswer(ctx, client, input, w)
		fmt.Fprint(w, "\n\n")
	}
}

// streamAnswer prints the answer as it arrives. Chunks carry the full
// accumulated text, so only the new suffix is written. A chunk that does
// not extend what was already printed is a replacement (the busy notice
// swapping out a partial answer) and restarts the line.
func streamAnswer(ctx context.Context, client chat.Sender, question string, w io.Writer) {
	printed := ""
	client.SendMessage(ctx, question, func(accumulated string) {
		if !strings.HasPrefix(accumulated, printed) {
			fmt.Fprint(w, "\ntrợ lý> ")
			printed = ""
		}
		fmt.Fprint(w, accumulated[len(printed):])
		printed = accumulated
	})
}
