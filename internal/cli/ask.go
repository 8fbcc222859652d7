// ask.go - Single question command handler.
//
// Handles "revitassist ask" which sends one question to the assistant
// and prints the answer.
//
// Examples:
//   revitassist ask "Phím tắt vẽ tường là gì?"
//   revitassist ask --plain "Quy trình Sync dữ liệu chuẩn BIM VCC"
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
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/vccbim/revitassist-tui/internal/ui/chat"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer renders answers for terminal display. Nil when
// initialization failed; output degrades to plain text.
var markdownRenderer *glamour.TermRenderer

func init() {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		markdownRenderer = r
	}
}

// renderAnswer formats one answer for stdout. Markdown rendering only
// applies on a TTY and when --plain was not given; piped output stays
// raw so scripts can parse it.
func renderAnswer(answer string, plain bool) string {
	if plain || markdownRenderer == nil || !term.IsTerminal(int(os.Stdout.Fd())) {
		return answer
	}
	rendered, err := markdownRenderer.Render(answer)
	if err != nil {
		return answer
	}
	return rendered
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// Ask answers one question and writes the result to w.
func Ask(ctx context.Context, client chat.Sender, inv Invocation, w io.Writer) error {
	question := inv.Question
	if question == "" {
		return errors.New("thiếu câu hỏi: revitassist ask \"<câu hỏi>\"")
	}

	var final string
	client.SendMessage(ctx, question, func(accumulated string) {
		final = accumulated
	})

	answer := strings.TrimSpace(final)
	if answer == "" {
		return errors.New("không nhận được trả lời")
	}

	fmt.Fprintln(w, renderAnswer(answer, inv.Args.BoolFlag("plain")))
	return nil
}
