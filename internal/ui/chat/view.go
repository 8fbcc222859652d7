// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vccbim/revitassist-tui/internal/prompt"
	"github.com/vccbim/revitassist-tui/internal/util"
)

const (
	headerHeight = 3
	footerHeight = 5
	minSidebar   = 28
)

// sidebarWidth returns the sidebar column width, 0 when hidden.
func (m Model) sidebarWidth() int {
	if !m.sidebar.Visible() {
		return 0
	}
	w := m.width / 3
	if w < minSidebar {
		w = minSidebar
	}
	if w > m.width/2 {
		w = m.width / 2
	}
	return w
}

func (m Model) contentWidth() int {
	w := m.width - m.sidebarWidth()
	if w < 20 {
		w = m.width
	}
	return w
}

func (m Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 3 {
		h = 3
	}
	return h
}

// awaitingFirstChunk reports whether the in-flight answer is still an
// empty placeholder. The thinking indicator shows only in that window.
func (m Model) awaitingFirstChunk() bool {
	last, ok := m.transcript.Last()
	return ok && last.IsEmpty()
}

// View renders the whole shell.
func (m Model) View() string {
	if !m.ready {
		return "Đang khởi động..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)

	if m.sidebar.Visible() {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(m.theme), main)
	}
	return main
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m Model) headerView() string {
	brand := m.theme.HeaderBadge.Render("VCC") + " " +
		m.theme.HeaderTitle.Render("Trợ lý Xây dựng & BIM")
	sub := m.theme.HeaderBrand.Render("Viettel Construction") +
		m.theme.HeaderSubtitle.Render(" · "+m.client.Model())

	line := brand + "  " + sub
	return m.theme.Header.Width(m.contentWidth()).Render(line)
}

func (m Model) footerView() string {
	var rows []string

	rows = append(rows, m.suggestionsView())

	inputLine := m.theme.InputPrompt.Render("❯ ") + m.input.View()
	rows = append(rows, m.theme.InputContainer.Width(m.contentWidth()).Render(inputLine))

	rows = append(rows, m.statusView())
	return strings.Join(rows, "\n")
}

// suggestionsView shows the numbered canned prompts while the draft is
// empty and nothing is streaming.
func (m Model) suggestionsView() string {
	if m.state == StateSending || m.input.Value() != "" {
		return ""
	}

	parts := make([]string, 0, len(prompt.Suggestions))
	for i, s := range prompt.Suggestions {
		parts = append(parts,
			m.theme.SuggestionKey.Render(string(rune('1'+i)))+" "+
				m.theme.Suggestion.Render(s.Label))
	}
	return util.TruncateWidth(strings.Join(parts, "  "), m.contentWidth())
}

func (m Model) statusView() string {
	var left string
	switch {
	case m.listening:
		left = m.theme.Listening.Render("🎙 Đang nghe... (ctrl+v để dừng)")
	case m.state == StateSending && m.awaitingFirstChunk():
		left = m.spinner.View() + m.theme.ThinkingText.Render(" Đang tra cứu tài liệu...")
	case m.state == StateSending:
		left = m.theme.ThinkingText.Render("Đang trả lời...")
	case m.statusMsg != "":
		left = m.theme.StatusNotice.Render(m.statusMsg)
	case !m.client.IsConfigured():
		left = m.theme.StatusNotice.Render("⚠ Chưa có API key (GEMINI_API_KEY)")
	default:
		left = m.theme.StatusOnline.Render("● sẵn sàng")
	}

	help := m.theme.StatusBar.Render("enter gửi · tab tài liệu · ctrl+n phiên mới · ctrl+c thoát")
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + help
}
