// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vccbim/revitassist-tui/internal/model"
	"github.com/vccbim/revitassist-tui/internal/ui/styles"
)

// vnUpper upper-cases the page info for the citation badge ("Trang 42" ->
// "TRANG 42") without mangling Vietnamese diacritics.
var vnUpper = cases.Upper(language.Vietnamese)

// PageBadge returns the upper-cased page info for the citation card, or ""
// when the citation carries no page field.
func (c Citation) PageBadge() string {
	if c.Page == "" {
		return ""
	}
	return vnUpper.String(c.Page)
}

// =============================================================================
// TERMINAL RENDERING
// =============================================================================

// Transcript renders the full message list for the chat viewport.
func Transcript(msgs []model.Message, theme *styles.Theme, width int) string {
	blocks := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Role == model.RoleModel && msg.IsEmpty() {
			// Placeholder between append and first chunk; the thinking
			// indicator lives in the status area, not the transcript.
			continue
		}
		blocks = append(blocks, Bubble(msg, theme, width))
	}
	return strings.Join(blocks, "\n\n")
}

// Bubble renders a single message as a chat bubble: role/timestamp caption,
// then the styled fragment body. User bubbles align right, model bubbles left.
func Bubble(msg model.Message, theme *styles.Theme, width int) string {
	bubbleWidth := width * 4 / 5
	if bubbleWidth < 20 {
		bubbleWidth = width
	}

	caption := theme.RoleLabel.Render(msg.Role.DisplayName()) + " " +
		theme.Timestamp.Render(msg.Timestamp.Format("15:04"))

	body := Body(msg, theme, bubbleWidth-2)

	var block string
	if msg.Role == model.RoleUser {
		bubble := theme.UserBubble.MaxWidth(bubbleWidth).Render(body)
		block = lipgloss.JoinVertical(lipgloss.Right, caption, bubble)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}
	bubble := theme.ModelBubble.MaxWidth(bubbleWidth).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, caption, bubble)
}

// Body renders a message's parsed fragments. Inline fragments (plain text
// and emphasis) flow together; headings and citations are block-level and
// stand on their own lines.
func Body(msg model.Message, theme *styles.Theme, width int) string {
	frags := Parse(msg.Content)
	if len(frags) == 0 {
		return ""
	}

	emphasis := theme.EmphasisModel
	if msg.Role == model.RoleUser {
		// User messages get the underline treatment instead of highlight.
		emphasis = theme.EmphasisUser
	}

	var out strings.Builder
	var inline strings.Builder

	flush := func() {
		if inline.Len() == 0 {
			return
		}
		out.WriteString(strings.Trim(inline.String(), "\n"))
		inline.Reset()
	}
	blockBreak := func() {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
	}

	for _, f := range frags {
		switch f.Kind {
		case KindPlain:
			inline.WriteString(f.Text)
		case KindEmphasis:
			inline.WriteString(emphasis.Render(f.Text))
		case KindHeading:
			flush()
			blockBreak()
			out.WriteString(theme.Heading.Render(f.Text))
			out.WriteString("\n")
		case KindCitation:
			flush()
			blockBreak()
			out.WriteString(citationCard(*f.Citation, theme, width))
			out.WriteString("\n")
		}
	}
	flush()

	return strings.Trim(out.String(), "\n")
}

// citationCard renders one citation footer. Recognized manuals get the full
// card with source label, page badge, topic, and link; unrecognized ones
// degrade to a muted line so a new source still displays, just without a
// working link.
func citationCard(c Citation, theme *styles.Theme, width int) string {
	if !c.Linked() {
		return theme.CitationMuted.MaxWidth(width).Render(c.Raw)
	}

	label := theme.CitationLabel.Render("📖 Tài liệu nguồn " + c.Manual.Source)
	header := label
	if badge := c.PageBadge(); badge != "" {
		gap := width - lipgloss.Width(label) - lipgloss.Width(theme.CitationBadge.Render(badge))
		if gap < 1 {
			gap = 1
		}
		header = label + strings.Repeat(" ", gap) + theme.CitationBadge.Render(badge)
	}

	lines := []string{
		header,
		theme.CitationTopic.Render(c.Topic),
		theme.CitationMuted.Render(c.ManualName),
		theme.CitationLink.Render(c.Manual.URL),
	}
	return strings.Join(lines, "\n")
}
