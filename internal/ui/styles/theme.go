// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the assistant TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application. It detects the
// terminal's color capability once at startup and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderBrand    lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderBadge    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar            lipgloss.Style
	SidebarTitle       lipgloss.Style
	SidebarSection     lipgloss.Style
	SidebarItem        lipgloss.Style
	SidebarItemFocused lipgloss.Style
	SidebarTopic       lipgloss.Style
	SidebarHint        lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble    lipgloss.Style
	ModelBubble   lipgloss.Style
	RoleLabel     lipgloss.Style
	Timestamp     lipgloss.Style
	Heading       lipgloss.Style
	EmphasisModel lipgloss.Style
	EmphasisUser  lipgloss.Style

	// ==========================================================================
	// CITATION STYLES
	// ==========================================================================

	CitationLabel lipgloss.Style
	CitationBadge lipgloss.Style
	CitationTopic lipgloss.Style
	CitationLink  lipgloss.Style
	CitationMuted lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	Suggestion     lipgloss.Style
	SuggestionKey  lipgloss.Style
	Spinner        lipgloss.Style
	ThinkingText   lipgloss.Style
	Listening      lipgloss.Style
	StatusBar      lipgloss.Style
	StatusNotice   lipgloss.Style
	StatusOnline   lipgloss.Style
}

// NewTheme creates the application theme for the current terminal.
func NewTheme() *Theme {
	profile := termenv.ColorProfile()
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: profile,
	}

	// Header
	t.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)
	t.HeaderBrand = lipgloss.NewStyle().Bold(true).Foreground(ViettelRed)
	t.HeaderTitle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	t.HeaderBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(ViettelRed).
		Padding(0, 1)
	t.HeaderSubtitle = lipgloss.NewStyle().Foreground(TextMuted)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.SidebarTitle = lipgloss.NewStyle().Bold(true).Foreground(VCCBlue)
	t.SidebarSection = lipgloss.NewStyle().Bold(true).Foreground(TextSecondary)
	t.SidebarItem = lipgloss.NewStyle().Foreground(TextPrimary)
	t.SidebarItemFocused = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(ViettelRed)
	t.SidebarTopic = lipgloss.NewStyle().Foreground(TextSecondary)
	t.SidebarHint = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 1)
	t.ModelBubble = lipgloss.NewStyle().
		Foreground(ModelBubbleFg).
		Background(ModelBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.RoleLabel = lipgloss.NewStyle().Bold(true).Foreground(ViettelRed)
	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)
	t.Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(VCCBlue).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ViettelRed).
		PaddingLeft(1)
	t.EmphasisModel = lipgloss.NewStyle().
		Bold(true).
		Foreground(ViettelRed).
		Background(EmphasisBg)
	t.EmphasisUser = lipgloss.NewStyle().Bold(true).Underline(true)

	// Citations
	t.CitationLabel = lipgloss.NewStyle().Bold(true).Foreground(TextMuted)
	t.CitationBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(ViettelRed).
		Padding(0, 1)
	t.CitationTopic = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	t.CitationLink = lipgloss.NewStyle().Foreground(VCCBlue).Underline(true)
	t.CitationMuted = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	// Input and status
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)
	t.InputPrompt = lipgloss.NewStyle().Bold(true).Foreground(ViettelRed)
	t.Suggestion = lipgloss.NewStyle().Foreground(TextSecondary)
	t.SuggestionKey = lipgloss.NewStyle().Bold(true).Foreground(VCCBlue)
	t.Spinner = lipgloss.NewStyle().Foreground(ViettelRed)
	t.ThinkingText = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)
	t.Listening = lipgloss.NewStyle().Bold(true).Foreground(Rose)
	t.StatusBar = lipgloss.NewStyle().Foreground(TextSecondary)
	t.StatusNotice = lipgloss.NewStyle().Foreground(Amber)
	t.StatusOnline = lipgloss.NewStyle().Foreground(Emerald)

	return t
}
