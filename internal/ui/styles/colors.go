// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the assistant TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// ViettelRed - Primary brand accent: badges, emphasis, active states
var ViettelRed = lipgloss.AdaptiveColor{Light: "#EE0033", Dark: "#FF3355"}

// ViettelRedDeep - Darker red for backgrounds
var ViettelRedDeep = lipgloss.AdaptiveColor{Light: "#D4002E", Dark: "#8A0A24"}

// VCCBlue - Secondary brand color: sidebar, user messages, headings
var VCCBlue = lipgloss.AdaptiveColor{Light: "#004B8D", Dark: "#4C9AE8"}

// VCCBlueDeep - Darker blue for sidebar chrome
var VCCBlueDeep = lipgloss.AdaptiveColor{Light: "#003D73", Dark: "#0B2E4F"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Emerald - Revit-01 manual badge, online indicator
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Amber - Revit-02 manual badge, warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Rose - Troubleshooting manual badge, listening state
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#1E1E2E"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#A6ADC8"}

// TextMuted - Timestamps, unlinked citations, hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#6C7086"}

// TextInverse - Text on brand-colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User messages - VCC blue bubble, white text (matches the brand layout)
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#004B8D", Dark: "#1D4ED8"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#E0F2FE", Dark: "#E0F2FE"}

// Model messages - neutral card on the surface
var ModelBubbleBg = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#27273A"}
var ModelBubbleFg = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// Emphasis backgrounds (model messages get the highlighted treatment)
var EmphasisBg = lipgloss.AdaptiveColor{Light: "#FEE2E8", Dark: "#45222E"}
