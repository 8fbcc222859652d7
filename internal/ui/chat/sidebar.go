// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vccbim/revitassist-tui/internal/prompt"
	"github.com/vccbim/revitassist-tui/internal/reference"
	"github.com/vccbim/revitassist-tui/internal/ui/styles"
	"github.com/vccbim/revitassist-tui/internal/util"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// sidebarItem is one selectable row. Picking it drops Prompt into the
// composer, ready to edit or send.
type sidebarItem struct {
	section string
	label   string
	topic   string
	prompt  string
}

// Sidebar lists the reference material: manuals, quick prompts, BIM
// categories, and a filterable catalog of common errors.
type Sidebar struct {
	items  []sidebarItem
	cursor int

	filter    textinput.Model
	filtering bool

	visible bool
	focused bool
	width   int
	height  int
}

// NewSidebar builds the sidebar with the full reference catalog.
func NewSidebar(visible bool) Sidebar {
	filter := textinput.New()
	filter.Placeholder = "lọc lỗi..."
	filter.CharLimit = 60
	filter.Width = 20

	s := Sidebar{
		filter:  filter,
		visible: visible,
	}
	s.rebuild()
	return s
}

// rebuild regenerates the item list for the current error filter.
func (s *Sidebar) rebuild() {
	var items []sidebarItem

	for _, m := range reference.Manuals {
		items = append(items, sidebarItem{
			section: "📚 Sổ tay",
			label:   m.Title,
			topic:   strings.Join(firstN(m.Topics, 2), " · "),
			prompt:  prompt.ForManualTopic(m.Topics[0]),
		})
	}
	for _, g := range reference.ShortcutGroups {
		items = append(items, sidebarItem{
			section: "⚡ Phím tắt",
			label:   g.Category,
			prompt:  prompt.ForShortcutGroup(g),
		})
	}
	for _, c := range reference.BIMCategories {
		items = append(items, sidebarItem{
			section: "🏗 Hạng mục BIM",
			label:   c.Icon + " " + c.Name,
			topic:   c.Description,
			prompt:  prompt.ForBIMCategory(c),
		})
	}
	for _, e := range reference.FilterErrors(s.filter.Value()) {
		items = append(items, sidebarItem{
			section: "🔧 Lỗi thường gặp",
			label:   e.Title,
			prompt:  prompt.ForDiagnostic(e),
		})
	}

	s.items = items
	if s.cursor >= len(items) {
		s.cursor = len(items) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func firstN(ss []string, n int) []string {
	if len(ss) <= n {
		return ss
	}
	return ss[:n]
}

// Toggle flips sidebar visibility.
func (s *Sidebar) Toggle() { s.visible = !s.visible }

// Visible reports whether the sidebar is shown.
func (s *Sidebar) Visible() bool { return s.visible }

// Focused reports whether keys go to the sidebar.
func (s *Sidebar) Focused() bool { return s.focused }

// Focus routes navigation keys to the sidebar.
func (s *Sidebar) Focus() { s.focused = true }

// Blur returns key handling to the composer and stops filtering.
func (s *Sidebar) Blur() {
	s.focused = false
	s.filtering = false
	s.filter.Blur()
}

// SetSize updates the sidebar dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.filter.Width = width - 6
}

// MoveUp moves the selection cursor up.
func (s *Sidebar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the selection cursor down.
func (s *Sidebar) MoveDown() {
	if s.cursor < len(s.items)-1 {
		s.cursor++
	}
}

// Selected returns the prompt of the highlighted item, or "".
func (s *Sidebar) Selected() string {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return ""
	}
	return s.items[s.cursor].prompt
}

// StartFilter opens the error filter input.
func (s *Sidebar) StartFilter() {
	s.filtering = true
	s.filter.Focus()
}

// Filtering reports whether the filter input is capturing keys.
func (s *Sidebar) Filtering() bool { return s.filtering }

// StopFilter closes the filter input, keeping the current filter text.
func (s *Sidebar) StopFilter() {
	s.filtering = false
	s.filter.Blur()
}

// UpdateFilter forwards a message to the filter input and rebuilds the
// list when the text changed.
func (s *Sidebar) UpdateFilter(msg tea.Msg) {
	before := s.filter.Value()
	s.filter, _ = s.filter.Update(msg)
	if s.filter.Value() != before {
		s.rebuild()
	}
}

// View renders the sidebar panel.
func (s *Sidebar) View(theme *styles.Theme) string {
	if !s.visible || s.width <= 0 {
		return ""
	}

	inner := s.width - 3
	var b strings.Builder
	b.WriteString(theme.SidebarTitle.Render("Tài liệu VCC"))
	b.WriteString("\n")

	lastSection := ""
	for i, it := range s.items {
		if it.section != lastSection {
			lastSection = it.section
			b.WriteString("\n")
			b.WriteString(theme.SidebarSection.Render(it.section))
			b.WriteString("\n")
			if it.section == "🔧 Lỗi thường gặp" {
				b.WriteString(s.filterView(theme))
			}
		}

		label := util.TruncateWidth(it.label, inner)
		if s.focused && i == s.cursor {
			// Full-width highlight bar, not just the label
			b.WriteString(theme.SidebarItemFocused.Render(util.PadWidth("▸ "+label, inner)))
		} else {
			b.WriteString(theme.SidebarItem.Render("  " + label))
		}
		b.WriteString("\n")
		if it.topic != "" {
			b.WriteString(theme.SidebarTopic.Render("   " + util.TruncateWidth(it.topic, inner-3)))
			b.WriteString("\n")
		}
	}

	if s.focused {
		b.WriteString("\n")
		b.WriteString(theme.SidebarHint.Render("↑↓ chọn · enter dùng · / lọc · esc"))
	}

	panel := b.String()
	if s.height > 0 {
		panel = lipgloss.NewStyle().MaxHeight(s.height).Render(panel)
	}
	return theme.Sidebar.Width(s.width).Render(panel)
}

func (s *Sidebar) filterView(theme *styles.Theme) string {
	if !s.filtering && s.filter.Value() == "" {
		return ""
	}
	return s.filter.View() + "\n"
}
