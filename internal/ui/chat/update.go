// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vccbim/revitassist-tui/internal/prompt"
	"github.com/vccbim/revitassist-tui/internal/render"
	"github.com/vccbim/revitassist-tui/internal/speech"
)

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update is the Bubble Tea message dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case exchangeStartedMsg:
		return m, streamTickCmd()

	case streamTickMsg:
		return m.handleStreamTick()

	case speechEventMsg:
		return m.handleSpeechEvent(msg.event)

	case speechClosedMsg:
		m.listening = false
		m.speechQueue = nil
		m.speechStop = nil
		return m, nil

	case ConfigReloadedMsg:
		m.statusMsg = "Cấu hình đã được tải lại (API key áp dụng sau khi khởi động lại)"
		return m, clearStatusCmd()

	case statusClearMsg:
		m.statusMsg = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateComponents(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.speechStop != nil {
			m.speechStop()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.sidebar.Toggle()
		if !m.sidebar.Visible() {
			m.sidebar.Blur()
			m.input.Focus()
		}
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.NewSession):
		return m.resetSession()

	case key.Matches(msg, m.keys.Voice):
		return m.toggleVoice()
	}

	if m.sidebar.Focused() {
		return m.handleSidebarKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.FocusSidebar):
		if m.sidebar.Visible() {
			m.sidebar.Focus()
			m.input.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Send):
		return m.send(m.input.Value())

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	// Composer is disabled while an exchange is in flight
	if m.state == StateSending {
		return m, nil
	}

	// Digit shortcuts pick a canned suggestion while the draft is empty
	if m.input.Value() == "" && len(msg.Runes) == 1 {
		if i := int(msg.Runes[0] - '1'); i >= 0 && i < len(prompt.Suggestions) {
			m.input.SetValue(prompt.Suggestions[i].Query)
			m.input.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sidebar.Filtering() {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.sidebar.StopFilter()
			return m, nil
		case key.Matches(msg, m.keys.SidebarPick):
			m.sidebar.StopFilter()
			return m, nil
		}
		m.sidebar.UpdateFilter(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.sidebar.Blur()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.SidebarUp):
		m.sidebar.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.SidebarDown):
		m.sidebar.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.SidebarPick):
		if p := m.sidebar.Selected(); p != "" {
			m.input.SetValue(p)
			m.input.CursorEnd()
			m.sidebar.Blur()
			m.input.Focus()
		}
		return m, nil
	}

	if msg.String() == "/" {
		m.sidebar.StartFilter()
		return m, nil
	}
	return m, nil
}

// =============================================================================
// SENDING
// =============================================================================

// send begins one exchange. Empty drafts and sends while another
// exchange is in flight are ignored.
func (m Model) send(text string) (tea.Model, tea.Cmd) {
	text = strings.TrimSpace(text)
	if text == "" || m.state == StateSending {
		return m, nil
	}

	m.transcript.BeginExchange(text)
	m.input.Reset()
	m.state = StateSending
	m.stream = newStreamState()
	m.refreshViewport()

	m.log.Info("exchange started", zap.Int("chars", len(text)))
	return m, startExchangeCmd(context.Background(), m.client, text, m.stream)
}

// handleStreamTick pulls the newest accumulated answer into the
// transcript. The newest snapshot always wins, skipped intermediates
// are fine.
func (m Model) handleStreamTick() (tea.Model, tea.Cmd) {
	if m.stream == nil {
		return m, nil
	}

	latest, done := m.stream.snapshot()
	if latest != "" {
		if err := m.transcript.ReplaceLast(latest); err != nil {
			m.log.Warn("transcript update rejected", zap.Error(err))
		}
		m.refreshViewport()
	}

	if done {
		m.state = StateIdle
		m.stream = nil
		return m, nil
	}
	return m, streamTickCmd()
}

func (m Model) resetSession() (tea.Model, tea.Cmd) {
	if m.state == StateSending {
		// The in-flight exchange keeps running against the old session;
		// its outcome is discarded with the transcript.
		m.stream = nil
		m.state = StateIdle
	}
	m.client.ResetSession()
	m.transcript.Reset(prompt.Welcome)
	m.refreshViewport()
	m.statusMsg = "Phiên mới: ngữ cảnh hội thoại đã được xoá"
	return m, clearStatusCmd()
}

// =============================================================================
// VOICE INPUT
// =============================================================================

func (m Model) toggleVoice() (tea.Model, tea.Cmd) {
	if m.listening {
		if m.speechStop != nil {
			m.speechStop()
		}
		return m, nil
	}
	if !m.recognizer.Available() {
		m.statusMsg = "Nhận giọng nói chưa được cấu hình (speech.command trong config.toml)"
		return m, clearStatusCmd()
	}

	events, err := m.recognizer.Start(context.Background())
	if err != nil {
		m.log.Warn("speech start failed", zap.Error(err))
		m.statusMsg = "Không khởi động được nhận giọng nói"
		return m, clearStatusCmd()
	}

	m.listening = true
	m.speechQueue = events
	m.speechStop = m.recognizer.Stop
	return m, waitSpeechCmd(events)
}

func (m Model) handleSpeechEvent(ev speech.Event) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case speech.EventResult:
		draft := m.input.Value()
		if draft != "" && !strings.HasSuffix(draft, " ") {
			draft += " "
		}
		m.input.SetValue(draft + ev.Transcript)
		m.input.CursorEnd()

	case speech.EventError:
		m.statusMsg = "Nhận giọng nói thất bại, vui lòng gõ câu hỏi"
		m.log.Warn("speech failed", zap.Error(ev.Err))

	case speech.EventEnd:
		m.listening = false
	}

	// Keep draining until the channel closes; speechClosedMsg cleans up.
	if m.speechQueue != nil {
		return m, tea.Batch(waitSpeechCmd(m.speechQueue), clearStatusCmd())
	}
	return m, nil
}

// waitSpeechCmd delivers the next recognizer event.
func waitSpeechCmd(events <-chan speech.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return speechClosedMsg{}
		}
		return speechEventMsg{event: ev}
	}
}

// =============================================================================
// LAYOUT AND COMPONENTS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	if !m.ready {
		m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
		m.ready = true
	}
	m.layout()
	m.refreshViewport()
	return m
}

func (m *Model) layout() {
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.sidebar.SetSize(m.sidebarWidth(), m.contentHeight())
	m.input.Width = m.contentWidth() - 4
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(render.Transcript(m.transcript.Messages(), m.theme, m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
