// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vccbim/revitassist-tui/internal/model"
	"github.com/vccbim/revitassist-tui/internal/prompt"
	"github.com/vccbim/revitassist-tui/internal/speech"
	"github.com/vccbim/revitassist-tui/internal/ui/styles"
)

// fakeSender records questions; answers are driven through the stream
// state by the tests.
type fakeSender struct {
	sent   []string
	resets int
	chunks []string
}

func (f *fakeSender) SendMessage(_ context.Context, text string, onChunk func(string)) {
	f.sent = append(f.sent, text)
	for _, c := range f.chunks {
		onChunk(c)
	}
}
func (f *fakeSender) ResetSession()      { f.resets++ }
func (f *fakeSender) IsConfigured() bool { return true }
func (f *fakeSender) Model() string      { return "fake-model" }

func newTestModel(f *fakeSender) Model {
	m := New(f, speech.Null{}, styles.NewTheme(), nil, true)
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return resized.(Model)
}

func asModel(t *testing.T, tm tea.Model) Model {
	t.Helper()
	m, ok := tm.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", tm)
	}
	return m
}

func TestSendAppendsExchangePair(t *testing.T) {
	f := &fakeSender{}
	m := newTestModel(f)

	tm, cmd := m.send("vẽ tường thế nào?")
	m = asModel(t, tm)

	if !m.Sending() {
		t.Error("state should be sending")
	}
	if cmd == nil {
		t.Error("send must start the exchange command")
	}

	msgs := m.Transcript().Messages()
	if len(msgs) != 3 {
		t.Fatalf("transcript length = %d, want welcome + user + placeholder", len(msgs))
	}
	if msgs[1].Role != model.RoleUser || msgs[1].Content != "vẽ tường thế nào?" {
		t.Errorf("user message = %+v", msgs[1])
	}
	if msgs[2].Role != model.RoleModel || !msgs[2].IsEmpty() {
		t.Errorf("placeholder = %+v", msgs[2])
	}
}

func TestSendWhileSendingIsNoop(t *testing.T) {
	f := &fakeSender{}
	m := newTestModel(f)

	tm, _ := m.send("câu một")
	m = asModel(t, tm)
	before := m.Transcript().Len()

	tm, cmd := m.send("câu hai")
	m = asModel(t, tm)

	if m.Transcript().Len() != before {
		t.Error("second send during streaming must not touch the transcript")
	}
	if cmd != nil {
		t.Error("second send must not start another exchange")
	}
}

func TestSendEmptyDraftIsNoop(t *testing.T) {
	m := newTestModel(&fakeSender{})
	tm, cmd := m.send("   ")
	m = asModel(t, tm)

	if m.Sending() || cmd != nil || m.Transcript().Len() != 1 {
		t.Error("whitespace-only draft must not send")
	}
}

func TestStreamTickAppliesNewestSnapshot(t *testing.T) {
	m := newTestModel(&fakeSender{})
	tm, _ := m.send("hỏi")
	m = asModel(t, tm)

	m.stream.write("Để vẽ")
	m.stream.write("Để vẽ tường, dùng lệnh WA.")

	tm, cmd := m.handleStreamTick()
	m = asModel(t, tm)

	last, _ := m.Transcript().Last()
	if last.Content != "Để vẽ tường, dùng lệnh WA." {
		t.Errorf("transcript shows %q, want the newest snapshot", last.Content)
	}
	if !m.Sending() || cmd == nil {
		t.Error("stream still open: stay in sending and keep ticking")
	}
}

func TestStreamDoneReturnsToIdle(t *testing.T) {
	m := newTestModel(&fakeSender{})
	tm, _ := m.send("hỏi")
	m = asModel(t, tm)

	m.stream.write("xong")
	m.stream.finish()

	tm, cmd := m.handleStreamTick()
	m = asModel(t, tm)

	if m.Sending() {
		t.Error("finished stream must return to idle")
	}
	if cmd != nil {
		t.Error("no more ticks after the stream finishes")
	}
	last, _ := m.Transcript().Last()
	if last.Content != "xong" {
		t.Errorf("final content = %q", last.Content)
	}
}

func TestFailureChunkFillsPlaceholder(t *testing.T) {
	notice := "⚠️ Hệ thống tra cứu tài liệu đang bận."
	m := newTestModel(&fakeSender{})
	tm, _ := m.send("hỏi")
	m = asModel(t, tm)

	// The client degrades to a notice chunk; the shell treats it like
	// any other answer.
	m.stream.write(notice)
	m.stream.finish()

	tm, _ = m.handleStreamTick()
	m = asModel(t, tm)

	last, _ := m.Transcript().Last()
	if last.Content != notice {
		t.Errorf("placeholder = %q, want the busy notice", last.Content)
	}
	if m.Sending() {
		t.Error("shell must be idle again after a failed exchange")
	}
}

func TestResetSessionClearsTranscriptAndContext(t *testing.T) {
	f := &fakeSender{}
	m := newTestModel(f)
	tm, _ := m.send("hỏi")
	m = asModel(t, tm)

	tm, _ = m.resetSession()
	m = asModel(t, tm)

	if f.resets != 1 {
		t.Error("reset must drop the client session context")
	}
	msgs := m.Transcript().Messages()
	if len(msgs) != 1 || msgs[0].Content != prompt.Welcome {
		t.Errorf("transcript after reset = %+v, want only the welcome", msgs)
	}
	if m.Sending() {
		t.Error("reset must leave the shell idle")
	}
}

func TestTypingDisabledWhileSending(t *testing.T) {
	m := newTestModel(&fakeSender{})
	tm, _ := m.send("hỏi")
	m = asModel(t, tm)

	tm, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = asModel(t, tm)

	if m.input.Value() != "" {
		t.Errorf("composer accepted input while sending: %q", m.input.Value())
	}
}

func TestDigitShortcutFillsDraft(t *testing.T) {
	m := newTestModel(&fakeSender{})

	tm, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m = asModel(t, tm)

	if m.input.Value() != prompt.Suggestions[0].Query {
		t.Errorf("draft = %q, want first suggestion", m.input.Value())
	}

	// With a non-empty draft, digits type normally
	tm, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = asModel(t, tm)
	if m.input.Value() == prompt.Suggestions[1].Query {
		t.Error("digit in a non-empty draft must not replace it")
	}
}

func TestSidebarPickFillsDraft(t *testing.T) {
	m := newTestModel(&fakeSender{})
	m.sidebar.Focus()
	m.input.Blur()

	want := m.sidebar.Selected()
	if want == "" {
		t.Fatal("sidebar must have a selection")
	}

	tm, _ := m.handleSidebarKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = asModel(t, tm)

	if m.input.Value() != want {
		t.Errorf("draft = %q, want %q", m.input.Value(), want)
	}
	if m.sidebar.Focused() {
		t.Error("picking an item returns focus to the composer")
	}
}

func TestSidebarFilterNarrowsErrors(t *testing.T) {
	s := NewSidebar(true)
	all := len(s.items)

	s.StartFilter()
	s.filter.SetValue("font")
	s.rebuild()

	if len(s.items) >= all {
		t.Errorf("filter did not narrow the list: %d -> %d", all, len(s.items))
	}

	var found bool
	for _, it := range s.items {
		if it.section == "🔧 Lỗi thường gặp" {
			if strings.Contains(strings.ToLower(it.label), "font") {
				found = true
			} else {
				t.Errorf("unexpected error row %q for filter 'font'", it.label)
			}
		}
	}
	if !found {
		t.Error("font error should survive the filter")
	}
}

func TestSpeechResultAppendsToDraft(t *testing.T) {
	m := newTestModel(&fakeSender{})
	m.input.SetValue("vẽ tường")

	tm, _ := m.handleSpeechEvent(speech.Event{Kind: speech.EventResult, Transcript: "chịu lực"})
	m = asModel(t, tm)

	if m.input.Value() != "vẽ tường chịu lực" {
		t.Errorf("draft = %q, want transcript joined with one space", m.input.Value())
	}
}
