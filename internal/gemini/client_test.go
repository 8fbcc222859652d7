// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

// sseEvent writes one SSE data event carrying a single text delta.
func sseEvent(w http.ResponseWriter, delta string) {
	payload, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": delta}}}},
		},
	})
	fmt.Fprintf(w, "data: %s\n\n", payload)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	}, zap.NewNop())
}

func TestSendMessageAccumulates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Contains(t, r.URL.Path, ":streamGenerateContent")
		assert.Equal(t, "sse", r.URL.Query().Get("alt"))

		w.Header().Set("Content-Type", "text/event-stream")
		sseEvent(w, "Để vẽ tường")
		sseEvent(w, ", dùng lệnh ")
		sseEvent(w, "WA.")
	})

	var got []string
	c.SendMessage(context.Background(), "vẽ tường thế nào?", func(acc string) {
		got = append(got, acc)
	})

	require.Equal(t, []string{
		"Để vẽ tường",
		"Để vẽ tường, dùng lệnh ",
		"Để vẽ tường, dùng lệnh WA.",
	}, got, "every chunk must carry the full accumulated text")
	assert.Equal(t, 2, c.HistoryLen(), "user and model turns join the history")
}

func TestSendMessageCarriesHistory(t *testing.T) {
	var lastReq generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastReq))
		w.Header().Set("Content-Type", "text/event-stream")
		sseEvent(w, "trả lời")
	})

	c.SendMessage(context.Background(), "câu một", func(string) {})
	c.SendMessage(context.Background(), "câu hai", func(string) {})

	require.Len(t, lastReq.Contents, 3, "second send carries prior user and model turns")
	assert.Equal(t, "câu một", lastReq.Contents[0].Parts[0].Text)
	assert.Equal(t, "trả lời", lastReq.Contents[1].Parts[0].Text)
	assert.Equal(t, "câu hai", lastReq.Contents[2].Parts[0].Text)
	require.NotNil(t, lastReq.SystemInstruction)
	assert.Contains(t, lastReq.SystemInstruction.Parts[0].Text, "Trợ lý ảo BIM")
}

func TestSendMessageServerErrorDegradesToBusyNotice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"code":500,"status":"INTERNAL","message":"boom"}}`)
	})

	var got []string
	c.SendMessage(context.Background(), "hỏi", func(acc string) {
		got = append(got, acc)
	})

	require.Equal(t, []string{BusyNotice}, got)
	assert.Equal(t, 0, c.HistoryLen(), "failed turns stay out of the history")
}

func TestSendMessageMidStreamErrorReplacesPartial(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		sseEvent(w, "một phần ")
		fmt.Fprint(w, "data: {\"error\":{\"code\":429,\"status\":\"RESOURCE_EXHAUSTED\",\"message\":\"quota\"}}\n\n")
	})

	var got []string
	c.SendMessage(context.Background(), "hỏi", func(acc string) {
		got = append(got, acc)
	})

	require.NotEmpty(t, got)
	assert.Equal(t, BusyNotice, got[len(got)-1], "busy notice replaces the partial answer")
	assert.Equal(t, 0, c.HistoryLen())
}

func TestSendMessageWithoutKey(t *testing.T) {
	c := NewClient(Config{}, nil)
	assert.False(t, c.IsConfigured())

	var got []string
	c.SendMessage(context.Background(), "hỏi", func(acc string) {
		got = append(got, acc)
	})
	assert.Equal(t, []string{BusyNotice}, got)
}

func TestSendMessageMalformedEventSkipped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {not json\n\n")
		sseEvent(w, "vẫn ổn")
	})

	var last string
	c.SendMessage(context.Background(), "hỏi", func(acc string) { last = acc })
	assert.Equal(t, "vẫn ổn", last)
}

func TestResetSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		sseEvent(w, "ok")
	})

	c.SendMessage(context.Background(), "hỏi", func(string) {})
	require.Equal(t, 2, c.HistoryLen())

	before := c.SessionID()
	c.ResetSession()

	assert.Equal(t, 0, c.HistoryLen())
	assert.NotEqual(t, before, c.SessionID())
}

func TestResetDuringExchangeDropsStaleTurns(t *testing.T) {
	firstChunk := make(chan struct{})
	release := make(chan struct{})
	var turnCounts []int

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		first := len(turnCounts) == 0
		turnCounts = append(turnCounts, len(req.Contents))

		w.Header().Set("Content-Type", "text/event-stream")
		sseEvent(w, "một phần")
		if first {
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			}
			<-release
			sseEvent(w, " còn lại")
		}
	})

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer close(done)
		c.SendMessage(context.Background(), "hỏi", func(string) {
			once.Do(func() { close(firstChunk) })
		})
	}()

	<-firstChunk
	before := c.SessionID()
	c.ResetSession()
	close(release)
	<-done

	assert.Equal(t, 0, c.HistoryLen(), "turns from before the reset must not enter the fresh session")
	assert.NotEqual(t, before, c.SessionID())

	// The fresh session starts context-free
	c.SendMessage(context.Background(), "câu mới", func(string) {})
	require.Len(t, turnCounts, 2)
	assert.Equal(t, 1, turnCounts[1], "a post-reset exchange carries only its own user turn")
}

func TestDefaultsApplied(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultBaseURL, c.cfg.BaseURL)
	assert.Equal(t, DefaultTemperature, c.cfg.Temperature)
}
