// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini is the streaming client for the Google Gemini API.
//
// The client keeps the conversation history for one chat session and
// streams answers over SSE. Callers receive the accumulated answer text
// through a callback; any failure surfaces as a friendly Vietnamese busy
// notice instead of an error, so the chat shell never has to branch on
// transport problems.
package gemini

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vccbim/revitassist-tui/internal/prompt"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultBaseURL is the Gemini REST endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel answers construction questions fast enough to feel live.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTemperature keeps answers close to the manual text.
	DefaultTemperature = 0.1

	// sendsPerMinute caps outbound requests per session.
	sendsPerMinute = 20
)

// BusyNotice is shown in place of an answer when the model call fails.
const BusyNotice = "⚠️ Hệ thống tra cứu tài liệu đang bận. Đồng nghiệp vui lòng thử lại sau giây lát."

// ErrNotConfigured indicates the API key is not set.
var ErrNotConfigured = errors.New("gemini API key not configured")

// sharedStreamingClient is used for all streaming requests. No client
// timeout: stream lifetime is controlled via context.
var sharedStreamingClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
}

// =============================================================================
// CLIENT
// =============================================================================

// Config holds the client settings, normally loaded from config.toml.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64

	// Timeout bounds a whole exchange. Zero means no deadline beyond the
	// caller's context.
	Timeout time.Duration
}

// Client is a stateful chat session against the Gemini API.
//
// SendMessage runs on an exchange goroutine while ResetSession arrives
// from the update loop, so the session state is mutex-guarded. Each
// reset bumps the generation; an exchange that completes after a reset
// belongs to the old generation and its turns are discarded instead of
// leaking into the fresh session.
type Client struct {
	cfg     Config
	http    *http.Client
	log     *zap.Logger
	limiter *rate.Limiter

	mu         sync.Mutex
	sessionID  string
	history    []Content
	generation uint64
}

// NewClient creates a chat session. A nil logger disables diagnostics.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cfg:       cfg,
		http:      sharedStreamingClient,
		log:       log,
		limiter:   rate.NewLimiter(rate.Limit(sendsPerMinute)/60, 3),
		sessionID: uuid.NewString(),
	}
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool {
	return strings.TrimSpace(c.cfg.APIKey) != ""
}

// SessionID identifies this chat session in the diagnostics log.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

// HistoryLen returns the number of turns kept for context.
func (c *Client) HistoryLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

// ResetSession discards the conversation history and starts a fresh
// session. The next question is answered without prior context; an
// exchange still streaming at reset time finishes against the old
// generation and its outcome is dropped.
func (c *Client) ResetSession() {
	c.mu.Lock()
	c.history = nil
	c.generation++
	c.sessionID = uuid.NewString()
	id := c.sessionID
	c.mu.Unlock()

	c.log.Info("session reset", zap.String("session", id))
}

// =============================================================================
// SEND
// =============================================================================

// SendMessage streams one answer for the given question.
//
// onChunk is called with the FULL accumulated answer so far, never a
// delta; the final call carries the complete answer. On any failure the
// single last call carries BusyNotice and the failed turn is not added
// to the session history. SendMessage never returns an error to the
// caller; failures are logged and degrade to the busy notice.
func (c *Client) SendMessage(ctx context.Context, text string, onChunk func(accumulated string)) {
	if !c.IsConfigured() {
		c.log.Warn("send without api key", zap.String("session", c.SessionID()))
		onChunk(BusyNotice)
		return
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.log.Warn("rate limit wait aborted", zap.Error(err))
		onChunk(BusyNotice)
		return
	}

	userTurn := Content{Role: "user", Parts: []Part{{Text: text}}}

	c.mu.Lock()
	gen := c.generation
	session := c.sessionID
	contents := append(append([]Content{}, c.history...), userTurn)
	c.mu.Unlock()

	start := time.Now()
	answer, err := c.stream(ctx, contents, onChunk)
	if err != nil {
		c.log.Error("exchange failed",
			zap.String("session", session),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		onChunk(BusyNotice)
		return
	}

	c.mu.Lock()
	stale := gen != c.generation
	if !stale {
		c.history = append(c.history, userTurn, Content{
			Role:  "model",
			Parts: []Part{{Text: answer}},
		})
	}
	turns := len(c.history)
	c.mu.Unlock()

	if stale {
		c.log.Info("stale exchange discarded after session reset",
			zap.String("session", session),
			zap.Duration("elapsed", time.Since(start)))
		return
	}
	c.log.Info("exchange complete",
		zap.String("session", session),
		zap.Int("history_turns", turns),
		zap.Int("answer_chars", len(answer)),
		zap.Duration("elapsed", time.Since(start)))
}

// stream performs one streaming request and returns the full answer.
func (c *Client) stream(ctx context.Context, contents []Content, onChunk func(string)) (string, error) {
	body := generateRequest{
		SystemInstruction: &systemInstruction{
			Parts: []Part{{Text: prompt.SystemInstruction}},
		},
		Contents:         contents,
		GenerationConfig: generationConfig{Temperature: c.cfg.Temperature},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := c.cfg.BaseURL + "/v1beta/models/" + c.cfg.Model + ":streamGenerateContent?alt=sse"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.errorFromResponse(resp)
	}

	reader := newSSEReader(resp.Body)
	var accumulated strings.Builder

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		data, err := reader.readEvent()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}

		chunk, err := parseChunk(data)
		if err != nil {
			// Skip malformed events, the stream usually recovers
			c.log.Debug("malformed sse event", zap.Error(err))
			continue
		}
		if chunk.Error != nil {
			return "", chunk.Error
		}

		if delta := chunk.text(); delta != "" {
			accumulated.WriteString(delta)
			onChunk(accumulated.String())
		}
		if chunk.done() {
			break
		}
	}

	if accumulated.Len() == 0 {
		return "", errors.New("stream ended with no content")
	}
	return accumulated.String(), nil
}

// errorFromResponse extracts the API error object from a non-2xx body.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, MaxChunkSize))

	var wrapper struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Error != nil {
		return wrapper.Error
	}
	return &apiError{Code: resp.StatusCode, Status: resp.Status, Message: string(raw)}
}
