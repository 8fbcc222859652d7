// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// =============================================================================
// STREAMING CONSTANTS
// =============================================================================

// MaxChunkSize is the maximum allowed size for a single SSE event (64KB).
const MaxChunkSize = 64 * 1024

// =============================================================================
// WIRE TYPES
// =============================================================================

// Part is one piece of a content turn. Only text parts are used here.
type Part struct {
	Text string `json:"text"`
}

// Content is a single conversation turn on the wire.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// generateRequest is the body for streamGenerateContent.
type generateRequest struct {
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
	Contents          []Content          `json:"contents"`
	GenerationConfig  generationConfig   `json:"generationConfig"`
}

type systemInstruction struct {
	Parts []Part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

// streamChunk is a single SSE payload from streamGenerateContent.
type streamChunk struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

// apiError is the error object Gemini embeds in non-2xx bodies and,
// occasionally, mid-stream.
type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini api error %d (%s): %s", e.Code, e.Status, e.Message)
}

// text returns the chunk's delta text. Gemini chunks carry deltas, not
// cumulative text; accumulation happens in the client.
func (c *streamChunk) text() string {
	var buf bytes.Buffer
	for _, cand := range c.Candidates {
		for _, p := range cand.Content.Parts {
			buf.WriteString(p.Text)
		}
	}
	return buf.String()
}

func (c *streamChunk) done() bool {
	for _, cand := range c.Candidates {
		if cand.FinishReason != "" {
			return true
		}
	}
	return false
}

// =============================================================================
// SSE READER
// =============================================================================

// sseReader parses Server-Sent Events from a response body.
type sseReader struct {
	reader *bufio.Reader
}

func newSSEReader(r io.Reader) *sseReader {
	return &sseReader{reader: bufio.NewReader(r)}
}

// readEvent returns the data payload of the next SSE event.
// Returns io.EOF when the stream ends.
func (s *sseReader) readEvent() ([]byte, error) {
	var dataLines [][]byte
	var size int

	for {
		line, err := s.reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				if len(dataLines) > 0 {
					return bytes.Join(dataLines, []byte("\n")), nil
				}
				return nil, io.EOF
			}
			return nil, err
		}

		line = bytes.TrimRight(line, "\r\n")

		// Empty line signals end of event
		if len(line) == 0 {
			if len(dataLines) > 0 {
				return bytes.Join(dataLines, []byte("\n")), nil
			}
			continue
		}

		if bytes.HasPrefix(line, []byte("data:")) {
			data := bytes.TrimSpace(line[5:])
			size += len(data)
			if size > MaxChunkSize {
				return nil, fmt.Errorf("sse event too large: %d bytes", size)
			}
			dataLines = append(dataLines, data)
		}
		// Ignore other fields (event:, id:, retry:, comments starting with :)
	}
}

// parseChunk decodes one SSE data payload. Malformed payloads return an
// error so the caller can skip them without aborting the stream.
func parseChunk(data []byte) (*streamChunk, error) {
	var chunk streamChunk
	if err := json.Unmarshal(data, &chunk); err != nil {
		return nil, fmt.Errorf("parse chunk: %w", err)
	}
	return &chunk, nil
}
