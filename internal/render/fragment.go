// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render parses model answers into typed display fragments.
//
// The model is instructed to use exactly three markup conventions, and this
// package is the other half of that contract (see prompt.SystemInstruction):
//
//   - "### " at the start of a line opens a section heading
//   - "**…**" delimits an emphasized inline span
//   - "📌 Nguồn tham khảo:" at the start of a line opens a citation footer,
//     pipe-delimited as [manual name] | [topic] | [page info]
//
// Everything else is plain text, whitespace preserved. Content may be
// partial (mid-stream); the parser never fails, it only degrades: malformed
// or unrecognized citations come back as unlinked citation fragments.
package render

import (
	"regexp"
	"strings"

	"github.com/vccbim/revitassist-tui/internal/reference"
)

// CitationMarker opens a citation footer line.
const CitationMarker = "📌 Nguồn tham khảo:"

// headingMarker opens a section heading line.
const headingMarker = "### "

// defaultTopic substitutes a missing citation topic field.
const defaultTopic = "Xem chi tiết"

// markerRe matches the three recognized markers, left-to-right,
// non-overlapping, multiline. Compiled once at startup.
var markerRe = regexp.MustCompile(`(?m)(\*\*.*?\*\*|^### .*$|^📌 Nguồn tham khảo:.*$)`)

// =============================================================================
// FRAGMENT TYPES
// =============================================================================

// Kind classifies a parsed fragment.
type Kind int

const (
	KindPlain    Kind = iota // verbatim text, whitespace preserved
	KindHeading              // section heading, marker stripped
	KindEmphasis             // strongly emphasized inline span, markers stripped
	KindCitation             // citation footer line
)

// String returns the fragment kind name, mostly for test failure output.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindHeading:
		return "heading"
	case KindEmphasis:
		return "emphasis"
	case KindCitation:
		return "citation"
	default:
		return "unknown"
	}
}

// Citation is a parsed citation footer. Manual is nil when the manual name
// matched none of the known source documents; such citations render as plain
// muted text with no link.
type Citation struct {
	Manual     *reference.Manual
	ManualName string
	Topic      string
	Page       string
	Raw        string // trimmed original line, for the unlinked fallback
}

// Linked reports whether the citation resolved to a known manual.
func (c Citation) Linked() bool {
	return c.Manual != nil
}

// Fragment is one renderable piece of a message.
type Fragment struct {
	Kind     Kind
	Text     string
	Citation *Citation // set only for KindCitation
}

// =============================================================================
// PARSER
// =============================================================================

// Parse splits a message content string into an ordered fragment sequence.
// Empty or whitespace-only content yields nil, which covers the gap between
// appending the model placeholder and the first streamed chunk.
func Parse(content string) []Fragment {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var frags []Fragment
	last := 0
	for _, loc := range markerRe.FindAllStringIndex(content, -1) {
		if plain := content[last:loc[0]]; strings.TrimSpace(plain) != "" {
			frags = append(frags, Fragment{Kind: KindPlain, Text: plain})
		}
		frags = append(frags, classify(content[loc[0]:loc[1]]))
		last = loc[1]
	}
	if plain := content[last:]; strings.TrimSpace(plain) != "" {
		frags = append(frags, Fragment{Kind: KindPlain, Text: plain})
	}
	return frags
}

// classify turns a single marker match into its typed fragment.
func classify(match string) Fragment {
	trimmed := strings.TrimSpace(match)

	switch {
	case strings.HasPrefix(trimmed, headingMarker):
		return Fragment{Kind: KindHeading, Text: strings.TrimPrefix(trimmed, headingMarker)}

	case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) >= 4:
		return Fragment{Kind: KindEmphasis, Text: trimmed[2 : len(trimmed)-2]}

	case strings.HasPrefix(trimmed, CitationMarker):
		c := parseCitation(trimmed)
		return Fragment{Kind: KindCitation, Text: trimmed, Citation: &c}

	default:
		// Unreachable while classify is fed from markerRe matches only.
		return Fragment{Kind: KindPlain, Text: match}
	}
}

// parseCitation splits the pipe-delimited citation body and resolves the
// manual name against the reference catalog.
func parseCitation(line string) Citation {
	body := strings.TrimSpace(strings.TrimPrefix(line, CitationMarker))

	var name, topic, page string
	parts := strings.Split(body, "|")
	if len(parts) > 0 {
		name = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		topic = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		page = strings.TrimSpace(parts[2])
	}
	if topic == "" {
		topic = defaultTopic
	}

	return Citation{
		Manual:     reference.ResolveManual(name),
		ManualName: name,
		Topic:      topic,
		Page:       page,
		Raw:        line,
	}
}
