// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateWidth shortens s to at most width terminal cells, appending an
// ellipsis when something was cut. Width is measured in display cells so
// wide runes and emoji count as two.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadWidth right-pads s with spaces to exactly width cells. Longer
// strings are returned unchanged.
func PadWidth(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
