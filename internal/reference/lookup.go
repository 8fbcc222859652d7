// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package reference

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Manual-name tokens recognized in citation footers. Matching is substring
// based so the model may write "Sổ tay Revit-01", "REVIT-01", etc.
const (
	tokenRevit01 = "revit-01"
	tokenRevit02 = "revit-02"
	tokenErrors  = "lỗi thường gặp"
)

// vnLower folds text for comparison. Model output sometimes arrives in
// decomposed form, so NFC-normalize before the Vietnamese lower-casing.
var vnLower = cases.Lower(language.Vietnamese)

// Fold normalizes a string for case-insensitive Vietnamese comparison.
func Fold(s string) string {
	return vnLower.String(norm.NFC.String(s))
}

// FilterErrors returns the catalog entries whose title contains the query,
// case-insensitively. An empty query returns the whole catalog. There is no
// index; the catalog is small and scanned per keystroke.
func FilterErrors(query string) []CommonError {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		out := make([]CommonError, len(CommonErrors))
		copy(out, CommonErrors)
		return out
	}

	var out []CommonError
	for _, e := range CommonErrors {
		if strings.Contains(Fold(e.Title), q) {
			out = append(out, e)
		}
	}
	return out
}

// ResolveManual maps a manual name from a citation footer to its catalog
// entry. Returns nil when the name matches none of the known tokens; callers
// degrade to a plain, unlinked citation line in that case.
func ResolveManual(name string) *Manual {
	folded := Fold(name)
	switch {
	case strings.Contains(folded, tokenRevit01):
		return ManualByID(ManualRevit01)
	case strings.Contains(folded, tokenRevit02):
		return ManualByID(ManualRevit02)
	case strings.Contains(folded, tokenErrors):
		return ManualByID(ManualErrors)
	default:
		return nil
	}
}
