// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"

	"github.com/vccbim/revitassist-tui/internal/reference"
)

// =============================================================================
// BASIC PARSING
// =============================================================================

func TestParseEmptyContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\n"} {
		if frags := Parse(content); frags != nil {
			t.Errorf("Parse(%q) = %d fragments, want none", content, len(frags))
		}
	}
}

func TestParseHeadingEmphasisPlain(t *testing.T) {
	frags := Parse("### Heading\n**bold**\ntext")

	if len(frags) != 3 {
		t.Fatalf("got %d fragments, want 3: %+v", len(frags), frags)
	}
	if frags[0].Kind != KindHeading || frags[0].Text != "Heading" {
		t.Errorf("fragment 0 = %s(%q), want heading(Heading)", frags[0].Kind, frags[0].Text)
	}
	if frags[1].Kind != KindEmphasis || frags[1].Text != "bold" {
		t.Errorf("fragment 1 = %s(%q), want emphasis(bold)", frags[1].Kind, frags[1].Text)
	}
	if frags[2].Kind != KindPlain || strings.TrimSpace(frags[2].Text) != "text" {
		t.Errorf("fragment 2 = %s(%q), want plain(text)", frags[2].Kind, frags[2].Text)
	}
}

func TestParsePlainWhitespacePreserved(t *testing.T) {
	frags := Parse("dòng một\n  thụt lề hai khoảng")
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	if frags[0].Text != "dòng một\n  thụt lề hai khoảng" {
		t.Errorf("plain text was altered: %q", frags[0].Text)
	}
}

func TestParseHeadingOnlyAtLineStart(t *testing.T) {
	frags := Parse("xem mục ### Ghi chú để biết thêm")
	for _, f := range frags {
		if f.Kind == KindHeading {
			t.Fatalf("mid-line ### must not open a heading: %+v", frags)
		}
	}
}

func TestParseEmphasisNonGreedy(t *testing.T) {
	frags := Parse("**một** và **hai**")

	var spans []string
	for _, f := range frags {
		if f.Kind == KindEmphasis {
			spans = append(spans, f.Text)
		}
	}
	if len(spans) != 2 || spans[0] != "một" || spans[1] != "hai" {
		t.Errorf("emphasis spans = %v, want [một hai]", spans)
	}
}

func TestParseEmphasisDoesNotSpanLines(t *testing.T) {
	frags := Parse("**mở\nđóng**")
	for _, f := range frags {
		if f.Kind == KindEmphasis {
			t.Fatalf("emphasis must not span lines: %+v", f)
		}
	}
}

func TestParsePartialStream(t *testing.T) {
	// Mid-stream content can stop inside a marker; the parser must not
	// fail, it just treats the dangling marker as plain text.
	frags := Parse("### Tiêu đề\nnội dung **đang gõ")
	if len(frags) == 0 {
		t.Fatal("partial content should yield fragments")
	}
	if frags[0].Kind != KindHeading {
		t.Errorf("fragment 0 = %s, want heading", frags[0].Kind)
	}
}

// =============================================================================
// CITATION PARSING
// =============================================================================

func TestParseCitationResolved(t *testing.T) {
	frags := Parse("📌 Nguồn tham khảo: Sổ tay Revit-01 | Ghi kích thước | Trang 42")

	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	f := frags[0]
	if f.Kind != KindCitation || f.Citation == nil {
		t.Fatalf("fragment = %+v, want citation", f)
	}

	c := f.Citation
	if !c.Linked() || c.Manual.ID != reference.ManualRevit01 {
		t.Errorf("citation did not resolve to Revit-01: %+v", c)
	}
	if c.Manual.URL != reference.ManualByID(reference.ManualRevit01).URL {
		t.Error("citation URL does not match the catalog")
	}
	if c.Topic != "Ghi kích thước" {
		t.Errorf("topic = %q, want Ghi kích thước", c.Topic)
	}
	if c.PageBadge() != "TRANG 42" {
		t.Errorf("page badge = %q, want TRANG 42", c.PageBadge())
	}
}

func TestParseCitationUnknownManual(t *testing.T) {
	line := "📌 Nguồn tham khảo: Sổ tay Revit-03 | X | Trang 1"
	frags := Parse(line)

	if len(frags) != 1 || frags[0].Citation == nil {
		t.Fatalf("got %+v, want one citation fragment", frags)
	}
	c := frags[0].Citation
	if c.Linked() {
		t.Error("unknown manual must not resolve to a link")
	}
	if c.Raw != line {
		t.Errorf("raw fallback = %q, want the trimmed original line", c.Raw)
	}
}

func TestParseCitationMissingFields(t *testing.T) {
	frags := Parse("📌 Nguồn tham khảo: Sổ tay Revit-02")
	c := frags[0].Citation
	if c == nil {
		t.Fatal("expected citation fragment")
	}
	if c.Topic != "Xem chi tiết" {
		t.Errorf("missing topic should default, got %q", c.Topic)
	}
	if c.Page != "" || c.PageBadge() != "" {
		t.Errorf("missing page should stay empty, got %q", c.Page)
	}
	if !c.Linked() {
		t.Error("Revit-02 should resolve even without topic/page")
	}
}

func TestParseCitationEmptyTopicDefaults(t *testing.T) {
	frags := Parse("📌 Nguồn tham khảo: Sổ tay Revit-01 |  | Trang 7")
	if got := frags[0].Citation.Topic; got != "Xem chi tiết" {
		t.Errorf("blank topic should default, got %q", got)
	}
}

func TestParseCitationOnlyAtLineStart(t *testing.T) {
	frags := Parse("như đã nêu 📌 Nguồn tham khảo: Sổ tay Revit-01 | A | Trang 1")
	for _, f := range frags {
		if f.Kind == KindCitation {
			t.Fatalf("mid-line pin must not open a citation: %+v", frags)
		}
	}
}

// =============================================================================
// FULL ANSWER SHAPE
// =============================================================================

func TestParseRealisticAnswer(t *testing.T) {
	content := "### Vẽ tường cơ bản\n" +
		"Dùng lệnh **WA** để kích hoạt công cụ Wall.\n" +
		"Chọn loại tường trong **Properties**.\n" +
		"📌 Nguồn tham khảo: Sổ tay Revit-01 | Dựng Cột, Tường, Cửa | Trang 12\n" +
		"📌 Nguồn tham khảo: Sổ tay Lỗi thường gặp | Mất thanh công cụ | Trang 3"

	frags := Parse(content)

	var kinds []Kind
	for _, f := range frags {
		kinds = append(kinds, f.Kind)
	}

	// heading, plain, emphasis, plain, emphasis, plain, citation, citation
	want := []Kind{KindHeading, KindPlain, KindEmphasis, KindPlain, KindEmphasis, KindPlain, KindCitation, KindCitation}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}

	if frags[6].Citation.Manual.ID != reference.ManualRevit01 {
		t.Error("first citation should resolve to Revit-01")
	}
	if frags[7].Citation.Manual.ID != reference.ManualErrors {
		t.Error("second citation should resolve to the error manual")
	}
}
