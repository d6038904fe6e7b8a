package tui

import (
	"strings"
	"testing"

	"hltree/internal/theme"
)

func TestRenderDocumentSplitsLines(t *testing.T) {
	th, err := theme.Load("nord")
	if err != nil {
		t.Fatalf("theme.Load: %v", err)
	}
	src := []byte("package p\nfunc f() {}\n")
	spans := []Span{
		{From: 0, To: 7, Classes: "cmt-keyword"},
		{From: 11, To: 15, Classes: "cmt-keyword"},
	}
	lines := RenderDocument(src, spans, th, 80)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (two content lines plus the trailing empty line)", len(lines))
	}
	if !strings.Contains(lines[0], "package") {
		t.Errorf("line 0 = %q, want it to still contain the text \"package\"", lines[0])
	}
	if !strings.Contains(lines[1], "func") {
		t.Errorf("line 1 = %q, want it to still contain the text \"func\"", lines[1])
	}
}

func TestRenderDocumentTruncatesToWidth(t *testing.T) {
	th, err := theme.Load("nord")
	if err != nil {
		t.Fatalf("theme.Load: %v", err)
	}
	src := []byte(strings.Repeat("x", 200))
	lines := RenderDocument(src, nil, th, 10)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if got := len([]rune(lines[0])); got > 10 {
		t.Errorf("rendered line has %d runes, want at most 10", got)
	}
}

func TestRenderDocumentEmptySpansStillRendersText(t *testing.T) {
	th, err := theme.Load("nord")
	if err != nil {
		t.Fatalf("theme.Load: %v", err)
	}
	src := []byte("hello\n")
	lines := RenderDocument(src, nil, th, 80)
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("line 0 = %q, want it to contain \"hello\"", lines[0])
	}
}
