// Package tui renders highlight.HighlightTree's output in a terminal,
// grounded in the teacher's token-line renderer (render_lines.go): spans
// carry byte offsets across the whole document, so this package first
// slices them onto each line, then renders each line's runs through
// lipgloss, exactly as the teacher turns a highlighter.Span run into styled
// text.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"hltree/internal/theme"
)

// Span is one coalesced (from, to, classes) emission from
// highlight.HighlightTree, in byte offsets into the full document.
type Span struct {
	From, To int
	Classes  string
}

// RenderDocument splits source into lines and renders each one with spans
// resolved through th, truncating to width. Byte offsets in spans are
// translated to each line's own offset space before slicing.
func RenderDocument(source []byte, spans []Span, th *theme.Theme, width int) []string {
	lineStarts := splitLineOffsets(source)
	lines := make([]string, len(lineStarts))
	for i, lineStart := range lineStarts {
		lineEnd := len(source)
		if i+1 < len(lineStarts) {
			lineEnd = lineStarts[i+1] - 1 // exclude the newline itself
		}
		lines[i] = renderLine(source[lineStart:lineEnd], lineStart, spans, th, width)
	}
	return lines
}

// splitLineOffsets returns the byte offset of the start of each line,
// including a trailing empty line when source ends with "\n" — the same
// shape strings.Split(s, "\n") (and readfile.ReadLinesNormalized) produce.
func splitLineOffsets(source []byte) []int {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func renderLine(line []byte, lineStart int, spans []Span, th *theme.Theme, width int) string {
	if len(line) == 0 {
		return ""
	}
	text := string(line)
	runes := []rune(text)

	// byteToRune maps a byte offset within this line to a rune index, so
	// span boundaries (byte offsets) can slice the rune-indexed text.
	byteToRune := make([]int, len(line)+1)
	ri := 0
	for bi := range text {
		byteToRune[bi] = ri
		ri++
	}
	byteToRune[len(line)] = ri

	lineEnd := lineStart + len(line)
	var b strings.Builder
	cursor := 0
	for _, span := range spans {
		from := clampInt(span.From-lineStart, 0, len(line))
		to := clampInt(span.To-lineStart, 0, len(line))
		if span.From >= lineEnd || span.To <= lineStart || to <= from {
			continue
		}
		if from > cursor {
			b.WriteString(string(runes[byteToRune[cursor]:byteToRune[from]]))
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(th.ColorFor(span.Classes)))
		b.WriteString(style.Render(string(runes[byteToRune[from]:byteToRune[to]])))
		cursor = to
	}
	if cursor < len(line) {
		b.WriteString(string(runes[byteToRune[cursor]:]))
	}

	rendered := b.String()
	if width > 0 && lipgloss.Width(rendered) > width {
		rendered = runewidth.Truncate(rendered, width, "")
	}
	return rendered
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
