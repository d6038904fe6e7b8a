// Package theme reads a chroma lexer style into a map from the
// "cmt-<tagname>" classes highlight.DefaultPreset emits to hex colors, so
// those classes can be rendered as real terminal colors without
// hand-maintaining a palette.
package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"hltree/highlight"
)

// Theme is a resolved set of terminal colors for one chroma style, plus the
// colors the TUI needs outside of span classes (background, the default
// foreground for unstyled text, a muted color and a selection color).
type Theme struct {
	Name       string
	Background string
	Foreground string
	Muted      string
	Selection  string

	// classColor maps a highlight.DefaultPreset class (e.g. "cmt-keyword")
	// to a hex color string.
	classColor map[string]string
}

// Load resolves name against the bundled chroma styles and builds a Theme.
// An empty name falls back to "nord".
func Load(name string) (*Theme, error) {
	requested := strings.TrimSpace(name)
	if requested == "" {
		requested = "nord"
	}
	lookup := normalizeThemeName(requested)

	names := styles.Names()
	known := false
	for _, n := range names {
		if n == lookup {
			known = true
			break
		}
	}
	if !known {
		sort.Strings(names)
		return nil, fmt.Errorf("theme: unknown theme %q, try one of: %s", requested, strings.Join(topThemeHints(names), ", "))
	}
	style := styles.Get(lookup)
	if style == nil {
		return nil, fmt.Errorf("theme: unknown theme %q", requested)
	}

	baseBG := pickBackground(style, "#2E3440", chroma.Background, chroma.LineHighlight)
	baseFG := pickForeground(style, "#D8DEE9", chroma.Text, chroma.Background)
	comment := pickForeground(style, adjustTone(baseFG, -60), chroma.Comment)
	selection := pickBackground(style, autoSelection(baseBG), chroma.LineHighlight)

	t := &Theme{
		Name:       lookup,
		Background: baseBG,
		Foreground: baseFG,
		Muted:      pickForeground(style, adjustTone(baseFG, -48), chroma.LineNumbers, chroma.Comment),
		Selection:  selection,
		classColor: make(map[string]string),
	}

	set := func(class string, fallback string, types ...chroma.TokenType) {
		t.classColor[class] = pickForeground(style, fallback, types...)
	}

	set("cmt-comment", comment, chroma.Comment)
	set("cmt-lineComment", comment, chroma.CommentSingle, chroma.Comment)
	set("cmt-blockComment", comment, chroma.CommentMultiline, chroma.Comment)
	set("cmt-docComment", comment, chroma.CommentSpecial, chroma.Comment)

	set("cmt-variableName", baseFG, chroma.Name, chroma.NameVariable)
	set("cmt-typeName", baseFG, chroma.KeywordType, chroma.NameClass)
	set("cmt-tagName", baseFG, chroma.NameTag)
	set("cmt-propertyName", baseFG, chroma.NameProperty, chroma.NameAttribute)
	set("cmt-attributeName", baseFG, chroma.NameAttribute)
	set("cmt-className", baseFG, chroma.NameClass)
	set("cmt-labelName", baseFG, chroma.NameLabel)
	set("cmt-namespace", baseFG, chroma.NameNamespace)
	set("cmt-macroName", baseFG, chroma.Keyword)
	set("cmt-name", baseFG, chroma.Name)

	set("cmt-string", baseFG, chroma.LiteralString)
	set("cmt-string2", baseFG, chroma.LiteralStringRegex, chroma.LiteralStringEscape)
	set("cmt-docString", baseFG, chroma.LiteralStringDoc, chroma.LiteralString)
	set("cmt-character", baseFG, chroma.LiteralStringChar, chroma.LiteralString)
	set("cmt-integer", baseFG, chroma.LiteralNumberInteger, chroma.LiteralNumber)
	set("cmt-float", baseFG, chroma.LiteralNumberFloat, chroma.LiteralNumber)
	set("cmt-number", baseFG, chroma.LiteralNumber)
	set("cmt-bool", baseFG, chroma.KeywordConstant, chroma.Keyword)
	set("cmt-color", baseFG, chroma.LiteralString)
	set("cmt-url", baseFG, chroma.LiteralString)
	set("cmt-literal", baseFG, chroma.Literal)

	set("cmt-self", baseFG, chroma.NameBuiltinPseudo, chroma.NameBuiltin)
	set("cmt-null", baseFG, chroma.KeywordConstant, chroma.Keyword)
	set("cmt-atom", baseFG, chroma.NameConstant, chroma.Keyword)
	set("cmt-unit", baseFG, chroma.LiteralNumber)
	set("cmt-modifier", baseFG, chroma.Keyword)
	set("cmt-operatorKeyword", baseFG, chroma.Operator, chroma.Keyword)
	set("cmt-controlKeyword", baseFG, chroma.Keyword)
	set("cmt-moduleKeyword", baseFG, chroma.KeywordNamespace, chroma.Keyword)
	set("cmt-keyword", baseFG, chroma.Keyword)

	set("cmt-derefOperator", baseFG, chroma.Operator)
	set("cmt-arithmeticOperator", baseFG, chroma.Operator)
	set("cmt-logicOperator", baseFG, chroma.Operator)
	set("cmt-bitwiseOperator", baseFG, chroma.Operator)
	set("cmt-compareOperator", baseFG, chroma.Operator)
	set("cmt-updateOperator", baseFG, chroma.Operator)
	set("cmt-definitionOperator", baseFG, chroma.Operator)
	set("cmt-typeOperator", baseFG, chroma.Operator)
	set("cmt-controlOperator", baseFG, chroma.Operator)
	set("cmt-operator", baseFG, chroma.Operator)

	set("cmt-separator", baseFG, chroma.Punctuation)
	set("cmt-angleBracket", baseFG, chroma.Punctuation)
	set("cmt-squareBracket", baseFG, chroma.Punctuation)
	set("cmt-paren", baseFG, chroma.Punctuation)
	set("cmt-brace", baseFG, chroma.Punctuation)
	set("cmt-bracket", baseFG, chroma.Punctuation)
	set("cmt-punctuation", baseFG, chroma.Punctuation)

	set("cmt-heading1", baseFG, chroma.GenericHeading)
	set("cmt-heading2", baseFG, chroma.GenericHeading)
	set("cmt-heading3", baseFG, chroma.GenericSubheading)
	set("cmt-heading4", baseFG, chroma.GenericSubheading)
	set("cmt-heading5", baseFG, chroma.GenericSubheading)
	set("cmt-heading6", baseFG, chroma.GenericSubheading)
	set("cmt-heading", baseFG, chroma.GenericHeading)
	set("cmt-contentSeparator", baseFG, chroma.Punctuation)
	set("cmt-list", baseFG, chroma.Punctuation)
	set("cmt-quote", comment, chroma.GenericEmph, chroma.Comment)
	set("cmt-emphasis", baseFG, chroma.GenericEmph)
	set("cmt-strong", baseFG, chroma.GenericStrong)
	set("cmt-link", baseFG, chroma.NameAttribute)
	set("cmt-monospace", baseFG, chroma.LiteralString)
	set("cmt-strikethrough", comment, chroma.Comment)
	set("cmt-content", baseFG, chroma.Text)

	set("cmt-inserted", baseFG, chroma.GenericInserted)
	set("cmt-deleted", "#BF616A", chroma.GenericDeleted)
	set("cmt-changed", baseFG, chroma.GenericUnderline)
	set("cmt-invalid", "#BF616A", chroma.GenericError, chroma.Error)

	set("cmt-documentMeta", comment, chroma.CommentPreproc, chroma.Comment)
	set("cmt-annotation", comment, chroma.NameDecorator, chroma.Comment)
	set("cmt-processingInstruction", comment, chroma.CommentPreproc, chroma.Comment)
	set("cmt-meta", comment, chroma.Comment)

	set("cmt-definition", baseFG, chroma.NameFunction, chroma.NameClass)
	set("cmt-local", baseFG, chroma.NameVariable)
	set("cmt-function", baseFG, chroma.NameFunction)
	set("cmt-constant", baseFG, chroma.NameConstant)
	set("cmt-standard", baseFG, chroma.NameBuiltin)

	return t, nil
}

// ColorFor resolves a space-separated class string (as emitted by
// highlight.DefaultPreset, e.g. "cmt-variableName cmt-local") to a single
// hex color, preferring the most specific (rightmost) class that the theme
// has an opinion on, and falling back to Foreground when none apply.
func (t *Theme) ColorFor(classes string) string {
	color := t.Foreground
	for _, class := range strings.Fields(classes) {
		if c, ok := t.classColor[class]; ok {
			color = c
		}
	}
	return color
}

// MatchFunc wraps highlight.DefaultPreset so callers get a hex color
// directly out of HighlightTree instead of a "cmt-*" class string: it runs
// DefaultPreset.Match first (the ground truth for which tag wins under
// spec's fallback-chain rules) and translates the resulting class through
// ColorFor.
func (t *Theme) MatchFunc() highlight.MatchFunc {
	return func(tag *highlight.Tag, scope highlight.NodeType) (string, bool) {
		class, ok := highlight.DefaultPreset.Match(tag, scope)
		if !ok {
			return "", false
		}
		return t.ColorFor(class), true
	}
}

func normalizeThemeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "solarized":
		return "solarized-dark"
	case "one-dark":
		return "onedark"
	default:
		return n
	}
}

func pickForeground(style *chroma.Style, fallback string, types ...chroma.TokenType) string {
	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Colour.IsSet() {
			return entry.Colour.String()
		}
	}
	return fallback
}

func pickBackground(style *chroma.Style, fallback string, types ...chroma.TokenType) string {
	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Background.IsSet() {
			return entry.Background.String()
		}
	}
	return fallback
}

func topThemeHints(all []string) []string {
	wanted := []string{"nord", "dracula", "monokai", "github", "github-dark", "solarized-dark", "solarized-light", "gruvbox", "onedark"}
	set := map[string]bool{}
	for _, n := range all {
		set[n] = true
	}
	out := make([]string, 0, len(wanted))
	for _, name := range wanted {
		if set[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		limit := 8
		if len(all) < limit {
			limit = len(all)
		}
		return all[:limit]
	}
	return out
}

func autoSelection(bg string) string {
	return adjustTone(bg, autoDelta(bg, 18, -18))
}

func autoDelta(bg string, darkDelta int, lightDelta int) int {
	r, g, b, ok := parseHexRGB(bg)
	if !ok {
		return darkDelta
	}
	l := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	if l < 128 {
		return darkDelta
	}
	return lightDelta
}

func adjustTone(hex string, delta int) string {
	r, g, b, ok := parseHexRGB(hex)
	if !ok {
		return hex
	}
	r = clamp8(r + delta)
	g = clamp8(g + delta)
	b = clamp8(b + delta)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func parseHexRGB(hex string) (int, int, int, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	r := int((v >> 16) & 0xFF)
	g := int((v >> 8) & 0xFF)
	b := int(v & 0xFF)
	return r, g, b, true
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
