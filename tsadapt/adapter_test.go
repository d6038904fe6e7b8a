package tsadapt

import (
	"context"
	"testing"

	"hltree/highlight"
	"hltree/internal/lang"
)

func TestNodeKindScopeEquality(t *testing.T) {
	var top highlight.NodeType = NodeKind{name: "source_file", lang: GoLanguage}
	var again highlight.NodeType = NodeKind{name: "source_file", lang: GoLanguage}
	if top != again {
		t.Fatalf("two NodeKind values for the same name and language must be ==, since HighlightStyleOptions.Scope relies on it")
	}
	if top.IsTop() != true {
		t.Errorf("source_file should be GoLanguage's top node")
	}
	other := NodeKind{name: "identifier", lang: GoLanguage}
	if other.IsTop() {
		t.Errorf("identifier should not be a top node")
	}
}

func TestRegistryCoversDetectedLanguages(t *testing.T) {
	ids := []lang.ID{
		lang.Go, lang.Rust, lang.Python, lang.JavaScript, lang.TypeScript,
		lang.TSX, lang.JSON, lang.YAML, lang.TOML, lang.Bash, lang.C, lang.CPP,
	}
	for _, id := range ids {
		if _, ok := Lookup(id); !ok {
			t.Errorf("Registry missing language %q detected by internal/lang", id)
		}
	}
}

func TestGoHighlightingProducesSpans(t *testing.T) {
	src := []byte("package p\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n")
	tree, err := Parse(context.Background(), GoLanguage, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	var spans []struct{ from, to int }
	highlight.HighlightAll(tree, highlight.DefaultPreset.Match, func(from, to int, classes string) {
		spans = append(spans, struct{ from, to int }{from, to})
	})
	if len(spans) == 0 {
		t.Fatalf("expected at least one styled span for a Go function")
	}
}

func TestJSONHighlightingProducesSpans(t *testing.T) {
	src := []byte(`{"count": 42, "ok": true}`)
	tree, err := Parse(context.Background(), JSONLanguage, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	var gotPropertyName bool
	highlight.HighlightAll(tree, highlight.DefaultPreset.Match, func(from, to int, classes string) {
		if classes == "cmt-propertyName" {
			gotPropertyName = true
		}
	})
	if !gotPropertyName {
		t.Errorf("expected the \"count\"/\"ok\" keys to style as cmt-propertyName via the pair/string selector")
	}
}
