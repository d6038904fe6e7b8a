package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"hltree/highlight"
	"hltree/internal/lang"
	"hltree/internal/metrics"
	"hltree/internal/readfile"
	"hltree/internal/rendercache"
	"hltree/tsadapt"
)

// spanResult is one coalesced (from, to, classes) emission, in the same
// shape cmd/hltree's --json output and internal/tui both consume.
type spanResult struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Classes string `json:"classes"`
}

// highlightResult is what highlightFile hands back to render and watch.
// serve and bench parse and highlight on their own, without the render
// cache.
type highlightResult struct {
	Source   []byte
	Language lang.ID
	Spans    []spanResult
	Cached   bool
}

// highlightFile reads path, detects its language (or uses langOverride if
// non-empty), and runs highlight.HighlightAll over it, consulting
// rendercache first when a theme name is given. render passes no theme in
// --json mode or with --no-cache, and watch never passes one, so those runs
// neither read nor write the cache.
func highlightFile(path string, langOverride string, cacheTheme string) (highlightResult, error) {
	src, err := readfile.ReadSource(path)
	if err != nil {
		return highlightResult{}, fmt.Errorf("hltree: reading %s: %w", path, err)
	}

	id := lang.ID(langOverride)
	if langOverride == "" {
		firstLine := src.Data
		if i := indexByte(src.Data, '\n'); i >= 0 {
			firstLine = src.Data[:i]
		}
		id = lang.DetectWithShebang(path, string(firstLine))
	}

	if cacheTheme != "" {
		if spans, ok, err := rendercache.Load(path, cacheTheme, src.ModTime); err == nil && ok {
			return highlightResult{Source: src.Data, Language: id, Spans: fromCache(spans), Cached: true}, nil
		}
	}

	var spans []spanResult
	if id != lang.Plain {
		grammar, ok := tsadapt.Lookup(id)
		if !ok {
			return highlightResult{}, fmt.Errorf("hltree: no grammar registered for language %q", id)
		}

		start := time.Now()
		tree, err := tsadapt.Parse(context.Background(), grammar, src.Data)
		if err != nil {
			return highlightResult{}, err
		}
		defer tree.Close()

		highlight.HighlightAll(tree, highlight.DefaultPreset.Match, func(from, to int, classes string) {
			spans = append(spans, spanResult{From: from, To: to, Classes: classes})
		})
		metrics.Observe(string(id), time.Since(start), len(spans))
	}

	if cacheTheme != "" {
		if err := rendercache.Save(path, cacheTheme, src.ModTime, toCache(spans)); err != nil {
			fmt.Fprintf(os.Stderr, "hltree: warning: caching render of %s: %v\n", path, err)
		}
	}

	return highlightResult{Source: src.Data, Language: id, Spans: spans}, nil
}

func fromCache(spans []rendercache.Span) []spanResult {
	out := make([]spanResult, len(spans))
	for i, s := range spans {
		out[i] = spanResult{From: s.From, To: s.To, Classes: s.Classes}
	}
	return out
}

func toCache(spans []spanResult) []rendercache.Span {
	out := make([]rendercache.Span, len(spans))
	for i, s := range spans {
		out[i] = rendercache.Span{From: s.From, To: s.To, Classes: s.Classes}
	}
	return out
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// availableLanguages lists the lang.ID values the --lang flag accepts,
// for usage text.
func availableLanguages() string {
	ids := []string{
		string(lang.Go), string(lang.Rust), string(lang.Python),
		string(lang.JavaScript), string(lang.TypeScript), string(lang.TSX),
		string(lang.JSON), string(lang.YAML), string(lang.TOML),
		string(lang.Bash), string(lang.C), string(lang.CPP),
	}
	return strings.Join(ids, ", ")
}
