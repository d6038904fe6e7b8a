package highlight

import (
	"strings"
	"sync"
)

// StyleEntry pairs one or more tags with the class they resolve to. The
// style-wide All class is set through HighlightStyleOptions, not here.
type StyleEntry struct {
	Tags  TagSpec // *Tag or []*Tag
	Class string
}

// HighlightStyle maps tags to class strings for a single style. It is
// immutable after construction except for its memoizing match cache, which
// is monotonic: once a tag's class is computed it never changes.
type HighlightStyle struct {
	byID  map[uint64]string
	scope NodeType
	all   string

	mu    sync.Mutex
	cache map[uint64]matchResult
}

type matchResult struct {
	class string
	ok    bool
}

// HighlightStyleOptions configures DefineHighlightStyle.
type HighlightStyleOptions struct {
	// Scope restricts the style to a single top-level node type; Match
	// returns false for any other scope.
	Scope NodeType
	// All is appended to every entry's class, and is returned on its own
	// for a tag no entry matches.
	All string
}

// DefineHighlightStyle builds a Style from a list of tag/class entries.
func DefineHighlightStyle(entries []StyleEntry, opts HighlightStyleOptions) (*HighlightStyle, error) {
	s := &HighlightStyle{
		byID:  make(map[uint64]string),
		scope: opts.Scope,
		all:   opts.All,
		cache: make(map[uint64]matchResult),
	}
	for _, e := range entries {
		tags, err := tagsFromSpec(e.Tags)
		if err != nil {
			return nil, err
		}
		for _, t := range tags {
			cls := e.Class
			if s.all != "" {
				cls = strings.TrimSpace(cls + " " + s.all)
			}
			s.byID[t.id] = cls
		}
	}
	return s, nil
}

// Match resolves tag to a class under the given scope, per spec §4.3:
// a style restricted to a different scope always misses; otherwise the
// first ancestor in tag.Set with a registered class wins, falling back to
// All (possibly empty/absent) when nothing in the chain matches. A hit on
// an ancestor rather than tag itself is memoized back onto tag's id so
// repeat lookups are O(1).
func (s *HighlightStyle) Match(tag *Tag, scope NodeType) (string, bool) {
	if s.scope != nil && scope != s.scope {
		return "", false
	}

	s.mu.Lock()
	if cached, ok := s.cache[tag.id]; ok {
		s.mu.Unlock()
		return cached.class, cached.ok
	}
	s.mu.Unlock()

	for _, anc := range tag.Set {
		if cls, ok := s.byID[anc.id]; ok {
			s.memoize(tag.id, cls, true)
			return cls, true
		}
	}

	if s.all != "" {
		s.memoize(tag.id, s.all, true)
		return s.all, true
	}
	s.memoize(tag.id, "", false)
	return "", false
}

func (s *HighlightStyle) memoize(id uint64, class string, ok bool) {
	s.mu.Lock()
	s.cache[id] = matchResult{class: class, ok: ok}
	s.mu.Unlock()
}

// MatchFunc resolves a tag (within a scope) to a class string; "" and
// false both mean "no styling contributed".
type MatchFunc func(tag *Tag, scope NodeType) (string, bool)

// MatchFn adapts a single style to a MatchFunc.
func (s *HighlightStyle) MatchFn() MatchFunc { return s.Match }

// CombinedMatch merges several styles: for each tag it concatenates every
// non-empty class across styles, space-separated, in style order. When no
// style is scoped the combined result is cached by tag id; a scoped style
// in the mix disables the shared cache since scope becomes part of the key.
func CombinedMatch(styles []*HighlightStyle) MatchFunc {
	if len(styles) == 1 {
		return styles[0].Match
	}

	anyScoped := false
	for _, s := range styles {
		if s.scope != nil {
			anyScoped = true
			break
		}
	}

	if !anyScoped {
		var mu sync.Mutex
		cache := make(map[uint64]matchResult)
		return func(tag *Tag, scope NodeType) (string, bool) {
			mu.Lock()
			if cached, ok := cache[tag.id]; ok {
				mu.Unlock()
				return cached.class, cached.ok
			}
			mu.Unlock()
			cls, ok := combine(styles, tag, scope)
			mu.Lock()
			cache[tag.id] = matchResult{class: cls, ok: ok}
			mu.Unlock()
			return cls, ok
		}
	}

	return func(tag *Tag, scope NodeType) (string, bool) {
		return combine(styles, tag, scope)
	}
}

func combine(styles []*HighlightStyle, tag *Tag, scope NodeType) (string, bool) {
	var parts []string
	for _, s := range styles {
		if cls, ok := s.Match(tag, scope); ok && cls != "" {
			parts = append(parts, cls)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}
