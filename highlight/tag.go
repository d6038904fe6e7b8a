// Package highlight implements a syntax-directed highlighting engine: a
// closed tag vocabulary with commuting modifiers, a selector compiler that
// turns path expressions into node-indexed rules, and a tree-cursor walk
// that turns (tree, style, range) into a coalesced sequence of spans.
package highlight

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrInvalidParent is returned by DefineTag when the supplied parent is
// itself a modified tag; modified tags cannot be further parented.
var ErrInvalidParent = errors.New("highlight: cannot define a tag with a modified parent")

var nextTagID uint64
var nextModifierID uint64

// Tag is an opaque, reference-identity highlighting category. Its Set is
// the fallback chain used by Style.Match: Set[0] is the tag itself and
// specificity decreases towards the end of the slice.
type Tag struct {
	id   uint64
	name string

	// Set lists this tag and every less-specific fallback, most specific
	// first, ending at the most general ancestor (or, for a modified tag,
	// the chain of progressively-less-modified ancestors and finally the
	// unmodified base).
	Set []*Tag

	// Base is the unmodified tag this one was derived from, or nil if this
	// tag was produced directly by DefineTag.
	Base *Tag

	// Modified holds the modifiers applied to Base, in ascending id order.
	Modified []*Modifier

	mu    sync.Mutex
	cache map[string]*Tag // only populated on unmodified tags (Base == nil)
}

// Name returns the human-readable name attached at definition time, purely
// for debugging and preset construction; it is never consulted for tag
// identity or matching.
func (t *Tag) Name() string {
	if t.name != "" {
		return t.name
	}
	if t.Base != nil {
		parts := make([]string, len(t.Modified))
		for i, m := range t.Modified {
			parts[i] = m.name
		}
		return fmt.Sprintf("%s(%s)", strings.Join(parts, "+"), t.Base.Name())
	}
	return fmt.Sprintf("tag#%d", t.id)
}

func (t *Tag) String() string { return t.Name() }

// DefineTag allocates a new tag, optionally as a child of parent. It fails
// with ErrInvalidParent if parent is itself a modified tag.
func DefineTag(name string, parent *Tag) (*Tag, error) {
	if parent != nil && parent.Base != nil {
		return nil, fmt.Errorf("highlight: define %q: %w", name, ErrInvalidParent)
	}
	t := &Tag{id: atomic.AddUint64(&nextTagID, 1), name: name}
	if parent == nil {
		t.Set = []*Tag{t}
	} else {
		t.Set = make([]*Tag, 0, len(parent.Set)+1)
		t.Set = append(t.Set, t)
		t.Set = append(t.Set, parent.Set...)
	}
	return t, nil
}

// MustDefineTag panics on error; used for package-level vocabulary tables
// where the parent is always known-good at init time.
func MustDefineTag(name string, parent *Tag) *Tag {
	t, err := DefineTag(name, parent)
	if err != nil {
		panic(err)
	}
	return t
}

// Modifier is an orthogonal, idempotent, commuting attribute that can be
// applied to a Tag to derive a canonical, interned modified tag.
type Modifier struct {
	id   uint64
	name string
}

// DefineModifier allocates a new modifier.
func DefineModifier(name string) *Modifier {
	return &Modifier{id: atomic.AddUint64(&nextModifierID, 1), name: name}
}

func (m *Modifier) String() string { return m.name }

// Apply returns the canonical tag representing t with m additionally
// applied. It is idempotent (Apply(Apply(t)) == Apply(t)) and commutes with
// every other modifier's Apply by construction, since the canonical tag is
// keyed by the union of modifier ids regardless of application order.
func (m *Modifier) Apply(t *Tag) *Tag {
	base := t
	mods := []*Modifier{m}
	if t.Base != nil {
		base = t.Base
		mods = unionModifiers(t.Modified, m)
	}
	return internModified(base, mods)
}

// unionModifiers returns existing ∪ {m}, sorted ascending by id, deduped.
func unionModifiers(existing []*Modifier, m *Modifier) []*Modifier {
	for _, e := range existing {
		if e == m {
			return existing
		}
	}
	out := make([]*Modifier, len(existing)+1)
	copy(out, existing)
	out[len(existing)] = m
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func modifierKey(mods []*Modifier) string {
	ids := make([]string, len(mods))
	for i, m := range mods {
		ids[i] = fmt.Sprintf("%d", m.id)
	}
	return strings.Join(ids, ",")
}

// internModified returns the canonical tag for (base, mods), building it
// (and every fallback it needs along the way) on first request.
func internModified(base *Tag, mods []*Modifier) *Tag {
	if len(mods) == 0 {
		return base
	}
	key := modifierKey(mods)

	base.mu.Lock()
	if base.cache == nil {
		base.cache = make(map[string]*Tag)
	}
	if existing, ok := base.cache[key]; ok {
		base.mu.Unlock()
		return existing
	}
	// Reserve the slot with a half-built tag so that the self-referential
	// entry (p == base, subset == mods) below can find it instead of
	// recursing forever.
	t := &Tag{id: atomic.AddUint64(&nextTagID, 1), Base: base, Modified: mods}
	base.cache[key] = t
	base.mu.Unlock()

	t.Set = buildModifiedSet(base, mods, t)
	return t
}

// buildModifiedSet implements the canonical enumeration from the modifier
// algebra: for each ancestor p of base (base.Set, most specific first),
// for each non-empty subset of mods ordered largest-subset-first, the
// fallback chain contains get(p, subset) -- except for the single entry
// where p is base itself and the subset is the full mods set, which is
// self (the tag under construction). The unmodified base is appended last.
func buildModifiedSet(base *Tag, mods []*Modifier, self *Tag) []*Tag {
	subsets := nonEmptySubsetsLargestFirst(mods)
	out := make([]*Tag, 0, len(base.Set)*len(subsets)+1)
	for _, p := range base.Set {
		for _, subset := range subsets {
			if p == base && len(subset) == len(mods) {
				out = append(out, self)
				continue
			}
			out = append(out, internModified(p, subset))
		}
	}
	out = append(out, base)
	return out
}

// nonEmptySubsetsLargestFirst returns every non-empty subset of mods
// (mods assumed already ascending by id), ordered by decreasing subset
// size, each subset itself in ascending-id order. Ties within a size are
// broken by ascending bitmask, giving a fixed, deterministic order.
func nonEmptySubsetsLargestFirst(mods []*Modifier) [][]*Modifier {
	n := len(mods)
	total := 1 << n
	masks := make([]int, 0, total-1)
	for mask := 1; mask < total; mask++ {
		masks = append(masks, mask)
	}
	sort.Slice(masks, func(i, j int) bool {
		pi, pj := popcount(masks[i]), popcount(masks[j])
		if pi != pj {
			return pi > pj
		}
		return masks[i] < masks[j]
	})
	out := make([][]*Modifier, 0, len(masks))
	for _, mask := range masks {
		var subset []*Modifier
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, mods[i])
			}
		}
		out = append(out, subset)
	}
	return out
}

func popcount(v int) int {
	c := 0
	for v != 0 {
		c += v & 1
		v >>= 1
	}
	return c
}
