package highlight

// EmitFunc receives one coalesced, non-empty span. Calls for a single
// HighlightTree invocation arrive in strictly non-decreasing position
// order. A span closes whenever the class changes, including the
// zero-length return to the parent's class between two sibling nodes, so
// adjacent siblings with the same classes (e.g. "((") arrive as separate
// calls.
type EmitFunc func(from, to int, classes string)

// HighlightTree walks tree over [from, to), resolving each node's rule
// chain against match and emitting coalesced spans via emit. This is the
// single public entry point described in spec §6.
func HighlightTree(tree Tree, match MatchFunc, emit EmitFunc, from, to int) {
	if to <= from {
		return
	}
	w := &walker{match: match, builder: &spanBuilder{at: from, emit: emit}}
	w.highlightRange(tree.Cursor(), 0, from, to, "", 0, nil)
	w.builder.flush(to)
}

// HighlightAll is HighlightTree over the whole tree.
func HighlightAll(tree Tree, match MatchFunc, emit EmitFunc) {
	HighlightTree(tree, match, emit, 0, tree.Length())
}

// walker holds per-call traversal state: the style resolver, the span
// builder, and the ancestor name stack used for context matching. None of
// this is shared across calls (spec §5).
type walker struct {
	match   MatchFunc
	builder *spanBuilder
	stack   []string
}

// highlightRange implements the traversal contract of spec §4.4. offset
// translates cur's node-local coordinates (used once a mounted inner tree
// is entered) into absolute document coordinates; it is 0 at the top of a
// call and becomes the mounting node's absolute start when descending into
// a mounted tree, so every Mounted.Tree (full or overlay) is addressed in
// coordinates local to the node that mounts it.
func (w *walker) highlightRange(cur TreeCursor, offset, from, to int, inheritedClass string, depth int, scope NodeType) {
	if from >= to {
		return
	}
	start := offset + cur.From()
	end := offset + cur.To()
	if start >= to || end <= from {
		return
	}

	for depth >= len(w.stack) {
		w.stack = append(w.stack, "")
	}
	nodeType := cur.Type()
	w.stack[depth] = nodeType.Name()
	if nodeType.IsTop() {
		scope = nodeType
	}

	cls := inheritedClass
	opaque := false
	inherited := inheritedClass

	for r := RulesFor(nodeType); r != nil; r = r.Next {
		if !matchContext(r.Context, w.stack, depth) {
			continue
		}
		for _, tag := range r.Tags {
			c, ok := w.match(tag, scope)
			if !ok || c == "" {
				continue
			}
			cls = appendClass(cls, c)
			if r.Mode == Inherit {
				inherited = appendClass(inherited, c)
			}
		}
		if r.Mode == Opaque {
			opaque = true
		}
		break
	}

	w.builder.startSpan(maxInt(start, from), cls)

	if opaque {
		return
	}

	if mounted := cur.Mounted(); mounted != nil {
		w.highlightMount(cur, mounted, start, end, from, to, inherited, depth, scope, cls)
		return
	}

	w.descendChildren(cur, offset, from, to, inherited, depth, scope, cls)
}

// highlightMount dispatches a full (no overlay) or overlay mount. Both
// address the mounted tree in coordinates local to the mounting node
// ([nodeStart, nodeEnd) maps to the inner tree's [0, nodeEnd-nodeStart)).
func (w *walker) highlightMount(cur TreeCursor, mounted *Mounted, nodeStart, nodeEnd, from, to int, inherited string, depth int, scope NodeType, cls string) {
	if len(mounted.Overlay) == 0 {
		w.highlightRange(mounted.Tree.Cursor(), nodeStart, from, to, "", depth, scope)
		return
	}

	pos := nodeStart
	for _, ov := range mounted.Overlay {
		ovFrom := nodeStart + ov.From
		if ovFrom >= to {
			break
		}
		ovTo := nodeStart + ov.To
		if pos < ovFrom {
			w.descendChildren(cur, nodeStart-cur.From(), maxInt(pos, from), minInt(ovFrom, to), inherited, depth, scope, cls)
		}
		w.builder.startSpan(clampInt(ovFrom, from, to), cls)
		w.highlightRange(mounted.Tree.Cursor(), nodeStart, maxInt(ovFrom, from), minInt(ovTo, to), "", depth, scope)
		w.builder.startSpan(clampInt(ovTo, from, to), cls)
		pos = minInt(ovTo, to)
	}
	if pos < nodeEnd && pos < to {
		w.descendChildren(cur, nodeStart-cur.From(), maxInt(pos, from), minInt(nodeEnd, to), inherited, depth, scope, cls)
	}
}

// descendChildren walks cur's children in order, recursing into each whose
// range intersects [from, to), and resumes resumeClass between them so the
// parent-level class covers the gaps (whitespace, punctuation the grammar
// didn't subdivide, ...).
func (w *walker) descendChildren(cur TreeCursor, offset, from, to int, inherited string, depth int, scope NodeType, resumeClass string) {
	if !cur.FirstChild() {
		return
	}
	for {
		childStart := offset + cur.From()
		childEnd := offset + cur.To()
		if childEnd > from && childStart < to {
			w.highlightRange(cur, offset, from, to, inherited, depth+1, scope)
		}
		w.builder.startSpan(minInt(to, childEnd), resumeClass)
		if !cur.NextSibling() {
			break
		}
	}
	cur.Parent()
}

func appendClass(base, add string) string {
	if add == "" {
		return base
	}
	if base == "" {
		return add
	}
	return base + " " + add
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
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

// spanBuilder encapsulates the only place spans materialize: consecutive
// startSpan calls with an unchanged class never emit, and an empty class
// never emits.
type spanBuilder struct {
	at    int
	class string
	emit  EmitFunc
}

func (b *spanBuilder) startSpan(at int, class string) {
	if class == b.class {
		return
	}
	if b.class != "" && at > b.at {
		b.emit(b.at, at, b.class)
	}
	b.at = at
	b.class = class
}

func (b *spanBuilder) flush(to int) {
	if b.class != "" && to > b.at {
		b.emit(b.at, to, b.class)
		b.class = ""
	}
}
