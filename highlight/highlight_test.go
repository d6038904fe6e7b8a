package highlight

import (
	"reflect"
	"testing"
)

// testType is a minimal NodeType for exercising HighlightTree without a
// real parser.
type testType struct {
	name  string
	top   bool
	rule  *Rule
}

func (t *testType) Name() string { return t.name }
func (t *testType) IsTop() bool  { return t.top }
func (t *testType) Prop(key NodeProp) any {
	if key == RuleProp {
		return t.rule
	}
	return nil
}

type testNode struct {
	typ      *testType
	from, to int
	children []*testNode
	mounted  *Mounted
}

type testTree struct {
	root   *testNode
	length int
}

func (t *testTree) Length() int      { return t.length }
func (t *testTree) Cursor() TreeCursor { return &testCursor{path: []*testNode{t.root}} }

type testCursor struct {
	path []*testNode
	idx  []int
}

func (c *testCursor) cur() *testNode { return c.path[len(c.path)-1] }
func (c *testCursor) Type() NodeType { return c.cur().typ }
func (c *testCursor) From() int      { return c.cur().from }
func (c *testCursor) To() int        { return c.cur().to }
func (c *testCursor) Mounted() *Mounted { return c.cur().mounted }

func (c *testCursor) FirstChild() bool {
	n := c.cur()
	if len(n.children) == 0 {
		return false
	}
	c.path = append(c.path, n.children[0])
	c.idx = append(c.idx, 0)
	return true
}

func (c *testCursor) NextSibling() bool {
	if len(c.path) < 2 {
		return false
	}
	parent := c.path[len(c.path)-2]
	i := c.idx[len(c.idx)-1] + 1
	if i >= len(parent.children) {
		return false
	}
	c.path[len(c.path)-1] = parent.children[i]
	c.idx[len(c.idx)-1] = i
	return true
}

func (c *testCursor) Parent() bool {
	if len(c.path) < 2 {
		return false
	}
	c.path = c.path[:len(c.path)-1]
	c.idx = c.idx[:len(c.idx)-1]
	return true
}

type span struct {
	from, to int
	classes  string
}

func collect(tree Tree, match MatchFunc, from, to int) []span {
	var got []span
	HighlightTree(tree, match, func(f, t int, cls string) {
		got = append(got, span{f, t, cls})
	}, from, to)
	return got
}

func tagMatch(table map[*Tag]string) MatchFunc {
	return func(tag *Tag, scope NodeType) (string, bool) {
		cls, ok := table[tag]
		return cls, ok
	}
}

func TestHighlightTreeSingleChild(t *testing.T) {
	root := &testNode{typ: &testType{name: "Program", top: true}, from: 0, to: 10}
	ident := &testNode{typ: &testType{name: "Identifier", rule: &Rule{Tags: []*Tag{VariableName}}}, from: 2, to: 5}
	root.children = []*testNode{ident}
	tree := &testTree{root: root, length: 10}

	got := collect(tree, tagMatch(map[*Tag]string{VariableName: "v"}), 0, 10)
	want := []span{{2, 5, "v"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHighlightTreeOpaqueSuppressesChildren(t *testing.T) {
	root := &testNode{typ: &testType{name: "Program", top: true}, from: 0, to: 10}
	number := &testNode{typ: &testType{name: "Number", rule: &Rule{Tags: []*Tag{Number}}}, from: 3, to: 5}
	array := &testNode{
		typ:      &testType{name: "Array", rule: &Rule{Tags: []*Tag{Bracket}, Mode: Opaque}},
		from:     1, to: 8,
		children: []*testNode{number},
	}
	root.children = []*testNode{array}
	tree := &testTree{root: root, length: 10}

	got := collect(tree, tagMatch(map[*Tag]string{Bracket: "bracket", Number: "num"}), 0, 10)
	want := []span{{1, 8, "bracket"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (opaque node must suppress its children's styling)", got, want)
	}
}

func TestHighlightTreeInheritMerges(t *testing.T) {
	root := &testNode{typ: &testType{name: "Program", top: true}, from: 0, to: 10}
	text := &testNode{typ: &testType{name: "Text"}, from: 3, to: 5}
	emphasis := &testNode{
		typ:      &testType{name: "Emphasis", rule: &Rule{Tags: []*Tag{Emphasis}, Mode: Inherit}},
		from:     2, to: 8,
		children: []*testNode{text},
	}
	root.children = []*testNode{emphasis}
	tree := &testTree{root: root, length: 10}

	got := collect(tree, tagMatch(map[*Tag]string{Emphasis: "em"}), 0, 10)
	want := []span{{2, 8, "em"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (inherited class should coalesce across the uninterrupted child)", got, want)
	}
}

func TestHighlightTreeFullMount(t *testing.T) {
	innerRoot := &testNode{typ: &testType{name: "Inner", top: true, rule: &Rule{Tags: []*Tag{String}}}, from: 0, to: 4}
	innerTree := &testTree{root: innerRoot, length: 4}

	outerRoot := &testNode{typ: &testType{name: "Program", top: true}, from: 0, to: 6}
	embedded := &testNode{
		typ:     &testType{name: "Embedded"},
		from:    1, to: 5,
		mounted: &Mounted{Tree: innerTree},
	}
	outerRoot.children = []*testNode{embedded}
	tree := &testTree{root: outerRoot, length: 6}

	got := collect(tree, tagMatch(map[*Tag]string{String: "str"}), 0, 6)
	want := []span{{1, 5, "str"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (mounted tree coordinates should translate by the mount node's start)", got, want)
	}
}

func TestHighlightTreeOverlay(t *testing.T) {
	// Overlay mount coordinates are node-local, the same frame as
	// Overlay entries: this inner tree's own node occupies exactly the
	// hole it fills, [3, 5).
	innerRoot := &testNode{typ: &testType{name: "InnerExpr", top: true, rule: &Rule{Tags: []*Tag{VariableName}}}, from: 3, to: 5}
	innerTree := &testTree{root: innerRoot, length: 5}

	outerText := &testNode{typ: &testType{name: "Text", rule: &Rule{Tags: []*Tag{String}}}, from: 0, to: 8}
	outerRoot := &testNode{
		typ:      &testType{name: "Template", top: true},
		from:     0, to: 8,
		children: []*testNode{outerText},
		mounted: &Mounted{
			Tree:    innerTree,
			Overlay: []OverlayRange{{From: 3, To: 5}},
		},
	}
	tree := &testTree{root: outerRoot, length: 8}

	got := collect(tree, tagMatch(map[*Tag]string{String: "str", VariableName: "v"}), 0, 8)
	want := []span{{0, 3, "str"}, {3, 5, "v"}, {5, 8, "str"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (overlay hole should interrupt outer styling and resume after)", got, want)
	}
}

func TestHighlightTreeOverlayStopsAtRequestedTo(t *testing.T) {
	// A hole entirely past the requested `to` (here {20, 25} with to=15)
	// must never be visited: visiting it would hand highlightRange an
	// inverted (from, to) window and could emit a span past `to`.
	innerRoot := &testNode{typ: &testType{name: "InnerExpr", top: true, rule: &Rule{Tags: []*Tag{VariableName}}}, from: 5, to: 10}
	innerTree := &testTree{root: innerRoot, length: 10}

	outerText := &testNode{typ: &testType{name: "Text", rule: &Rule{Tags: []*Tag{String}}}, from: 0, to: 30}
	outerRoot := &testNode{
		typ:      &testType{name: "Template", top: true},
		from:     0, to: 30,
		children: []*testNode{outerText},
		mounted: &Mounted{
			Tree:    innerTree,
			Overlay: []OverlayRange{{From: 5, To: 10}, {From: 20, To: 25}},
		},
	}
	tree := &testTree{root: outerRoot, length: 30}

	got := collect(tree, tagMatch(map[*Tag]string{String: "str", VariableName: "v"}), 0, 15)
	want := []span{{0, 5, "str"}, {5, 10, "v"}, {10, 15, "str"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (a hole past `to` must be skipped and nothing should extend past `to`)", got, want)
	}
}

func TestHighlightTreeRangeClipping(t *testing.T) {
	root := &testNode{typ: &testType{name: "Program", top: true}, from: 0, to: 10}
	a := &testNode{typ: &testType{name: "A", rule: &Rule{Tags: []*Tag{VariableName}}}, from: 0, to: 4}
	b := &testNode{typ: &testType{name: "B", rule: &Rule{Tags: []*Tag{Keyword}}}, from: 4, to: 10}
	root.children = []*testNode{a, b}
	tree := &testTree{root: root, length: 10}

	got := collect(tree, tagMatch(map[*Tag]string{VariableName: "v", Keyword: "kw"}), 2, 6)
	want := []span{{2, 4, "v"}, {4, 6, "kw"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHighlightTreeNoSpansWhenUnstyled(t *testing.T) {
	root := &testNode{typ: &testType{name: "Program", top: true}, from: 0, to: 5}
	tree := &testTree{root: root, length: 5}
	got := collect(tree, tagMatch(nil), 0, 5)
	if len(got) != 0 {
		t.Errorf("got %v, want no spans", got)
	}
}
