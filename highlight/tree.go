package highlight

// Tree, TreeCursor and NodeType are the contracts the engine expects from
// its parser environment (spec §6). Any parse tree -- a toy hand-written
// one or a go-tree-sitter wrapper -- can drive HighlightTree as long as it
// implements these three interfaces.
type Tree interface {
	// Length is the byte length of the subtree.
	Length() int
	// Cursor returns a TreeCursor positioned at the root of the tree.
	Cursor() TreeCursor
}

// TreeCursor walks a Tree depth-first. FirstChild/NextSibling/Parent mutate
// the cursor in place and report whether the move succeeded, matching the
// mutable-cursor idiom real incremental parsers use to avoid per-node
// allocation.
type TreeCursor interface {
	// Type is the NodeType of the node the cursor currently points at.
	Type() NodeType
	// From and To are the byte offsets of the current node, relative to
	// the root of the tree this cursor was created from.
	From() int
	To() int

	FirstChild() bool
	NextSibling() bool
	Parent() bool

	// Mounted returns the mounted-language descriptor attached to the
	// current node, or nil if the node mounts nothing.
	Mounted() *Mounted
}

// NodeType describes the grammar-level kind of a node: its name, whether
// it is a language's top (root) type, and an arbitrary per-type property
// table keyed by NodeProp.
type NodeType interface {
	Name() string
	IsTop() bool
	Prop(key NodeProp) any
}

// NodeProp is an opaque key used to attach arbitrary per-node-type data.
// RuleProp is the one NodeProp this package defines, carrying the compiled
// Rule chain produced by StyleTags.
type NodeProp string

// RuleProp is the NodeProp under which StyleTags attaches compiled rule
// chains to node types.
const RuleProp NodeProp = "highlight.rules"

// RulesFor is a small helper that extracts a *Rule chain from a NodeType
// via RuleProp, returning nil if the type carries none.
func RulesFor(t NodeType) *Rule {
	if t == nil {
		return nil
	}
	r, _ := t.Prop(RuleProp).(*Rule)
	return r
}

// Mounted describes an inner parse attached to a node: either a full
// replacement of the outer subtree, or an overlay interleaving inner
// content at specific byte ranges local to the mounting node.
type Mounted struct {
	Tree    Tree
	Overlay []OverlayRange // nil for a full mount
}

// OverlayRange is a byte range local to the mounting node's start, naming a
// stretch of the outer node's content that belongs to the inner language.
type OverlayRange struct {
	From, To int
}
