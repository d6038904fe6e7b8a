// Package toy implements the small hand-written language from spec §8:
// lowercase identifiers, capitalized local identifiers, escaped strings,
// parenthesized lists, opaque brace arrays, double-brace maps, and
// angle-bracket tags with an emphasized run inside. It exists to drive
// highlight.HighlightTree end to end without a real parser dependency.
package toy

import "hltree/highlight"

// kind names every node type the parser produces. Program and Template are
// the two top-level (highlight.NodeType.IsTop) kinds: Program for a plain
// toy-language document, Template for the interpolation wrapper in
// wrapper.go.
type kind string

const (
	kindProgram  kind = "Program"
	kindList     kind = "List"
	kindArray    kind = "Array"
	kindMap      kind = "Map"
	kindMapKey   kind = "Key"
	kindArrow    kind = "Arrow"
	kindTag      kind = "Tag"
	kindTagText  kind = "TagText"
	kindEmphasis kind = "Emphasis"
	kindIdent    kind = "Identifier"
	kindLocal    kind = "LocalIdentifier"
	kindString   kind = "String"
	kindEscape   kind = "Escape"
	kindComment  kind = "Comment"
	kindPunct    kind = "Punct"

	kindTemplate kind = "Template"
	kindLiteral  kind = "Literal" // un-mounted outer text in the wrapper grammar
	kindHole     kind = "Hole"    // interpolation hole, mounts an inner toy Tree
)

func (k kind) Name() string { return string(k) }

func (k kind) IsTop() bool { return k == kindProgram || k == kindTemplate }

func (k kind) Prop(key highlight.NodeProp) any {
	if key == highlight.RuleProp {
		return rules[k.Name()]
	}
	return nil
}

// Node is a parsed toy-language tree node. From/To are byte offsets into
// the source the parser ran over.
type Node struct {
	Kind     kind
	From, To int
	Children []*Node
	Mount    *highlight.Mounted
}

func leaf(k kind, from, to int) *Node { return &Node{Kind: k, From: from, To: to} }

// Tree adapts a parsed *Node into highlight.Tree.
type Tree struct {
	Root   *Node
	Source string
}

func (t *Tree) Length() int { return len(t.Source) }

func (t *Tree) Cursor() highlight.TreeCursor {
	return &cursor{path: []*Node{t.Root}}
}

type cursor struct {
	path []*Node
	idx  []int
}

func (c *cursor) top() *Node { return c.path[len(c.path)-1] }

func (c *cursor) Type() highlight.NodeType    { return c.top().Kind }
func (c *cursor) From() int                   { return c.top().From }
func (c *cursor) To() int                     { return c.top().To }
func (c *cursor) Mounted() *highlight.Mounted { return c.top().Mount }

func (c *cursor) FirstChild() bool {
	n := c.top()
	if len(n.Children) == 0 {
		return false
	}
	c.path = append(c.path, n.Children[0])
	c.idx = append(c.idx, 0)
	return true
}

func (c *cursor) NextSibling() bool {
	if len(c.path) < 2 {
		return false
	}
	parent := c.path[len(c.path)-2]
	i := c.idx[len(c.idx)-1] + 1
	if i >= len(parent.Children) {
		return false
	}
	c.path[len(c.path)-1] = parent.Children[i]
	c.idx[len(c.idx)-1] = i
	return true
}

func (c *cursor) Parent() bool {
	if len(c.path) < 2 {
		return false
	}
	c.path = c.path[:len(c.path)-1]
	c.idx = c.idx[:len(c.idx)-1]
	return true
}
