// Package tsadapt adapts github.com/smacker/go-tree-sitter parses into the
// highlight package's Tree/TreeCursor/NodeType contracts, grounded in the
// cursor-walking idiom of a tree-sitter-backed highlighter: a node's own
// type name drives classification, ChildCount/Child drives descent.
package tsadapt

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"hltree/highlight"
	"hltree/internal/lang"
)

// Language binds a tree-sitter grammar to a compiled selector table and the
// set of node-type names the grammar treats as a parse root (almost always
// one name, but some grammars expose more than one entry point).
type Language struct {
	ID       lang.ID
	Sitter   *sitter.Language
	Rules    map[string]*highlight.Rule
	TopNames map[string]bool
}

// NewLanguage compiles table with highlight.StyleTags and binds it to a
// tree-sitter grammar.
func NewLanguage(id lang.ID, sitterLang *sitter.Language, table map[string]highlight.TagSpec, topNames ...string) (*Language, error) {
	rules, err := highlight.StyleTags(table)
	if err != nil {
		return nil, fmt.Errorf("tsadapt: compiling %s selectors: %w", id, err)
	}
	top := make(map[string]bool, len(topNames))
	for _, n := range topNames {
		top[n] = true
	}
	return &Language{ID: id, Sitter: sitterLang, Rules: rules, TopNames: top}, nil
}

// NodeKind is a tree-sitter node's type name under a given Language. Two
// NodeKind values are == iff they name the same grammar node under the same
// Language, which is what HighlightStyleOptions.Scope relies on.
type NodeKind struct {
	name string
	lang *Language
}

func (k NodeKind) Name() string { return k.name }
func (k NodeKind) IsTop() bool  { return k.lang.TopNames[k.name] }

func (k NodeKind) Prop(key highlight.NodeProp) any {
	if key == highlight.RuleProp {
		return k.lang.Rules[k.name]
	}
	return nil
}

// Tree adapts one parsed tree-sitter document into highlight.Tree.
type Tree struct {
	raw    *sitter.Tree
	root   *sitter.Node
	source []byte
	lang   *Language
}

// Parse runs lang's grammar over source.
func Parse(ctx context.Context, lang *Language, source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang.Sitter)
	raw, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("tsadapt: parsing %s: %w", lang.ID, err)
	}
	root := raw.RootNode()
	if root == nil {
		raw.Close()
		return nil, fmt.Errorf("tsadapt: %s parse produced no root node", lang.ID)
	}
	return &Tree{raw: raw, root: root, source: source, lang: lang}, nil
}

// Close releases the underlying tree-sitter tree. Safe to call once the
// caller is done reading spans from it.
func (t *Tree) Close() {
	if t.raw != nil {
		t.raw.Close()
	}
}

func (t *Tree) Length() int { return len(t.source) }

func (t *Tree) Cursor() highlight.TreeCursor {
	return &cursor{path: []*sitter.Node{t.root}, lang: t.lang}
}

type cursor struct {
	path []*sitter.Node
	idx  []int
	lang *Language
}

func (c *cursor) top() *sitter.Node { return c.path[len(c.path)-1] }

func (c *cursor) Type() highlight.NodeType {
	return NodeKind{name: c.top().Type(), lang: c.lang}
}

func (c *cursor) From() int                   { return int(c.top().StartByte()) }
func (c *cursor) To() int                     { return int(c.top().EndByte()) }
func (c *cursor) Mounted() *highlight.Mounted { return nil }

func (c *cursor) FirstChild() bool {
	n := c.top()
	if n.ChildCount() == 0 {
		return false
	}
	c.path = append(c.path, n.Child(0))
	c.idx = append(c.idx, 0)
	return true
}

func (c *cursor) NextSibling() bool {
	if len(c.path) < 2 {
		return false
	}
	parent := c.path[len(c.path)-2]
	i := c.idx[len(c.idx)-1] + 1
	if i >= int(parent.ChildCount()) {
		return false
	}
	c.path[len(c.path)-1] = parent.Child(i)
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
