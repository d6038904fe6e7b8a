package toy

import "hltree/highlight"

// ParseTemplate parses the outer "interpolation wrapper" grammar from spec
// §8's mounted-language scenario: a run of literal text broken up by
// "{...}" holes. Each hole's content is parsed independently as a toy
// Program and mounted, full (no overlay), on the Hole node that covers it.
// The braces themselves stay outer Punct, so they keep the surrounding
// Template's styling rather than the mounted language's.
func ParseTemplate(src string) *Tree {
	var kids []*Node
	litStart := 0
	flush := func(end int) {
		if end > litStart {
			kids = append(kids, leaf(kindLiteral, litStart, end))
		}
	}
	i := 0
	for i < len(src) {
		if src[i] != '{' {
			i++
			continue
		}
		flush(i)
		kids = append(kids, leaf(kindPunct, i, i+1))
		i++
		contentStart := i
		for i < len(src) && src[i] != '}' {
			i++
		}
		inner := Parse(src[contentStart:i])
		kids = append(kids, &Node{
			Kind:  kindHole,
			From:  contentStart,
			To:    i,
			Mount: &highlight.Mounted{Tree: inner},
		})
		if i < len(src) {
			kids = append(kids, leaf(kindPunct, i, i+1))
			i++
		}
		litStart = i
	}
	flush(len(src))
	root := &Node{Kind: kindTemplate, From: 0, To: len(src), Children: kids}
	return &Tree{Root: root, Source: src}
}
