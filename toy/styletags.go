package toy

import "hltree/highlight"

// rules is the compiled selector table for the toy language, grounded in
// the exact mappings spec §8's worked examples describe: the hierarchical
// "Key/Identifier" selector, the opaque "Array!" atom, and the inheriting
// "Tag/...".
var rules = mustStyleTags(map[string]highlight.TagSpec{
	"Punct":           highlight.Punctuation,
	"Arrow":           highlight.Operator,
	"Identifier":      highlight.VariableName,
	"LocalIdentifier": highlight.Local.Apply(highlight.VariableName),
	"String":          highlight.String,
	"Escape":          highlight.Escape,
	"Comment":         highlight.LineComment,
	"Array!":          highlight.Atom,
	"Tag/...":         highlight.Literal,
	"Emphasis":        highlight.Emphasis,
	"Key/Identifier":  highlight.PropertyName,
})

func mustStyleTags(table map[string]highlight.TagSpec) map[string]*highlight.Rule {
	rules, err := highlight.StyleTags(table)
	if err != nil {
		panic(err)
	}
	return rules
}
