package tsadapt

import "hltree/highlight"

// Each table below is deliberately not exhaustive: it covers the node
// names common across a grammar's comments/strings/numbers/identifiers and
// a representative keyword/operator set, grounded in the well-known
// tree-sitter node-type names for each language. Anonymous tokens (keywords,
// operators, brackets) are named by their literal text, which is how
// tree-sitter grammars expose them; tokens that begin with selector syntax
// ("*", "/", "!") are written as quoted steps so StyleTags accepts them.

var goTags = map[string]highlight.TagSpec{
	"identifier":          highlight.VariableName,
	"type_identifier":     highlight.TypeName,
	"field_identifier":    highlight.PropertyName,
	"package_identifier":  highlight.Namespace,
	"comment":             highlight.LineComment,
	"string_literal":      highlight.String,
	"raw_string_literal":  highlight.String,
	"escape_sequence":     highlight.Escape,
	"int_literal":         highlight.Integer,
	"float_literal":       highlight.Float,
	"imaginary_literal":   highlight.Number,
	"rune_literal":        highlight.Character,
	"true false":          highlight.Bool,
	"nil":                 highlight.Null,
	"iota":                highlight.Self,
	"func package import var const type struct interface map chan go defer select case default switch if else for range return break continue fallthrough goto": highlight.Keyword,
	`+ - "*" "/" % & | ^ << >> &^ += -= "*=" "/=" %= &= |= ^= <<= >>= &^= && || <- ++ -- == < > = "!" "!=" <= >= := ...`: highlight.Operator,
	".": highlight.DerefOperator,
	`, ; :`:    highlight.Separator,
	"( )":      highlight.Paren,
	"[ ]":      highlight.SquareBracket,
	"{ }":      highlight.Brace,
}

var pythonTags = map[string]highlight.TagSpec{
	"identifier":                 highlight.VariableName,
	"comment":                    highlight.LineComment,
	"string":                     highlight.String,
	"escape_sequence":            highlight.Escape,
	"integer":                    highlight.Integer,
	"float":                      highlight.Float,
	"true False":                 highlight.Bool,
	"None":                       highlight.Null,
	"def class import from as return if elif else for while in is not and or lambda try except finally raise with yield pass break continue global nonlocal async await": highlight.Keyword,
	`+ - "*" "/" % "**" "//" & | ^ ~ << >> == "!=" < > <= >= = += -= "*=" "/=" := -> @`: highlight.Operator,
	", : ;": highlight.Separator,
	"( )":   highlight.Paren,
	"[ ]":   highlight.SquareBracket,
	"{ }":   highlight.Brace,
}

var rustTags = map[string]highlight.TagSpec{
	"identifier":                  highlight.VariableName,
	"type_identifier":             highlight.TypeName,
	"field_identifier":            highlight.PropertyName,
	"line_comment":                highlight.LineComment,
	"block_comment":               highlight.BlockComment,
	"string_literal":              highlight.String,
	"raw_string_literal":          highlight.String,
	"escape_sequence":             highlight.Escape,
	"integer_literal":             highlight.Integer,
	"float_literal":               highlight.Float,
	"char_literal":                highlight.Character,
	"true false":                  highlight.Bool,
	"fn let mut struct enum impl trait pub use mod match if else for while loop return break continue as where move async await unsafe": highlight.Keyword,
	`+ - "*" "/" % & | ^ << >> && || "!" == "!=" < > <= >= = += -= "*=" "/=" -> => :: .. ..=`: highlight.Operator,
	", ; :": highlight.Separator,
	"( )":   highlight.Paren,
	"[ ]":   highlight.SquareBracket,
	"{ }":   highlight.Brace,
}

var jsFamilyTags = map[string]highlight.TagSpec{
	"identifier":                   highlight.VariableName,
	"property_identifier":          highlight.PropertyName,
	"type_identifier":              highlight.TypeName,
	"comment":                      highlight.LineComment,
	"string":                       highlight.String,
	"template_string":              highlight.String,
	"escape_sequence":              highlight.Escape,
	"number":                       highlight.Number,
	"regex":                        highlight.Regexp,
	"true false":                   highlight.Bool,
	"null undefined":               highlight.Null,
	"function class const let var return if else for while switch case default break continue new delete typeof instanceof in of try catch finally throw import export from as async await yield interface type enum implements extends public private protected readonly": highlight.Keyword,
	`+ - "*" "/" % "**" & | ^ ~ << >> >>> && || ?? "!" == === "!=" "!==" < > <= >= = += -= "*=" "/=" => ... ?.`: highlight.Operator,
	", ; :": highlight.Separator,
	"( )":   highlight.Paren,
	"[ ]":   highlight.SquareBracket,
	"{ }":   highlight.Brace,
}

var jsonTags = map[string]highlight.TagSpec{
	"string":      highlight.String,
	"number":      highlight.Number,
	"true false":  highlight.Bool,
	"null":        highlight.Null,
	"pair/string":  highlight.PropertyName,
	", :": highlight.Separator,
	"[ ]": highlight.SquareBracket,
	"{ }": highlight.Brace,
}

var yamlTags = map[string]highlight.TagSpec{
	"comment":            highlight.LineComment,
	"single_quote_scalar": highlight.String,
	"double_quote_scalar": highlight.String,
	"string_scalar":       highlight.String,
	"integer_scalar":       highlight.Integer,
	"float_scalar":         highlight.Float,
	"boolean_scalar":       highlight.Bool,
	"null_scalar":          highlight.Null,
	"anchor_name alias_name": highlight.LabelName,
	"tag":                    highlight.TypeName,
	"- : |  >":               highlight.Punctuation,
}

var tomlTags = map[string]highlight.TagSpec{
	"comment":        highlight.LineComment,
	"bare_key":       highlight.PropertyName,
	"quoted_key":     highlight.PropertyName,
	"string":         highlight.String,
	"integer":        highlight.Integer,
	"float":          highlight.Float,
	"boolean":        highlight.Bool,
	"local_date local_date_time offset_date_time local_time": highlight.Atom,
	"= , .":   highlight.Operator,
	"[ ] [[ ]]": highlight.SquareBracket,
}

var bashTags = map[string]highlight.TagSpec{
	"variable_name":    highlight.VariableName,
	"comment":          highlight.LineComment,
	"string":           highlight.String,
	"raw_string":       highlight.String,
	"number":           highlight.Number,
	"command_name":     highlight.Function.Apply(highlight.VariableName),
	"if then else elif fi for in do done while case esac function select until": highlight.Keyword,
	"$ | & && || ; ;; > < >> << = ":                                           highlight.Operator,
	"( )": highlight.Paren,
	"{ }": highlight.Brace,
}

var cFamilyTags = map[string]highlight.TagSpec{
	"identifier":          highlight.VariableName,
	"field_identifier":    highlight.PropertyName,
	"type_identifier":     highlight.TypeName,
	"primitive_type":      highlight.TypeName,
	"comment":             highlight.LineComment,
	"string_literal":      highlight.String,
	"char_literal":        highlight.Character,
	"escape_sequence":     highlight.Escape,
	"number_literal":      highlight.Number,
	"true false":          highlight.Bool,
	"NULL nullptr":        highlight.Null,
	"if else for while do switch case default break continue return goto sizeof struct union enum typedef static const volatile extern void class public private protected namespace template virtual new delete this using": highlight.Keyword,
	`+ - "*" "/" % & | ^ ~ << >> && || "!" == "!=" < > <= >= = += -= "*=" "/=" -> . :: ...`: highlight.Operator,
	", ; :": highlight.Separator,
	"( )":   highlight.Paren,
	"[ ]":   highlight.SquareBracket,
	"{ }":   highlight.Brace,
}
