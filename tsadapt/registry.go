package tsadapt

import (
	sitter "github.com/smacker/go-tree-sitter"
	bashlang "github.com/smacker/go-tree-sitter/bash"
	clang "github.com/smacker/go-tree-sitter/c"
	cpplang "github.com/smacker/go-tree-sitter/cpp"
	golang "github.com/smacker/go-tree-sitter/golang"
	python "github.com/smacker/go-tree-sitter/python"
	rust "github.com/smacker/go-tree-sitter/rust"
	toml "github.com/smacker/go-tree-sitter/toml"
	tsxlang "github.com/smacker/go-tree-sitter/typescript/tsx"
	tslang "github.com/smacker/go-tree-sitter/typescript/typescript"
	yaml "github.com/smacker/go-tree-sitter/yaml"
	tsjson "github.com/tree-sitter/tree-sitter-json/bindings/go"

	"hltree/highlight"
	"hltree/internal/lang"
)

// Registry holds the languages wired for this module, mirroring the
// fixed language set a terminal highlighter bundles at startup rather
// than loading grammars dynamically.
var Registry = map[lang.ID]*Language{}

func register(id lang.ID, sitterLang *sitter.Language, table map[string]highlight.TagSpec, topNames ...string) *Language {
	l, err := NewLanguage(id, sitterLang, table, topNames...)
	if err != nil {
		panic(err)
	}
	Registry[id] = l
	return l
}

var (
	GoLanguage         = register(lang.Go, golang.GetLanguage(), goTags, "source_file")
	PythonLanguage     = register(lang.Python, python.GetLanguage(), pythonTags, "module")
	RustLanguage       = register(lang.Rust, rust.GetLanguage(), rustTags, "source_file")
	JavaScriptLanguage = register(lang.JavaScript, tslang.GetLanguage(), jsFamilyTags, "program")
	TypeScriptLanguage = register(lang.TypeScript, tslang.GetLanguage(), jsFamilyTags, "program")
	TSXLanguage        = register(lang.TSX, tsxlang.GetLanguage(), jsFamilyTags, "program")
	JSONLanguage       = register(lang.JSON, sitter.NewLanguage(tsjson.Language()), jsonTags, "document")
	YAMLLanguage       = register(lang.YAML, yaml.GetLanguage(), yamlTags, "stream")
	TOMLLanguage       = register(lang.TOML, toml.GetLanguage(), tomlTags, "document")
	BashLanguage       = register(lang.Bash, bashlang.GetLanguage(), bashTags, "program")
	CLanguage          = register(lang.C, clang.GetLanguage(), cFamilyTags, "translation_unit")
	CPPLanguage        = register(lang.CPP, cpplang.GetLanguage(), cFamilyTags, "translation_unit")
)

// Lookup returns the Language registered for id, if any.
func Lookup(id lang.ID) (*Language, bool) {
	l, ok := Registry[id]
	return l, ok
}
