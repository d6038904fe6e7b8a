// Package lang maps a file path to the grammar hltree should parse it
// with. It is deliberately conservative: an unrecognized extension means
// Plain, which callers render unstyled rather than guessing.
package lang

import (
	"path/filepath"
	"strings"
)

// ID names a source language hltree knows a tree-sitter grammar for. It is
// the shared vocabulary between language detection, the grammar registry in
// tsadapt, and the CLI's --lang flag.
type ID string

const (
	Plain      ID = "plain"
	Go         ID = "go"
	Rust       ID = "rust"
	Python     ID = "python"
	JavaScript ID = "javascript"
	TypeScript ID = "typescript"
	TSX        ID = "tsx"
	YAML       ID = "yaml"
	TOML       ID = "toml"
	JSON       ID = "json"
	Bash       ID = "bash"
	C          ID = "c"
	CPP        ID = "cpp"
)

var extMap = map[string]ID{
	".go":    Go,
	".rs":    Rust,
	".py":    Python,
	".js":    JavaScript,
	".jsx":   JavaScript,
	".mjs":   JavaScript,
	".cjs":   JavaScript,
	".ts":    TypeScript,
	".tsx":   TSX,
	".yaml":  YAML,
	".yml":   YAML,
	".toml":  TOML,
	".json":  JSON,
	".jsonc": JSON,
	".json5": JSON,
	".sh":    Bash,
	".bash":  Bash,
	".zsh":   Bash,
	".c":     C,
	".h":     C,
	".cpp":   CPP,
	".cc":    CPP,
	".cxx":   CPP,
	".hpp":   CPP,
	".hh":    CPP,
}

// fileMap holds exact base-name matches, checked before the extension;
// .bashrc and .zshrc have no extension that names a grammar we carry.
var fileMap = map[string]ID{
	"Cargo.toml":        TOML,
	"package-lock.json": JSON,
	".bashrc":           Bash,
	".zshrc":            Bash,
}

// Detect guesses id from path's base name, falling back to its extension
// and finally Plain.
func Detect(path string) ID {
	base := filepath.Base(path)
	if id, ok := fileMap[base]; ok {
		return id
	}
	ext := strings.ToLower(filepath.Ext(base))
	if id, ok := extMap[ext]; ok {
		return id
	}
	return Plain
}

// DetectWithShebang is Detect, with a shebang-line fallback for extensionless
// scripts.
func DetectWithShebang(path string, firstLine string) ID {
	if id := Detect(path); id != Plain {
		return id
	}
	if !strings.HasPrefix(firstLine, "#!") {
		return Plain
	}
	lower := strings.ToLower(firstLine)
	switch {
	case strings.Contains(lower, "python"):
		return Python
	case strings.Contains(lower, "bash") || strings.Contains(lower, "zsh") || strings.Contains(lower, "sh"):
		return Bash
	case strings.Contains(lower, "node"):
		return JavaScript
	default:
		return Plain
	}
}
