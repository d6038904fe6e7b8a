// Package readfile centralizes the file I/O cmd/hltree needs before it can
// call highlight.HighlightTree: reading a source file's bytes alongside the
// mtime rendercache keys on, plus a line reader that normalizes line
// endings.
package readfile

import (
	"os"
	"strings"
	"time"
)

// Source is a file's content plus the stat info rendercache needs to
// decide whether a cached render is still valid.
type Source struct {
	Path    string
	Data    []byte
	ModTime time.Time
}

// ReadSource reads path's full contents for highlighting, along with its
// mtime. Unlike ReadLinesNormalized, it keeps the original bytes untouched:
// HighlightTree's offsets are byte offsets into exactly what the parser saw,
// so normalizing line endings here would silently invalidate them.
func ReadSource(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Source{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	return Source{Path: path, Data: data, ModTime: info.ModTime()}, nil
}

// ReadLinesNormalized reads path and splits it into lines with "\r\n"
// folded to "\n". internal/tui does not use it: RenderDocument splits the
// raw source bytes itself so span byte offsets stay valid.
func ReadLinesNormalized(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(normalized, "\n"), nil
}
