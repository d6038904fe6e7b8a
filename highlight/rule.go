package highlight

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned when a selector fails the grammar in §4.2: an
// empty innermost segment, a stray "!" or "/...", or an unterminated quote.
var ErrInvalidPath = errors.New("highlight: invalid selector path")

// RuleMode controls how a matched Rule's classes propagate to descendants.
type RuleMode int

const (
	// Normal applies the rule's classes to the matched node only.
	Normal RuleMode = iota
	// Inherit applies the classes to the node and propagates them to every
	// descendant (until an Opaque rule intervenes).
	Inherit
	// Opaque applies the classes to the node and suppresses all deeper
	// styling within it.
	Opaque
)

func (m RuleMode) String() string {
	switch m {
	case Inherit:
		return "Inherit"
	case Opaque:
		return "Opaque"
	default:
		return "Normal"
	}
}

// Rule is the compiled form of one selector path: the tags it contributes,
// how they propagate, the ancestor context it requires, and the next
// alternative rule filed under the same innermost node name.
type Rule struct {
	Tags    []*Tag
	Mode    RuleMode
	Context []*string // nil entry == wildcard '*'; nil slice == no context required
	Next    *Rule
}

// matchContext implements §4.5: context[0] must match the node's direct
// parent, context[1] its grandparent, and so on; nil entries are wildcards.
func matchContext(context []*string, stack []string, depth int) bool {
	if len(context) == 0 {
		return true
	}
	if len(context) > depth {
		return false
	}
	d := depth - 1
	for _, step := range context {
		if step != nil && stack[d] != *step {
			return false
		}
		d--
	}
	return true
}

// TagSpec is either a *Tag or a []*Tag; it is the value side of the map
// StyleTags accepts, mirroring the single-tag-or-list flexibility of the
// source selector API.
type TagSpec = any

func tagsFromSpec(spec TagSpec) ([]*Tag, error) {
	switch v := spec.(type) {
	case *Tag:
		if v == nil {
			return nil, fmt.Errorf("highlight: nil tag in style spec")
		}
		return []*Tag{v}, nil
	case []*Tag:
		return v, nil
	default:
		return nil, fmt.Errorf("highlight: style spec must be *Tag or []*Tag, got %T", spec)
	}
}

// StyleTags compiles a selector table into a per-node-name Rule chain,
// suitable for attaching to node types via RuleProp. Keys may contain
// several space-separated paths; every path is filed independently under
// its own innermost node name, all carrying the same tags.
func StyleTags(table map[string]TagSpec) (map[string]*Rule, error) {
	out := make(map[string]*Rule)
	for selector, spec := range table {
		tags, err := tagsFromSpec(spec)
		if err != nil {
			return nil, err
		}
		paths, err := splitSelector(selector)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			steps, mode, err := parsePath(path)
			if err != nil {
				return nil, err
			}
			if len(steps) == 0 {
				return nil, fmt.Errorf("highlight: %w: empty selector %q", ErrInvalidPath, selector)
			}
			innermost := steps[len(steps)-1]
			if innermost == nil {
				return nil, fmt.Errorf("highlight: %w: wildcard innermost name in %q", ErrInvalidPath, selector)
			}
			context := reverseExceptLast(steps)
			rule := &Rule{Tags: tags, Mode: mode, Context: context}
			file(out, *innermost, rule)
		}
	}
	return out, nil
}

// file inserts rule into the chain for name, ordered by decreasing context
// depth; ties are broken by insertion order with the later insertion
// winning (spec §4.2's "open question", pinned as documented behavior).
func file(table map[string]*Rule, name string, rule *Rule) {
	head := table[name]
	var prev *Rule
	cur := head
	depth := len(rule.Context)
	for cur != nil && len(cur.Context) > depth {
		prev = cur
		cur = cur.Next
	}
	rule.Next = cur
	if prev == nil {
		table[name] = rule
	} else {
		prev.Next = rule
	}
}

func reverseExceptLast(steps []*string) []*string {
	if len(steps) <= 1 {
		return nil
	}
	ctx := steps[:len(steps)-1]
	out := make([]*string, len(ctx))
	for i, s := range ctx {
		out[len(ctx)-1-i] = s
	}
	return out
}

func splitSelector(selector string) ([]string, error) {
	fields := strings.Fields(selector)
	if len(fields) == 0 {
		return nil, fmt.Errorf("highlight: %w: empty selector", ErrInvalidPath)
	}
	return fields, nil
}

// parsePath tokenizes one slash-separated path into its steps plus the
// trailing mode marker ("/..." or "!"), per the grammar in spec §4.2.
func parsePath(path string) ([]*string, RuleMode, error) {
	var steps []*string
	i := 0
	n := len(path)

	for i < n {
		switch {
		case path[i] == '"':
			name, next, err := readQuotedStep(path, i)
			if err != nil {
				return nil, Normal, err
			}
			steps = append(steps, &name)
			i = next
		case path[i] == '*':
			if i+1 < n && path[i+1] != '/' && path[i+1] != '!' {
				return nil, Normal, fmt.Errorf("highlight: %w: malformed wildcard in %q", ErrInvalidPath, path)
			}
			steps = append(steps, nil)
			i++
		default:
			name, next := readBareStep(path, i)
			if name == "" {
				return nil, Normal, fmt.Errorf("highlight: %w: empty step in %q", ErrInvalidPath, path)
			}
			steps = append(steps, &name)
			i = next
		}

		if i >= n {
			break
		}
		switch path[i] {
		case '/':
			if i+4 == n && path[i+1:] == "..." {
				return steps, Inherit, nil
			}
			if rest := path[i+1:]; strings.HasPrefix(rest, ".../") || rest == "...!" {
				return nil, Normal, fmt.Errorf("highlight: %w: stray '/...' in %q", ErrInvalidPath, path)
			}
			i++
			if i >= n {
				return nil, Normal, fmt.Errorf("highlight: %w: trailing slash in %q", ErrInvalidPath, path)
			}
		case '!':
			if i+1 != n {
				return nil, Normal, fmt.Errorf("highlight: %w: stray '!' in %q", ErrInvalidPath, path)
			}
			return steps, Opaque, nil
		default:
			return nil, Normal, fmt.Errorf("highlight: %w: unexpected %q in %q", ErrInvalidPath, string(path[i]), path)
		}
	}
	return steps, Normal, nil
}

func readBareStep(path string, i int) (string, int) {
	start := i
	for i < len(path) && path[i] != '/' && path[i] != '!' {
		i++
	}
	return path[start:i], i
}

func readQuotedStep(path string, i int) (string, int, error) {
	start := i
	i++ // skip opening quote
	for i < len(path) {
		switch path[i] {
		case '\\':
			i += 2
			continue
		case '"':
			i++
			decoded, err := strconv.Unquote(path[start:i])
			if err != nil {
				return "", 0, fmt.Errorf("highlight: %w: bad quoted step %q: %v", ErrInvalidPath, path[start:i], err)
			}
			return decoded, i, nil
		default:
			i++
		}
	}
	return "", 0, fmt.Errorf("highlight: %w: unterminated quote in %q", ErrInvalidPath, path)
}
