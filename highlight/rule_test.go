package highlight

import (
	"errors"
	"testing"
)

func strp(s string) *string { return &s }

func TestParsePathSimple(t *testing.T) {
	steps, mode, err := parsePath("Identifier")
	if err != nil {
		t.Fatalf("parsePath: %v", err)
	}
	if mode != Normal {
		t.Errorf("mode = %v, want Normal", mode)
	}
	if len(steps) != 1 || *steps[0] != "Identifier" {
		t.Errorf("steps = %v, want [Identifier]", steps)
	}
}

func TestParsePathContext(t *testing.T) {
	steps, mode, err := parsePath("CallExpression/VariableName")
	if err != nil {
		t.Fatalf("parsePath: %v", err)
	}
	if mode != Normal {
		t.Errorf("mode = %v, want Normal", mode)
	}
	if len(steps) != 2 || *steps[0] != "CallExpression" || *steps[1] != "VariableName" {
		t.Errorf("steps = %v", steps)
	}
}

func TestParsePathWildcard(t *testing.T) {
	steps, _, err := parsePath("*/VariableName")
	if err != nil {
		t.Fatalf("parsePath: %v", err)
	}
	if len(steps) != 2 || steps[0] != nil {
		t.Errorf("steps = %v, want [nil VariableName]", steps)
	}
}

func TestParsePathInherit(t *testing.T) {
	steps, mode, err := parsePath("Emphasis/...")
	if err != nil {
		t.Fatalf("parsePath: %v", err)
	}
	if mode != Inherit {
		t.Errorf("mode = %v, want Inherit", mode)
	}
	if len(steps) != 1 || *steps[0] != "Emphasis" {
		t.Errorf("steps = %v", steps)
	}
}

func TestParsePathOpaque(t *testing.T) {
	steps, mode, err := parsePath("Array!")
	if err != nil {
		t.Fatalf("parsePath: %v", err)
	}
	if mode != Opaque {
		t.Errorf("mode = %v, want Opaque", mode)
	}
	if len(steps) != 1 || *steps[0] != "Array" {
		t.Errorf("steps = %v", steps)
	}
}

func TestParsePathQuoted(t *testing.T) {
	steps, _, err := parsePath(`"=>"`)
	if err != nil {
		t.Fatalf("parsePath: %v", err)
	}
	if len(steps) != 1 || *steps[0] != "=>" {
		t.Errorf("steps = %v, want [=>]", steps)
	}
}

func TestParsePathErrors(t *testing.T) {
	cases := []string{
		"Foo/",
		"Foo!Bar",
		`"unterminated`,
		"*x",
	}
	for _, c := range cases {
		if _, _, err := parsePath(c); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("parsePath(%q): got err %v, want ErrInvalidPath", c, err)
		}
	}
}

func TestMatchContext(t *testing.T) {
	stack := []string{"Program", "CallExpression", "ArgList", "VariableName"}
	depth := 3 // VariableName

	cases := []struct {
		context []*string
		want    bool
	}{
		{nil, true},
		{[]*string{strp("ArgList")}, true},
		{[]*string{strp("CallExpression")}, false},
		{[]*string{strp("ArgList"), strp("CallExpression")}, true},
		{[]*string{nil, strp("CallExpression")}, true},
		{[]*string{strp("ArgList"), strp("CallExpression"), strp("Program")}, true},
		{[]*string{strp("ArgList"), strp("CallExpression"), strp("Missing")}, false},
	}
	for i, c := range cases {
		if got := matchContext(c.context, stack, depth); got != c.want {
			t.Errorf("case %d: matchContext(%v) = %v, want %v", i, c.context, got, c.want)
		}
	}
}

func TestMatchContextTooDeep(t *testing.T) {
	stack := []string{"Program", "VariableName"}
	depth := 1 // VariableName, only one ancestor (Program) available
	context := []*string{strp("A"), strp("B")}
	if matchContext(context, stack, depth) {
		t.Errorf("matchContext should fail when context is longer than the available ancestor chain")
	}
}

func TestStyleTagsOrderingByContextDepth(t *testing.T) {
	rules, err := StyleTags(map[string]TagSpec{
		"VariableName":                  VariableName,
		"CallExpression/VariableName":    Function.Apply(VariableName),
		"ArgList/CallExpression/VariableName": ClassName,
	})
	if err != nil {
		t.Fatalf("StyleTags: %v", err)
	}
	chain := rules["VariableName"]
	if chain == nil {
		t.Fatal("no rules filed for VariableName")
	}
	depths := []int{}
	for r := chain; r != nil; r = r.Next {
		depths = append(depths, len(r.Context))
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			t.Fatalf("rule chain not ordered by decreasing context depth: %v", depths)
		}
	}
	if depths[0] != 2 {
		t.Errorf("deepest-context rule should come first, got depths %v", depths)
	}
}

// TestFileRuleOrderingTie pins the later-insertion-wins tie-break decided
// for equal context depth (no context at all, in this case).
func TestFileRuleOrderingTie(t *testing.T) {
	rules, err := StyleTags(map[string]TagSpec{
		"VariableName": VariableName,
	})
	if err != nil {
		t.Fatalf("StyleTags: %v", err)
	}
	table := map[string]*Rule{"VariableName": rules["VariableName"]}
	second := &Rule{Tags: []*Tag{ClassName}}
	file(table, "VariableName", second)

	if table["VariableName"] != second {
		t.Fatalf("later insertion at equal depth should win; got first rule still at head")
	}
}

func TestStyleTagsRejectsEmptySelector(t *testing.T) {
	_, err := StyleTags(map[string]TagSpec{"": VariableName})
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("empty selector: got err %v, want ErrInvalidPath", err)
	}
}

func TestStyleTagsRejectsBadSpec(t *testing.T) {
	_, err := StyleTags(map[string]TagSpec{"VariableName": "not-a-tag"})
	if err == nil {
		t.Fatal("expected error for non-tag spec")
	}
}
