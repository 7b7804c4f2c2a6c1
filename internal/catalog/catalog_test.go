package catalog

import (
	"strings"
	"testing"
)

func parse(t *testing.T, text string, lengths map[string]int) Result {
	t.Helper()
	res, err := Parse(strings.NewReader(text), lengths)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return res
}

func TestParseDeclaredKeepsOrderAndDuplicates(t *testing.T) {
	text := `
# a comment
STR_ONE         :one

STR_TWO         :two
STR_ONE         :one again
`
	res := parse(t, text, nil)
	want := []string{"STR_ONE", "STR_TWO", "STR_ONE"}
	if len(res.Declared) != len(want) {
		t.Fatalf("declared %v, want %v", res.Declared, want)
	}
	for i, name := range want {
		if res.Declared[i] != name {
			t.Fatalf("declared[%d]=%q, want %q", i, res.Declared[i], name)
		}
	}
}

func TestParseBlockAnchorExcludedFromFound(t *testing.T) {
	text := `##length 3
STR_FOO_A :a
STR_FOO_B :b
STR_FOO_C :c
`
	res := parse(t, text, nil)
	if _, ok := res.Found["STR_FOO_A"]; ok {
		t.Fatalf("anchor STR_FOO_A must not be in the found set")
	}
	for _, name := range []string{"STR_FOO_B", "STR_FOO_C"} {
		if _, ok := res.Found[name]; !ok {
			t.Fatalf("%s missing from found set", name)
		}
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestParsePrefixReducedWarning(t *testing.T) {
	text := `##length 2
STR_X_ONE :a
STR_Y_TWO :b
`
	res := parse(t, text, nil)
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one", res.Warnings)
	}
	want := "WARNING: prefix of block including STR_Y_TWO was reduced to STR_"
	if res.Warnings[0] != want {
		t.Fatalf("warning = %q, want %q", res.Warnings[0], want)
	}
}

func TestParseAdjacentDeclarationWarning(t *testing.T) {
	text := `##length 3
STR_FOO_A :a
STR_FOO_B :b
STR_FOO_C :c
STR_FOO_EXTRA :left out
`
	res := parse(t, text, nil)
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one", res.Warnings)
	}
	want := "WARNING: STR_FOO_EXTRA looks a lot like block above with prefix STR_FOO_"
	if res.Warnings[0] != want {
		t.Fatalf("warning = %q, want %q", res.Warnings[0], want)
	}
}

func TestParseUnrelatedDeclarationAfterBlockIsQuiet(t *testing.T) {
	text := `##length 3
STR_FOO_A :a
STR_FOO_B :b
STR_FOO_C :c
STR_BAR :unrelated
`
	res := parse(t, text, nil)
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestParseLengthOneBlock(t *testing.T) {
	// A length-1 block is the anchor alone; the very next declaration is
	// still subject to the adjacency check.
	text := `##length 1
STR_SOLO :a
STR_SOLO_MORE :b
`
	res := parse(t, text, nil)
	if len(res.Found) != 0 {
		t.Fatalf("found set should be empty, got %v", res.Found)
	}
	want := "WARNING: STR_SOLO_MORE looks a lot like block above with prefix STR_SOLO"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Fatalf("warnings = %v, want [%q]", res.Warnings, want)
	}
}

func TestParseSymbolicLength(t *testing.T) {
	text := `##length NETLANG_COUNT
STR_LANG_FIRST :a
STR_LANG_SECOND :b
`
	res := parse(t, text, map[string]int{"NETLANG_COUNT": 2})
	if _, ok := res.Found["STR_LANG_SECOND"]; !ok {
		t.Fatalf("STR_LANG_SECOND missing from found set")
	}
}

func TestParseUnknownSymbolicLengthIsFatal(t *testing.T) {
	text := `##length NOT_IN_TABLE
STR_A :a
`
	if _, err := Parse(strings.NewReader(text), nil); err == nil {
		t.Fatalf("expected error for unknown symbolic length")
	}
}

func TestParseNonPositiveLengthIsFatal(t *testing.T) {
	if _, err := Parse(strings.NewReader("##length 0\nSTR_A :a\n"), nil); err == nil {
		t.Fatalf("expected error for zero length")
	}
	if _, err := Parse(strings.NewReader("##length BAD\nSTR_A :a\n"), map[string]int{"BAD": -3}); err == nil {
		t.Fatalf("expected error for negative resolved length")
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"STR_FOO_A", "STR_FOO_B", "STR_FOO_"},
		{"STR_X_ONE", "STR_Y_TWO", "STR_"},
		{"ABC", "AB", "AB"},
		{"", "STR_A", ""},
		{"SAME", "SAME", "SAME"},
	}
	for _, c := range cases {
		if got := longestCommonPrefix(c.a, c.b); got != c.want {
			t.Fatalf("longestCommonPrefix(%q, %q) = %q, want %q", c.a, c.b, got, c.want)
		}
	}
}
