package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCount(t *testing.T) {
	cases := []struct {
		description string
		src         string
		want        int
	}{
		{"empty text has no lines", "", 0},
		{"single line without newline", "x = 1", 1},
		{"trailing newline does not add a line", "a\nb\n", 2},
		{"blank lines are counted", "a\n\n\nb", 4},
	}

	for _, tc := range cases {
		if got := Count(tc.src); got != tc.want {
			t.Errorf("description: %s, got %d, want %d", tc.description, got, tc.want)
		}
		if got := len(Split(tc.src)); got != tc.want {
			t.Errorf("description: %s, Split returned %d lines, want %d", tc.description, got, tc.want)
		}
	}
}

func TestStripComment(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"x = 1  # set x", "x = 1"},
		{"# only a comment", ""},
		{`s = "a # not a comment"`, `s = "a # not a comment"`},
		{`s = 'it\'s' # quoted`, `s = 'it\'s'`},
		{"y = 2", "y = 2"},
	}

	for _, tc := range cases {
		if got := StripComment(tc.line); got != tc.want {
			t.Errorf("line %q: got %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestMaskStrings(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{`q = "a; b" + x`, `q = "    " + x`},
		{`print('x=1')  # c`, `print('   ')`},
		{`n = 10`, `n = 10`},
	}

	for _, tc := range cases {
		if got := MaskStrings(tc.line); got != tc.want {
			t.Errorf("line %q: got %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestSplit(t *testing.T) {
	src := "def f(a,\n      b):\n    \"\"\"Doc # here\n    more\"\"\"\n\treturn a  # done\n"

	got := Split(src)
	want := []Line{
		{Number: 1, Raw: "def f(a,", Code: "def f(a,", Bare: "def f(a,", Indent: 0},
		{Number: 2, Raw: "      b):", Code: "      b):", Bare: "      b):", Indent: 6, Continuation: true},
		{Number: 3, Raw: "    \"\"\"Doc # here", Code: "    \"\"\"Doc # here", Bare: "    \"\"\"          ", Indent: 4},
		{Number: 4, Raw: "    more\"\"\"", Code: "    more\"\"\"", Bare: "        \"\"\"", Indent: 4, Continuation: true},
		{Number: 5, Raw: "\treturn a  # done", Code: "\treturn a", Bare: "\treturn a", Indent: 8},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines don't match (-want +got):\n%s", diff)
	}
}

func TestIndentOf(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"x", 0},
		{"    x", 4},
		{"\tx", 8},
		{"  \tx", 8},
		{"", 0},
	}

	for _, tc := range cases {
		if got := IndentOf(tc.line); got != tc.want {
			t.Errorf("line %q: got %d, want %d", tc.line, got, tc.want)
		}
	}
}

func TestBracketDelta(t *testing.T) {
	if got := BracketDelta("return foo(a,"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := BracketDelta("x = [1, 2]"); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestSplitUnclosedBracket(t *testing.T) {
	cases := []struct {
		description string
		src         string
		want        []bool
	}{
		{
			"statement keyword ends an unclosed call",
			"x = foo(\nwhile True:\n    y = 1\nreturn 1\n",
			[]bool{false, false, false, false},
		},
		{
			"nested block header after an unclosed parameter list",
			"def f(:\n    while True:\n        x = 1\n",
			[]bool{false, false, false},
		},
		{
			"block header at the opening indentation",
			"x = [1,\nif x:\n    pass\n",
			[]bool{false, false, false},
		},
		{
			"comprehension clauses stay inside the bracket",
			"x = [a\n    for a in b\n    if a]\ny = 1\n",
			[]bool{false, true, true, false},
		},
		{
			"closed bracket on the next line",
			"if (a,\n        b):\n    pass\n",
			[]bool{false, true, false},
		},
		{
			"keywords inside a multi-line string are text",
			"s = (\"\"\"\nreturn 1\n\"\"\")\n",
			[]bool{false, true, true},
		},
	}

	for _, tc := range cases {
		var got []bool
		for _, l := range Split(tc.src) {
			got = append(got, l.Continuation)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("description: %s, continuation flags differ (-want +got):\n%s", tc.description, diff)
		}
	}
}
