package logic

import (
	"context"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/config"
	"github.com/devtrivedi96/Code-analyst-ai/logger"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

func newScanner() *Scanner {
	return New(config.DefaultConfig().Logic, logger.Discard())
}

func scan(t *testing.T, s *Scanner, src string) []types.Diagnostic {
	t.Helper()

	tree, err := pyast.Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("failed to parse source, err: %v", err)
	}
	return s.Check(lines.Split(src), tree)
}

// linesOf returns the lines of the diagnostics carrying code.
func linesOf(diagnostics []types.Diagnostic, code string) []int {
	var got []int
	for _, d := range diagnostics {
		if d.Code == code {
			got = append(got, d.Line)
		}
	}
	return got
}

func loop(bodyLines int, breakAt int) string {
	var b strings.Builder
	b.WriteString("while True:\n")
	for i := 2; i <= bodyLines+1; i++ {
		if i == breakAt {
			b.WriteString("    break\n")
			continue
		}
		b.WriteString("    x = 1\n")
	}
	return b.String()
}

func TestScan(t *testing.T) {
	type test struct {
		description string
		src         string
		code        string
		want        []int
	}

	tests := []test{
		{"division by literal zero", "r = a / 0\n", CodeDivisionByZero, []int{1}},
		{"floor division and modulo", "a = 4\nr = a // 0\nm = a % 0.0\n", CodeDivisionByZero, []int{2, 3}},
		{"augmented division", "x = 5\nx /= 0\n", CodeDivisionByZero, []int{2}},
		{"division by non zero", "r = 10 / 2\n", CodeDivisionByZero, nil},
		{"division by zero name", "d = 0\nr = 10 / d\n", CodeDivisionByZeroName, []int{2}},
		{"division by non zero name", "d = 3\nr = 10 / d\n", CodeDivisionByZeroName, nil},

		{"infinite loop without break", loop(25, 0), CodeInfiniteLoop, []int{1}},
		{"infinite loop with break", loop(25, 3), CodeInfiniteLoop, nil},
		{"one line loop with break", "while True: break\n", CodeInfiniteLoop, nil},
		{"conditional loop", "n = 3\nwhile n > 0:\n    n -= 1\n", CodeInfiniteLoop, nil},
		{"break beyond window", loop(25, 24), CodeInfiniteLoop, []int{1}},

		{"empty range", "for i in range(0):\n    pass\n", CodeEmptyRange, []int{1}},
		{"negative range", "for i in range(-3):\n    pass\n", CodeEmptyRange, []int{1}},
		{"reversed bounds", "for i in range(5, 1):\n    pass\n", CodeEmptyRange, []int{1}},
		{"positive range", "for i in range(5):\n    pass\n", CodeEmptyRange, nil},
		{"descending step", "for i in range(5, 1, -1):\n    pass\n", CodeEmptyRange, nil},

		{"undefined name", "def f():\n    return total\n", CodeUndefinedVariable, []int{2}},
		{"assigned name", "total = 0\ndef f():\n    return total\n", CodeUndefinedVariable, nil},
		{"reported once", "print(total)\nprint(total)\n", CodeUndefinedVariable, []int{1}},
		{"builtins", "print(len([1, 2]))\n", CodeUndefinedVariable, nil},
		{
			"bindings",
			"import os\nfrom sys import argv as args\n\ndef f(a, b=1, *rest, **opts):\n    for i, j in zip(a, rest):\n        pass\n    with open(args[0]) as fh:\n        pass\n    try:\n        pass\n    except ValueError as e:\n        print(e)\n    if (n := len(opts)):\n        pass\n    return [k for k in opts], lambda q: q + b, os.sep, fh, i, j, n\n",
			CodeUndefinedVariable,
			nil,
		},
		{"attribute and keyword", "def f(o):\n    return o.missing(key=o)\n", CodeUndefinedVariable, nil},

		{"literal true guard", "if True:\n    pass\n", CodeConstantCondition, []int{1}},
		{"literal elif guard", "x = 1\nif x:\n    pass\nelif 0:\n    pass\n", CodeConstantCondition, []int{4}},
		{"falsy while guard", "while False:\n    pass\n", CodeConstantCondition, []int{1}},
		{"truthy while guard", "while True:\n    break\n", CodeConstantCondition, nil},
		{"variable guard", "x = 1\nif x:\n    pass\n", CodeConstantCondition, nil},

		{"assignment in if", "if x = 5:\n    pass\n", CodeAssignmentInCondition, []int{1}},
		{"comparison", "x = 1\nif x == 5:\n    pass\n", CodeAssignmentInCondition, nil},
		{"walrus", "if (n := 5):\n    pass\n", CodeAssignmentInCondition, nil},
		{"keyword argument", "if f(a=1):\n    pass\n", CodeAssignmentInCondition, nil},
		{"one line body", "if x: y = 1\n", CodeAssignmentInCondition, nil},

		{"code after return", "def f():\n    return 1\n    x = 2\n", CodeUnreachableCode, []int{3}},
		{"definition after return", "def f():\n    return 1\ndef g():\n    pass\n", CodeUnreachableCode, nil},
		{"dedent after raise", "def f(x):\n    if x:\n        raise ValueError(x)\n    return x\n", CodeUnreachableCode, nil},
		{"chained returns", "def f():\n    return 1\n    return 2\n    x = 3\n", CodeUnreachableCode, []int{3, 4}},
		{"handler after raise", "try:\n    raise ValueError()\nexcept ValueError:\n    pass\n", CodeUnreachableCode, nil},

		{"unguarded open", "data = open('f.txt')\n", CodeMissingErrorHandling, []int{1}},
		{"guarded open", "try:\n    data = open('f.txt')\nexcept OSError:\n    pass\n", CodeMissingErrorHandling, nil},
		{"one-line try body", "try: data = open('f.txt')\nexcept OSError: pass\n", CodeMissingErrorHandling, nil},
		{"literal indexing", "items = [1]\nfirst = items[0]\n", CodeMissingErrorHandling, []int{2}},
		{"call in string", "print('open(f)')\n", CodeMissingErrorHandling, nil},
		{"method named like risky call", "x = obj.open()\n", CodeMissingErrorHandling, nil},

		{"string plus number", "x = 'age' + 5\n", CodeTypeMismatch, []int{1}},
		{"number plus number", "x = 5 + 3\n", CodeTypeMismatch, nil},
		{"string repetition", "x = 'ab' * 3\n", CodeTypeMismatch, nil},
		{"string name plus number", "age = '5'\ny = age + 1\n", CodeTypeMismatchName, []int{2}},
		{"number name plus number", "age = 5\ny = age + 1\n", CodeTypeMismatchName, nil},
	}

	s := newScanner()
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got := linesOf(scan(t, s, tc.src), tc.code)
			if diff := deep.Equal(got, tc.want); diff != nil {
				t.Errorf("%s: lines differ: %v", tc.code, diff)
			}
		})
	}
}

func TestScanInvalidSyntax(t *testing.T) {
	src := "def f(:\n    while True:\n        x = 1\n    return total\n"
	got := scan(t, newScanner(), src)

	if lines := linesOf(got, CodeInfiniteLoop); len(lines) != 1 || lines[0] != 2 {
		t.Errorf("expected line-based check to report line 2, got %v", lines)
	}
	if lines := linesOf(got, CodeUndefinedVariable); lines != nil {
		t.Errorf("expected tree-based checks to be skipped, got %v", lines)
	}
}

func TestScanUnclosedBracket(t *testing.T) {
	src := "x = foo(\nwhile True:\n    y = 1\nr = a / 0\nif a = 5:\n    pass\nreturn 1\nz = 2\n"
	got := scan(t, newScanner(), src)

	tests := []struct {
		code string
		want []int
	}{
		{CodeInfiniteLoop, []int{2}},
		{CodeAssignmentInCondition, []int{5}},
		{CodeUnreachableCode, []int{8}},
		{CodeDivisionByZero, nil},
	}
	for _, tc := range tests {
		if diff := deep.Equal(linesOf(got, tc.code), tc.want); diff != nil {
			t.Errorf("%s: lines differ: %v", tc.code, diff)
		}
	}
}

func TestScanNilTree(t *testing.T) {
	src := "r = 1 / 0\ndata = open('x')\n"
	got := newScanner().Check(lines.Split(src), nil)

	if diff := deep.Equal(linesOf(got, CodeMissingErrorHandling), []int{2}); diff != nil {
		t.Error(diff)
	}
	if lines := linesOf(got, CodeDivisionByZero); lines != nil {
		t.Errorf("expected no tree-based diagnostics, got %v", lines)
	}
}

func TestScanCheckOrder(t *testing.T) {
	src := "x = 'a'\ny = x + 1\nr = y / 0\nz = 'b' + 2\n"
	got := scan(t, newScanner(), src)

	var codes []string
	for _, d := range got {
		codes = append(codes, d.Code)
	}

	want := []string{CodeDivisionByZero, CodeTypeMismatch, CodeTypeMismatchName}
	if diff := deep.Equal(codes, want); diff != nil {
		t.Errorf("unexpected order: %v", diff)
	}
}

func TestScanIsolatesFailingCheck(t *testing.T) {
	s := newScanner()
	s.checks = append([]checks.Check{
		{Name: "panics", Run: func(*checks.Pass) ([]types.Diagnostic, error) { panic("boom") }},
	}, s.checks...)

	got := scan(t, s, "r = a / 0\n")
	if diff := deep.Equal(linesOf(got, CodeDivisionByZero), []int{1}); diff != nil {
		t.Errorf("other checks should still report: %v", diff)
	}
}

func TestScanIdempotent(t *testing.T) {
	s := newScanner()
	src := "def f():\n    return total\n    y = 1 / 0\n"

	first := scan(t, s, src)
	second := scan(t, s, src)
	if diff := deep.Equal(first, second); diff != nil {
		t.Errorf("repeated scans differ: %v", diff)
	}
}

func TestHasBareAssignment(t *testing.T) {
	tests := map[string]bool{
		" x = 5":       true,
		" x == 5":      false,
		" x != 5":      false,
		" x <= 5":      false,
		" (n := 5)":    false,
		" f(a=1)":      false,
		" x += 1":      false,
		" a = b == c":  true,
		" d[k] = v":    true,
		" s == '   '":  false,
		" (x = 5)":     true,
		" not (x = 5)": true,
		" f (a=1)":     false,
		" g(a)(b=2)":   false,
		" d[f(k=1)]":   false,
	}

	for guard, want := range tests {
		if got := hasBareAssignment(guard); got != want {
			t.Errorf("hasBareAssignment(%q) = %v, want %v", guard, got, want)
		}
	}
}
