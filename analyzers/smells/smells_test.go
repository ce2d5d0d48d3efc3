package smells

import (
	"context"
	"testing"

	"github.com/go-test/deep"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/config"
	"github.com/devtrivedi96/Code-analyst-ai/logger"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

func check(t *testing.T, src string) []types.Diagnostic {
	t.Helper()

	tree, err := pyast.Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("failed to parse source, err: %v", err)
	}
	return New(config.DefaultConfig().Smells, logger.Discard()).Check(lines.Split(src), tree)
}

func linesOf(diagnostics []types.Diagnostic, code string) []int {
	var got []int
	for _, d := range diagnostics {
		if d.Code == code {
			got = append(got, d.Line)
		}
	}
	return got
}

const repeated = `result = compute_value(data)
result = compute_value(data)
other = 1
result = compute_value(data)
`

func TestCheck(t *testing.T) {
	type test struct {
		description string
		src         string
		code        string
		want        []int
	}

	tests := []test{
		{"single letter name", "x = 5\n", CodeNaming, []int{1}},
		{"tuple target", "a, bb = 1, 2\n", CodeNaming, []int{1}},
		{"loop counter", "for i in range(3):\n    pass\n", CodeNaming, nil},
		{"descriptive name", "count = 5\n", CodeNaming, nil},

		{"magic number", "timeout = 3600\n", CodeMagicNumber, []int{1}},
		{"negative magic number", "delay = -30\n", CodeMagicNumber, []int{1}},
		{"allowed number", "hours = 24\n", CodeMagicNumber, nil},
		{"constant definition", "TIMEOUT = 3600\n", CodeMagicNumber, nil},
		{"small numbers", "count = 5\nratio = 0.5\n", CodeMagicNumber, nil},

		{"repeated line", repeated, CodeDuplication, []int{1}},
		{"twice only", "result = compute_value(data)\nresult = compute_value(data)\n", CodeDuplication, nil},
		{"short line", "n += 1\nn += 1\nn += 1\n", CodeDuplication, nil},

		{"wildcard import", "from os import *\n", CodeWildcardImport, []int{1}},
		{"explicit import", "from os import path\n", CodeWildcardImport, nil},

		{"print without logging", "print('hi')\n", CodePrint, []int{types.NoLine}},
		{"print with logging", "import logging\nprint('hi')\n", CodePrint, nil},
		{"print in string", "msg = 'print(x)'\n", CodePrint, nil},

		{"untyped function", "def add(first, second):\n    return first + second\n", CodeTypeHints, []int{1}},
		{"typed function", "def add(first: int, second: int) -> int:\n    return first + second\n", CodeTypeHints, nil},
		{"no parameters", "def run():\n    pass\n", CodeTypeHints, nil},
		{"test function", "def test_add(first):\n    pass\n", CodeTypeHints, nil},
		{"method receiver", "class Job:\n    def run(self):\n        pass\n", CodeTypeHints, nil},

		{"missing docstring", "def run():\n    pass\n", CodeDocstring, []int{1}},
		{"docstring", "def run():\n    \"\"\"Run the job.\"\"\"\n    pass\n", CodeDocstring, nil},

		{"bare except", "try:\n    pass\nexcept:\n    pass\n", CodeBareExcept, []int{3}},
		{"typed except", "try:\n    pass\nexcept ValueError:\n    pass\n", CodeBareExcept, nil},

		{"list default", "def f(items=[]):\n    pass\n", CodeMutableDefault, []int{1}},
		{"typed dict default", "def f(opts: dict = {}):\n    pass\n", CodeMutableDefault, []int{1}},
		{"constructor default", "def f(items=list()):\n    pass\n", CodeMutableDefault, []int{1}},
		{"none default", "def f(items=None):\n    pass\n", CodeMutableDefault, nil},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got := linesOf(check(t, tc.src), tc.code)
			if diff := deep.Equal(got, tc.want); diff != nil {
				t.Errorf("%s: lines differ: %v", tc.code, diff)
			}
		})
	}
}

func TestCheckInvalidSyntax(t *testing.T) {
	src := "from os import *\ndef f(:\n    x = 5\n"
	got := check(t, src)

	if diff := deep.Equal(linesOf(got, CodeWildcardImport), []int{1}); diff != nil {
		t.Errorf("line-based checks should run: %v", diff)
	}
	if lines := linesOf(got, CodeNaming); lines != nil {
		t.Errorf("expected tree-based checks to be skipped, got %v", lines)
	}
}

func TestDuplicationMessage(t *testing.T) {
	got := check(t, repeated)

	var messages []string
	for _, d := range got {
		if d.Code == CodeDuplication {
			messages = append(messages, d.Message)
		}
	}

	want := []string{"Code repeated 3 times (lines: 1, 2, 4): result = compute_value(data)"}
	if diff := deep.Equal(messages, want); diff != nil {
		t.Error(diff)
	}
}
