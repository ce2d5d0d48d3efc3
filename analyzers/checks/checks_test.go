package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/go-test/deep"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/logger"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

func emit(code string, line int) func(*Pass) ([]types.Diagnostic, error) {
	return func(*Pass) ([]types.Diagnostic, error) {
		return []types.Diagnostic{{Code: code, Line: line, Message: code}}, nil
	}
}

func TestRun(t *testing.T) {
	tree, err := pyast.Parse(context.Background(), []byte("x = 1\n"))
	if err != nil {
		t.Fatalf("failed to parse source, err: %v", err)
	}

	checks := []Check{
		{Name: "first", Run: emit("A", 1)},
		{Name: "panics", Run: func(*Pass) ([]types.Diagnostic, error) { panic("boom") }},
		{Name: "errors", Run: func(*Pass) ([]types.Diagnostic, error) {
			return []types.Diagnostic{{Code: "X"}}, errors.New("failed")
		}},
		{Name: "tree", NeedsTree: true, Run: emit("B", 2)},
		{Name: "duplicate", Run: emit("A", 1)},
	}

	type test struct {
		description string
		pass        *Pass
		want        []types.Diagnostic
	}

	tests := []test{
		{
			description: "valid tree",
			pass:        NewPass(lines.Split("x = 1\n"), tree),
			want: []types.Diagnostic{
				{Code: "A", Line: 1, Message: "A"},
				{Code: "B", Line: 2, Message: "B"},
			},
		},
		{
			description: "no tree",
			pass:        NewPass(lines.Split("x = 1\n"), nil),
			want:        []types.Diagnostic{{Code: "A", Line: 1, Message: "A"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got := Run("test", checks, tc.pass, logger.Discard())
			if diff := deep.Equal(got, tc.want); diff != nil {
				t.Errorf("diagnostics differ: %v", diff)
			}
		})
	}
}

func TestNewPassDropsBrokenTree(t *testing.T) {
	tree, err := pyast.Parse(context.Background(), []byte("def f(:\n"))
	if err != nil {
		t.Fatalf("failed to parse source, err: %v", err)
	}

	if p := NewPass(nil, tree); p.Tree != nil {
		t.Error("expected a tree with errors to be dropped")
	}
}
