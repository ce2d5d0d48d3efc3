// Package syntax validates that source text parses into a syntax tree.
package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
)

// Result is the outcome of a syntax check. Error, Line and Column are only
// set when Valid is false.
type Result struct {
	Valid  bool
	Error  string
	Line   int
	Column int
	// Tree is the parsed tree, present whenever parsing produced one,
	// including for invalid input.
	Tree *pyast.Tree
}

// Check parses src and reports whether it is syntactically valid. It never
// returns an error: parser failures are reported as an invalid result.
func Check(ctx context.Context, src string) Result {
	tree, err := pyast.Parse(ctx, []byte(src))
	if err != nil {
		return Result{Error: fmt.Sprintf("parse failed: %v", err)}
	}

	if !tree.HasError() {
		node := firstLegacyStatement(tree.Root)
		if node == nil {
			return Result{Valid: true, Tree: tree}
		}
		line, col := pyast.Line(node), pyast.Column(node)
		return Result{
			Tree:   tree,
			Line:   line,
			Column: col,
			Error:  fmt.Sprintf("invalid syntax at line %d, column %d", line, col),
		}
	}

	res := Result{Tree: tree, Error: "invalid syntax"}
	if node := firstError(tree.Root); node != nil {
		res.Line = pyast.Line(node)
		res.Column = pyast.Column(node)
		if node.IsMissing() {
			res.Error = fmt.Sprintf("missing %q at line %d, column %d", node.Type(), res.Line, res.Column)
		} else {
			res.Error = fmt.Sprintf("invalid syntax at line %d, column %d", res.Line, res.Column)
		}
	}

	return res
}

// firstError returns the first ERROR or missing node in source order.
func firstError(root *sitter.Node) *sitter.Node {
	var found *sitter.Node
	pyast.Inspect(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			found = n
			return false
		}
		// only descend into subtrees that contain the error
		return n.HasError()
	})
	return found
}

// legacyStatements are statement forms the grammar still accepts but the
// language no longer does.
var legacyStatements = map[string]bool{
	"print_statement": true,
	"exec_statement":  true,
}

// firstLegacyStatement returns the first legacy statement in source order.
func firstLegacyStatement(root *sitter.Node) *sitter.Node {
	var found *sitter.Node
	pyast.Inspect(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}
		if legacyStatements[n.Type()] {
			found = n
			return false
		}
		return true
	})
	return found
}
