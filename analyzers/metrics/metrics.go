// Package metrics computes size and branching complexity figures.
package metrics

import (
	"log/slog"
	"math"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// decisionPoints are the node types that open an independent path.
var decisionPoints = map[string]bool{
	"if_statement":           true,
	"elif_clause":            true,
	"conditional_expression": true,
	"for_statement":          true,
	"while_statement":        true,
	"except_clause":          true,
	"for_in_clause":          true,
	"if_clause":              true,
	"boolean_operator":       true,
	"assert_statement":       true,
	"case_clause":            true,
}

// FunctionComplexity is the complexity of one function definition.
type FunctionComplexity struct {
	Name       string
	Line       int
	Complexity int
}

// Calculate returns the quality metrics of src. tree may be nil or contain
// errors, in which case the complexity score degrades to zero and a warning
// is logged.
func Calculate(src string, tree *pyast.Tree, log *slog.Logger) types.QualityMetrics {
	m := types.QualityMetrics{LineCount: lines.Count(src)}

	if tree == nil || tree.HasError() {
		log.Warn("could not calculate complexity: source does not parse")
		return m
	}

	functions := Functions(tree)
	m.FunctionCount = len(functions)
	if len(functions) == 0 {
		log.Debug("no functions found for complexity calculation")
		return m
	}

	total := 0
	for _, fn := range functions {
		total += fn.Complexity
	}
	m.ComplexityScore = Round(float64(total) / float64(len(functions)))

	log.Debug("quality metrics computed", "line_count", m.LineCount, "complexity", m.ComplexityScore)
	return m
}

// Functions returns the complexity of every function and method in source
// order. Nested definitions are scored on their own.
func Functions(tree *pyast.Tree) []FunctionComplexity {
	var out []FunctionComplexity

	pyast.Inspect(tree.Root, func(n *sitter.Node) bool {
		if n.Type() != "function_definition" {
			return true
		}

		name := ""
		if id := pyast.Field(n, "name"); id != nil {
			name = tree.Content(id)
		}
		out = append(out, FunctionComplexity{
			Name:       name,
			Line:       pyast.Line(n),
			Complexity: 1 + countDecisions(pyast.Field(n, "body")),
		})

		return true
	})

	return out
}

// countDecisions counts decision points below body, not descending into
// nested function definitions.
func countDecisions(body *sitter.Node) int {
	count := 0
	pyast.Inspect(body, func(n *sitter.Node) bool {
		if n.Type() == "function_definition" {
			return false
		}
		if decisionPoints[n.Type()] {
			count++
		}
		return true
	})
	return count
}

// Round rounds v to two decimal places.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
