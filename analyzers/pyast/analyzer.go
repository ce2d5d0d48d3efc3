package pyast

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// RuleType defines the signature of a rule for the tree analyzer.
type RuleType func(n *sitter.Node, t *Tree) ([]types.Diagnostic, error)

// TreeAnalyzer applies registered node rules to a syntax tree. It keeps no
// diagnostics between runs.
type TreeAnalyzer struct {
	Name  string
	rules []RuleType
}

// String returns the string representation of the analyzer.
func (a *TreeAnalyzer) String() string {
	return a.Name
}

// RegisterRule registers a rule for the tree analyzer.
func (a *TreeAnalyzer) RegisterRule(rule RuleType) {
	a.rules = append(a.rules, rule)
}

// Run applies every rule to every node. Diagnostics are grouped by rule in
// registration order, then by source order. A rule that fails stops only
// its own traversal; the first such error is returned alongside the
// diagnostics of the remaining rules.
func (a *TreeAnalyzer) Run(t *Tree) ([]types.Diagnostic, error) {
	var (
		diagnostics []types.Diagnostic
		firstErr    error
	)

	for _, rule := range a.rules {
		var (
			found   []types.Diagnostic
			ruleErr error
		)

		Inspect(t.Root, func(node *sitter.Node) bool {
			if ruleErr != nil {
				return false
			}

			d, err := rule(node, t)
			if err != nil {
				ruleErr = err
				return false
			}
			found = append(found, d...)

			return true
		})

		if ruleErr != nil {
			if firstErr == nil {
				firstErr = ruleErr
			}
			continue
		}
		diagnostics = append(diagnostics, found...)
	}

	return diagnostics, firstErr
}
