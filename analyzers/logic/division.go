package logic

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var divisionOperators = map[string]bool{
	"/": true, "//": true, "%": true,
	"/=": true, "//=": true, "%=": true,
}

// divisor returns the right operand of a division, or nil when n is not one.
func divisor(n *sitter.Node) *sitter.Node {
	switch n.Type() {
	case "binary_operator", "augmented_assignment":
		if divisionOperators[operatorOf(n)] {
			return pyast.Unwrap(pyast.Field(n, "right"))
		}
	}
	return nil
}

// divisionByLiteralRule flags a division whose divisor is the literal 0.
func divisionByLiteralRule(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
	right := divisor(n)
	if right == nil || !isZero(t, right) {
		return nil, nil
	}

	return []types.Diagnostic{{
		Code:       CodeDivisionByZero,
		Line:       pyast.Line(n),
		Message:    fmt.Sprintf("Division by zero: %s", t.SourceLine(n)),
		Suggestion: "Remove the division by zero or guard it:\nif divisor != 0:\n    result = value / divisor",
	}}, nil
}

func (s *Scanner) divisionByLiteral(p *checks.Pass) ([]types.Diagnostic, error) {
	a := pyast.TreeAnalyzer{Name: "division-by-literal"}
	a.RegisterRule(divisionByLiteralRule)
	return a.Run(p.Tree)
}

// zeroNames returns the names assigned the literal 0 anywhere in the tree,
// mapped to the line of their first such assignment.
func zeroNames(t *pyast.Tree) map[string]int {
	zeros := make(map[string]int)
	pyast.Inspect(t.Root, func(n *sitter.Node) bool {
		if n.Type() != "assignment" {
			return true
		}
		names, value := assignment(n)
		if value == nil || !isZero(t, value) {
			return true
		}
		for _, name := range names {
			if _, ok := zeros[t.Content(name)]; !ok {
				zeros[t.Content(name)] = pyast.Line(name)
			}
		}
		return true
	})
	return zeros
}

func (s *Scanner) divisionByName(p *checks.Pass) ([]types.Diagnostic, error) {
	zeros := zeroNames(p.Tree)
	if len(zeros) == 0 {
		return nil, nil
	}

	a := pyast.TreeAnalyzer{Name: "division-by-name"}
	a.RegisterRule(func(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
		right := divisor(n)
		if right == nil || right.Type() != "identifier" {
			return nil, nil
		}

		name := t.Content(right)
		line, ok := zeros[name]
		if !ok {
			return nil, nil
		}

		return []types.Diagnostic{{
			Code:       CodeDivisionByZeroName,
			Line:       pyast.Line(n),
			Message:    fmt.Sprintf("Possible division by zero: '%s' is assigned 0 on line %d: %s", name, line, t.SourceLine(n)),
			Suggestion: fmt.Sprintf("Check '%s' before dividing:\nif %s != 0:\n    ...", name, name),
		}}, nil
	})

	return a.Run(p.Tree)
}
