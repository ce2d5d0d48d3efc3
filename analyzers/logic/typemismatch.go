package logic

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// arithmeticOperators raise a TypeError when mixing str and a number.
// `*` (repetition) and `%` (formatting) are valid on strings.
var arithmeticOperators = map[string]bool{
	"+": true, "-": true, "/": true, "//": true, "**": true,
}

func typeMismatchLiteralRule(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
	if n.Type() != "binary_operator" || !arithmeticOperators[operatorOf(n)] {
		return nil, nil
	}

	left, right := pyast.Field(n, "left"), pyast.Field(n, "right")
	if !(isString(left) && isNumeric(t, right)) && !(isNumeric(t, left) && isString(right)) {
		return nil, nil
	}

	return []types.Diagnostic{{
		Code:       CodeTypeMismatch,
		Line:       pyast.Line(n),
		Message:    fmt.Sprintf("Type mismatch: string combined with number in '%s'", t.Content(n)),
		Suggestion: "Convert explicitly, e.g. str(number) + text or int(text) + number",
	}}, nil
}

func (s *Scanner) typeMismatchLiterals(p *checks.Pass) ([]types.Diagnostic, error) {
	a := pyast.TreeAnalyzer{Name: "type-mismatch"}
	a.RegisterRule(typeMismatchLiteralRule)
	return a.Run(p.Tree)
}

// stringNames returns the names assigned a string literal, mapped to the
// line of their first such assignment.
func stringNames(t *pyast.Tree) map[string]int {
	names := make(map[string]int)
	pyast.Inspect(t.Root, func(n *sitter.Node) bool {
		if n.Type() != "assignment" {
			return true
		}
		targets, value := assignment(n)
		if !isString(value) {
			return true
		}
		for _, target := range targets {
			if _, ok := names[t.Content(target)]; !ok {
				names[t.Content(target)] = pyast.Line(target)
			}
		}
		return true
	})
	return names
}

func (s *Scanner) typeMismatchNames(p *checks.Pass) ([]types.Diagnostic, error) {
	strs := stringNames(p.Tree)
	if len(strs) == 0 {
		return nil, nil
	}

	a := pyast.TreeAnalyzer{Name: "type-mismatch-name"}
	a.RegisterRule(func(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
		if n.Type() != "binary_operator" {
			return nil, nil
		}
		if op := operatorOf(n); op != "+" && op != "-" {
			return nil, nil
		}

		left, right := pyast.Unwrap(pyast.Field(n, "left")), pyast.Unwrap(pyast.Field(n, "right"))
		name := left
		if !isNumeric(t, right) {
			name, right = right, left
			if !isNumeric(t, right) {
				return nil, nil
			}
		}
		if name == nil || name.Type() != "identifier" {
			return nil, nil
		}

		assigned, ok := strs[t.Content(name)]
		if !ok || assigned >= pyast.Line(n) {
			return nil, nil
		}

		return []types.Diagnostic{{
			Code:       CodeTypeMismatchName,
			Line:       pyast.Line(n),
			Message:    fmt.Sprintf("Type mismatch: '%s' holds a string (line %d) and is combined with a number: %s", t.Content(name), assigned, t.SourceLine(n)),
			Suggestion: fmt.Sprintf("Convert explicitly, e.g. int(%s)", t.Content(name)),
		}}, nil
	})

	return a.Run(p.Tree)
}
