package smells

import (
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

func run(name string, p *checks.Pass, rule pyast.RuleType) ([]types.Diagnostic, error) {
	a := pyast.TreeAnalyzer{Name: name}
	a.RegisterRule(rule)
	return a.Run(p.Tree)
}

// naming flags single-letter assignment targets. Loop and comprehension
// variables are not assignments and are left alone.
func (c *Checker) naming(p *checks.Pass) ([]types.Diagnostic, error) {
	return run("naming", p, func(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
		if n.Type() != "assignment" {
			return nil, nil
		}

		var out []types.Diagnostic
		for _, target := range targets(pyast.Field(n, "left")) {
			name := t.Content(target)
			if len(name) != 1 || name == "_" {
				continue
			}
			out = append(out, types.Diagnostic{
				Code:       CodeNaming,
				Line:       pyast.Line(target),
				Message:    fmt.Sprintf("Single-letter variable '%s': %s", name, t.SourceLine(n)),
				Suggestion: "Use descriptive variable names (e.g., user_count instead of x)",
			})
		}
		return out, nil
	})
}

// targets returns the identifiers bound by an assignment target.
func targets(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier":
		return []*sitter.Node{n}
	case "pattern_list", "tuple_pattern", "list_pattern", "expression_list", "tuple", "list":
		var out []*sitter.Node
		for _, c := range pyast.NamedChildren(n) {
			out = append(out, targets(c)...)
		}
		return out
	}
	return nil
}

// magicNumbers flags numeric literals of ten or more that are not on the
// allow-list. Literals assigned to an upper-case name define a constant and
// are not flagged.
func (c *Checker) magicNumbers(p *checks.Pass) ([]types.Diagnostic, error) {
	return run("magic-number", p, func(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
		if n.Type() != "integer" && n.Type() != "float" {
			return nil, nil
		}

		text := t.Content(n)
		if c.allowed[text] || !magnitudeAtLeast(text, 10) || definesConstant(n, t) {
			return nil, nil
		}

		return []types.Diagnostic{{
			Code:       CodeMagicNumber,
			Line:       pyast.Line(n),
			Message:    fmt.Sprintf("Magic number '%s' found: %s", text, t.SourceLine(n)),
			Suggestion: fmt.Sprintf("Define as constant: VALUE_%s = %s", constantSuffix(text), text),
		}}, nil
	})
}

func magnitudeAtLeast(text string, min float64) bool {
	clean := strings.ReplaceAll(text, "_", "")
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return float64(i) >= min
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		// imaginary or out of range literals
		return false
	}
	return f >= min
}

func constantSuffix(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			return r
		}
		return '_'
	}, strings.ToUpper(text))
}

// definesConstant reports whether n is the whole value of an assignment to
// an upper-case name.
func definesConstant(n *sitter.Node, t *pyast.Tree) bool {
	parent := n.Parent()
	for parent != nil && parent.Type() == "unary_operator" {
		n, parent = parent, parent.Parent()
	}
	if parent == nil || parent.Type() != "assignment" {
		return false
	}
	if right := pyast.Field(parent, "right"); right == nil || !pyast.Same(right, n) {
		return false
	}
	left := pyast.Field(parent, "left")
	if left == nil || left.Type() != "identifier" {
		return false
	}
	name := t.Content(left)
	return name == strings.ToUpper(name) && strings.ToLower(name) != name
}

// skipFunction reports whether a function is exempt from the type hint and
// docstring checks.
func skipFunction(n *sitter.Node, t *pyast.Tree) bool {
	name := pyast.Field(n, "name")
	return name == nil || strings.Contains(strings.ToLower(t.Content(name)), "test")
}

// typeHints flags functions that annotate neither their return value nor
// any of their parameters.
func (c *Checker) typeHints(p *checks.Pass) ([]types.Diagnostic, error) {
	return run("type-hints", p, func(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
		if n.Type() != "function_definition" || skipFunction(n, t) {
			return nil, nil
		}
		if pyast.Field(n, "return_type") != nil {
			return nil, nil
		}

		params := pyast.Field(n, "parameters")
		plain := 0
		for _, param := range pyast.NamedChildren(params) {
			switch param.Type() {
			case "typed_parameter", "typed_default_parameter":
				return nil, nil
			case "identifier", "default_parameter":
				name := param
				if param.Type() == "default_parameter" {
					name = pyast.Field(param, "name")
				}
				if s := t.Content(name); s != "self" && s != "cls" {
					plain++
				}
			}
		}
		if plain == 0 {
			return nil, nil
		}

		return []types.Diagnostic{{
			Code:       CodeTypeHints,
			Line:       pyast.Line(n),
			Message:    fmt.Sprintf("Missing type hints in function: %s", t.SourceLine(n)),
			Suggestion: "Add type hints: def func(param: str) -> int:",
		}}, nil
	})
}

// docstrings flags functions whose body does not start with a string.
func (c *Checker) docstrings(p *checks.Pass) ([]types.Diagnostic, error) {
	return run("docstring", p, func(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
		if n.Type() != "function_definition" || skipFunction(n, t) || hasDocstring(pyast.Field(n, "body")) {
			return nil, nil
		}

		return []types.Diagnostic{{
			Code:       CodeDocstring,
			Line:       pyast.Line(n),
			Message:    fmt.Sprintf("Missing docstring for function '%s'", t.Content(pyast.Field(n, "name"))),
			Suggestion: "Add docstring:\n    \"\"\"Brief description.\n\n    Args:\n        param: description\n    Returns:\n        description\n    \"\"\"",
		}}, nil
	})
}

func hasDocstring(body *sitter.Node) bool {
	for _, stmt := range pyast.NamedChildren(body) {
		if stmt.Type() == "comment" {
			continue
		}
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
			return false
		}
		first := stmt.NamedChild(0)
		return first.Type() == "string" || first.Type() == "concatenated_string"
	}
	return false
}

var mutableValues = map[string]bool{
	"list": true, "dictionary": true, "set": true,
	"list_comprehension": true, "dictionary_comprehension": true, "set_comprehension": true,
}

var mutableConstructors = map[string]bool{
	"list": true, "dict": true, "set": true, "bytearray": true,
	"collections.defaultdict": true, "defaultdict": true, "OrderedDict": true,
}

// mutableDefaults flags parameters whose default is a mutable container.
func (c *Checker) mutableDefaults(p *checks.Pass) ([]types.Diagnostic, error) {
	return run("mutable-default", p, func(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
		if n.Type() != "default_parameter" && n.Type() != "typed_default_parameter" {
			return nil, nil
		}

		value := pyast.Unwrap(pyast.Field(n, "value"))
		if value == nil {
			return nil, nil
		}
		mutable := mutableValues[value.Type()]
		if value.Type() == "call" {
			mutable = mutableConstructors[t.Content(pyast.Field(value, "function"))]
		}
		if !mutable {
			return nil, nil
		}

		name := t.Content(pyast.Field(n, "name"))
		return []types.Diagnostic{{
			Code:       CodeMutableDefault,
			Line:       pyast.Line(n),
			Message:    fmt.Sprintf("Mutable default argument '%s=%s'", name, t.Content(value)),
			Suggestion: fmt.Sprintf("Use None and initialize inside function:\nif %s is None:\n    %s = %s", name, name, t.Content(value)),
		}}, nil
	})
}
