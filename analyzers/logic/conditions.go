package logic

import (
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var conditionalStatement = regexp.MustCompile(`^(if|elif|while)\b(.*)$`)

// truthiness evaluates a literal condition. ok is false for anything that
// is not a literal.
func truthiness(t *pyast.Tree, n *sitter.Node) (value, ok bool) {
	n = pyast.Unwrap(n)
	if n == nil {
		return false, false
	}

	switch n.Type() {
	case "true":
		return true, true
	case "false", "none":
		return false, true
	case "string":
		return stringBody(t.Content(n)) != "", true
	case "integer", "float":
		v, ok := numericValue(t, n)
		return v != 0, ok
	}

	return false, false
}

// constantConditions flags if/elif guards that are literals, and while
// loops whose literal guard is falsy. Truthy while loops are left to the
// infinite loop check.
func (s *Scanner) constantConditions(p *checks.Pass) ([]types.Diagnostic, error) {
	a := pyast.TreeAnalyzer{Name: "constant-condition"}
	a.RegisterRule(constantConditionRule)
	return a.Run(p.Tree)
}

func constantConditionRule(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
	switch n.Type() {
	case "if_statement", "elif_clause", "while_statement":
	default:
		return nil, nil
	}

	value, ok := truthiness(t, pyast.Field(n, "condition"))
	if !ok || (n.Type() == "while_statement" && value) {
		return nil, nil
	}

	outcome := "false"
	if value {
		outcome = "true"
	}

	return []types.Diagnostic{{
		Code:       CodeConstantCondition,
		Line:       pyast.Line(n),
		Message:    fmt.Sprintf("Condition is always %s: %s", outcome, t.SourceLine(n)),
		Suggestion: "Replace the constant with a real check or remove the dead branch",
	}}, nil
}

// assignmentsInConditions flags a bare `=` in an if/elif/while guard. The
// check is textual since such a guard does not parse.
func (s *Scanner) assignmentsInConditions(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic

	for _, l := range p.Lines {
		if l.Continuation {
			continue
		}

		m := conditionalStatement.FindStringSubmatch(strings.TrimSpace(l.Bare))
		if m == nil {
			continue
		}

		if !hasBareAssignment(guardOf(m[2])) {
			continue
		}

		out = append(out, types.Diagnostic{
			Code:       CodeAssignmentInCondition,
			Line:       l.Number,
			Message:    fmt.Sprintf("Assignment used in condition: %s", l.Stripped()),
			Suggestion: "Use '==' to compare values, or ':=' if an assignment is intended",
		})
	}

	return out, nil
}

// guardOf cuts a string-masked statement tail at the colon that opens the
// block, so a one-line body is not taken for part of the guard.
func guardOf(tail string) string {
	depth := 0
	for i := 0; i < len(tail); i++ {
		switch tail[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ':':
			if depth == 0 && (i+1 == len(tail) || tail[i+1] != '=') {
				return tail[:i]
			}
		}
	}
	return tail
}

// hasBareAssignment reports whether a string-masked guard contains an `=`
// that is not a keyword argument, a comparison or a compound operator.
func hasBareAssignment(guard string) bool {
	// calls holds, per open bracket, whether it is a call's argument list
	var calls []bool
	for i := 0; i < len(guard); i++ {
		switch guard[i] {
		case '(':
			calls = append(calls, opensCall(guard[:i]))
		case '[', '{':
			calls = append(calls, false)
		case ')', ']', '}':
			if len(calls) > 0 {
				calls = calls[:len(calls)-1]
			}
		case '=':
			if len(calls) > 0 && calls[len(calls)-1] {
				continue
			}
			if i > 0 && strings.IndexByte("=!<>:+-*/%&|^@~", guard[i-1]) >= 0 {
				continue
			}
			if i+1 < len(guard) && guard[i+1] == '=' {
				i++
				continue
			}
			return true
		}
	}
	return false
}

// expressionKeywords can precede a parenthesized expression.
var expressionKeywords = map[string]bool{
	"and": true, "or": true, "not": true, "in": true, "is": true,
	"if": true, "else": true, "lambda": true, "await": true,
}

// opensCall reports whether a `(` following prefix opens an argument list.
func opensCall(prefix string) bool {
	before := strings.TrimRight(prefix, " \t")
	if before == "" {
		return false
	}

	last := before[len(before)-1]
	if last == ')' || last == ']' {
		return true
	}

	start := len(before)
	for start > 0 && isIdentByte(before[start-1]) {
		start--
	}
	if start == len(before) {
		return false
	}
	return !expressionKeywords[before[start:]]
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
