package logic

import (
	"math/big"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
)

// numericValue evaluates an integer or float literal, optionally negated.
func numericValue(t *pyast.Tree, n *sitter.Node) (float64, bool) {
	n = pyast.Unwrap(n)
	if n == nil {
		return 0, false
	}

	switch n.Type() {
	case "integer", "float":
		return parseNumber(t.Content(n))
	case "unary_operator":
		op := pyast.Field(n, "operator")
		v, ok := numericValue(t, pyast.Field(n, "argument"))
		if !ok || op == nil {
			return 0, false
		}
		switch op.Type() {
		case "-":
			return -v, true
		case "+":
			return v, true
		}
	}

	return 0, false
}

// parseNumber parses a Python numeric literal. Imaginary literals are
// rejected since they have no ordering.
func parseNumber(text string) (float64, bool) {
	text = strings.TrimRight(text, "lL")
	if strings.HasSuffix(text, "j") || strings.HasSuffix(text, "J") {
		return 0, false
	}

	if i, ok := new(big.Int).SetString(text, 0); ok {
		f, _ := new(big.Float).SetInt(i).Float64()
		return f, true
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// isNumeric reports whether n is a numeric literal.
func isNumeric(t *pyast.Tree, n *sitter.Node) bool {
	_, ok := numericValue(t, n)
	return ok
}

// isZero reports whether n is a numeric literal equal to zero.
func isZero(t *pyast.Tree, n *sitter.Node) bool {
	v, ok := numericValue(t, n)
	return ok && v == 0
}

// isString reports whether n is a string literal.
func isString(n *sitter.Node) bool {
	n = pyast.Unwrap(n)
	if n == nil {
		return false
	}
	return n.Type() == "string" || n.Type() == "concatenated_string"
}

// stringBody returns the text between the quotes of a string literal.
func stringBody(text string) string {
	text = strings.TrimLeft(text, "rRbBuUfF")
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if len(text) >= 2*len(q) && strings.HasPrefix(text, q) && strings.HasSuffix(text, q) {
			return text[len(q) : len(text)-len(q)]
		}
	}
	return text
}

// operatorOf returns the operator token of a binary or augmented operator node.
func operatorOf(n *sitter.Node) string {
	if op := pyast.Field(n, "operator"); op != nil {
		return op.Type()
	}
	return ""
}

// assignment returns the simple name targets and the final value of an
// assignment such as `a = b = 0`. Non-name targets are ignored.
func assignment(n *sitter.Node) ([]*sitter.Node, *sitter.Node) {
	var names []*sitter.Node
	for n != nil && n.Type() == "assignment" {
		if left := pyast.Field(n, "left"); left != nil && left.Type() == "identifier" {
			names = append(names, left)
		}
		right := pyast.Field(n, "right")
		if right == nil || right.Type() != "assignment" {
			return names, right
		}
		n = right
	}
	return names, nil
}
