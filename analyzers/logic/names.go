package logic

import (
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// bindingStatements bind every identifier they contain.
var bindingStatements = map[string]bool{
	"import_statement":        true,
	"import_from_statement":   true,
	"future_import_statement": true,
	"global_statement":        true,
	"nonlocal_statement":      true,
}

// nameRead is an identifier in load context.
type nameRead struct {
	name  string
	line  int
	start uint32
}

// nameVisitor splits the identifiers of a tree into bindings and reads.
// Scoping is ignored: a name bound anywhere counts as bound everywhere.
type nameVisitor struct {
	t     *pyast.Tree
	bound map[string]bool
	reads []nameRead
}

func (s *Scanner) undefinedNames(p *checks.Pass) ([]types.Diagnostic, error) {
	v := &nameVisitor{t: p.Tree, bound: make(map[string]bool)}
	v.visit(p.Tree.Root)

	sort.SliceStable(v.reads, func(i, j int) bool {
		return v.reads[i].start < v.reads[j].start
	})

	var out []types.Diagnostic
	reported := make(map[string]bool)
	for _, r := range v.reads {
		if v.bound[r.name] || s.builtins[r.name] || reported[r.name] {
			continue
		}
		reported[r.name] = true

		out = append(out, types.Diagnostic{
			Code:       CodeUndefinedVariable,
			Line:       r.line,
			Message:    fmt.Sprintf("Undefined variable '%s' is used but never assigned", r.name),
			Suggestion: fmt.Sprintf("Assign '%s' before use or import it, e.g. %s = None", r.name, r.name),
		})
	}

	return out, nil
}

func (v *nameVisitor) read(n *sitter.Node) {
	v.reads = append(v.reads, nameRead{name: v.t.Content(n), line: pyast.Line(n), start: n.StartByte()})
}

// visit walks an expression or statement in load context.
func (v *nameVisitor) visit(n *sitter.Node) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "identifier":
		v.read(n)

	case "assignment", "augmented_assignment":
		v.bind(pyast.Field(n, "left"))
		v.visit(pyast.Field(n, "type"))
		v.visit(pyast.Field(n, "right"))

	case "for_statement", "for_in_clause":
		left := pyast.Field(n, "left")
		v.bind(left)
		for _, c := range pyast.NamedChildren(n) {
			if !pyast.Same(c, left) {
				v.visit(c)
			}
		}

	case "named_expression":
		v.bind(pyast.Field(n, "name"))
		v.visit(pyast.Field(n, "value"))

	case "function_definition", "class_definition":
		name := pyast.Field(n, "name")
		v.bind(name)
		for _, c := range pyast.NamedChildren(n) {
			switch {
			case pyast.Same(c, name):
			case c.Type() == "parameters":
				v.parameters(c)
			default:
				v.visit(c)
			}
		}

	case "lambda":
		v.parameters(pyast.Field(n, "parameters"))
		v.visit(pyast.Field(n, "body"))

	case "attribute":
		v.visit(pyast.Field(n, "object"))

	case "keyword_argument":
		v.visit(pyast.Field(n, "value"))

	case "dotted_name":
		// outside imports only the leading name is a variable
		if first := n.NamedChild(0); first != nil {
			v.visit(first)
		}

	default:
		if bindingStatements[n.Type()] {
			v.bindAll(n)
			return
		}
		v.visitChildren(n)
	}
}

// visitChildren visits the children of n, binding the target that follows
// an `as` keyword (with items, except clauses, as-patterns).
func (v *nameVisitor) visitChildren(n *sitter.Node) {
	alias := false
	for _, c := range pyast.Children(n) {
		if !c.IsNamed() {
			alias = c.Type() == "as"
			continue
		}
		if alias {
			v.bind(c)
			alias = false
			continue
		}
		v.visit(c)
	}
}

// bind records the names of an assignment target. Attribute and subscript
// targets only read their operands.
func (v *nameVisitor) bind(n *sitter.Node) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "identifier":
		v.bound[v.t.Content(n)] = true
	case "attribute", "subscript":
		v.visit(n)
	case "pattern_list", "tuple_pattern", "list_pattern", "tuple", "list",
		"parenthesized_expression", "expression_list", "list_splat_pattern",
		"dictionary_splat_pattern", "list_splat", "as_pattern_target":
		for _, c := range pyast.NamedChildren(n) {
			v.bind(c)
		}
	default:
		v.visit(n)
	}
}

// bindAll binds every identifier below n.
func (v *nameVisitor) bindAll(n *sitter.Node) {
	pyast.Inspect(n, func(c *sitter.Node) bool {
		if c.Type() == "identifier" {
			v.bound[v.t.Content(c)] = true
		}
		return true
	})
}

// parameters binds the parameter names of a function or lambda and reads
// their defaults and annotations.
func (v *nameVisitor) parameters(n *sitter.Node) {
	if n == nil {
		return
	}

	for _, p := range pyast.NamedChildren(n) {
		switch p.Type() {
		case "identifier":
			v.bind(p)
		case "default_parameter", "typed_default_parameter":
			v.bind(pyast.Field(p, "name"))
			v.visit(pyast.Field(p, "type"))
			v.visit(pyast.Field(p, "value"))
		case "typed_parameter":
			for i, c := range pyast.NamedChildren(p) {
				if i == 0 {
					v.bind(c)
					continue
				}
				v.visit(c)
			}
		case "list_splat_pattern", "dictionary_splat_pattern", "tuple_pattern":
			v.bind(p)
		default:
			v.visit(p)
		}
	}
}
