// Package pyast parses Python source with tree-sitter and applies
// node rules over the resulting syntax tree.
package pyast

import (
	"bytes"
	"context"
	"errors"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Tree is a parsed source text.
type Tree struct {
	Root   *sitter.Node
	Source []byte
	tree   *sitter.Tree
}

// Language returns the tree-sitter Python grammar.
func Language() *sitter.Language {
	return python.GetLanguage()
}

// Parse builds the syntax tree of src. A tree is returned even when the
// text contains syntax errors; use HasError to tell them apart.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(Language())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}

	root := tree.RootNode()
	if root == nil {
		return nil, errors.New("parser returned an empty tree")
	}

	return &Tree{Root: root, Source: src, tree: tree}, nil
}

// HasError reports whether the tree contains ERROR or missing nodes.
func (t *Tree) HasError() bool {
	return t.Root.HasError()
}

// Content returns the source text covered by n, or "" for a nil node.
func (t *Tree) Content(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(t.Source)
}

// SourceLine returns the trimmed text of the line on which n starts.
func (t *Tree) SourceLine(n *sitter.Node) string {
	start := int(n.StartByte())
	if start > len(t.Source) {
		return ""
	}

	begin := bytes.LastIndexByte(t.Source[:start], '\n') + 1
	end := bytes.IndexByte(t.Source[start:], '\n')
	if end < 0 {
		end = len(t.Source)
	} else {
		end += start
	}

	return strings.TrimSpace(string(t.Source[begin:end]))
}

// Line returns the 1-based line on which n starts.
func Line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// Column returns the 1-based column on which n starts.
func Column(n *sitter.Node) int {
	return int(n.StartPoint().Column) + 1
}

// Field returns the child of n stored under the given field name, or nil.
func Field(n *sitter.Node, name string) *sitter.Node {
	if n == nil {
		return nil
	}
	return n.ChildByFieldName(name)
}

// Same reports whether a and b denote the same node.
func Same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// Unwrap strips any enclosing parentheses from an expression.
func Unwrap(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" && n.NamedChildCount() == 1 {
		n = n.NamedChild(0)
	}
	return n
}

// Children returns every child of n, named or not.
func Children(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.ChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if c := n.Child(i); c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NamedChildren returns the named children of n.
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if c := n.NamedChild(i); c != nil {
			children = append(children, c)
		}
	}
	return children
}

// Inspect traverses the tree rooted at n in source order. If fn returns
// false, the children of that node are skipped. The traversal uses an
// explicit stack, so deeply nested input cannot exhaust the goroutine stack.
func Inspect(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil {
		return
	}

	stack := []*sitter.Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(node) {
			continue
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if c := node.Child(i); c != nil {
				stack = append(stack, c)
			}
		}
	}
}
