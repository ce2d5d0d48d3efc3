// Package checks runs independent source checks over one pass and isolates
// their failures from each other.
package checks

import (
	"fmt"
	"log/slog"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// Pass is the input of one run. It is built per call and never shared
// between calls.
type Pass struct {
	Lines []lines.Line
	// Tree is nil when the source did not parse cleanly.
	Tree *pyast.Tree
}

// NewPass builds a pass over src. A tree with syntax errors is dropped.
func NewPass(src []lines.Line, tree *pyast.Tree) *Pass {
	p := &Pass{Lines: src}
	if tree != nil && !tree.HasError() {
		p.Tree = tree
	}
	return p
}

// Check is a single named check.
type Check struct {
	Name string
	// NeedsTree checks are skipped when the pass has no tree.
	NeedsTree bool
	Run       func(p *Pass) ([]types.Diagnostic, error)
}

// Run runs checks in order and concatenates their diagnostics. A check that
// returns an error or panics contributes nothing and is logged as a warning.
// Repeated diagnostics are dropped.
func Run(group string, checks []Check, p *Pass, log *slog.Logger) []types.Diagnostic {
	if p.Tree == nil {
		log.Debug("skipping tree-based checks: no valid syntax tree", "group", group)
	}

	var out []types.Diagnostic
	for _, c := range checks {
		if c.NeedsTree && p.Tree == nil {
			continue
		}
		out = append(out, run(group, c, p, log)...)
	}

	return Dedupe(out)
}

func run(group string, c Check, p *Pass, log *slog.Logger) (out []types.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("check failed", "group", group, "check", c.Name, "error", fmt.Sprint(r))
			out = nil
		}
	}()

	d, err := c.Run(p)
	if err != nil {
		log.Warn("check failed", "group", group, "check", c.Name, "error", err)
		return nil
	}

	return d
}

// Dedupe drops repeated diagnostics with the same code, line and message,
// keeping the first.
func Dedupe(in []types.Diagnostic) []types.Diagnostic {
	type key struct {
		code    string
		line    int
		message string
	}

	seen := make(map[key]bool, len(in))
	out := in[:0]
	for _, d := range in {
		k := key{d.Code, d.Line, d.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}

	return out
}
