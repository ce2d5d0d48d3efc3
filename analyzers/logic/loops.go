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

var (
	unconditionalLoop = regexp.MustCompile(`^while\s*(?:\(\s*)?(?:True|1)(?:\s*\))?\s*:(.*)$`)
	breakStatement    = regexp.MustCompile(`\bbreak\b`)
)

// infiniteLoops flags `while True` loops with no break in the following
// window of lines at the loop's indentation or deeper.
func (s *Scanner) infiniteLoops(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic

	for i, l := range p.Lines {
		if l.Continuation {
			continue
		}

		m := unconditionalLoop.FindStringSubmatch(strings.TrimSpace(l.Bare))
		if m == nil {
			continue
		}

		// one-line loop body: `while True: break`
		if breakStatement.MatchString(m[1]) {
			continue
		}

		if !hasBreak(p, i, s.cfg.InfiniteLoopWindow) {
			out = append(out, types.Diagnostic{
				Code:       CodeInfiniteLoop,
				Line:       l.Number,
				Message:    fmt.Sprintf("Infinite loop: no break found after '%s'", l.Stripped()),
				Suggestion: "Add an exit condition:\nwhile True:\n    if done:\n        break",
			})
		}
	}

	return out, nil
}

func hasBreak(p *checks.Pass, loop, window int) bool {
	indent := p.Lines[loop].Indent
	end := loop + window
	if end >= len(p.Lines) {
		end = len(p.Lines) - 1
	}

	for j := loop + 1; j <= end; j++ {
		l := p.Lines[j]
		if l.Blank() || l.Indent < indent {
			continue
		}
		if breakStatement.MatchString(l.Bare) {
			return true
		}
	}

	return false
}

// emptyRanges flags for loops over a range whose literal bounds yield no
// iterations.
func (s *Scanner) emptyRanges(p *checks.Pass) ([]types.Diagnostic, error) {
	a := pyast.TreeAnalyzer{Name: "empty-range"}
	a.RegisterRule(emptyRangeRule)
	return a.Run(p.Tree)
}

func emptyRangeRule(n *sitter.Node, t *pyast.Tree) ([]types.Diagnostic, error) {
	if n.Type() != "for_statement" {
		return nil, nil
	}

	call := pyast.Unwrap(pyast.Field(n, "right"))
	if call == nil || call.Type() != "call" {
		return nil, nil
	}
	fn := pyast.Field(call, "function")
	if fn == nil || t.Content(fn) != "range" {
		return nil, nil
	}

	args := pyast.Field(call, "arguments")
	if args == nil {
		return nil, nil
	}

	var values []float64
	for _, arg := range pyast.NamedChildren(args) {
		if arg.Type() == "comment" {
			continue
		}
		v, ok := numericValue(t, arg)
		if !ok {
			return nil, nil
		}
		values = append(values, v)
	}

	if !emptyRange(values) {
		return nil, nil
	}

	return []types.Diagnostic{{
		Code:       CodeEmptyRange,
		Line:       pyast.Line(n),
		Message:    fmt.Sprintf("Loop never executes: %s yields no iterations", t.Content(call)),
		Suggestion: "Use a positive iteration count, e.g. range(n) with n > 0",
	}}, nil
}

// emptyRange reports whether range(values...) is empty.
func emptyRange(values []float64) bool {
	switch len(values) {
	case 1:
		return values[0] <= 0
	case 2:
		return values[1] <= values[0]
	case 3:
		start, stop, step := values[0], values[1], values[2]
		switch {
		case step == 0:
			return true
		case step > 0:
			return stop <= start
		default:
			return stop >= start
		}
	}
	return false
}
