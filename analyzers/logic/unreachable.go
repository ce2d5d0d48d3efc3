package logic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var (
	terminator = regexp.MustCompile(`^(return|raise|break|continue)\b`)
	// blockBoundary starts code that is reachable again after a terminator.
	blockBoundary = regexp.MustCompile(`^(?:(?:def|class|except|finally|else|elif|case)\b|async\s+def\b|@)`)
)

// unreachableCode flags statements that follow a return, raise, break or
// continue at the same or deeper indentation, up to the next dedent,
// definition or handler boundary.
func (s *Scanner) unreachableCode(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	reported := make(map[int]bool)

	for i, l := range p.Lines {
		if l.Continuation || l.Blank() || reported[l.Number] {
			continue
		}

		m := terminator.FindStringSubmatch(strings.TrimSpace(l.Bare))
		if m == nil {
			continue
		}

		for _, next := range p.Lines[i+1:] {
			if next.Blank() || next.Continuation {
				continue
			}
			if next.Indent < l.Indent || blockBoundary.MatchString(strings.TrimSpace(next.Bare)) {
				break
			}

			reported[next.Number] = true
			out = append(out, types.Diagnostic{
				Code:       CodeUnreachableCode,
				Line:       next.Number,
				Message:    fmt.Sprintf("Unreachable code after '%s' on line %d: %s", m[1], l.Number, next.Stripped()),
				Suggestion: fmt.Sprintf("Remove the statement or move it before the '%s'", m[1]),
			})
		}
	}

	return out, nil
}
