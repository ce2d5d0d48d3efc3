package practices

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var (
	forLoop    = regexp.MustCompile(`^(?:async\s+)?for\b`)
	loop       = regexp.MustCompile(`^(?:(?:async\s+)?for|while)\b`)
	appendCall = regexp.MustCompile(`^[A-Za-z_][\w.]*\.append\s*\(`)
	ifClause   = regexp.MustCompile(`^if\b`)
	rangeLen   = regexp.MustCompile(`\brange\s*\(\s*len\s*\(`)
)

// appendLoops flags for loops whose body only filters and appends, which a
// comprehension expresses directly.
func (c *Checker) appendLoops(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic

	for i, l := range p.Lines {
		if l.Continuation || !forLoop.MatchString(strings.TrimSpace(l.Bare)) {
			continue
		}

		body := block(p.Lines, i)
		appends := 0
		for _, s := range body {
			switch {
			case appendCall.MatchString(s.text):
				appends++
			case ifClause.MatchString(s.text):
			default:
				appends = -1
			}
			if appends < 0 {
				break
			}
		}
		if appends != 1 {
			continue
		}

		out = append(out, types.Diagnostic{
			Code:       CodeAppendLoop,
			Line:       l.Number,
			Message:    fmt.Sprintf("Consider using list comprehension: %s", l.Stripped()),
			Suggestion: "Replace loop with list comprehension for better performance, e.g. result = [f(x) for x in items]",
		})
	}

	return out, nil
}

func (c *Checker) rangeLen(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if !rangeLen.MatchString(l.Bare) {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeRangeLen,
			Line:       l.Number,
			Message:    fmt.Sprintf("Inefficient range(len()) usage: %s", l.Stripped()),
			Suggestion: "Use enumerate() or direct iteration",
		})
	}
	return out, nil
}

// conditionalsInLoops flags each loop that contains an if statement, the
// usual shape of per-item lookups that could be batched.
func (c *Checker) conditionalsInLoops(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic

	for i, l := range p.Lines {
		if l.Continuation || !loop.MatchString(strings.TrimSpace(l.Bare)) {
			continue
		}

		for _, s := range block(p.Lines, i) {
			if !ifClause.MatchString(s.text) {
				continue
			}
			out = append(out, types.Diagnostic{
				Code:       CodeConditionalInLoop,
				Line:       l.Number,
				Message:    fmt.Sprintf("Potential N+1 query pattern: conditional on line %d inside loop", s.line),
				Suggestion: "Consider batching operations outside loops",
			})
			break
		}
	}

	return out, nil
}
