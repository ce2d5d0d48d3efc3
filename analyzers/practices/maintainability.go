package practices

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var (
	booleanOperator = regexp.MustCompile(`\b(?:and|or)\b`)
	functionHeader  = regexp.MustCompile(`^(?:async\s+)?def\s+(\w+)`)
	letterString    = regexp.MustCompile(`"([A-Za-z]+)"|'([A-Za-z]+)'`)
)

func (c *Checker) complexConditions(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		n := len(booleanOperator.FindAllStringIndex(l.Bare, -1))
		if n <= c.cfg.MaxBooleanOperators {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeComplexCondition,
			Line:       l.Number,
			Message:    fmt.Sprintf("Complex conditional expression (%d boolean operators): %s", n, l.Stripped()),
			Suggestion: "Break complex conditions into variables or helper functions",
		})
	}
	return out, nil
}

// largeFunctions flags functions whose body spans more lines than allowed.
// Blank lines inside the body count; trailing blank lines do not.
func (c *Checker) largeFunctions(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for i, l := range p.Lines {
		if l.Continuation {
			continue
		}
		m := functionHeader.FindStringSubmatch(strings.TrimSpace(l.Bare))
		if m == nil {
			continue
		}

		size := span(p.Lines, i) - l.Number
		if size <= c.cfg.MaxFunctionLines {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeLargeFunction,
			Line:       l.Number,
			Message:    fmt.Sprintf("Large function '%s' detected (%d lines)", m[1], size),
			Suggestion: "Consider breaking large functions into smaller, focused functions",
		})
	}
	return out, nil
}

// magicStrings flags letter-only string literals of the configured length
// that appear repeatedly, once at their first occurrence.
func (c *Checker) magicStrings(p *checks.Pass) ([]types.Diagnostic, error) {
	type seen struct {
		line  int
		count int
	}

	var (
		order    []string
		literals = make(map[string]*seen)
	)
	for _, l := range p.Lines {
		for _, m := range letterString.FindAllStringSubmatch(l.Code, -1) {
			text := m[1] + m[2]
			if len(text) < c.cfg.MagicStringMinLength {
				continue
			}
			if s, ok := literals[text]; ok {
				s.count++
				continue
			}
			literals[text] = &seen{line: l.Number, count: 1}
			order = append(order, text)
		}
	}

	var out []types.Diagnostic
	for _, text := range order {
		s := literals[text]
		if s.count < c.cfg.MagicStringMinRepeats {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeMagicString,
			Line:       s.line,
			Message:    fmt.Sprintf("Magic string '%s' repeated %d times", text, s.count),
			Suggestion: fmt.Sprintf("Define string constants at module level, e.g. %s = '%s'", strings.ToUpper(text), text),
		})
	}
	return out, nil
}
