package smells

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var (
	wildcardImport = regexp.MustCompile(`^from\s+\S+\s+import\s+\*`)
	printCall      = regexp.MustCompile(`(?:^|[^\w.])print\s*\(`)
	loggingUse     = regexp.MustCompile(`\blogging\b`)
	bareExcept     = regexp.MustCompile(`^except\s*:`)
)

// duplication flags stripped lines that repeat often enough, reported once
// at their first occurrence.
func (c *Checker) duplication(p *checks.Pass) ([]types.Diagnostic, error) {
	var (
		order       []string
		occurrences = make(map[string][]int)
	)

	for _, l := range p.Lines {
		text := l.Stripped()
		if text == "" || len(text) <= c.cfg.DuplicateMinLength {
			continue
		}
		if _, ok := occurrences[text]; !ok {
			order = append(order, text)
		}
		occurrences[text] = append(occurrences[text], l.Number)
	}

	var out []types.Diagnostic
	for _, text := range order {
		at := occurrences[text]
		if len(at) < c.cfg.DuplicateMinOccurrences {
			continue
		}

		numbers := make([]string, len(at))
		for i, n := range at {
			numbers[i] = strconv.Itoa(n)
		}

		out = append(out, types.Diagnostic{
			Code:       CodeDuplication,
			Line:       at[0],
			Message:    fmt.Sprintf("Code repeated %d times (lines: %s): %s", len(at), strings.Join(numbers, ", "), text),
			Suggestion: "Extract repeated code into a function to follow DRY principle",
		})
	}

	return out, nil
}

func (c *Checker) wildcardImports(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if l.Continuation || !wildcardImport.MatchString(strings.TrimSpace(l.Bare)) {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeWildcardImport,
			Line:       l.Number,
			Message:    fmt.Sprintf("Wildcard import found: %s", l.Stripped()),
			Suggestion: "Import specific items: from module import specific_function, AnotherClass",
		})
	}
	return out, nil
}

// prints flags print() calls in a text that never mentions logging. The
// finding concerns the whole text.
func (c *Checker) prints(p *checks.Pass) ([]types.Diagnostic, error) {
	printing := false
	for _, l := range p.Lines {
		if loggingUse.MatchString(l.Bare) {
			return nil, nil
		}
		printing = printing || printCall.MatchString(l.Bare)
	}
	if !printing {
		return nil, nil
	}

	return []types.Diagnostic{{
		Code:       CodePrint,
		Line:       types.NoLine,
		Message:    "print() used without logging",
		Suggestion: "Use logging module instead of print() for better control",
	}}, nil
}

func (c *Checker) bareExcepts(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if l.Continuation || !bareExcept.MatchString(strings.TrimSpace(l.Bare)) {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeBareExcept,
			Line:       l.Number,
			Message:    "Bare except clause catches every exception, including KeyboardInterrupt",
			Suggestion: "Avoid bare except clauses. Use except SpecificException: instead",
		})
	}
	return out, nil
}
