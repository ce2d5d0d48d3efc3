package practices

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var irregularSpacing = regexp.MustCompile(`\w\s{2,}=\s*\w`)

func (c *Checker) lineLength(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		n := utf8.RuneCountInString(l.Raw)
		if n <= c.cfg.MaxLineLength {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeLineLength,
			Line:       l.Number,
			Message:    fmt.Sprintf("Line too long (%d > %d characters)", n, c.cfg.MaxLineLength),
			Suggestion: "Break long lines for readability",
		})
	}
	return out, nil
}

func (c *Checker) trailingWhitespace(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if l.Raw == strings.TrimRight(l.Raw, " \t") {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeTrailingWhitespace,
			Line:       l.Number,
			Message:    "Trailing whitespace",
			Suggestion: "Remove trailing whitespace",
		})
	}
	return out, nil
}

// multipleStatements flags semicolons outside strings and comments.
func (c *Checker) multipleStatements(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if !strings.Contains(l.Bare, ";") {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeMultipleStatements,
			Line:       l.Number,
			Message:    fmt.Sprintf("Multiple statements on one line: %s", l.Stripped()),
			Suggestion: "Put each statement on its own line",
		})
	}
	return out, nil
}

func (c *Checker) operatorSpacing(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if !irregularSpacing.MatchString(l.Bare) {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeOperatorSpacing,
			Line:       l.Number,
			Message:    fmt.Sprintf("Inconsistent spacing around operators: %s", l.Stripped()),
			Suggestion: "Use single spaces around operators",
		})
	}
	return out, nil
}
