package logic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var (
	tryStatement = regexp.MustCompile(`^try\s*:`)
	// literalIndex matches sequence indexing with an integer literal.
	literalIndex = regexp.MustCompile(`[A-Za-z_]\w*\[\s*-?\d+\s*\]`)
	definition   = regexp.MustCompile(`^(?:async\s+)?def\b|^class\b|^(?:from|import)\b`)
)

// missingErrorHandling flags risky calls with no `try:` on the preceding
// lines of the configured window. Guards further up are not seen.
func (s *Scanner) missingErrorHandling(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic

	for i, l := range p.Lines {
		stripped := strings.TrimSpace(l.Bare)
		if stripped == "" || definition.MatchString(stripped) {
			continue
		}

		risky := s.riskyOperation(l.Bare)
		if risky == "" || s.guarded(p, i) {
			continue
		}

		out = append(out, types.Diagnostic{
			Code:    CodeMissingErrorHandling,
			Line:    l.Number,
			Message: fmt.Sprintf("Missing error handling for '%s': %s", risky, l.Stripped()),
			Suggestion: fmt.Sprintf("Wrap in try-except block:\ntry:\n    %s\nexcept Exception as e:\n    logger.error(f'Error: {e}')",
				l.Stripped()),
		})
	}

	return out, nil
}

// riskyOperation returns the first risky operation on a string-masked line.
func (s *Scanner) riskyOperation(bare string) string {
	for _, r := range s.risky {
		if r.re.MatchString(bare) {
			return r.name
		}
	}
	if literalIndex.MatchString(bare) {
		return "indexing"
	}
	return ""
}

// guarded reports whether line i or one of the window lines before it opens
// a try block.
func (s *Scanner) guarded(p *checks.Pass, i int) bool {
	for j := i; j >= 0 && j >= i-s.cfg.ErrorHandlingWindow; j-- {
		if tryStatement.MatchString(strings.TrimSpace(p.Lines[j].Bare)) {
			return true
		}
	}
	return false
}
