package analyzers

import (
	"log/slog"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/rules"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// issues assigns category and severity to diagnostics from the catalog.
// Diagnostics with an unknown code are dropped with a warning.
func issues(catalog *rules.Catalog, diagnostics []types.Diagnostic, log *slog.Logger) []types.Issue {
	out := make([]types.Issue, 0, len(diagnostics))
	for _, d := range diagnostics {
		issue, ok := catalog.Issue(d)
		if !ok {
			log.Warn("dropping diagnostic with unknown rule code", "code", d.Code, "line", d.Line)
			continue
		}
		out = append(out, issue)
	}
	return out
}

// findingDiagnostics converts practice findings back to diagnostics.
func findingDiagnostics(findings []types.Finding) []types.Diagnostic {
	out := make([]types.Diagnostic, 0, len(findings))
	for _, f := range findings {
		out = append(out, types.Diagnostic{
			Code:       f.Code,
			Line:       f.Line,
			Message:    f.Issue,
			Suggestion: f.Suggestion,
		})
	}
	return out
}

// Merge concatenates issue groups in order. Issues from different groups
// are never merged, even when they share a line.
func Merge(groups ...[]types.Issue) []types.Issue {
	n := 0
	for _, g := range groups {
		n += len(g)
	}

	out := make([]types.Issue, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
