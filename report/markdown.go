package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`,
	"<", `\<`, ">", `\>`, "#", `\#`, "|", `\|`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// Markdown writes r as a Markdown document.
func Markdown(w io.Writer, source string, r types.AnalysisReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(title(source)))

	b.WriteString("## Overview\n\n")
	if r.SyntaxValid {
		b.WriteString("- **Syntax Check**: Passed\n")
	} else {
		b.WriteString("- **Syntax Check**: Failed\n")
		if r.SyntaxError != "" {
			fmt.Fprintf(&b, "  - Error: %s\n", escape(r.SyntaxError))
		}
	}
	fmt.Fprintf(&b, "- **Issues**: %d (Critical: %d, Major: %d, Minor: %d)\n\n",
		len(r.Issues),
		r.SeverityCount[types.SeverityCritical],
		r.SeverityCount[types.SeverityMajor],
		r.SeverityCount[types.SeverityMinor],
	)

	b.WriteString("## Code Quality Analysis\n\n")
	fmt.Fprintf(&b, "- **Lines of Code**: %d\n", r.QualityMetrics.LineCount)
	fmt.Fprintf(&b, "- **Functions**: %d\n", r.QualityMetrics.FunctionCount)
	fmt.Fprintf(&b, "- **Complexity Score**: %.2f\n\n", r.QualityMetrics.ComplexityScore)

	b.WriteString("## Issues\n\n")
	if len(r.Issues) == 0 {
		b.WriteString("No issues found.\n\n")
	}
	for i, issue := range r.Issues {
		location := "whole file"
		if issue.Line != types.NoLine {
			location = fmt.Sprintf("line %d", issue.Line)
		}
		fmt.Fprintf(&b, "### %d. %s: %s, %s (%s)\n\n", i+1, issue.Code, issue.Severity, issue.Category, location)
		fmt.Fprintf(&b, "%s\n\n", escape(issue.Message))
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, "```text\n%s\n```\n\n", issue.Suggestion)
		}
	}

	if r.ModelRecommendation != "" {
		b.WriteString("## Model\n\n")
		if r.SelectedModel != "" {
			fmt.Fprintf(&b, "- **Selected Model**: %s\n", escape(r.SelectedModel))
		}
		fmt.Fprintf(&b, "- **Recommendation**: %s\n\n", escape(r.ModelRecommendation))
	}

	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(&b, "## Raw Analysis Data (JSON)\n\n```json\n%s\n```\n", raw)

	_, err = io.WriteString(w, b.String())
	return err
}
