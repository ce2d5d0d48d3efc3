// Package practices checks source text against style, performance,
// security and maintainability practices.
package practices

import (
	"log/slog"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/config"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// Rule codes emitted by the checker.
const (
	CodeLineLength          = "FMT001"
	CodeTrailingWhitespace  = "FMT002"
	CodeMultipleStatements  = "FMT003"
	CodeOperatorSpacing     = "FMT004"
	CodeAppendLoop          = "PRF001"
	CodeRangeLen            = "PRF002"
	CodeConditionalInLoop   = "PRF003"
	CodeQueryConcatenation  = "SEC001"
	CodeHardcodedCredential = "SEC002"
	CodeDynamicExecution    = "SEC003"
	CodePermissiveMode      = "SEC004"
	CodeComplexCondition    = "MNT001"
	CodeLargeFunction       = "MNT002"
	CodeMagicString         = "MNT003"
)

// Codes lists every code the checker can emit, in check order.
var Codes = []string{
	CodeLineLength,
	CodeTrailingWhitespace,
	CodeMultipleStatements,
	CodeOperatorSpacing,
	CodeAppendLoop,
	CodeRangeLen,
	CodeConditionalInLoop,
	CodeQueryConcatenation,
	CodeHardcodedCredential,
	CodeDynamicExecution,
	CodePermissiveMode,
	CodeComplexCondition,
	CodeLargeFunction,
	CodeMagicString,
}

// Checker runs the four practice sub-scans. It holds only configuration.
type Checker struct {
	cfg             config.PracticesConfig
	formatting      []checks.Check
	performance     []checks.Check
	security        []checks.Check
	maintainability []checks.Check
	log             *slog.Logger
}

// New creates a checker from cfg.
func New(cfg config.PracticesConfig, log *slog.Logger) *Checker {
	c := &Checker{cfg: cfg, log: log}

	c.formatting = []checks.Check{
		{Name: "line-length", Run: c.lineLength},
		{Name: "trailing-whitespace", Run: c.trailingWhitespace},
		{Name: "multiple-statements", Run: c.multipleStatements},
		{Name: "operator-spacing", Run: c.operatorSpacing},
	}
	c.performance = []checks.Check{
		{Name: "append-loop", Run: c.appendLoops},
		{Name: "range-len", Run: c.rangeLen},
		{Name: "conditional-in-loop", Run: c.conditionalsInLoops},
	}
	c.security = []checks.Check{
		{Name: "query-concatenation", Run: c.queryConcatenation},
		{Name: "hardcoded-credential", Run: c.hardcodedCredentials},
		{Name: "dynamic-execution", Run: c.dynamicExecution},
		{Name: "permissive-mode", Run: c.permissiveModes},
	}
	c.maintainability = []checks.Check{
		{Name: "complex-condition", Run: c.complexConditions},
		{Name: "large-function", Run: c.largeFunctions},
		{Name: "magic-string", Run: c.magicStrings},
	}

	return c
}

// Check runs every sub-scan over src. model only selects the advisory
// recommendation and never changes what is detected.
func (c *Checker) Check(src []lines.Line, model string) types.Practices {
	p := checks.NewPass(src, nil)

	return types.Practices{
		Formatting:          findings(checks.Run("formatting", c.formatting, p, c.log)),
		Performance:         findings(checks.Run("performance", c.performance, p, c.log)),
		Security:            findings(checks.Run("security", c.security, p, c.log)),
		Maintainability:     findings(checks.Run("maintainability", c.maintainability, p, c.log)),
		SelectedModel:       model,
		ModelRecommendation: Recommend(model),
	}
}

func findings(diagnostics []types.Diagnostic) []types.Finding {
	out := make([]types.Finding, 0, len(diagnostics))
	for _, d := range diagnostics {
		out = append(out, types.Finding{
			Code:       d.Code,
			Line:       d.Line,
			Issue:      d.Message,
			Suggestion: d.Suggestion,
		})
	}
	return out
}
