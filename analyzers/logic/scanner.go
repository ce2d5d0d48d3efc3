// Package logic implements flow-insensitive heuristics for probable logic
// defects. The checks favour recall over precision: a finding is a risk,
// not a certainty.
package logic

import (
	"log/slog"
	"regexp"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/config"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// Rule codes emitted by the scanner.
const (
	CodeDivisionByZero        = "LGC001"
	CodeDivisionByZeroName    = "LGC002"
	CodeInfiniteLoop          = "LGC003"
	CodeEmptyRange            = "LGC004"
	CodeUndefinedVariable     = "LGC005"
	CodeConstantCondition     = "LGC006"
	CodeAssignmentInCondition = "LGC007"
	CodeUnreachableCode       = "LGC008"
	CodeMissingErrorHandling  = "LGC009"
	CodeTypeMismatch          = "LGC010"
	CodeTypeMismatchName      = "LGC011"
)

// Codes lists every code the scanner can emit, in check order.
var Codes = []string{
	CodeDivisionByZero,
	CodeDivisionByZeroName,
	CodeInfiniteLoop,
	CodeEmptyRange,
	CodeUndefinedVariable,
	CodeConstantCondition,
	CodeAssignmentInCondition,
	CodeUnreachableCode,
	CodeMissingErrorHandling,
	CodeTypeMismatch,
	CodeTypeMismatchName,
}

type riskyCall struct {
	name string
	re   *regexp.Regexp
}

// Scanner runs the logic checks. A Scanner holds only configuration and is
// safe for concurrent use.
type Scanner struct {
	cfg      config.LogicConfig
	builtins map[string]bool
	risky    []riskyCall
	checks   []checks.Check
	log      *slog.Logger
}

// New creates a scanner from cfg.
func New(cfg config.LogicConfig, log *slog.Logger) *Scanner {
	s := &Scanner{
		cfg:      cfg,
		builtins: make(map[string]bool, len(cfg.Builtins)),
		log:      log,
	}

	for _, name := range cfg.Builtins {
		s.builtins[name] = true
	}

	for _, name := range cfg.RiskyCalls {
		s.risky = append(s.risky, riskyCall{
			name: name,
			re:   regexp.MustCompile(`(?:^|[^\w.])` + regexp.QuoteMeta(name) + `\s*\(`),
		})
	}

	s.checks = []checks.Check{
		{Name: "division-by-literal", NeedsTree: true, Run: s.divisionByLiteral},
		{Name: "division-by-name", NeedsTree: true, Run: s.divisionByName},
		{Name: "infinite-loop", Run: s.infiniteLoops},
		{Name: "empty-range", NeedsTree: true, Run: s.emptyRanges},
		{Name: "undefined-variable", NeedsTree: true, Run: s.undefinedNames},
		{Name: "constant-condition", NeedsTree: true, Run: s.constantConditions},
		{Name: "assignment-in-condition", Run: s.assignmentsInConditions},
		{Name: "unreachable-code", Run: s.unreachableCode},
		{Name: "missing-error-handling", Run: s.missingErrorHandling},
		{Name: "type-mismatch", NeedsTree: true, Run: s.typeMismatchLiterals},
		{Name: "type-mismatch-name", NeedsTree: true, Run: s.typeMismatchNames},
	}

	return s
}

// Check runs every check over src. tree may be nil or contain errors; the
// tree-based checks then report nothing while the line-based checks still
// run. Diagnostics are ordered by check, then by position.
func (s *Scanner) Check(src []lines.Line, tree *pyast.Tree) []types.Diagnostic {
	return checks.Run("logic", s.checks, checks.NewPass(src, tree), s.log)
}

func (s *Scanner) String() string {
	return "logic"
}
