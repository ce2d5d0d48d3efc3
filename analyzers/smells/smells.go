// Package smells reports maintainability smells: naming, magic numbers,
// duplicated lines, wildcard imports and common Python pitfalls.
package smells

import (
	"log/slog"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/config"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// Rule codes emitted by the checker.
const (
	CodeNaming         = "SML001"
	CodeMagicNumber    = "SML002"
	CodeDuplication    = "SML003"
	CodeWildcardImport = "SML004"
	CodePrint          = "SML005"
	CodeTypeHints      = "SML006"
	CodeDocstring      = "SML007"
	CodeBareExcept     = "SML008"
	CodeMutableDefault = "SML009"
)

// Codes lists every code the checker can emit, in check order.
var Codes = []string{
	CodeNaming,
	CodeMagicNumber,
	CodeDuplication,
	CodeWildcardImport,
	CodePrint,
	CodeTypeHints,
	CodeDocstring,
	CodeBareExcept,
	CodeMutableDefault,
}

// Checker runs the smell checks. It holds only configuration.
type Checker struct {
	cfg     config.SmellsConfig
	allowed map[string]bool
	checks  []checks.Check
	log     *slog.Logger
}

// New creates a checker from cfg.
func New(cfg config.SmellsConfig, log *slog.Logger) *Checker {
	c := &Checker{
		cfg:     cfg,
		allowed: make(map[string]bool, len(cfg.AllowedNumbers)),
		log:     log,
	}

	for _, n := range cfg.AllowedNumbers {
		c.allowed[n] = true
	}

	c.checks = []checks.Check{
		{Name: "naming", NeedsTree: true, Run: c.naming},
		{Name: "magic-number", NeedsTree: true, Run: c.magicNumbers},
		{Name: "duplication", Run: c.duplication},
		{Name: "wildcard-import", Run: c.wildcardImports},
		{Name: "print", Run: c.prints},
		{Name: "type-hints", NeedsTree: true, Run: c.typeHints},
		{Name: "docstring", NeedsTree: true, Run: c.docstrings},
		{Name: "bare-except", Run: c.bareExcepts},
		{Name: "mutable-default", NeedsTree: true, Run: c.mutableDefaults},
	}

	return c
}

// Check runs every smell check over src.
func (c *Checker) Check(src []lines.Line, tree *pyast.Tree) []types.Diagnostic {
	return checks.Run("smells", c.checks, checks.NewPass(src, tree), c.log)
}

func (c *Checker) String() string {
	return "smells"
}
