package analyzers

import (
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// Analyzer is a component that reports diagnostics for one source text.
// Implementations keep no state between calls.
type Analyzer interface {
	String() string
	Check(src []lines.Line, tree *pyast.Tree) []types.Diagnostic
}
