// Package analyzers combines the syntax validator, the metrics calculator
// and the rule-based analyzers into a single report.
package analyzers

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/logic"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/metrics"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/practices"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/rules"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/smells"
	"github.com/devtrivedi96/Code-analyst-ai/analyzers/syntax"
	"github.com/devtrivedi96/Code-analyst-ai/config"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// Engine analyzes source texts. It holds only configuration and is safe for
// concurrent use; every call builds its own intermediate state.
type Engine struct {
	cfg       *config.Config
	catalog   *rules.Catalog
	analyzers []Analyzer
	practices *practices.Checker
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the built-in rule catalog.
func WithCatalog(c *rules.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// New creates an engine. A nil cfg uses the defaults.
func New(cfg *config.Config, log *slog.Logger, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	e := &Engine{
		cfg:     cfg,
		catalog: rules.Default(),
		analyzers: []Analyzer{
			logic.New(cfg.Logic, log),
			smells.New(cfg.Smells, log),
		},
		practices: practices.New(cfg.Practices, log),
		log:       log,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Catalog returns the rule catalog used to classify issues.
func (e *Engine) Catalog() *rules.Catalog {
	return e.catalog
}

// Analyze analyzes src without a model selection.
func (e *Engine) Analyze(src string) types.AnalysisReport {
	return e.AnalyzeWithModel(src, "")
}

// AnalyzeWithModel analyzes src. model only selects the advisory
// recommendation of the report.
func (e *Engine) AnalyzeWithModel(src, model string) types.AnalysisReport {
	return e.analyze(context.Background(), src, model)
}

func (e *Engine) analyze(ctx context.Context, src, model string) types.AnalysisReport {
	result := syntax.Check(ctx, src)

	// tree checks and metrics only see trees of valid text
	tree := result.Tree
	if !result.Valid {
		e.log.Info("source has syntax errors", "error", result.Error)
		tree = nil
	}

	split := lines.Split(src)

	groups := make([][]types.Issue, 0, len(e.analyzers)+1)
	for _, a := range e.analyzers {
		groups = append(groups, issues(e.catalog, a.Check(split, tree), e.log))
	}

	p := e.practices.Check(split, model)
	groups = append(groups, issues(e.catalog, findingDiagnostics(p.All()), e.log))

	merged := Merge(groups...)
	report := types.AnalysisReport{
		SyntaxValid:         result.Valid,
		SyntaxError:         result.Error,
		QualityMetrics:      metrics.Calculate(src, tree, e.log),
		Issues:              merged,
		SeverityCount:       types.CountSeverities(merged),
		SelectedModel:       p.SelectedModel,
		ModelRecommendation: p.ModelRecommendation,
	}

	e.log.Info("analysis complete",
		"issues", len(report.Issues),
		"critical", report.SeverityCount[types.SeverityCritical],
		"major", report.SeverityCount[types.SeverityMajor],
		"minor", report.SeverityCount[types.SeverityMinor],
	)

	return report
}

// AnalyzeAll analyzes sources concurrently, at most cfg.Concurrency.MaxParallel
// at a time. Reports are returned in input order. When ctx is cancelled no
// further analyses start and the context error is returned.
func (e *Engine) AnalyzeAll(ctx context.Context, sources []string, model string) ([]types.AnalysisReport, error) {
	reports := make([]types.AnalysisReport, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	if n := e.cfg.Concurrency.MaxParallel; n > 0 {
		g.SetLimit(n)
	}

	for i, src := range sources {
		if gctx.Err() != nil {
			break
		}

		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = e.analyze(gctx, src, model)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
