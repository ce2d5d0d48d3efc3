package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/devtrivedi96/Code-analyst-ai/report"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// stdout is the --output value that writes the report to standard output.
const stdout = "-"

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		model     string
		format    string
		output    string
		outputDir string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze Python files and write a report for each",
		Long: "Analyzes every FILE and writes one report per file to --output-dir " +
			"(report_<name>.<ext>), or to --output when a single file is given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			if output != "" && len(args) > 1 {
				return fmt.Errorf("--output needs exactly one FILE, got %d", len(args))
			}

			sources := make([]string, len(args))
			for i, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				sources[i] = string(content)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			h.log.Info("analyzing files", "count", len(args), "model", model)
			reports, err := h.engine().AnalyzeAll(ctx, sources, model)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			for i, path := range args {
				dest := output
				if dest == "" {
					dest = report.DefaultPath(outputDir, path, f)
				}
				if err := writeReport(cmd, dest, f, path, reports[i]); err != nil {
					return err
				}
				printSummary(cmd, path, reports[i])
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Model used for the advisory recommendation")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatMarkdown), "Report format (json, markdown, html)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `Report path for a single FILE, "-" for stdout`)
	cmd.Flags().StringVar(&outputDir, "output-dir", "reports", "Directory for generated reports")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", time.Minute, "Analysis timeout")

	return cmd
}

func writeReport(cmd *cobra.Command, dest string, f report.Format, source string, r types.AnalysisReport) error {
	if dest == stdout {
		return report.Write(cmd.OutOrStdout(), f, source, r)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Write(file, f, source, r); err != nil {
		file.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", dest)
	return nil
}

func printSummary(cmd *cobra.Command, source string, r types.AnalysisReport) {
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "%s: %d issues (Critical: %d, Major: %d, Minor: %d)\n",
		source,
		len(r.Issues),
		r.SeverityCount[types.SeverityCritical],
		r.SeverityCount[types.SeverityMajor],
		r.SeverityCount[types.SeverityMinor],
	)
	if !r.SyntaxValid {
		fmt.Fprintf(w, "  syntax error: %s\n", r.SyntaxError)
	}
}
