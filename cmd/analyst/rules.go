package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/rules"
)

func (h *Handler) rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the rule catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tSEVERITY\tCATEGORY\tTITLE")
			for _, r := range rules.Default().Rules() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Code, r.Severity, r.Category, r.Title)
			}
			return tw.Flush()
		},
	})

	var html bool
	show := &cobra.Command{
		Use:   "show CODE",
		Short: "Print the description of a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := rules.Default().Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown rule %q", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s, %s)\n\n", r.Code, r.Title, r.Severity, r.Category)
			if html {
				fmt.Fprintln(cmd.OutOrStdout(), r.DescriptionHTML)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), r.Description)
			}
			return nil
		},
	}
	show.Flags().BoolVar(&html, "html", false, "Print the rendered HTML description")
	cmd.AddCommand(show)

	cmd.AddCommand(&cobra.Command{
		Use:   "export DIR",
		Short: "Write one TOML file per rule to DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rules.Default().Export(args[0]); err != nil {
				return fmt.Errorf("exporting rules: %w", err)
			}
			h.log.Info("rules exported", "dir", args[0], "count", len(rules.Default().Rules()))
			return nil
		},
	})

	return cmd
}
