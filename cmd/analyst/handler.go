package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers"
	"github.com/devtrivedi96/Code-analyst-ai/config"
	"github.com/devtrivedi96/Code-analyst-ai/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Handler handles CLI commands.
type Handler struct {
	cfg        *config.Config
	configPath string
	logLevel   string
	log        *slog.Logger
	rootCmd    *cobra.Command
}

// New creates a new CLI handler.
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:           "analyst",
		Short:         "Static analysis for Python source",
		Long:          "Checks Python source for syntax errors, logic mistakes, code smells and practice violations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
	}

	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to a TOML or YAML configuration file")
	h.rootCmd.PersistentFlags().StringVar(&h.logLevel, "log-level", "",
		"Log level (debug, info, warn, error)")

	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.rulesCmd())
	h.rootCmd.AddCommand(h.serveCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) loadConfig() error {
	cfg, err := config.Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if h.logLevel != "" {
		cfg.Logging.Level = h.logLevel
	}
	h.cfg = cfg

	logger.Configure(cfg.Logging)
	h.log = logger.Default()
	h.log.Debug("configuration loaded", "path", h.configPath, "level", cfg.Logging.Level)

	return nil
}

func (h *Handler) engine() *analyzers.Engine {
	return analyzers.New(h.cfg, h.log)
}

// Execute runs the CLI with os.Args.
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "analyst %s\n", version)
		},
	}
}
