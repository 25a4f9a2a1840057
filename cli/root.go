// Package cli holds the track-roi command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"track-roi/config"
	"track-roi/logger"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type rootOptions struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "track-roi",
		Short: "Music track investment calculator",
		Long: `track-roi projects the revenue of a music track over 36 months from its
genre, target markets, daily streams and growth scenario, and rates the
asking price against the expected return.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if opts.logLevel != "" {
				cfg.Logging.Level = opts.logLevel
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger.Init(cfg.Logging.Level, cfg.Logging.Format)
			logger.Debug("Configuration loaded (config=%q)", opts.configPath)
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default: ./config/track-roi.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newProjectCommand(opts))
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newServeCommand(opts))

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "track-roi %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}
