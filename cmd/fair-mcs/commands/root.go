package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fair-mcs/internal/config"
	"fair-mcs/internal/logging"
	"fair-mcs/internal/mcp"
	"fair-mcs/internal/rng"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "fair-mcs",
	Short: "FAIR-MCS estimates annual cyber loss with Monte Carlo simulation",
	Long: `A FAIR (Factor Analysis of Information Risk) loss engine. It simulates annual
cyber loss for an organization profile and reports ALE, PML, a risk rating,
Gordon-Loeb optimal spend, key drivers and recommendations.

Run without a subcommand to serve the engine as an MCP server over stdio.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(logging.Options{Verbose: verbose}); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("command", cmd.Name()).
			Msg("FAIR-MCS starting")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcp.NewServer(cfg, Version).Run(ctx)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// sourceFor honours --seed, then FAIR_SEED, then falls back to a clock seed.
func sourceFor(cmd *cobra.Command, seed int64) rng.Source {
	if cmd.Flags().Changed("seed") {
		return rng.NewSeeded(seed)
	}
	if cfg.HasSeed {
		return rng.NewSeeded(cfg.Seed)
	}
	return rng.NewDefault()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(serveCmd, simulateCmd, compareCmd, batchCmd, tablesCmd, versionCmd)
}
