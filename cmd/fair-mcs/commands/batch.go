package commands

import (
	"fair-mcs/internal/rng"
	"fair-mcs/internal/scenario"
	"fair-mcs/internal/simulation"
	"fair-mcs/internal/ui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	batchOpts        outputFlags
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Simulate many scenarios concurrently",
	Long: `Batch simulates every given file concurrently. A file is either a single
scenario (its name becomes the job ID) or a "jobs" list, each entry an optional
"id" plus "inputs". With --seed, job i uses seed+i, so results do not depend on
scheduling.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := batchOpts.validate(); err != nil {
			return err
		}
		jobs, err := scenario.LoadJobs(args...)
		if err != nil {
			return err
		}

		concurrency := cfg.BatchConcurrency
		if cmd.Flags().Changed("concurrency") {
			concurrency = batchConcurrency
		}

		var sources simulation.SourceFactory
		switch {
		case cmd.Flags().Changed("seed"):
			sources = simulation.SeededSources(batchOpts.seed)
		case cfg.HasSeed:
			sources = simulation.SeededSources(cfg.Seed)
		default:
			sources = func(int) rng.Source { return rng.NewDefault() }
		}

		iterations := cfg.ClampIterations(batchOpts.iterations)
		log.Info().Int("jobs", len(jobs)).Int("concurrency", concurrency).Int("iterations", iterations).Msg("Running batch")

		results, err := simulation.RunBatch(cmd.Context(), jobs, iterations, concurrency, sources)
		if err != nil {
			return err
		}

		if batchOpts.format == formatJSON {
			if !batchOpts.raw {
				for _, r := range results {
					r.Results.RawLosses = nil
				}
			}
			return printJSON(results)
		}
		ui.PrintBatch(results)
		return nil
	},
}

func init() {
	batchOpts.register(batchCmd)
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "maximum concurrent simulations (default from FAIR_BATCH_CONCURRENCY)")
}
