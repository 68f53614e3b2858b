package commands

import (
	"fmt"

	"fair-mcs/internal/scenario"
	"fair-mcs/internal/simulation"
	"fair-mcs/internal/ui"
	"fair-mcs/internal/visuals"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var simulateOpts outputFlags

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.{json,toml,yaml}>",
	Short: "Simulate annual loss for one scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := simulateOpts.validate(); err != nil {
			return err
		}
		in, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		iterations := cfg.ClampIterations(simulateOpts.iterations)
		log.Debug().Str("file", args[0]).Int("iterations", iterations).Msg("Simulating scenario")

		var spinner interface{ Stop() error }
		if simulateOpts.format == formatTable {
			spinner = ui.StartSpinner(fmt.Sprintf("Running %d trials...", iterations))
		}
		res, err := simulation.NewEngine(sourceFor(cmd, simulateOpts.seed)).Simulate(in, iterations)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if err != nil {
			return err
		}

		if simulateOpts.format == formatJSON {
			if !simulateOpts.raw {
				res.RawLosses = nil
			}
			if err := printJSON(res); err != nil {
				return err
			}
		} else {
			ui.PrintResults(res)
		}

		if simulateOpts.wantCharts() {
			fmt.Println(visuals.GenerateRiskSummary(res))
		}
		return nil
	},
}

func init() {
	simulateOpts.register(simulateCmd)
}
