package commands

import (
	"fmt"

	"fair-mcs/internal/scenario"
	"fair-mcs/internal/simulation"
	"fair-mcs/internal/ui"
	"fair-mcs/internal/visuals"

	"github.com/spf13/cobra"
)

var compareOpts outputFlags

var compareCmd = &cobra.Command{
	Use:   "compare <base> <modified> | compare <comparison>",
	Short: "Compare a base scenario against a modified one",
	Long: `Compare simulates a base and a modified assessment and reports the change
in expected loss, PML, Gordon-Loeb spend and risk rating. Pass two scenario
files, or one file holding "base" and "modified".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := compareOpts.validate(); err != nil {
			return err
		}
		c, err := loadComparison(args)
		if err != nil {
			return err
		}

		iterations := cfg.ClampIterations(compareOpts.iterations)
		cmp, err := simulation.NewEngine(sourceFor(cmd, compareOpts.seed)).CompareScenarios(c.Base, c.Modified, iterations)
		if err != nil {
			return err
		}

		if compareOpts.format == formatJSON {
			if !compareOpts.raw {
				cmp.Base.RawLosses = nil
				cmp.Modified.RawLosses = nil
			}
			if err := printJSON(cmp); err != nil {
				return err
			}
		} else {
			ui.PrintComparison(cmp)
		}

		if compareOpts.wantCharts() {
			fmt.Println(visuals.GenerateComparisonChart(cmp))
		}
		return nil
	},
}

func loadComparison(args []string) (scenario.Comparison, error) {
	if len(args) == 1 {
		return scenario.LoadComparison(args[0])
	}
	base, err := scenario.Load(args[0])
	if err != nil {
		return scenario.Comparison{}, err
	}
	modified, err := scenario.Load(args[1])
	if err != nil {
		return scenario.Comparison{}, err
	}
	return scenario.Comparison{Base: base, Modified: modified}, nil
}

func init() {
	compareOpts.register(compareCmd)
}
