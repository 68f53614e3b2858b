package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// outputFlags are shared by every command that prints simulation results.
type outputFlags struct {
	iterations int
	seed       int64
	format     string
	mermaid    bool
	raw        bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.iterations, "iterations", "n", 0, "number of Monte Carlo trials (default from FAIR_ITERATIONS)")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "seed for reproducible results")
	cmd.Flags().StringVarP(&o.format, "format", "f", formatTable, "output format: table or json")
	cmd.Flags().BoolVar(&o.mermaid, "mermaid", false, "print Mermaid charts after the results")
	cmd.Flags().BoolVar(&o.raw, "raw", false, "include every simulated loss in JSON output")
}

func (o *outputFlags) validate() error {
	if o.format != formatTable && o.format != formatJSON {
		return fmt.Errorf("unknown format %q (want table or json)", o.format)
	}
	if o.iterations < 0 {
		return fmt.Errorf("iterations must not be negative")
	}
	return nil
}

func (o *outputFlags) wantCharts() bool {
	return o.mermaid || cfg.EnableMermaidCharts
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
