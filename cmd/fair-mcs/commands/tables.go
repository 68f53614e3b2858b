package commands

import (
	"fair-mcs/internal/tables"
	"fair-mcs/internal/ui"

	"github.com/spf13/cobra"
)

var tablesFormat string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the reference lookup tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := tables.Current()
		if tablesFormat == formatJSON {
			return printJSON(snap)
		}
		ui.PrintTables(snap)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("fair-mcs %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	},
}

func init() {
	tablesCmd.Flags().StringVarP(&tablesFormat, "format", "f", formatTable, "output format: table or json")
}
