package cmd

import (
	"fmt"

	"github.com/katalvlaran/stringart"
	"github.com/spf13/cobra"
)

var algoDescriptions = map[string]string{
	"anneal": "simulated annealing over a fixed-length chain (seeded)",
	"greedy": "greedy residual minimization, one best line at a time",
	"relax":  "non-negative least squares, rounded wraps, Eulerian winding",
}

var algosCmd = &cobra.Command{
	Use:   "algos",
	Short: "List the available strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range stringart.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", name, algoDescriptions[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(algosCmd)
}
