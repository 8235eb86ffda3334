package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/stringart"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "stringart",
	Short: "String art synthesis from grayscale images",
	Long: `Compute the winding order of a single thread over pins on a circle so
that the strung lines approximate an image.

Examples:
  stringart run portrait.png --algo greedy --pins 150 --lines 1500   # Greedy winding
  stringart run portrait.png --algo anneal --seed 7 --preview out.png # Annealing + preview
  stringart pins --pins 12 --size 100                                 # Pin layout
  stringart algos                                                     # List strategies`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		stringart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}
