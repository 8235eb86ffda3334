package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/stringart/pins"
	"github.com/spf13/cobra"
)

var (
	pinsCount int
	pinsSize  int
	pinsJSON  bool
)

// PinInfo is one pin in JSON output
type PinInfo struct {
	Index int `json:"index"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Print the pin layout for a square image",
	Long: `Print the position of every pin on the circle inscribed in a size×size
image, in the order the strategies index them.

Examples:
  stringart pins --pins 8 --size 20
  stringart pins --pins 150 --size 300 --json`,
	Args: cobra.NoArgs,
	RunE: runPins,
}

func init() {
	rootCmd.AddCommand(pinsCmd)

	pinsCmd.Flags().IntVarP(&pinsCount, "pins", "n", 150, "number of pins")
	pinsCmd.Flags().IntVarP(&pinsSize, "size", "s", 300, "image side in pixels")
	pinsCmd.Flags().BoolVar(&pinsJSON, "json", false, "output as JSON")
}

func runPins(cmd *cobra.Command, args []string) error {
	set, err := pins.Generate(pinsCount, pinsSize, pinsSize)
	if err != nil {
		return fmt.Errorf("failed to place pins: %w", err)
	}

	out := cmd.OutOrStdout()
	if pinsJSON {
		infos := make([]PinInfo, len(set))
		for i, p := range set {
			infos[i] = PinInfo{Index: i, Row: p.Row, Col: p.Col}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for i, p := range set {
		fmt.Fprintf(out, "%4d  row %4d  col %4d\n", i, p.Row, p.Col)
	}
	return nil
}
