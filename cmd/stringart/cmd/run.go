package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/stringart"
	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/internal/logging"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/strategy"
	"github.com/spf13/cobra"
)

var (
	runAlgo         string
	runPinCount     int
	runSize         int
	runLines        int
	runDarkness     int
	runSeed         int64
	runStartTemp    float64
	runCoolingRate  float64
	runMaxIter      int
	runPreview      string
	runPreviewScale int
	runJSON         bool
	runQuiet        bool
)

// RunResult is the JSON output of the run command
type RunResult struct {
	Algorithm    string   `json:"algorithm"`
	Pins         int      `json:"pins"`
	Size         int      `json:"size"`
	Lines        int      `json:"lines"`
	ThreadLength float64  `json:"thread_length_px"`
	Error        float64  `json:"squared_error"`
	Sequence     [][2]int `json:"sequence"`
}

var runCmd = &cobra.Command{
	Use:   "run <image>",
	Short: "Compute a winding sequence for an image",
	Long: `Decode an image (PNG, JPEG, GIF, BMP, TIFF or WebP), resample it to a
size×size grayscale target, place pins on the inscribed circle and run one
strategy. Progress goes to stderr; the sequence goes to stdout.

Examples:
  stringart run cat.png --algo greedy --pins 150 --lines 1500
  stringart run cat.png --algo relax --pins 40 --size 120 --json
  stringart run cat.png --algo anneal --lines 500 --seed 3 --preview cat-art.png`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runAlgo, "algo", "a", "greedy", "strategy: greedy, relax or anneal")
	runCmd.Flags().IntVarP(&runPinCount, "pins", "n", 150, "number of pins")
	runCmd.Flags().IntVarP(&runSize, "size", "s", 300, "target side in pixels")
	runCmd.Flags().IntVarP(&runLines, "lines", "l", 0, "lines to draw (0 = strategy default)")
	runCmd.Flags().IntVarP(&runDarkness, "darkness", "d", 0, "darkness per line, 1..255 (0 = default)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "anneal: random seed (0 = fixed default)")
	runCmd.Flags().Float64Var(&runStartTemp, "start-temp", 0, "anneal: initial temperature (0 = default)")
	runCmd.Flags().Float64Var(&runCoolingRate, "cooling", 0, "anneal: cooling rate in (0,1) (0 = default)")
	runCmd.Flags().IntVar(&runMaxIter, "max-iter", 0, "relax: solver iteration limit (0 = automatic)")
	runCmd.Flags().StringVarP(&runPreview, "preview", "p", "", "write the final canvas as PNG")
	runCmd.Flags().IntVar(&runPreviewScale, "preview-scale", 1, "integer upscale of the preview")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output as JSON")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "no progress output")
}

// logger returns the CLI's component logger.
func logger() *slog.Logger {
	return logging.For("cli")
}

func runRun(cmd *cobra.Command, args []string) error {
	target, err := loadTarget(args[0], runSize)
	if err != nil {
		return err
	}
	set, err := pins.Generate(runPinCount, target.Height, target.Width)
	if err != nil {
		return fmt.Errorf("failed to place pins: %w", err)
	}

	s, err := stringart.New(runAlgo, stringart.Params{
		MaxLines:     runLines,
		LineDarkness: runDarkness,
		MaxIter:      runMaxIter,
		StartTemp:    runStartTemp,
		CoolingRate:  runCoolingRate,
		Seed:         runSeed,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	final, seq, err := stream(ctx, s, target, set, cmd)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return fmt.Errorf("interrupted: %w", context.Cause(ctx))
	}

	length, err := pins.ThreadLength(set, seq)
	if err != nil {
		return err
	}

	if runPreview != "" && final.Canvas != nil {
		if err := writePreview(runPreview, final.Canvas, runPreviewScale); err != nil {
			return err
		}
		logger().Info("preview written", "path", runPreview)
	}

	if runJSON {
		res := RunResult{
			Algorithm:    s.Name(),
			Pins:         len(set),
			Size:         runSize,
			Lines:        len(seq),
			ThreadLength: length,
			Error:        final.Error,
			Sequence:     make([][2]int, len(seq)),
		}
		for i, seg := range seq {
			res.Sequence[i] = [2]int{seg.From, seg.To}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d lines over %d pins, thread length %.1f px\n", s.Name(), len(seq), len(set), length)
	for i, p := range seq.Pins() {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, p)
	}
	fmt.Fprintln(out)
	return nil
}

// stream pulls every event, reporting progress on stderr, and returns
// the final event and sequence. Only the latest event is kept.
func stream(ctx context.Context, s strategy.Strategy, target *canvas.Gray, set pins.PinSet, cmd *cobra.Command) (strategy.Event, chords.Sequence, error) {
	events, err := s.Run(ctx, target, set)
	if err != nil {
		return strategy.Event{}, nil, err
	}

	var (
		final    strategy.Event
		lines    chords.Sequence
		lastTick = -1
	)
	errOut := cmd.ErrOrStderr()
	for ev := range events {
		final = ev
		if ev.HasSegment {
			lines = append(lines, ev.Segment)
		}
		if ev.Failed {
			return ev, nil, fmt.Errorf("%s failed: %w", s.Name(), ev.Err)
		}
		// one progress line per percent
		if tick := int(ev.Progress * 100); !runQuiet && tick != lastTick {
			lastTick = tick
			fmt.Fprintf(errOut, "[%3d%%] %s\n", tick, ev.Status)
		}
	}

	if final.Sequence != nil {
		return final, final.Sequence, nil
	}
	return final, lines, nil
}
