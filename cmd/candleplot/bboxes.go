package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"candleplot/internal/config"
	"candleplot/internal/dataset"
	"candleplot/internal/export"
	"candleplot/internal/ohlc"
)

var bboxesCmd = &cobra.Command{
	Use:   "bboxes <file>",
	Short: "Print the bounding boxes of one draw cycle as JSON",
	Long: `Run one draw cycle on an off-screen canvas and print the cached
bounding box of every bar, in drawing order, for hit-testing tools.

Example:
  candleplot bboxes prices.csv --width 800 --height 400`,
	Args: cobra.ExactArgs(1),
	RunE: runBBoxes,
}

var (
	bboxesWidth  int
	bboxesHeight int
	bboxesKind   string
)

func init() {
	rootCmd.AddCommand(bboxesCmd)

	bboxesCmd.Flags().IntVar(&bboxesWidth, "width", 0, "canvas width in pixels (default from config)")
	bboxesCmd.Flags().IntVar(&bboxesHeight, "height", 0, "canvas height in pixels (default from config)")
	bboxesCmd.Flags().StringVarP(&bboxesKind, "kind", "k", "", "draw every series as candle or ohlc")
}

func runBBoxes(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(os.Stderr)
	defer closer()
	if err != nil {
		return err
	}

	data, err := dataset.Load(args[0], loadOptions(cfg))
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	opts := export.Options{
		Width:  pick(bboxesWidth, cfg.Plot.Width),
		Height: pick(bboxesHeight, cfg.Plot.Height),
		Format: "png",
		Kind:   ohlc.Kind(bboxesKind),
	}
	if err := checkKind(opts.Kind); err != nil {
		return err
	}
	boxes, err := export.New(ohlc.NewOverlay(cfg.Candlestick), logger).Render(io.Discard, data, opts)
	if err != nil {
		return err
	}

	if boxes == nil {
		boxes = []ohlc.CachedEntry{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(boxes)
}

func loadOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		Kind:      ohlc.Kind(cfg.Plot.Kind),
		Color:     cfg.Plot.SeriesColor,
		LineWidth: cfg.Plot.LineWidth,
	}
}

// checkKind accepts an empty override or a kind the overlay draws.
func checkKind(k ohlc.Kind) error {
	if k != "" && !k.Recognized() {
		return fmt.Errorf("--kind must be candle or ohlc, got %q", k)
	}
	return nil
}

func pick(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}
