package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"

	"candleplot/internal/dataset"
	"candleplot/internal/export"
	"candleplot/internal/ohlc"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Render a dataset to PNG or SVG",
	Long: `Render a dataset to an image file.

The format follows the output extension unless --format is given.

Examples:
  candleplot export prices.csv -o prices.png
  candleplot export prices.json -o prices.svg --kind ohlc`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportOut    string
	exportFormat string
	exportWidth  int
	exportHeight int
	exportKind   string
	exportTitle  string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <input>.<format>)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "png or svg (default from config)")
	exportCmd.Flags().IntVar(&exportWidth, "width", 0, "image width in pixels (default from config)")
	exportCmd.Flags().IntVar(&exportHeight, "height", 0, "image height in pixels (default from config)")
	exportCmd.Flags().StringVarP(&exportKind, "kind", "k", "", "draw every series as candle or ohlc")
	exportCmd.Flags().StringVarP(&exportTitle, "title", "t", "", "chart title")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(os.Stderr)
	defer closer()
	if err != nil {
		return err
	}

	in := args[0]
	opts := export.Options{
		Width:  pick(exportWidth, cfg.Plot.Width),
		Height: pick(exportHeight, cfg.Plot.Height),
		Format: exportFormat,
		Title:  exportTitle,
		Kind:   ohlc.Kind(exportKind),
	}
	if err := checkKind(opts.Kind); err != nil {
		return err
	}
	if opts.Format == "" {
		switch strings.ToLower(filepath.Ext(exportOut)) {
		case ".svg":
			opts.Format = "svg"
		case ".png":
			opts.Format = "png"
		default:
			opts.Format = cfg.Plot.Format
		}
	}
	out := exportOut
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + "." + opts.Format
	}

	data, err := dataset.Load(in, loadOptions(cfg))
	if err != nil {
		return fmt.Errorf("load %s: %w", in, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	boxes, err := export.New(ohlc.NewOverlay(cfg.Candlestick), logger).Render(f, data, opts)
	if err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	_ = level.Info(logger).Log("msg", "exported", "in", in, "out", out, "format", opts.Format, "points", len(boxes))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bars to %s\n", len(boxes), out)
	return nil
}
