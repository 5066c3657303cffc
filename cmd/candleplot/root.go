package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"

	"candleplot/internal/config"
	"candleplot/internal/tui"
)

var serviceVersion = "dev"

var (
	cfgPath string
	logPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "candleplot [file]",
	Short: "Candlestick and OHLC bar charts in the terminal",
	Long: `candleplot draws OHLC series as candles or OHLC bars.

Without a subcommand it opens an interactive terminal chart. Data files are
CSV (x,avg,open,close,high,low,x1[,label][,kind]) or JSON series lists.

Examples:
  candleplot prices.csv
  candleplot export prices.csv -o prices.png
  candleplot bboxes prices.json`,
	Version:      serviceVersion,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", os.Getenv("CANDLEPLOT_CONFIG"), "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", os.Getenv("CANDLEPLOT_LOG"), "log file (the TUI logs nowhere without it)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// setup loads the configuration and builds the logger. Without a log file,
// logs go to fallback; pass nil to discard them.
func setup(fallback io.Writer) (*config.Config, log.Logger, func(), error) {
	closer := func() {}
	var logger log.Logger
	switch {
	case logPath != "":
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, closer, fmt.Errorf("open log: %w", err)
		}
		closer = func() { f.Close() }
		logger = log.NewLogfmtLogger(log.NewSyncWriter(f))
	case fallback != nil:
		logger = log.NewLogfmtLogger(log.NewSyncWriter(fallback))
	default:
		logger = log.NewNopLogger()
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		_ = level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		return nil, nil, closer, err
	}
	_ = level.Info(logger).Log("msg", "initializing", "version", serviceVersion, "config", cfgPath)
	return cfg, logger, closer, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(nil)
	defer closer()
	if err != nil {
		return err
	}

	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(cfg, logger, args[0])
	} else {
		m = tui.New(cfg, logger)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		_ = level.Error(logger).Log("msg", "tui failure", "err", err)
		return err
	}
	return nil
}
