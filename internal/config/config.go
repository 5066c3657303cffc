package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"candleplot/internal/ohlc"
)

const envPrefix = "CANDLEPLOT"

// Config is the whole application configuration.
type Config struct {
	Candlestick ohlc.Config `yaml:"candlestick"`
	Plot        PlotConfig  `yaml:"plot"`
}

// PlotConfig holds the host-side settings: what a plotting library would
// normally decide for a series and its canvas.
type PlotConfig struct {
	LineWidth     float64 `yaml:"line_width"`
	TermLineWidth float64 `yaml:"term_line_width"`
	SeriesColor   string  `yaml:"series_color"`
	Kind          string  `yaml:"kind"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Format        string  `yaml:"format"`
}

// overrides are read from CANDLEPLOT_* variables; unset ones stay nil.
type overrides struct {
	RangeWidth      *float64 `envconfig:"RANGE_WIDTH"`
	RangeColor      *string  `envconfig:"RANGE_COLOR"`
	OHLCBarWidth    *float64 `envconfig:"OHLC_BAR_WIDTH"`
	AvgThicknessMul *float64 `envconfig:"AVG_THICKNESS_MUL"`
	LineWidth       *float64 `envconfig:"LINE_WIDTH"`
	SeriesColor     *string  `envconfig:"SERIES_COLOR"`
	Kind            *string  `envconfig:"KIND"`
	Width           *int     `envconfig:"WIDTH"`
	Height          *int     `envconfig:"HEIGHT"`
	Format          *string  `envconfig:"FORMAT"`
}

func Default() *Config {
	return &Config{
		Candlestick: ohlc.DefaultConfig(),
		Plot: PlotConfig{
			LineWidth:     ohlc.DefaultLineWidth,
			TermLineWidth: 1,
			SeriesColor:   ohlc.DefaultSeriesColor,
			Kind:          string(ohlc.KindCandle),
			Width:         1024,
			Height:        512,
			Format:        "png",
		},
	}
}

// Load reads a YAML file over the defaults and then applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	var env overrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	env.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (o overrides) apply(cfg *Config) {
	if o.RangeWidth != nil {
		cfg.Candlestick.RangeWidth = *o.RangeWidth
	}
	if o.RangeColor != nil {
		cfg.Candlestick.RangeColor = *o.RangeColor
	}
	if o.OHLCBarWidth != nil {
		cfg.Candlestick.OHLCBarWidth = *o.OHLCBarWidth
	}
	if o.AvgThicknessMul != nil {
		cfg.Candlestick.AvgThicknessMul = *o.AvgThicknessMul
	}
	if o.LineWidth != nil {
		cfg.Plot.LineWidth = *o.LineWidth
	}
	if o.SeriesColor != nil {
		cfg.Plot.SeriesColor = *o.SeriesColor
	}
	if o.Kind != nil {
		cfg.Plot.Kind = *o.Kind
	}
	if o.Width != nil {
		cfg.Plot.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Plot.Height = *o.Height
	}
	if o.Format != nil {
		cfg.Plot.Format = *o.Format
	}
}

// Validate checks value ranges. Records are never validated; only options are.
func (c *Config) Validate() error {
	cs := c.Candlestick
	if cs.RangeWidth < 0 {
		return fmt.Errorf("candlestick.rangeWidth must not be negative")
	}
	if cs.OHLCBarWidth < 0 || cs.OHLCBarWidth > 1 {
		return fmt.Errorf("candlestick.ohlcBarWidth must be between 0 and 1")
	}
	if cs.AvgThicknessMul <= 0 {
		return fmt.Errorf("candlestick.avgThicknessMul must be positive")
	}
	if _, err := ohlc.ParseColor(cs.RangeColor); err != nil {
		return fmt.Errorf("candlestick.rangeColor: %w", err)
	}
	if _, err := ohlc.ParseColor(c.Plot.SeriesColor); err != nil {
		return fmt.Errorf("plot.series_color: %w", err)
	}
	if c.Plot.LineWidth <= 0 || c.Plot.TermLineWidth <= 0 {
		return fmt.Errorf("plot line widths must be positive")
	}
	if !ohlc.Kind(c.Plot.Kind).Recognized() {
		return fmt.Errorf("plot.kind must be 'candle' or 'ohlc'")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot.width and plot.height must be positive")
	}
	if c.Plot.Format != "png" && c.Plot.Format != "svg" {
		return fmt.Errorf("plot.format must be 'png' or 'svg'")
	}
	return nil
}
