package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 4.0, cfg.Candlestick.RangeWidth)
	assert.Equal(t, "rgb(255,255,255)", cfg.Candlestick.RangeColor)
	assert.Equal(t, 0.5, cfg.Candlestick.OHLCBarWidth)
	assert.Equal(t, 3.0, cfg.Candlestick.AvgThicknessMul)
	assert.Equal(t, "80%", cfg.Candlestick.BodyWidth)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candleplot.yaml")
	data := `
candlestick:
  rangeWidth: 6
  rangeColor: "#00ff00"
  ohlcBarWidth: 0.8
plot:
  kind: ohlc
  format: svg
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.Candlestick.RangeWidth)
	assert.Equal(t, "#00ff00", cfg.Candlestick.RangeColor)
	assert.Equal(t, 0.8, cfg.Candlestick.OHLCBarWidth)
	assert.Equal(t, 3.0, cfg.Candlestick.AvgThicknessMul)
	assert.Equal(t, "ohlc", cfg.Plot.Kind)
	assert.Equal(t, "svg", cfg.Plot.Format)
	assert.Equal(t, 1024, cfg.Plot.Width)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CANDLEPLOT_RANGE_WIDTH", "10")
	t.Setenv("CANDLEPLOT_WIDTH", "640")
	t.Setenv("CANDLEPLOT_RANGE_COLOR", "white")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Candlestick.RangeWidth)
	assert.Equal(t, 640, cfg.Plot.Width)
	assert.Equal(t, "white", cfg.Candlestick.RangeColor)
	assert.Equal(t, 0.5, cfg.Candlestick.OHLCBarWidth)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CANDLEPLOT_OHLC_BAR_WIDTH", "1.5")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("candlestick: [1, 2"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative range width", func(c *Config) { c.Candlestick.RangeWidth = -1 }},
		{"zero avg multiplier", func(c *Config) { c.Candlestick.AvgThicknessMul = 0 }},
		{"bad range color", func(c *Config) { c.Candlestick.RangeColor = "sparkly" }},
		{"bad series color", func(c *Config) { c.Plot.SeriesColor = "#12" }},
		{"unknown kind", func(c *Config) { c.Plot.Kind = "line" }},
		{"zero size", func(c *Config) { c.Plot.Width = 0 }},
		{"bad format", func(c *Config) { c.Plot.Format = "gif" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
