package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	chart "github.com/wcharczuk/go-chart/v2"

	"candleplot/internal/dataset"
	"candleplot/internal/ohlc"
)

// unix milliseconds after 1973; smaller x values are plotted as plain numbers
const msEpochFloor = 1e11

type Options struct {
	Width  int
	Height int
	Format string // png or svg
	Title  string
	// Kind overrides the kind of every series when set.
	Kind ohlc.Kind
}

// Exporter draws datasets through go-chart, which plays the host: it owns
// the axes and canvas and calls back once per series.
type Exporter struct {
	overlay *ohlc.Overlay
	logger  log.Logger
}

func New(overlay *ohlc.Overlay, logger log.Logger) *Exporter {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Exporter{overlay: overlay, logger: logger}
}

// Render writes the chart to w and returns the boxes cached while drawing.
func (e *Exporter) Render(w io.Writer, data dataset.Data, opts Options) ([]ohlc.CachedEntry, error) {
	provider, err := rendererFor(opts.Format)
	if err != nil {
		return nil, err
	}
	if len(data.Series) == 0 {
		return nil, dataset.ErrNoSeries
	}

	list := data.Series
	if opts.Kind != "" {
		list = data.WithKind(opts.Kind)
	}
	series := make([]chart.Series, 0, len(list))
	for _, s := range list {
		series = append(series, &candleSeries{s: s, hooks: e.overlay, logger: e.logger})
	}

	ext := dataset.ExtentOf(list)
	minX, maxX, minY, maxY := paddedExtent(ext)
	xAxis := chart.XAxis{Range: &chart.ContinuousRange{Min: minX, Max: maxX}}
	if ext.MinX > msEpochFloor {
		xAxis.ValueFormatter = msTimeFormatter
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  xAxis,
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: minY, Max: maxY}},
		Series: series,
	}

	// go-chart has no background hook; the cache is cleared right before it draws.
	e.overlay.OnBackgroundClear()
	if err := graph.Render(provider, w); err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}

	boxes := e.overlay.BBoxes()
	_ = level.Debug(e.logger).Log("msg", "chart rendered", "format", opts.Format, "series", len(series), "points", len(boxes))
	return boxes, nil
}

func rendererFor(format string) (chart.RendererProvider, error) {
	switch format {
	case "", "png":
		return chart.PNG, nil
	case "svg":
		return chart.SVG, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// paddedExtent keeps both ranges non-empty, which go-chart requires.
func paddedExtent(ext dataset.Extent) (minX, maxX, minY, maxY float64) {
	minX, maxX, minY, maxY = ext.MinX, ext.MaxX, ext.MinY, ext.MaxY
	if maxX <= minX {
		minX, maxX = minX-1, minX+1
	}
	pad := (maxY - minY) * 0.05
	if pad == 0 {
		pad = 1
	}
	return minX, maxX, minY - pad, maxY + pad
}

func msTimeFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return time.UnixMilli(int64(f)).UTC().Format("2006-01-02 15:04")
}
