package export

import (
	"fmt"

	"github.com/go-kit/kit/log"
	chart "github.com/wcharczuk/go-chart/v2"

	"candleplot/internal/ohlc"
)

// candleSeries hands go-chart's per-series Render callback to the overlay.
type candleSeries struct {
	s      *ohlc.Series
	hooks  ohlc.Hooks
	logger log.Logger
}

var _ chart.Series = (*candleSeries)(nil)

func (cs *candleSeries) GetName() string { return cs.s.Label }

func (cs *candleSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (cs *candleSeries) GetStyle() chart.Style {
	return chart.Style{StrokeWidth: cs.s.LineWidth}
}

func (cs *candleSeries) Validate() error {
	if len(cs.s.Data) == 0 {
		return fmt.Errorf("series %q has no data", cs.s.Label)
	}
	return nil
}

func (cs *candleSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	ctx := &ohlc.Clip{
		Inner:   newCanvas(r, cs.logger),
		OffsetX: float64(canvasBox.Left),
		OffsetY: float64(canvasBox.Top),
		Width:   float64(canvasBox.Width()),
		Height:  float64(canvasBox.Height()),
	}
	cs.hooks.OnDrawSeries(ctx, plotAxes(canvasBox, xrange, yrange), cs.s)
}
