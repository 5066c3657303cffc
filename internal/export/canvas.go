package export

import (
	"math"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"candleplot/internal/ohlc"
)

var fallbackColor = drawing.Color{R: 0, G: 0, B: 0, A: 255}

// canvas adapts a go-chart renderer to ohlc.DrawContext. go-chart clears its
// path on Stroke, so BeginPath has nothing to do.
type canvas struct {
	r      chart.Renderer
	logger log.Logger
	colors map[string]drawing.Color
}

var _ ohlc.DrawContext = (*canvas)(nil)

func newCanvas(r chart.Renderer, logger log.Logger) *canvas {
	return &canvas{r: r, logger: logger, colors: map[string]drawing.Color{}}
}

func (c *canvas) BeginPath() {}

func (c *canvas) MoveTo(x, y float64) { c.r.MoveTo(px(x), px(y)) }

func (c *canvas) LineTo(x, y float64) { c.r.LineTo(px(x), px(y)) }

func (c *canvas) Stroke() { c.r.Stroke() }

func (c *canvas) SetLineWidth(w float64) { c.r.SetStrokeWidth(w) }

func (c *canvas) SetStrokeStyle(s string) {
	col, ok := c.colors[s]
	if !ok {
		rgba, err := ohlc.ParseColor(s)
		if err != nil {
			_ = level.Warn(c.logger).Log("msg", "unparsable stroke color, using black", "color", s, "err", err)
			col = fallbackColor
		} else {
			col = drawing.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
		}
		c.colors[s] = col
	}
	c.r.SetStrokeColor(col)
}

func px(v float64) int { return int(math.Round(v)) }

// rangeAxis turns a go-chart range into an ohlc.Axis measured from origin.
// dir is +1 for x (grows right) and -1 for y (grows up the canvas).
type rangeAxis struct {
	r      chart.Range
	origin float64
	dir    float64
}

func (a rangeAxis) P2C(v float64) float64 {
	delta := a.r.GetDelta()
	if delta == 0 {
		return a.origin
	}
	ratio := (v - a.r.GetMin()) / delta
	if a.r.IsDescending() {
		ratio = 1 - ratio
	}
	return a.origin + a.dir*ratio*float64(a.r.GetDomain())
}

// plotAxes measures from the top-left corner of the plot box, the way the
// clip context expects.
func plotAxes(box chart.Box, xr, yr chart.Range) ohlc.Axes {
	return ohlc.Axes{
		X: rangeAxis{r: xr, origin: 0, dir: 1},
		Y: rangeAxis{r: yr, origin: float64(box.Height()), dir: -1},
	}
}
