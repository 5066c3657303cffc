package tui

import (
	"fmt"
	"strings"
	"time"

	"candleplot/internal/dataset"
	"candleplot/internal/ohlc"
)

const hoverColor = "#FFA500"

// viewExtent is the data extent with room above and below, never empty.
func (m Model) viewExtent() (minX, maxX, minY, maxY float64, ok bool) {
	series := m.series()
	if len(series) == 0 {
		return 0, 0, 0, 0, false
	}
	e := dataset.ExtentOf(series)
	minX, maxX, minY, maxY = e.MinX, e.MaxX, e.MinY, e.MaxY
	if maxX <= minX {
		minX, maxX = minX-1, minX+1
	}
	pad := (maxY - minY) * 0.05
	if pad == 0 {
		pad = 1
	}
	return minX, maxX, minY - pad, maxY + pad, true
}

// chartAxes maps the extent onto a w x h cell area in micro-pixels, zoomed
// around the center and shifted by the pan offset.
func (m Model) chartAxes(w, h int) (ohlc.Axes, bool) {
	minX, maxX, minY, maxY, ok := m.viewExtent()
	if !ok || w <= 1 || h <= 1 {
		return ohlc.Axes{}, false
	}
	cx, hx := (minX+maxX)/2, (maxX-minX)/2/m.zoom
	cy, hy := (minY+maxY)/2, (maxY-minY)/2/m.zoom
	wMic := float64(w*2 - 1)
	hMic := float64(h*4 - 1)
	x := ohlc.LinearAxis{Min: cx - hx, Max: cx + hx, Origin: float64(m.offsetX * 2), Length: wMic}
	y := ohlc.LinearAxis{Min: cy - hy, Max: cy + hy, Origin: hMic + float64(m.offsetY*4), Length: -hMic}
	return ohlc.Axes{X: x, Y: y}, true
}

// cellToData converts a chart cell back to data coordinates.
func (m Model) cellToData(cx, cy, w, h int) (float64, float64, bool) {
	axes, ok := m.chartAxes(w, h)
	if !ok {
		return 0, 0, false
	}
	x := axes.X.(ohlc.LinearAxis).C2P(float64(cx*2) + 0.5)
	y := axes.Y.(ohlc.LinearAxis).C2P(float64(cy*4) + 1.5)
	return x, y, true
}

// cellRect is the micro-pixel rectangle covered by one cell.
func cellRect(cx, cy int) (x0, y0, x1, y1 float64) {
	return float64(cx * 2), float64(cy * 4), float64(cx*2 + 1), float64(cy*4 + 3)
}

// chartContext clips strokes to the canvas so that zoomed-in bars are not
// walked pixel by pixel far off screen.
func chartContext(br *brailleBuf) *ohlc.Clip {
	return &ohlc.Clip{Inner: br, Width: float64(br.w * 2), Height: float64(br.h * 4)}
}

// renderChart runs one draw cycle onto a braille canvas. The overlay's box
// cache afterwards describes exactly what is on screen, which is what mouse
// hover reads.
func (m Model) renderChart(w, h int) string {
	br := newBrailleBuf(w, h)
	ctx := chartContext(br)
	var hooks ohlc.Hooks = m.overlay
	hooks.OnBackgroundClear()

	if axes, ok := m.chartAxes(w, h); ok {
		for _, s := range m.series() {
			hooks.OnDrawSeries(ctx, axes, s)
		}
	}

	// Hover highlight: redraw the hovered wick in orange
	if m.hovering {
		if e, ok := m.overlay.HitTestRect(cellRect(m.hoverCellX, m.hoverCellY)); ok {
			ctx.SetStrokeStyle(hoverColor)
			ctx.SetLineWidth(1)
			ctx.BeginPath()
			ctx.MoveTo(e.BBox.XMid, e.BBox.YLow)
			ctx.LineTo(e.BBox.XMid, e.BBox.YHigh)
			ctx.Stroke()
		}
	}
	return strings.Join(br.render(m.pal), "\n")
}

// formatX prints x as a time when it looks like unix milliseconds.
func formatX(x float64) string {
	if x > 1e11 {
		return time.UnixMilli(int64(x)).UTC().Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%g", x)
}

func describeEntry(e ohlc.CachedEntry) string {
	d := e.Point
	label := d.Label
	if label == "" {
		label = "series"
	}
	return fmt.Sprintf("%s  %s  O %g  H %g  L %g  C %g  avg %g", label, formatX(d.X), d.Open, d.High, d.Low, d.Close, d.Avg)
}
