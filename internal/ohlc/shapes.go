package ohlc

// bodyScale turns bar width times line width into candle body thickness.
const bodyScale = 0.2

// DrawContext is the slice of a 2D canvas API the glyphs are drawn with.
// Stroke style and line width are sticky state, as on an HTML canvas.
type DrawContext interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	SetStrokeStyle(color string)
	SetLineWidth(w float64)
}

func strokeSegment(ctx DrawContext, x0, y0, x1, y1 float64) {
	ctx.BeginPath()
	ctx.MoveTo(x0, y0)
	ctx.LineTo(x1, y1)
	ctx.Stroke()
}

// DrawCandle draws the low-high wick in the series color and then the
// open-close body as a thick stroke through the same vertical line.
//
// Up candles (open < close) and flat ones use cfg.RangeColor for the body.
// A flat candle gets bb.YClose moved to bb.YOpen+1 so the body stays visible;
// the adjusted box is what callers should cache.
func DrawCandle(ctx DrawContext, cfg Config, color string, lineWidth float64, r Record, bb *BoundingBox) {
	ctx.SetLineWidth(lineWidth)
	ctx.SetStrokeStyle(color)
	strokeSegment(ctx, bb.XMid, bb.YLow, bb.XMid, bb.YHigh)

	width := (bb.X1 - bb.X) * lineWidth * bodyScale
	body := color
	if r.Open < r.Close {
		body = cfg.RangeColor
	}
	if r.Open == r.Close {
		body = cfg.RangeColor
		bb.YClose = bb.YOpen + 1
	}
	ctx.SetStrokeStyle(body)
	ctx.SetLineWidth(width)
	strokeSegment(ctx, bb.XMid, bb.YOpen, bb.XMid, bb.YClose)
}

// DrawOHLC draws the high-low line, the open tick to the left, the close tick
// to the right and a heavier average marker across the whole bar at yAvg.
func DrawOHLC(ctx DrawContext, cfg Config, color string, lineWidth float64, yAvg float64, bb BoundingBox) {
	ctx.SetLineWidth(lineWidth)
	ctx.SetStrokeStyle(color)

	strokeSegment(ctx, bb.XMid, bb.YLow, bb.XMid, bb.YHigh)
	strokeSegment(ctx, bb.X, bb.YOpen, bb.XMid, bb.YOpen)
	strokeSegment(ctx, bb.XMid, bb.YClose, bb.X1, bb.YClose)

	ctx.SetLineWidth(lineWidth * cfg.AvgThicknessMul)
	strokeSegment(ctx, bb.X, yAvg, bb.X1, yAvg)
}
