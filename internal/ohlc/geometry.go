package ohlc

// ComputeBoundingBox lays out r in pixel space.
//
// The bar is OHLCBarWidth of the interval, centered on the interval midpoint,
// and each half is then widened to at least RangeWidth/2 on its own. The two
// sides are checked independently, so a box may end up asymmetric.
func ComputeBoundingBox(r Record, axes Axes, cfg Config) BoundingBox {
	x0 := axes.MapX(r.X)
	x01 := axes.MapX(r.X1)

	width := (x01 - x0) * cfg.OHLCBarWidth
	xMid := x0 + (x01-x0)/2

	x := xMid - width/2
	x1 := xMid + width/2

	half := cfg.RangeWidth / 2
	if xMid-x < half {
		x = xMid - half
	}
	if x1-xMid < half {
		x1 = xMid + half
	}

	return BoundingBox{
		X:      x,
		X1:     x1,
		X0:     x0,
		X01:    x01,
		XMid:   xMid,
		YOpen:  axes.MapY(r.Open),
		YClose: axes.MapY(r.Close),
		YLow:   axes.MapY(r.Low),
		YHigh:  axes.MapY(r.High),
	}
}
