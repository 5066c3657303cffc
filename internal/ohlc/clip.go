package ohlc

// Clip translates drawing by (OffsetX, OffsetY) and drops whatever falls
// outside the plot rectangle [0, Width] x [0, Height] before handing the
// segments to the wrapped context.
type Clip struct {
	Inner            DrawContext
	OffsetX, OffsetY float64
	Width, Height    float64

	path [][2]float64
	segs [][4]float64
}

var _ DrawContext = (*Clip)(nil)

func (c *Clip) BeginPath() {
	c.path = c.path[:0]
	c.segs = c.segs[:0]
}

func (c *Clip) MoveTo(x, y float64) {
	c.path = append(c.path[:0], [2]float64{x, y})
}

func (c *Clip) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	p := c.path[len(c.path)-1]
	c.segs = append(c.segs, [4]float64{p[0], p[1], x, y})
	c.path = append(c.path, [2]float64{x, y})
}

func (c *Clip) Stroke() {
	for _, s := range c.segs {
		x0, y0, x1, y1, ok := clipSegment(s[0], s[1], s[2], s[3], 0, 0, c.Width, c.Height)
		if !ok {
			continue
		}
		c.Inner.BeginPath()
		c.Inner.MoveTo(x0+c.OffsetX, y0+c.OffsetY)
		c.Inner.LineTo(x1+c.OffsetX, y1+c.OffsetY)
		c.Inner.Stroke()
	}
}

func (c *Clip) SetStrokeStyle(color string) { c.Inner.SetStrokeStyle(color) }

func (c *Clip) SetLineWidth(w float64) { c.Inner.SetLineWidth(w) }

// clipSegment is Liang-Barsky against an axis-aligned rectangle.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
