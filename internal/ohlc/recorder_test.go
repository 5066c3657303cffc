package ohlc

type stroke struct {
	style string
	width float64
	pts   [][2]float64
}

// recorder is a DrawContext that keeps every stroked path.
type recorder struct {
	style   string
	width   float64
	cur     [][2]float64
	strokes []stroke
}

func (r *recorder) BeginPath()              { r.cur = nil }
func (r *recorder) MoveTo(x, y float64)     { r.cur = append(r.cur, [2]float64{x, y}) }
func (r *recorder) LineTo(x, y float64)     { r.cur = append(r.cur, [2]float64{x, y}) }
func (r *recorder) SetStrokeStyle(c string) { r.style = c }
func (r *recorder) SetLineWidth(w float64)  { r.width = w }

func (r *recorder) Stroke() {
	r.strokes = append(r.strokes, stroke{style: r.style, width: r.width, pts: r.cur})
}

func (s stroke) horizontal() bool {
	return len(s.pts) == 2 && s.pts[0][1] == s.pts[1][1] && s.pts[0][0] != s.pts[1][0]
}

// linearAxes maps x in [0,10] to [0,xLen] and y as identity.
func linearAxes(xLen float64) Axes {
	return Axes{
		X: LinearAxis{Min: 0, Max: 10, Origin: 0, Length: xLen},
		Y: AxisFunc(func(v float64) float64 { return v }),
	}
}
