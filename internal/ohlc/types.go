package ohlc

// Kind selects the glyph drawn for a series.
type Kind string

const (
	KindCandle Kind = "candle"
	KindOHLC   Kind = "ohlc"
)

// Recognized reports whether the overlay draws series of this kind.
func (k Kind) Recognized() bool {
	return k == KindCandle || k == KindOHLC
}

// Record is one data point in data space. X and X1 delimit the interval.
type Record struct {
	X     float64 `json:"x"`
	Avg   float64 `json:"avg"`
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	X1    float64 `json:"x1"`
	Label string  `json:"label,omitempty"`
}

// RecordFromTuple builds a Record from [x, avg, open, close, high, low, x1].
// Missing trailing values are left at zero.
func RecordFromTuple(t []float64, label string) Record {
	var v [7]float64
	copy(v[:], t)
	return Record{
		X:     v[0],
		Avg:   v[1],
		Open:  v[2],
		Close: v[3],
		High:  v[4],
		Low:   v[5],
		X1:    v[6],
		Label: label,
	}
}

// Tuple is the inverse of RecordFromTuple.
func (r Record) Tuple() [7]float64 {
	return [7]float64{r.X, r.Avg, r.Open, r.Close, r.High, r.Low, r.X1}
}

// Series is a labelled sequence of records with its drawing attributes.
type Series struct {
	Label     string
	Kind      Kind
	Color     string
	LineWidth float64
	Data      []Record

	// default host drawing, switched off for recognized kinds
	ShowLines  bool
	ShowBars   bool
	ShowPoints bool
}

// BoundingBox is the pixel-space layout of one record.
// X/X1 are the widened bar edges, X0/X01 the raw interval edges.
type BoundingBox struct {
	X      float64 `json:"x"`
	X1     float64 `json:"x1"`
	X0     float64 `json:"x0"`
	X01    float64 `json:"x01"`
	XMid   float64 `json:"xMid"`
	YOpen  float64 `json:"yOpen"`
	YClose float64 `json:"yClose"`
	YLow   float64 `json:"yLow"`
	YHigh  float64 `json:"yHigh"`
}

// Contains reports whether (px, py) falls inside the bar's hit area.
func (b BoundingBox) Contains(px, py float64) bool {
	return b.Intersects(px, py, px, py)
}

// Intersects reports whether the hit area overlaps the rectangle spanned by
// (x0, y0) and (x1, y1), edges included.
func (b BoundingBox) Intersects(x0, y0, x1, y1 float64) bool {
	left, right := b.X, b.X1
	if left > right {
		left, right = right, left
	}
	top, bottom := b.YHigh, b.YLow
	if top > bottom {
		top, bottom = bottom, top
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return x0 <= right && x1 >= left && y0 <= bottom && y1 >= top
}

// CachedEntry pairs a drawn box with the record it came from.
type CachedEntry struct {
	BBox  BoundingBox `json:"bbox"`
	Point Record      `json:"d"`
}
