package dataset

import (
	"errors"

	"candleplot/internal/ohlc"
)

var (
	ErrNoSeries    = errors.New("no series found")
	ErrUnsupported = errors.New("unsupported file type")
)

// Extent is the data-space rectangle covering x..x1 and low..high of every record.
type Extent struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (e Extent) Valid() bool {
	return e.MaxX > e.MinX && e.MaxY > e.MinY
}

// Data is a set of series ready for drawing. Extent is ExtentOf(Series)
// as loaded.
type Data struct {
	Series []*ohlc.Series
	Extent Extent
}

// Options fill in what the file does not say.
type Options struct {
	Kind      ohlc.Kind
	Color     string
	LineWidth float64
}

type extentBuilder struct {
	e Extent
	n int
}

func (b *extentBuilder) add(x, y float64) {
	if b.n == 0 {
		b.e = Extent{MinX: x, MinY: y, MaxX: x, MaxY: y}
	} else {
		b.e.MinX = min(b.e.MinX, x)
		b.e.MinY = min(b.e.MinY, y)
		b.e.MaxX = max(b.e.MaxX, x)
		b.e.MaxY = max(b.e.MaxY, y)
	}
	b.n++
}

// ExtentOf covers the records of the series the overlay draws. Series of
// other kinds are left out so they cannot stretch the axes.
func ExtentOf(series []*ohlc.Series) Extent {
	var b extentBuilder
	for _, s := range series {
		if s == nil || !s.Kind.Recognized() {
			continue
		}
		for _, r := range s.Data {
			b.add(r.X, r.Low)
			b.add(r.X1, r.High)
		}
	}
	return b.e
}

// Points is the number of records across all series.
func (d Data) Points() int {
	n := 0
	for _, s := range d.Series {
		n += len(s.Data)
	}
	return n
}

// WithKind returns a copy of the series list with every kind replaced.
func (d Data) WithKind(k ohlc.Kind) []*ohlc.Series {
	out := make([]*ohlc.Series, len(d.Series))
	for i, s := range d.Series {
		c := *s
		c.Kind = k
		out[i] = &c
	}
	return out
}

func (o Options) series(label string, kind ohlc.Kind) *ohlc.Series {
	if kind == "" {
		kind = o.Kind
	}
	if kind == "" {
		kind = ohlc.KindCandle
	}
	return &ohlc.Series{
		Label:      label,
		Kind:       kind,
		Color:      o.Color,
		LineWidth:  o.LineWidth,
		ShowLines:  true,
		ShowBars:   true,
		ShowPoints: true,
	}
}
