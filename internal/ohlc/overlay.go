package ohlc

import "slices"

const (
	DefaultLineWidth   = 2.0
	DefaultSeriesColor = "#edc240"
)

// Hooks is what a host calls during its draw cycle: once when it clears the
// background and once per series.
type Hooks interface {
	OnBackgroundClear()
	OnDrawSeries(ctx DrawContext, axes Axes, s *Series)
}

// Overlay draws candle and OHLC series and remembers the box of every point
// it drew since the last Reset. It is not safe for concurrent use.
type Overlay struct {
	cfg    Config
	bboxes []CachedEntry
}

var _ Hooks = (*Overlay)(nil)

func NewOverlay(cfg Config) *Overlay {
	return &Overlay{cfg: cfg}
}

func (o *Overlay) Config() Config { return o.cfg }

// Reset empties the box cache. Slices returned by BBoxes before the call are
// left untouched.
func (o *Overlay) Reset() {
	o.bboxes = nil
}

func (o *Overlay) OnBackgroundClear() { o.Reset() }

func (o *Overlay) OnDrawSeries(ctx DrawContext, axes Axes, s *Series) {
	o.DrawSeries(ctx, axes, s)
}

// DrawSeries draws every point of s in order and caches its box.
// Series of any other kind are ignored. It returns the number of points drawn.
func (o *Overlay) DrawSeries(ctx DrawContext, axes Axes, s *Series) int {
	if s == nil || !s.Kind.Recognized() {
		return 0
	}
	s.ShowLines = false
	s.ShowBars = false
	s.ShowPoints = false

	color := s.Color
	if color == "" {
		color = DefaultSeriesColor
	}
	lineWidth := s.LineWidth
	if lineWidth == 0 {
		lineWidth = DefaultLineWidth
	}

	for _, p := range s.Data {
		r := p
		r.Label = s.Label
		o.drawPoint(ctx, axes, s.Kind, color, lineWidth, r)
	}
	return len(s.Data)
}

func (o *Overlay) drawPoint(ctx DrawContext, axes Axes, kind Kind, color string, lineWidth float64, r Record) {
	bb := ComputeBoundingBox(r, axes, o.cfg)
	if kind == KindCandle {
		DrawCandle(ctx, o.cfg, color, lineWidth, r, &bb)
	} else {
		DrawOHLC(ctx, o.cfg, color, lineWidth, axes.MapY(r.Avg), bb)
	}
	o.bboxes = append(o.bboxes, CachedEntry{BBox: bb, Point: r})
}

// Draw runs a full cycle: reset, then every series in order.
func (o *Overlay) Draw(ctx DrawContext, axes Axes, series []*Series) int {
	o.Reset()
	n := 0
	for _, s := range series {
		n += o.DrawSeries(ctx, axes, s)
	}
	return n
}

// BBoxes returns a copy of the cache in drawing order.
func (o *Overlay) BBoxes() []CachedEntry {
	return slices.Clone(o.bboxes)
}

func (o *Overlay) Len() int { return len(o.bboxes) }

// HitTest returns the most recently drawn entry whose box contains (px, py).
func (o *Overlay) HitTest(px, py float64) (CachedEntry, bool) {
	return o.HitTestRect(px, py, px, py)
}

// HitTestRect is HitTest for a small area, such as one terminal cell.
func (o *Overlay) HitTestRect(x0, y0, x1, y1 float64) (CachedEntry, bool) {
	for i := len(o.bboxes) - 1; i >= 0; i-- {
		if o.bboxes[i].BBox.Intersects(x0, y0, x1, y1) {
			return o.bboxes[i], true
		}
	}
	return CachedEntry{}, false
}
