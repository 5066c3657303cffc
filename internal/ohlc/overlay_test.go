package ohlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries(kind Kind, n int) *Series {
	s := &Series{Label: string(kind), Kind: kind, Color: seriesColor, LineWidth: 1, ShowLines: true, ShowBars: true, ShowPoints: true}
	for i := 0; i < n; i++ {
		x := float64(i)
		s.Data = append(s.Data, Record{X: x, X1: x + 1, Avg: 5, Open: 4, Close: 6, High: 8, Low: 2})
	}
	return s
}

func TestOverlayCachesEveryDrawnPoint(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	rec := &recorder{}
	series := []*Series{
		sampleSeries(KindCandle, 3),
		sampleSeries("line", 5),
		sampleSeries(KindOHLC, 2),
	}

	n := o.Draw(rec, linearAxes(100), series)

	assert.Equal(t, 5, n)
	entries := o.BBoxes()
	require.Len(t, entries, 5)
	assert.Equal(t, "candle", entries[0].Point.Label)
	assert.Equal(t, "ohlc", entries[4].Point.Label)
	for i := 1; i < 3; i++ {
		assert.Greater(t, entries[i].BBox.XMid, entries[i-1].BBox.XMid)
	}
	assert.Len(t, rec.strokes, 3*2+2*4)
}

func TestOverlayIgnoresUnknownKind(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	rec := &recorder{}
	s := sampleSeries("bars", 4)

	assert.Equal(t, 0, o.DrawSeries(rec, linearAxes(100), s))
	assert.Empty(t, rec.strokes)
	assert.Equal(t, 0, o.Len())
	assert.True(t, s.ShowLines)
}

func TestOverlayTakesOverRecognizedSeries(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	s := sampleSeries(KindCandle, 1)

	o.OnDrawSeries(&recorder{}, linearAxes(100), s)

	assert.False(t, s.ShowLines)
	assert.False(t, s.ShowBars)
	assert.False(t, s.ShowPoints)
}

func TestOverlayResetOnBackgroundClear(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.DrawSeries(&recorder{}, linearAxes(100), sampleSeries(KindOHLC, 3))
	before := o.BBoxes()

	o.OnBackgroundClear()

	assert.Empty(t, o.BBoxes())
	assert.Len(t, before, 3)

	o.DrawSeries(&recorder{}, linearAxes(100), sampleSeries(KindCandle, 1))
	assert.Equal(t, 1, o.Len())
	assert.Equal(t, "ohlc", before[0].Point.Label)
}

func TestOverlayCachesFlatCandleAdjustment(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	s := &Series{Kind: KindCandle, Data: []Record{{X: 0, X1: 1, Open: 3, Close: 3, High: 4, Low: 2}}}

	o.DrawSeries(&recorder{}, linearAxes(100), s)

	bb := o.BBoxes()[0].BBox
	assert.Equal(t, bb.YOpen+1, bb.YClose)
}

func TestOverlayDefaults(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	rec := &recorder{}
	s := &Series{Kind: KindOHLC, Data: []Record{{X: 0, X1: 1}}}

	o.DrawSeries(rec, linearAxes(100), s)

	assert.Equal(t, DefaultSeriesColor, rec.strokes[0].style)
	assert.Equal(t, DefaultLineWidth, rec.strokes[0].width)
}

func TestOverlayHitTestLastPushedWins(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	a := &Series{Label: "a", Kind: KindCandle, Data: []Record{{X: 0, X1: 2, Open: 1, Close: 2, High: 10, Low: 0}}}
	b := &Series{Label: "b", Kind: KindOHLC, Data: []Record{{X: 0, X1: 2, Open: 1, Close: 2, High: 10, Low: 0}}}
	o.Draw(&recorder{}, linearAxes(100), []*Series{a, b})

	hit, ok := o.HitTest(10, 5)
	require.True(t, ok)
	assert.Equal(t, "b", hit.Point.Label)

	_, ok = o.HitTest(90, 5)
	assert.False(t, ok)
}

func TestOverlayHitTestRect(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	s := &Series{Kind: KindCandle, Data: []Record{{X: 0, X1: 2, Open: 1, Close: 2, High: 10, Low: 5}}}
	o.DrawSeries(&recorder{}, linearAxes(100), s)

	_, ok := o.HitTestRect(0, 0, 4, 4)
	assert.False(t, ok)
	_, ok = o.HitTestRect(14, 0, 18, 6)
	assert.True(t, ok)
	_, ok = o.HitTestRect(18, 6, 14, 0)
	assert.True(t, ok)
}
