package ohlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipTranslatesAndClips(t *testing.T) {
	rec := &recorder{}
	c := &Clip{Inner: rec, OffsetX: 10, OffsetY: 20, Width: 100, Height: 50}

	c.SetStrokeStyle("red")
	c.SetLineWidth(3)
	c.BeginPath()
	c.MoveTo(50, -10)
	c.LineTo(50, 40)
	c.Stroke()

	require.Len(t, rec.strokes, 1)
	s := rec.strokes[0]
	assert.Equal(t, "red", s.style)
	assert.Equal(t, 3.0, s.width)
	assert.Equal(t, [][2]float64{{60, 20}, {60, 60}}, s.pts)
}

func TestClipDropsOutsideSegments(t *testing.T) {
	rec := &recorder{}
	c := &Clip{Inner: rec, Width: 100, Height: 50}

	c.BeginPath()
	c.MoveTo(150, 0)
	c.LineTo(150, 40)
	c.Stroke()

	assert.Empty(t, rec.strokes)
}

func TestClipSegment(t *testing.T) {
	x0, y0, x1, y1, ok := clipSegment(-10, 5, 20, 5, 0, 0, 10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, x0, 1e-9)
	assert.InDelta(t, 5, y0, 1e-9)
	assert.InDelta(t, 10, x1, 1e-9)
	assert.InDelta(t, 5, y1, 1e-9)

	_, _, _, _, ok = clipSegment(-10, -5, -1, -5, 0, 0, 10, 10)
	assert.False(t, ok)
}
