package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"candleplot/internal/ohlc"
)

// brailleBuf is a canvas of 2x4 micro-pixels per terminal cell. It implements
// ohlc.DrawContext in micro-pixel coordinates; each cell takes the color of the
// last stroke that touched it.
type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	c    [][]string // per-cell stroke color

	style string
	width float64
	last  [2]float64
	segs  [][4]float64
}

var _ ohlc.DrawContext = (*brailleBuf)(nil)

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c, width: 1}
}

func (b *brailleBuf) BeginPath() { b.segs = b.segs[:0] }

func (b *brailleBuf) MoveTo(x, y float64) { b.last = [2]float64{x, y} }

func (b *brailleBuf) LineTo(x, y float64) {
	b.segs = append(b.segs, [4]float64{b.last[0], b.last[1], x, y})
	b.last = [2]float64{x, y}
}

func (b *brailleBuf) Stroke() {
	for _, s := range b.segs {
		b.drawLineThick(s[0], s[1], s[2], s[3], b.width)
	}
}

func (b *brailleBuf) SetStrokeStyle(color string) { b.style = color }

func (b *brailleBuf) SetLineWidth(w float64) { b.width = w }

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.c[cy][cx] = b.style
}

// drawLineThick strokes width parallel one-pixel lines across the segment's normal.
func (b *brailleBuf) drawLineThick(x0, y0, x1, y1, width float64) {
	n := int(math.Round(width))
	if n <= 1 {
		b.drawLineMicro(round(x0), round(y0), round(x1), round(y1))
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length < 0.5 {
		// too short to have a direction: fill a square
		half := float64(n) / 2
		for yy := round(y0 - half + 0.5); yy < round(y0+half+0.5); yy++ {
			for xx := round(x0 - half + 0.5); xx < round(x0+half+0.5); xx++ {
				b.setPixel(xx, yy)
			}
		}
		return
	}
	nx, ny := -dy/length, dx/length
	hw := float64(n) / 2
	for i := 0; i < n; i++ {
		off := -hw + float64(i) + 0.5
		b.drawLineMicro(round(x0+off*nx), round(y0+off*ny), round(x1+off*nx), round(y1+off*ny))
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = cellRune(b.m[y][x])
		}
		out[y] = string(row)
	}
	return out
}

// render is toLines with color: runs of cells sharing a color become one
// styled span.
func (b *brailleBuf) render(pal *palette) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		runColor := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			sb.WriteString(pal.paint(runColor, string(run)))
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			col := ""
			if b.m[y][x] != 0 {
				col = b.c[y][x]
			}
			if col != runColor {
				flush()
				runColor = col
			}
			run = append(run, cellRune(b.m[y][x]))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func cellRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// palette turns CSS-style color strings into cached lipgloss styles.
type palette struct {
	styles map[string]lipgloss.Style
}

func newPalette() *palette {
	return &palette{styles: map[string]lipgloss.Style{}}
}

func (p *palette) paint(color, s string) string {
	if color == "" {
		return s
	}
	st, ok := p.styles[color]
	if !ok {
		st = lipgloss.NewStyle()
		if rgba, err := ohlc.ParseColor(color); err == nil {
			st = st.Foreground(lipgloss.Color(ohlc.Hex(rgba)))
		}
		p.styles[color] = st
	}
	return st.Render(s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float64) int { return int(math.Round(v)) }
