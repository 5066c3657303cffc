package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candleplot/internal/ohlc"
)

func TestParseCSVHeaderless(t *testing.T) {
	in := "0,5,4,6,8,2,10\n10,6,6,5,9,3,20\n"

	d, err := ParseCSV(strings.NewReader(in), Options{Kind: ohlc.KindOHLC})
	require.NoError(t, err)
	require.Len(t, d.Series, 1)
	s := d.Series[0]
	assert.Equal(t, ohlc.KindOHLC, s.Kind)
	require.Len(t, s.Data, 2)
	assert.Equal(t, ohlc.Record{X: 10, Avg: 6, Open: 6, Close: 5, High: 9, Low: 3, X1: 20}, s.Data[1])
	assert.Equal(t, Extent{MinX: 0, MinY: 2, MaxX: 20, MaxY: 9}, d.Extent)
}

func TestParseCSVHeaderGroupsByLabel(t *testing.T) {
	in := `Symbol,Open,High,Low,Close,Avg,Time,End,Kind
BTC,4,8,2,6,5,0,10,candle
ETH,1,2,0.5,1.5,1,0,10,ohlc
BTC,6,9,3,5,6,10,20,candle
bad,x,1,1,1,1,1,1,candle
`
	d, err := ParseCSV(strings.NewReader(in), Options{})
	require.NoError(t, err)
	require.Len(t, d.Series, 2)
	assert.Equal(t, "BTC", d.Series[0].Label)
	assert.Equal(t, ohlc.KindCandle, d.Series[0].Kind)
	assert.Len(t, d.Series[0].Data, 2)
	assert.Equal(t, "ETH", d.Series[1].Label)
	assert.Equal(t, ohlc.KindOHLC, d.Series[1].Kind)
	assert.Equal(t, 3, d.Points())
	assert.Equal(t, ohlc.Record{X: 0, Avg: 5, Open: 4, Close: 6, High: 8, Low: 2, X1: 10, Label: "BTC"}, d.Series[0].Data[0])
}

func TestParseCSVTimes(t *testing.T) {
	in := "x,avg,open,close,high,low,x1\n2024-01-02T00:00:00Z,5,4,6,8,2,2024-01-03T00:00:00Z\n"

	d, err := ParseCSV(strings.NewReader(in), Options{})
	require.NoError(t, err)
	r := d.Series[0].Data[0]
	assert.Equal(t, float64(1704153600000), r.X)
	assert.Equal(t, float64(1704153600000+86400000), r.X1)
}

func TestParseCSVNoRows(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("x,avg,open,close,high,low,x1\n"), Options{})
	assert.True(t, errors.Is(err, ErrNoSeries))

	_, err = ParseCSV(strings.NewReader(""), Options{})
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	in := `[
  {"label": "BTC", "type": "candle", "color": "#00ff00", "data": [[0,5,4,6,8,2,10],[10,6,6,5,9,3,20]]},
  {"label": "vol", "type": "line", "data": [[0,1]]}
]`
	d, err := ParseJSON(strings.NewReader(in), Options{Color: "#ff0000", LineWidth: 1})
	require.NoError(t, err)
	require.Len(t, d.Series, 2)
	assert.Equal(t, "#00ff00", d.Series[0].Color)
	assert.Equal(t, 1.0, d.Series[0].LineWidth)
	assert.Equal(t, ohlc.Kind("line"), d.Series[1].Kind)
	assert.Equal(t, "#ff0000", d.Series[1].Color)
	assert.Equal(t, "BTC", d.Series[0].Data[0].Label)
	// the line series is not drawn, so its zero-filled tuples stay out of the extent
	assert.Equal(t, Extent{MinX: 0, MinY: 2, MaxX: 20, MaxY: 9}, d.Extent)
}

func TestExtentOfSkipsUndrawnKinds(t *testing.T) {
	candles := &ohlc.Series{Kind: ohlc.KindOHLC, Data: []ohlc.Record{{X: 100, X1: 110, Low: 5, High: 7}}}
	line := &ohlc.Series{Kind: "line", Data: []ohlc.Record{{X: 0, Low: 1000, High: 1000}}}

	assert.Equal(t, Extent{MinX: 100, MinY: 5, MaxX: 110, MaxY: 7}, ExtentOf([]*ohlc.Series{line, candles, nil}))
	assert.Equal(t, Extent{}, ExtentOf([]*ohlc.Series{line}))
}

func TestParseJSONObject(t *testing.T) {
	in := `{"series": [{"label": "a", "data": [[0,5,4,6,8,2,10]]}]}`
	d, err := ParseJSON(strings.NewReader(in), Options{Kind: ohlc.KindOHLC})
	require.NoError(t, err)
	assert.Equal(t, ohlc.KindOHLC, d.Series[0].Kind)
}

func TestParseJSONEmpty(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`[]`), Options{})
	assert.True(t, errors.Is(err, ErrNoSeries))

	_, err = ParseJSON(strings.NewReader(`{`), Options{})
	assert.Error(t, err)
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("0,5,4,6,8,2,10\n"), 0644))

	d, err := Load(csvPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Points())

	_, err = Load(filepath.Join(dir, "a.kml"), Options{})
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = Load(filepath.Join(dir, "missing.csv"), Options{})
	assert.Error(t, err)
}

func TestWithKind(t *testing.T) {
	d, err := ParseCSV(strings.NewReader("0,5,4,6,8,2,10\n"), Options{})
	require.NoError(t, err)

	out := d.WithKind(ohlc.KindOHLC)
	assert.Equal(t, ohlc.KindOHLC, out[0].Kind)
	assert.Equal(t, ohlc.KindCandle, d.Series[0].Kind)
}
