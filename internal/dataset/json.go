package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"candleplot/internal/ohlc"
)

// jsonSeries is the plot-library series shape:
// {"label": "...", "type": "candle", "color": "#...", "data": [[x,avg,open,close,high,low,x1], ...]}
type jsonSeries struct {
	Label     string      `json:"label"`
	Type      string      `json:"type"`
	Color     string      `json:"color"`
	LineWidth float64     `json:"lineWidth"`
	Data      [][]float64 `json:"data"`
}

// ParseJSON accepts either a list of series or {"series": [...]}.
// Tuples shorter than seven values are zero-filled.
func ParseJSON(r io.Reader, opts Options) (Data, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Data{}, err
	}
	var list []jsonSeries
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var doc struct {
			Series []jsonSeries `json:"series"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return Data{}, fmt.Errorf("json: %w", err)
		}
		list = doc.Series
	} else if err := json.Unmarshal(raw, &list); err != nil {
		return Data{}, fmt.Errorf("json: %w", err)
	}

	var d Data
	for _, js := range list {
		s := opts.series(js.Label, ohlc.Kind(js.Type))
		if js.Color != "" {
			s.Color = js.Color
		}
		if js.LineWidth > 0 {
			s.LineWidth = js.LineWidth
		}
		for _, tup := range js.Data {
			rec := ohlc.RecordFromTuple(tup, js.Label)
			s.Data = append(s.Data, rec)
		}
		d.Series = append(d.Series, s)
	}
	if d.Points() == 0 {
		return Data{}, fmt.Errorf("json: %w", ErrNoSeries)
	}
	d.Extent = ExtentOf(d.Series)
	return d, nil
}
