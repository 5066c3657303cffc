package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"candleplot/internal/ohlc"
)

const (
	colX = iota
	colAvg
	colOpen
	colClose
	colHigh
	colLow
	colX1
	numValueCols
)

var headerAliases = map[string]int{
	"x": colX, "t": colX, "time": colX, "start": colX,
	"avg": colAvg, "average": colAvg, "mean": colAvg,
	"open": colOpen, "o": colOpen,
	"close": colClose, "c": colClose,
	"high": colHigh, "h": colHigh,
	"low": colLow, "l": colLow,
	"x1": colX1, "end": colX1, "time_end": colX1,
}

// ParseCSV reads rows of x,avg,open,close,high,low,x1 with optional label and
// kind columns. A header row is detected by name (case-insensitive); without
// one the first seven columns are taken in that order. Rows are grouped into
// series by label in order of first appearance. Rows that do not parse are
// skipped. x and x1 may be numbers or RFC3339 times (converted to unix ms).
func ParseCSV(r io.Reader, opts Options) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}

	idx := [numValueCols]int{0, 1, 2, 3, 4, 5, 6}
	idxLabel, idxKind := -1, -1
	rows := recs
	if hdr, ok := detectHeader(recs[0]); ok {
		idx = hdr.values
		idxLabel, idxKind = hdr.label, hdr.kind
		rows = recs[1:]
	}

	var d Data
	byLabel := map[string]*ohlc.Series{}
	for _, row := range rows {
		var vals [numValueCols]float64
		ok := true
		for c, i := range idx {
			if i >= len(row) {
				ok = false
				break
			}
			v, err := parseValue(row[i], c == colX || c == colX1)
			if err != nil {
				ok = false
				break
			}
			vals[c] = v
		}
		if !ok {
			continue
		}
		label := field(row, idxLabel)
		s, seen := byLabel[label]
		if !seen {
			s = opts.series(label, ohlc.Kind(strings.ToLower(field(row, idxKind))))
			byLabel[label] = s
			d.Series = append(d.Series, s)
		}
		rec := ohlc.RecordFromTuple(vals[:], label)
		s.Data = append(s.Data, rec)
	}
	if len(d.Series) == 0 {
		return Data{}, fmt.Errorf("csv: %w", ErrNoSeries)
	}
	d.Extent = ExtentOf(d.Series)
	return d, nil
}

type header struct {
	values      [numValueCols]int
	label, kind int
}

func detectHeader(row []string) (header, bool) {
	h := header{label: -1, kind: -1}
	for i := range h.values {
		h.values[i] = -1
	}
	for i, name := range row {
		key := strings.ToLower(strings.TrimSpace(name))
		if c, ok := headerAliases[key]; ok {
			if h.values[c] == -1 {
				h.values[c] = i
			}
			continue
		}
		switch key {
		case "label", "symbol", "series", "name":
			if h.label == -1 {
				h.label = i
			}
		case "kind", "type":
			if h.kind == -1 {
				h.kind = i
			}
		}
	}
	for _, v := range h.values {
		if v == -1 {
			return header{}, false
		}
	}
	return h, true
}

func parseValue(s string, timeish bool) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err == nil || !timeish {
		return v, err
	}
	t, terr := time.Parse(time.RFC3339, s)
	if terr != nil {
		return 0, err
	}
	return float64(t.UnixMilli()), nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
