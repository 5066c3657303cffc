package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

var recordColumns = []string{"series", "kind", "x", "open", "high", "low", "close", "avg"}

// refreshAttrsFromCurrent rebuilds the records table from the loaded series.
func (m *Model) refreshAttrsFromCurrent() {
	rows := m.buildRecordRows()
	// An empty table is not worth showing
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no records for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(recordColumns)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range recordColumns {
		w := 10
		if c == "x" {
			w = 17
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, strconv.Itoa(i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildRecordRows lists every record in drawing order.
func (m *Model) buildRecordRows() [][]string {
	var rows [][]string
	for _, s := range m.series() {
		for _, d := range s.Data {
			rows = append(rows, []string{
				s.Label,
				string(s.Kind),
				formatX(d.X),
				fmt.Sprintf("%g", d.Open),
				fmt.Sprintf("%g", d.High),
				fmt.Sprintf("%g", d.Low),
				fmt.Sprintf("%g", d.Close),
				fmt.Sprintf("%g", d.Avg),
			})
		}
	}
	return rows
}
