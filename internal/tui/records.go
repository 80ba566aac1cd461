package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshRecords rebuilds the records table from the loaded dataset.
func (m *Model) refreshRecords() {
	cols, rows := m.buildRecords()
	if len(rows) == 0 {
		// an empty table cannot take focus; keep the map instead
		m.showRecords = false
		m.status = "no records in current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for _, c := range cols {
		w := min(len(c)+2, maxColW)
		tcols = append(tcols, table.Column{Title: c, Width: max(w, 10)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// clear rows first so columns and rows never disagree mid-update
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildRecords returns one row per record of the loaded dataset.
func (m *Model) buildRecords() ([]string, [][]string) {
	cols := []string{"name", "color", "points", "scaffold"}
	scaffold := map[string]bool{}
	for _, n := range m.v.Summary.Scaffolds {
		scaffold[n] = true
	}
	recs := m.v.Dataset.Records
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		flag := ""
		if scaffold[r.Name] {
			flag = "yes"
		}
		rows = append(rows, []string{r.Name, r.Color.Hex(), fmt.Sprintf("%d", len(r.Coords)), flag})
	}
	return cols, rows
}
