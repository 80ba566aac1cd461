package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseCSV reads one point per row. Rows sharing a name form one record, in
// order of first appearance. Column detection (case-insensitive):
// name|record|oligo, color|colour, x, y, z. Only x, y and z are required.
func ParseCSV(data []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("dataset: empty csv")
	}
	idxName, idxColor := -1, -1
	idxXYZ := [3]int{-1, -1, -1}
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "record", "oligo":
			if idxName == -1 {
				idxName = i
			}
		case "color", "colour":
			if idxColor == -1 {
				idxColor = i
			}
		case "x":
			idxXYZ[0] = i
		case "y":
			idxXYZ[1] = i
		case "z":
			idxXYZ[2] = i
		}
	}
	if idxXYZ[0] == -1 || idxXYZ[1] == -1 || idxXYZ[2] == -1 {
		return nil, errors.New("dataset: csv: x/y/z columns not found")
	}

	var out []Record
	byName := map[string]int{}
	for n, row := range recs[1:] {
		line := n + 2
		name := ""
		if idxName >= 0 && idxName < len(row) {
			name = strings.TrimSpace(row[idxName])
		}
		var pt [3]float64
		for k, idx := range idxXYZ {
			if idx >= len(row) {
				return nil, fmt.Errorf("dataset: csv line %d: missing coordinate", line)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: csv line %d: %w", line, err)
			}
			pt[k] = v
		}
		i, ok := byName[name]
		if !ok {
			i = len(out)
			byName[name] = i
			rec := Record{Name: name, Color: Palette[i%len(Palette)]}
			if rec.Name == "" {
				rec.Name = defaultName(i)
			}
			if idxColor >= 0 && idxColor < len(row) && strings.TrimSpace(row[idxColor]) != "" {
				c, err := ParseColor(row[idxColor])
				if err != nil {
					return nil, fmt.Errorf("dataset: csv line %d: %w", line, err)
				}
				rec.Color = c
			}
			out = append(out, rec)
		}
		out[i].Coords = append(out[i].Coords, pt)
	}
	return out, nil
}
