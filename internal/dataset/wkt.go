package dataset

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseWKT reads 3D line geometries, one per non-empty input line.
// Supported: LINESTRING Z (x y z, ...), LINESTRING (x y z, ...) and
// MULTILINESTRING Z ((x y z, ...), (...)). Records are named wkt000, wkt001, ...
// and colored from Palette.
func ParseWKT(wkt string) ([]Record, error) {
	var out []Record
	for n, line := range strings.Split(wkt, "\n") {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines, err := parseWKTGeometry(s)
		if err != nil {
			return nil, fmt.Errorf("dataset: wkt line %d: %w", n+1, err)
		}
		for _, coords := range lines {
			i := len(out)
			out = append(out, Record{
				Name:   fmt.Sprintf("wkt%03d", i),
				Color:  Palette[i%len(Palette)],
				Coords: coords,
			})
		}
	}
	if len(out) == 0 {
		return nil, errors.New("dataset: wkt: no geometries parsed")
	}
	if err := checkFinite(out); err != nil {
		return nil, err
	}
	return out, nil
}

// lineSep matches the separator between the member lines of a
// MULTILINESTRING, with any whitespace around the comma.
var lineSep = regexp.MustCompile(`\)\s*,\s*\(`)

func parseWKTGeometry(s string) ([][][3]float64, error) {
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTILINESTRING"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return nil, errors.New("multilinestring: invalid")
		}
		var out [][][3]float64
		for _, part := range lineSep.Split(s[i+2:j], -1) {
			pts, err := parseTuples3(part)
			if err != nil {
				return nil, err
			}
			out = append(out, pts)
		}
		return out, nil
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("linestring: invalid")
		}
		pts, err := parseTuples3(s[i+1 : j])
		if err != nil {
			return nil, err
		}
		return [][][3]float64{pts}, nil
	}
	return nil, errors.New("unsupported wkt type")
}

func parseTuples3(block string) ([][3]float64, error) {
	var out [][3]float64
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) == 0 {
			continue
		}
		if len(parts) != 3 {
			return nil, fmt.Errorf("want 3 coordinates, got %d in %q", len(parts), strings.TrimSpace(tup))
		}
		var pt [3]float64
		for k, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, err
			}
			pt[k] = v
		}
		out = append(out, pt)
	}
	return out, nil
}
