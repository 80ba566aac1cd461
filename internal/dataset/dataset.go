// Package dataset loads the coordinate records rendered by the viewer.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"origamiview/internal/geom"
)

// Kind selects the coordinate convention and gizmo size of a dataset.
type Kind int

const (
	// Origami data comes from the cadnano converter and uses a flipped Z axis.
	Origami Kind = iota
	// Synthetic data is generated in scene space.
	Synthetic
)

func (k Kind) String() string {
	if k == Synthetic {
		return "synthetic"
	}
	return "origami"
}

// Color is a packed 0xRRGGBB value.
type Color uint32

// ParseColor accepts "#rrggbb" (cadnano's format) or an integer literal
// such as "16711680" or "0xff0000".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("dataset: bad color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("dataset: bad color %q", s)
	}
	if v > 0xffffff {
		return 0, fmt.Errorf("dataset: color %q out of range", s)
	}
	return Color(v), nil
}

func (c Color) Hex() string { return fmt.Sprintf("#%06x", uint32(c)) }

// Record is one polyline: an ordered point sequence with a display color.
type Record struct {
	Name   string
	Color  Color
	Coords [][3]float64
}

type Dataset struct {
	Name      string
	Kind      Kind
	Records   []Record
	Transform geom.Transform
	// AxisLength sizes the origin gizmo.
	AxisLength float64
}

// New builds a dataset with the conventions of its kind.
func New(name string, kind Kind, recs []Record) Dataset {
	d := Dataset{Name: name, Kind: kind, Records: recs}
	switch kind {
	case Synthetic:
		d.Transform = geom.Identity
		d.AxisLength = 10
	default:
		d.Transform = geom.FlipZ
		d.AxisLength = 4
	}
	return d
}

var extensions = []string{".json", ".js", ".yaml", ".yml", ".csv", ".wkt"}

// Extensions lists the file extensions Load understands.
func Extensions() []string { return append([]string(nil), extensions...) }

// Supported reports whether Load can read path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a coordinate file, choosing the parser by extension.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	var recs []Record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".js":
		recs, err = ParseJSON(data)
	case ".yaml", ".yml":
		recs, err = ParseYAML(data)
	case ".csv":
		recs, err = ParseCSV(data)
	case ".wkt":
		recs, err = ParseWKT(string(data))
	default:
		return Dataset{}, errors.New("dataset: unsupported file: " + ext)
	}
	if err == nil {
		err = checkFinite(recs)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return New(filepath.Base(path), Origami, recs), nil
}

// rawRecord is the on-disk record shape shared by the JSON and YAML formats.
type rawRecord struct {
	Name   string      `json:"name" yaml:"name"`
	Color  Color       `json:"color" yaml:"color"`
	Coords [][]float64 `json:"coords" yaml:"coords"`
}

func (r rawRecord) record(i int) (Record, error) {
	rec := Record{Name: r.Name, Color: r.Color, Coords: make([][3]float64, len(r.Coords))}
	if rec.Name == "" {
		rec.Name = defaultName(i)
	}
	for j, c := range r.Coords {
		if len(c) != 3 {
			return Record{}, fmt.Errorf("dataset: record %d (%s) point %d: want 3 coordinates, got %d", i, rec.Name, j, len(c))
		}
		rec.Coords[j] = [3]float64{c[0], c[1], c[2]}
	}
	return rec, nil
}

// checkFinite rejects NaN and infinite coordinates, which the number parsers
// of every format accept.
func checkFinite(recs []Record) error {
	for i, r := range recs {
		for j, c := range r.Coords {
			for _, v := range c {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("dataset: record %d (%s) point %d: non-finite coordinate", i, r.Name, j)
				}
			}
		}
	}
	return nil
}

func defaultName(i int) string { return fmt.Sprintf("oligo%03d", i) }
