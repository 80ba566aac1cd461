package geom

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform maps a source coordinate tuple into scene space.
type Transform int

const (
	// Identity keeps coordinates unchanged (synthetic curves).
	Identity Transform = iota
	// FlipZ negates the third coordinate (cadnano origami exports).
	FlipZ
)

func (t Transform) String() string {
	switch t {
	case Identity:
		return "identity"
	case FlipZ:
		return "flipz"
	}
	return fmt.Sprintf("transform(%d)", int(t))
}

// ParseTransform accepts the names produced by String.
func ParseTransform(s string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "identity", "none":
		return Identity, nil
	case "flipz", "flip-z", "zflip":
		return FlipZ, nil
	}
	return Identity, fmt.Errorf("geom: unknown transform %q", s)
}

func (t Transform) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Transform) UnmarshalText(b []byte) error {
	v, err := ParseTransform(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Apply converts one coordinate tuple.
func (t Transform) Apply(c [3]float64) mgl64.Vec3 {
	if t == FlipZ {
		return mgl64.Vec3{c[0], c[1], -c[2]}
	}
	return mgl64.Vec3{c[0], c[1], c[2]}
}

// ApplyAll converts a whole coordinate sequence, preserving its length.
func (t Transform) ApplyAll(coords [][3]float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(coords))
	for i, c := range coords {
		out[i] = t.Apply(c)
	}
	return out
}
