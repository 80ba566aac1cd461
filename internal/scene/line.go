package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultLineWidth is the width of data lines as a fraction of the viewport
// height.
const DefaultLineWidth = 0.01

// RGB converts a packed 0xRRGGBB value.
func RGB(packed uint32) colorful.Color {
	return colorful.Color{
		R: float64(packed>>16&0xff) / 255,
		G: float64(packed>>8&0xff) / 255,
		B: float64(packed&0xff) / 255,
	}
}

// Resolution is the current output size in pixels. Every material holds the
// same pointer so a resize reaches all of them at once.
type Resolution struct {
	Width  float64
	Height float64
}

func (r *Resolution) Set(w, h float64) {
	r.Width, r.Height = w, h
}

// Material is a solid, unlit line material.
type Material struct {
	Color   colorful.Color
	Opacity float64
	// Width is relative to the viewport height when SizeAttenuation is off,
	// world units otherwise.
	Width           float64
	SizeAttenuation bool
	Resolution      *Resolution
	// Near and Far bound the view depth range the line is drawn in; zero Far
	// means the camera's range.
	Near, Far float64
}

// PixelWidth converts Width to pixels for the current resolution. scale is
// the camera's pixels per world unit and only matters with attenuation on.
func (m Material) PixelWidth(scale float64) float64 {
	w := m.Width
	switch {
	case m.SizeAttenuation:
		w *= scale
	case m.Resolution != nil:
		w *= m.Resolution.Height
	}
	if w < 1 {
		return 1
	}
	return w
}

// Line is an ordered polyline. Points are in the owning node's local space.
type Line struct {
	Points   []mgl64.Vec3
	Material Material
}

// Len returns the number of points.
func (l *Line) Len() int { return len(l.Points) }

// Degenerate reports whether the line has no segment to draw.
func (l *Line) Degenerate() bool { return len(l.Points) < 2 }

type lineConfig struct {
	name   string
	parent *Node
	mat    Material
}

type LineOption func(*lineConfig)

func WithWidth(w float64) LineOption {
	return func(c *lineConfig) { c.mat.Width = w }
}

func WithParent(p *Node) LineOption {
	return func(c *lineConfig) { c.parent = p }
}

func WithName(name string) LineOption {
	return func(c *lineConfig) { c.name = name }
}

func WithResolution(r *Resolution) LineOption {
	return func(c *lineConfig) { c.mat.Resolution = r }
}

func WithDepthRange(near, far float64) LineOption {
	return func(c *lineConfig) { c.mat.Near, c.mat.Far = near, far }
}

func WithOpacity(o float64) LineOption {
	return func(c *lineConfig) { c.mat.Opacity = o }
}

// MakeLine builds a line node through points and attaches it to the parent
// option when given. Fewer than two points yield a degenerate line that
// renders as nothing.
func MakeLine(points []mgl64.Vec3, color colorful.Color, opts ...LineOption) *Node {
	cfg := lineConfig{
		name: "line",
		mat: Material{
			Color:   color,
			Opacity: 1,
			Width:   DefaultLineWidth,
		},
	}
	for _, o := range opts {
		o(&cfg)
	}
	pts := make([]mgl64.Vec3, len(points))
	copy(pts, points)
	n := NewNode(cfg.name)
	n.Line = &Line{Points: pts, Material: cfg.mat}
	if cfg.parent != nil {
		cfg.parent.Add(n)
	}
	return n
}
