package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"origamiview/internal/camera"
	"origamiview/internal/scene"
)

var (
	ndcMin = mgl64.Vec3{-1, -1, -1}
	ndcMax = mgl64.Vec3{1, 1, 1}
)

// Stats counts what one Render call drew.
type Stats struct {
	Lines    int
	Segments int
	// Clipped counts segments entirely outside the view volume.
	Clipped int
}

// Renderer projects the visible lines of a scene onto a Surface.
type Renderer struct {
	Surface Surface
	// Background is what translucent lines blend toward.
	Background colorful.Color

	width, height int
}

func New(s Surface) *Renderer {
	return &Renderer{Surface: s, width: 1, height: 1}
}

// SetSize sets the output size in pixels and resizes the surface.
func (r *Renderer) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r.width, r.height = w, h
	r.Surface.Resize(w, h)
}

func (r *Renderer) Size() (w, h int) { return r.width, r.height }

// toPixel maps normalized device coordinates to surface pixels.
func (r *Renderer) toPixel(ndc mgl64.Vec3) Point {
	return Point{
		X: (ndc.X() + 1) / 2 * float64(r.width),
		Y: (1 - ndc.Y()) / 2 * float64(r.height),
		Z: ndc.Z(),
	}
}

// pixelsPerUnit is the current world-to-pixel scale.
func (r *Renderer) pixelsPerUnit(cam *camera.Ortho) float64 {
	_, vh := cam.VisibleSize()
	if vh == 0 {
		return 0
	}
	return float64(r.height) / math.Abs(vh)
}

// Render clears the surface and draws every visible line under root.
// Hidden nodes hide their whole subtree.
func (r *Renderer) Render(root *scene.Node, cam *camera.Ortho) Stats {
	var st Stats
	r.Surface.Clear()
	if root == nil {
		return st
	}
	vp := cam.ViewProjection()
	scale := r.pixelsPerUnit(cam)

	root.Walk(func(n *scene.Node, off mgl64.Vec3) bool {
		if !n.Visible {
			return false
		}
		if n.Line == nil || n.Line.Degenerate() {
			return true
		}
		st.Lines++
		mat := n.Line.Material
		width := mat.PixelWidth(scale)
		col := mat.Color
		if mat.Opacity < 1 {
			col = r.Background.BlendRgb(col, math.Max(mat.Opacity, 0))
		}

		pts := n.Line.Points
		prevW := pts[0].Add(off)
		prev := mgl64.TransformCoordinate(prevW, vp)
		for _, p := range pts[1:] {
			curW := p.Add(off)
			cur := mgl64.TransformCoordinate(curW, vp)
			a, b, ok := r.clip(prev, cur, prevW, curW, mat, cam)
			if ok {
				r.Surface.Segment(r.toPixel(a), r.toPixel(b), width, col)
				st.Segments++
			} else {
				st.Clipped++
			}
			prev, prevW = cur, curW
		}
		return true
	})
	return st
}

// clip trims a segment given in device coordinates to the view cube and to
// the material's depth range.
func (r *Renderer) clip(a, b, aw, bw mgl64.Vec3, mat scene.Material, cam *camera.Ortho) (mgl64.Vec3, mgl64.Vec3, bool) {
	t0, t1, ok := clipBox(a, b, ndcMin, ndcMax)
	if !ok {
		return a, b, false
	}
	if mat.Far > 0 {
		if !clipRange(cam.Depth(aw), cam.Depth(bw), mat.Near, mat.Far, &t0, &t1) {
			return a, b, false
		}
	}
	if t0 > t1 {
		return a, b, false
	}
	return lerp(a, b, t0), lerp(a, b, t1), true
}

// Hit is a line vertex found by Pick.
type Hit struct {
	Node  *scene.Node
	Index int
	// World is the vertex position including its node offsets.
	World    mgl64.Vec3
	Screen   Point
	Distance float64
}

// Pick returns the visible line vertex whose projection is nearest to the
// pixel x, y. Vertices outside the view volume are ignored.
func (r *Renderer) Pick(root *scene.Node, cam *camera.Ortho, x, y float64) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	if root == nil {
		return best, false
	}
	vp := cam.ViewProjection()
	root.Walk(func(n *scene.Node, off mgl64.Vec3) bool {
		if !n.Visible {
			return false
		}
		if n.Line == nil {
			return true
		}
		for i, p := range n.Line.Points {
			w := p.Add(off)
			ndc := mgl64.TransformCoordinate(w, vp)
			if !inside(ndc) {
				continue
			}
			s := r.toPixel(ndc)
			d := math.Hypot(s.X-x, s.Y-y)
			if d < best.Distance {
				best = Hit{Node: n, Index: i, World: w, Screen: s, Distance: d}
			}
		}
		return true
	})
	return best, best.Node != nil
}

func inside(v mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if v[i] < -1 || v[i] > 1 {
			return false
		}
	}
	return true
}
