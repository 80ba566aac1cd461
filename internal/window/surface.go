// Package window is the desktop host: an ebiten game that shows the viewer
// in a resizable window.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"origamiview/internal/render"
)

// Surface draws onto the ebiten screen image of the current Draw call.
// Segments are painted in scene order; there is no depth test.
type Surface struct {
	Background colorful.Color

	dst  *ebiten.Image
	w, h int
}

func (s *Surface) Resize(w, h int) { s.w, s.h = w, h }

func (s *Surface) Size() (w, h int) { return s.w, s.h }

func (s *Surface) Clear() {
	if s.dst != nil {
		s.dst.Fill(s.Background)
	}
}

func (s *Surface) Segment(a, b render.Point, width float64, c colorful.Color) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

// bind points the surface at the image drawn this frame.
func (s *Surface) bind(dst *ebiten.Image) { s.dst = dst }
