// Package render draws a scene graph through a camera onto a pixel surface.
package render

import "github.com/lucasb-eyer/go-colorful"

// Point is a position in surface pixels, origin top left. Z is the
// normalized device depth, -1 at the near plane.
type Point struct {
	X, Y, Z float64
}

// Surface is a raster the renderer draws onto.
type Surface interface {
	Resize(w, h int)
	Clear()
	Segment(a, b Point, width float64, c colorful.Color)
}
