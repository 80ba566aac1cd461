// Package camera holds the orthographic camera, the viewport framing that
// sizes its frustum, and the orbit controller that moves it.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Ortho is an orthographic camera looking from Position at a target.
// Frustum fields are mutable; call UpdateProjectionMatrix after changing
// them or Zoom.
type Ortho struct {
	Left, Right, Top, Bottom float64
	Near, Far                float64
	Zoom                     float64

	Position mgl64.Vec3
	Up       mgl64.Vec3

	view mgl64.Mat4
	proj mgl64.Mat4
}

// NewOrtho returns a camera at the origin looking down -Z with +Y up.
func NewOrtho(left, right, top, bottom, near, far float64) *Ortho {
	c := &Ortho{
		Left: left, Right: right, Top: top, Bottom: bottom,
		Near: near, Far: far,
		Zoom:     1,
		Position: mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
	}
	c.LookAt(mgl64.Vec3{0, 0, -1})
	c.UpdateProjectionMatrix()
	return c
}

// LookAt orients the camera toward target from its current Position.
func (c *Ortho) LookAt(target mgl64.Vec3) {
	eye := c.Position
	if eye.Sub(target).Len() == 0 {
		eye = target.Add(mgl64.Vec3{0, 0, 1})
	}
	up := c.Up
	if eye.Sub(target).Normalize().Cross(up).Len() < 1e-9 {
		// looking straight along up; any perpendicular will do
		up = mgl64.Vec3{0, 0, -1}
	}
	c.view = mgl64.LookAtV(eye, target, up)
}

// UpdateProjectionMatrix recomputes the projection from the frustum fields,
// shrinking it around its center by Zoom.
func (c *Ortho) UpdateProjectionMatrix() {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	dx := (c.Right - c.Left) / (2 * zoom)
	dy := (c.Top - c.Bottom) / (2 * zoom)
	cx := (c.Right + c.Left) / 2
	cy := (c.Top + c.Bottom) / 2
	c.proj = mgl64.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.Near, c.Far)
}

func (c *Ortho) ViewMatrix() mgl64.Mat4 { return c.view }

func (c *Ortho) ProjectionMatrix() mgl64.Mat4 { return c.proj }

func (c *Ortho) ViewProjection() mgl64.Mat4 { return c.proj.Mul4(c.view) }

// Project maps a world point to normalized device coordinates. Points inside
// the view volume land in [-1, 1] on every axis.
func (c *Ortho) Project(p mgl64.Vec3) mgl64.Vec3 {
	v := c.ViewProjection().Mul4x1(p.Vec4(1))
	return v.Vec3()
}

// Depth is the distance of p in front of the camera along the view axis.
func (c *Ortho) Depth(p mgl64.Vec3) float64 {
	return -c.view.Mul4x1(p.Vec4(1)).Z()
}

// RightVector is the camera's world-space +X axis.
func (c *Ortho) RightVector() mgl64.Vec3 { return c.view.Row(0).Vec3() }

// UpVector is the camera's world-space +Y axis.
func (c *Ortho) UpVector() mgl64.Vec3 { return c.view.Row(1).Vec3() }

// VisibleSize is the world-space extent currently shown, after zoom.
func (c *Ortho) VisibleSize() (w, h float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (c.Right - c.Left) / zoom, (c.Top - c.Bottom) / zoom
}
