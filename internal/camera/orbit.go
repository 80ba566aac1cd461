package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const polarEpsilon = 1e-6

// OrbitControls rotates the camera around Target on a sphere, pans the
// target in the view plane and zooms the orthographic frustum. Input calls
// only accumulate; Update applies them, once per frame.
type OrbitControls struct {
	Camera *Ortho
	Target mgl64.Vec3

	Enabled     bool
	RotateSpeed float64
	PanSpeed    float64
	ZoomSpeed   float64
	// Damping is the fraction of pending motion applied per Update. Zero
	// applies everything at once.
	Damping float64

	MinZoom, MaxZoom   float64
	MinPolar, MaxPolar float64

	dTheta, dPhi float64
	pan          mgl64.Vec3
	scale        float64

	saved struct {
		position, target mgl64.Vec3
		zoom             float64
	}
}

// NewOrbitControls attaches to cam, targets the origin and saves the
// current pose for Reset.
func NewOrbitControls(cam *Ortho) *OrbitControls {
	c := &OrbitControls{
		Camera:      cam,
		Enabled:     true,
		RotateSpeed: 1,
		PanSpeed:    1,
		ZoomSpeed:   1,
		MinZoom:     0,
		MaxZoom:     math.Inf(1),
		MinPolar:    0,
		MaxPolar:    math.Pi,
		scale:       1,
	}
	cam.LookAt(c.Target)
	c.SaveState()
	return c
}

// SaveState records the current pose as the one Reset returns to.
func (c *OrbitControls) SaveState() {
	c.saved.position = c.Camera.Position
	c.saved.target = c.Target
	c.saved.zoom = c.Camera.Zoom
}

// Reset restores the saved pose and drops pending input.
func (c *OrbitControls) Reset() {
	c.Camera.Position = c.saved.position
	c.Target = c.saved.target
	c.Camera.Zoom = c.saved.zoom
	c.Camera.UpdateProjectionMatrix()
	c.Camera.LookAt(c.Target)
	c.dTheta, c.dPhi = 0, 0
	c.pan = mgl64.Vec3{}
	c.scale = 1
}

// Rotate queues a rotation of left radians around the up axis and up radians
// toward the top pole.
func (c *OrbitControls) Rotate(left, up float64) {
	if !c.Enabled {
		return
	}
	c.dTheta -= left * c.RotateSpeed
	c.dPhi -= up * c.RotateSpeed
}

// RotatePixels queues a rotation for a pointer drag of dx, dy pixels; a
// drag across the full viewport height is one full turn.
func (c *OrbitControls) RotatePixels(dx, dy, height float64) {
	if height <= 0 {
		return
	}
	c.Rotate(2*math.Pi*dx/height, 2*math.Pi*dy/height)
}

// Pan queues a move of the target for a pointer drag of dx, dy pixels in a
// viewport of width x height pixels, so the scene follows the pointer.
func (c *OrbitControls) Pan(dx, dy, width, height float64) {
	if !c.Enabled || width <= 0 || height <= 0 {
		return
	}
	vw, vh := c.Camera.VisibleSize()
	left := dx * vw / width * c.PanSpeed
	up := dy * vh / height * c.PanSpeed
	c.pan = c.pan.Add(c.Camera.RightVector().Mul(-left))
	c.pan = c.pan.Add(c.Camera.UpVector().Mul(up))
}

// Dolly queues a zoom by factor; values above 1 zoom in.
func (c *OrbitControls) Dolly(factor float64) {
	if !c.Enabled || factor <= 0 {
		return
	}
	c.scale *= factor
}

// ZoomIn and ZoomOut are one wheel notch.
func (c *OrbitControls) ZoomIn()  { c.Dolly(1 / c.zoomStep()) }
func (c *OrbitControls) ZoomOut() { c.Dolly(c.zoomStep()) }

func (c *OrbitControls) zoomStep() float64 {
	return math.Pow(0.95, c.ZoomSpeed)
}

// Spherical returns the camera offset from the target as radius, azimuth
// around +Y measured from +Z, and polar angle from +Y.
func (c *OrbitControls) Spherical() (radius, theta, phi float64) {
	off := c.Camera.Position.Sub(c.Target)
	radius = off.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math.Atan2(off.X(), off.Z())
	phi = math.Acos(mgl64.Clamp(off.Y()/radius, -1, 1))
	return radius, theta, phi
}

// Update applies pending input to the camera and reports whether the pose
// changed.
func (c *OrbitControls) Update() bool {
	cam := c.Camera
	radius, theta, phi := c.Spherical()
	prevPos, prevZoom := cam.Position, cam.Zoom

	f := 1.0
	if c.Damping > 0 {
		f = c.Damping
	}
	theta += c.dTheta * f
	phi += c.dPhi * f
	phi = mgl64.Clamp(phi, math.Max(c.MinPolar, polarEpsilon), math.Min(c.MaxPolar, math.Pi-polarEpsilon))

	c.Target = c.Target.Add(c.pan.Mul(f))

	if radius == 0 {
		radius = 1
	}
	sinPhi := math.Sin(phi)
	off := mgl64.Vec3{
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	}
	cam.Position = c.Target.Add(off)

	if c.scale != 1 {
		z := cam.Zoom * c.scale
		if c.MaxZoom > 0 {
			z = math.Min(z, c.MaxZoom)
		}
		z = math.Max(z, c.MinZoom)
		if z > 0 {
			cam.Zoom = z
		}
		cam.UpdateProjectionMatrix()
	}
	cam.LookAt(c.Target)

	if c.Damping > 0 {
		c.dTheta *= 1 - c.Damping
		c.dPhi *= 1 - c.Damping
		c.pan = c.pan.Mul(1 - c.Damping)
	} else {
		c.dTheta, c.dPhi = 0, 0
		c.pan = mgl64.Vec3{}
	}
	c.scale = 1

	return cam.Position.Sub(prevPos).Len() > 1e-9 || cam.Zoom != prevZoom
}
