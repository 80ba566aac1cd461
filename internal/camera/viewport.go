package camera

import "fmt"

// DefaultFrustumSize is the vertical world extent shown at zoom 1.
const DefaultFrustumSize = 100

// Viewport is the container size the camera frustum follows. The vertical
// extent is fixed to FrustumSize; the horizontal extent follows the aspect
// ratio so lines are never stretched.
type Viewport struct {
	FrustumSize float64
	Width       int
	Height      int
}

func NewViewport(frustumSize float64) *Viewport {
	if frustumSize <= 0 {
		frustumSize = DefaultFrustumSize
	}
	return &Viewport{FrustumSize: frustumSize, Width: 1, Height: 1}
}

// Resize records a new container size in pixels.
func (v *Viewport) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("camera: invalid viewport size %dx%d", w, h)
	}
	v.Width, v.Height = w, h
	return nil
}

func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// Bounds returns the frustum for the current aspect ratio.
func (v Viewport) Bounds() (left, right, top, bottom float64) {
	half := v.FrustumSize / 2
	aspect := v.Aspect()
	return -half * aspect, half * aspect, half, -half
}

// Apply writes Bounds into cam and updates its projection.
func (v Viewport) Apply(cam *Ortho) {
	cam.Left, cam.Right, cam.Top, cam.Bottom = v.Bounds()
	cam.UpdateProjectionMatrix()
}
