package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"origamiview/internal/viewer"
)

const rotateStep = 0.05

// input is one tick's worth of pointer and keyboard state.
type input struct {
	x, y  int
	left  bool
	pan   bool // shift or ctrl held
	wheel float64
	keys  []ebiten.Key
	held  []ebiten.Key
	quit  bool
}

// Game adapts a viewer to ebiten.Game.
type Game struct {
	v *viewer.Viewer
	s *Surface

	w, h     int
	dragging bool
	lastX    int
	lastY    int
}

// New binds v, which must draw onto s.
func New(v *viewer.Viewer, s *Surface) *Game {
	s.Background = v.Renderer.Background
	return &Game{v: v, s: s}
}

// Run opens the window and blocks until it closes.
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.v.Config.FPS)
	g.v.Start()
	defer g.v.Close()
	return ebiten.RunGame(g)
}

// Layout is the resize handler: the scene is drawn at the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.w || h != g.h {
		if err := g.v.Resize(w, h); err == nil {
			g.w, g.h = w, h
		}
	}
	return w, h
}

func (g *Game) Update() error {
	in := readInput()
	if in.quit {
		return ebiten.Termination
	}
	g.apply(in)
	return nil
}

func readInput() input {
	var in input
	in.x, in.y = ebiten.CursorPosition()
	in.left = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.pan = ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyControl)
	_, in.wheel = ebiten.Wheel()
	in.keys = inpututil.AppendJustPressedKeys(nil)
	in.held = inpututil.AppendPressedKeys(nil)
	for _, k := range in.keys {
		if k == ebiten.KeyQ || k == ebiten.KeyEscape {
			in.quit = true
		}
	}
	return in
}

func (g *Game) apply(in input) {
	c := g.v.Controls
	fw, fh := float64(g.w), float64(g.h)

	switch {
	case in.left && !g.dragging:
		g.dragging = true
	case in.left:
		dx, dy := float64(in.x-g.lastX), float64(in.y-g.lastY)
		if in.pan {
			c.Pan(dx, dy, fw, fh)
		} else {
			c.RotatePixels(dx, dy, fh)
		}
	default:
		g.dragging = false
	}
	g.lastX, g.lastY = in.x, in.y

	switch {
	case in.wheel > 0:
		c.ZoomIn()
	case in.wheel < 0:
		c.ZoomOut()
	}

	// arrows repeat while held
	for _, k := range in.held {
		switch k {
		case ebiten.KeyArrowLeft:
			if in.pan {
				c.Pan(-fw/100, 0, fw, fh)
			} else {
				c.Rotate(rotateStep, 0)
			}
		case ebiten.KeyArrowRight:
			if in.pan {
				c.Pan(fw/100, 0, fw, fh)
			} else {
				c.Rotate(-rotateStep, 0)
			}
		case ebiten.KeyArrowUp:
			if in.pan {
				c.Pan(0, -fh/100, fw, fh)
			} else {
				c.Rotate(0, rotateStep)
			}
		case ebiten.KeyArrowDown:
			if in.pan {
				c.Pan(0, fh/100, fw, fh)
			} else {
				c.Rotate(0, -rotateStep)
			}
		}
	}
	for _, k := range in.keys {
		switch k {
		case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
			c.ZoomIn()
		case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
			c.ZoomOut()
		case ebiten.KeySpace:
			g.v.ResetCamera()
		case ebiten.KeyDigit1:
			g.v.Origin.Visible = !g.v.Origin.Visible
		case ebiten.KeyDigit2:
			g.v.Graph.Visible = !g.v.Graph.Visible
		case ebiten.KeyL:
			all := g.v.Origin.Visible && g.v.Graph.Visible
			g.v.Origin.Visible, g.v.Graph.Visible = !all, !all
		}
	}
}

// Draw runs one frame of the viewer onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.s.bind(screen)
	g.v.Driver.Step(time.Now())
	g.s.bind(nil)
}
