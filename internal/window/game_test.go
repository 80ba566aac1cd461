package window

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"origamiview/internal/config"
	"origamiview/internal/dataset"
	"origamiview/internal/viewer"
)

func newGame(t *testing.T) (*Game, *Surface) {
	t.Helper()
	s := &Surface{}
	v, err := viewer.New(config.Default(), s, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	v.Load(dataset.Curves())
	return New(v, s), s
}

func TestLayoutResizesViewer(t *testing.T) {
	g, s := newGame(t)
	w, h := g.Layout(800, 600)
	assert.Equal(t, [2]int{800, 600}, [2]int{w, h})
	sw, sh := s.Size()
	assert.Equal(t, [2]int{800, 600}, [2]int{sw, sh})
	assert.Equal(t, 600.0, g.v.Resolution.Height)
	left := g.v.Camera.Left

	g.Layout(400, 800)
	assert.InDelta(t, left*(400.0/800)/(800.0/600), g.v.Camera.Left, 1e-9)
	assert.Equal(t, 50.0, g.v.Camera.Top)

	// a minimised window keeps a usable size
	w, h = g.Layout(0, 0)
	assert.Equal(t, [2]int{1, 1}, [2]int{w, h})
}

func TestDragRotatesAndPans(t *testing.T) {
	g, _ := newGame(t)
	g.Layout(800, 600)
	start := g.v.Camera.Position

	g.apply(input{x: 100, y: 100, left: true})
	g.apply(input{x: 160, y: 100, left: true})
	g.v.Controls.Update()
	r0 := start.Len()
	assert.NotEqual(t, start, g.v.Camera.Position)
	assert.InDelta(t, r0, g.v.Camera.Position.Len(), 1e-9)

	g.apply(input{x: 160, y: 100})
	assert.False(t, g.dragging)

	target := g.v.Controls.Target
	g.apply(input{x: 0, y: 0, left: true, pan: true})
	g.apply(input{x: 50, y: 0, left: true, pan: true})
	g.v.Controls.Update()
	assert.NotEqual(t, target, g.v.Controls.Target)
}

func TestKeysAndWheel(t *testing.T) {
	g, _ := newGame(t)
	g.Layout(800, 600)

	g.apply(input{wheel: 1})
	g.v.Controls.Update()
	assert.Greater(t, g.v.Camera.Zoom, 1.0)

	g.apply(input{keys: []ebiten.Key{ebiten.KeySpace}})
	assert.Equal(t, 1.0, g.v.Camera.Zoom)

	g.apply(input{keys: []ebiten.Key{ebiten.KeyDigit1}})
	assert.False(t, g.v.Origin.Visible)
	g.apply(input{keys: []ebiten.Key{ebiten.KeyL}})
	assert.True(t, g.v.Origin.Visible)
	assert.True(t, g.v.Graph.Visible)

	start := g.v.Camera.Position
	g.apply(input{held: []ebiten.Key{ebiten.KeyArrowLeft}})
	g.v.Controls.Update()
	assert.NotEqual(t, start, g.v.Camera.Position)
}

func TestSurfaceWithoutImage(t *testing.T) {
	g, s := newGame(t)
	g.Layout(320, 200)
	g.v.Start()
	// drawing outside Draw is a no-op rather than a crash
	require.True(t, g.v.Driver.Step(time.Now()))
	assert.Equal(t, 8, g.v.Stats.Lines)
	assert.Equal(t, g.v.Renderer.Background, s.Background)
}
