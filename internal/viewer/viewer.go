// Package viewer ties the scene, camera, controls, renderer and frame driver
// into the single context object the hosts drive.
package viewer

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"origamiview/internal/camera"
	"origamiview/internal/config"
	"origamiview/internal/dataset"
	"origamiview/internal/loop"
	"origamiview/internal/render"
	"origamiview/internal/scene"
)

// Viewer owns everything a host needs to show a dataset. Hosts create one,
// Load a dataset, Resize to their container and Start the driver.
type Viewer struct {
	Config config.Config
	Logger *log.Logger

	Root   *scene.Node
	Origin *scene.Node
	Graph  *scene.Node

	Camera     *camera.Ortho
	Viewport   *camera.Viewport
	Controls   *camera.OrbitControls
	Resolution *scene.Resolution
	Renderer   *render.Renderer
	Driver     *loop.Driver

	Dataset dataset.Dataset
	Summary scene.Summary
	// Stats is what the last frame drew.
	Stats render.Stats
}

// New builds the scene graph and camera for cfg and binds the renderer to
// surface. A nil logger means log.Default().
func New(cfg config.Config, surface render.Surface, logger *log.Logger) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := colorful.Hex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("viewer: background %q: %w", cfg.Background, err)
	}
	if logger == nil {
		logger = log.Default()
	}

	v := &Viewer{
		Config:     cfg,
		Logger:     logger,
		Root:       scene.NewNode("scene"),
		Origin:     scene.NewNode("origin"),
		Graph:      scene.NewNode("graph"),
		Resolution: &scene.Resolution{},
	}
	v.Root.Add(v.Origin, v.Graph)

	v.Camera = camera.NewOrtho(-1, 1, 1, -1, cfg.Near, cfg.Far)
	v.Camera.Position = mgl64.Vec3(cfg.CameraPosition)
	v.Viewport = camera.NewViewport(cfg.FrustumSize)
	v.Viewport.Apply(v.Camera)

	v.Controls = camera.NewOrbitControls(v.Camera)
	v.Controls.RotateSpeed = cfg.Controls.RotateSpeed
	v.Controls.PanSpeed = cfg.Controls.PanSpeed
	v.Controls.ZoomSpeed = cfg.Controls.ZoomSpeed
	v.Controls.Damping = cfg.Controls.Damping
	v.Controls.MinZoom = cfg.Controls.MinZoom
	v.Controls.MaxZoom = cfg.Controls.MaxZoom

	v.Renderer = render.New(surface)
	v.Renderer.Background = bg
	v.Resolution.Set(1, 1)
	v.Renderer.SetSize(1, 1)

	v.Driver = loop.New(cfg.FPS, v.Frame)
	return v, nil
}

// Load replaces the shown dataset: it rebuilds the origin gizmo and
// assembles one centred line per record under the graph node.
func (v *Viewer) Load(ds dataset.Dataset) scene.Summary {
	tr := ds.Transform
	if v.Config.Transform != nil {
		tr = *v.Config.Transform
	}

	v.Origin.Clear()
	if ds.AxisLength > 0 {
		scene.Axes(v.Origin, ds.AxisLength, v.Config.AxisWidth, v.Resolution)
	}

	v.Graph.Clear()
	v.Summary = scene.Assemble(v.Graph, ds.Records, scene.AssembleOptions{
		Transform:         tr,
		Width:             v.Config.LineWidth,
		ScaffoldThreshold: v.Config.ScaffoldThreshold,
		Resolution:        v.Resolution,
		Near:              v.Camera.Near,
		Far:               v.Camera.Far,
		Logger:            v.Logger,
	})
	v.Dataset = ds
	v.Logger.Printf("loaded %s (%s, %s): %d lines, %d points",
		ds.Name, ds.Kind, tr, v.Summary.Lines, v.Summary.Points)
	return v.Summary
}

// AddRecord appends rec to the current dataset and reassembles it.
func (v *Viewer) AddRecord(rec dataset.Record) scene.Summary {
	ds := v.Dataset
	ds.Records = append(append([]dataset.Record(nil), ds.Records...), rec)
	return v.Load(ds)
}

// Resize is the container resize handler: it refits the camera frustum to
// the new aspect ratio and resizes the output.
func (v *Viewer) Resize(w, h int) error {
	if err := v.Viewport.Resize(w, h); err != nil {
		return err
	}
	v.Viewport.Apply(v.Camera)
	v.Renderer.SetSize(w, h)
	v.Resolution.Set(float64(w), float64(h))
	return nil
}

// Frame advances the controls and draws the scene once.
func (v *Viewer) Frame(time.Time) {
	v.Controls.Update()
	v.Stats = v.Renderer.Render(v.Root, v.Camera)
}

// Start starts the frame driver; see loop.Driver.Start.
func (v *Viewer) Start() tea.Cmd { return v.Driver.Start() }

// ResetCamera returns the camera to its starting pose.
func (v *Viewer) ResetCamera() { v.Controls.Reset() }

// Pick finds the visible vertex nearest to pixel x, y.
func (v *Viewer) Pick(x, y float64) (render.Hit, bool) {
	return v.Renderer.Pick(v.Root, v.Camera, x, y)
}

// Inspect picks nearest to the centre of the output.
func (v *Viewer) Inspect() (render.Hit, bool) {
	w, h := v.Renderer.Size()
	return v.Pick(float64(w)/2, float64(h)/2)
}

// Record returns the dataset record drawn by node, if any.
func (v *Viewer) Record(n *scene.Node) (dataset.Record, bool) {
	if n == nil || n.Parent() != v.Graph {
		return dataset.Record{}, false
	}
	for i, c := range v.Graph.Children() {
		if c == n && i < len(v.Dataset.Records) {
			return v.Dataset.Records[i], true
		}
	}
	return dataset.Record{}, false
}

// Close stops the frame driver.
func (v *Viewer) Close() { v.Driver.Stop() }
