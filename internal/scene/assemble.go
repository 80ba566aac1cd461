package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"origamiview/internal/dataset"
	"origamiview/internal/geom"
)

// DefaultScaffoldThreshold is the point count above which a record is
// reported as a probable scaffold strand.
const DefaultScaffoldThreshold = 2000

type AssembleOptions struct {
	Transform         geom.Transform
	Width             float64
	// ScaffoldThreshold defaults to DefaultScaffoldThreshold when not positive.
	ScaffoldThreshold int
	Resolution        *Resolution
	Near, Far         float64
	// Logger receives scaffold reports; log.Default() when nil.
	Logger *log.Logger
}

// Summary describes an assembled graph.
type Summary struct {
	Lines  int
	Points int
	// Scaffolds names the records above the scaffold threshold.
	Scaffolds []string
	// Bounds is the graph's world bounding box after centering: a point at
	// the origin for an empty graph.
	Bounds geom.Box3
	// Center is the pre-centering bounding box center.
	Center mgl64.Vec3
}

// Assemble adds one line per record under graph and then moves graph so the
// center of its bounding box sits at the world origin. Any previous offset of
// graph is discarded first.
func Assemble(graph *Node, recs []dataset.Record, opts AssembleOptions) Summary {
	if opts.Width <= 0 {
		opts.Width = DefaultLineWidth
	}
	if opts.ScaffoldThreshold <= 0 {
		opts.ScaffoldThreshold = DefaultScaffoldThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	graph.Position = mgl64.Vec3{}

	var sum Summary
	for _, r := range recs {
		if len(r.Coords) > opts.ScaffoldThreshold {
			logger.Printf("scaffold candidate: %s (%d points)", r.Name, len(r.Coords))
			sum.Scaffolds = append(sum.Scaffolds, r.Name)
		}
		MakeLine(opts.Transform.ApplyAll(r.Coords), RGB(uint32(r.Color)),
			WithName(r.Name),
			WithWidth(opts.Width),
			WithResolution(opts.Resolution),
			WithDepthRange(opts.Near, opts.Far),
			WithParent(graph),
		)
		sum.Lines++
		sum.Points += len(r.Coords)
	}

	ctr := graph.BoundingBox().Center()
	graph.Position = ctr.Mul(-1)
	sum.Center = ctr
	sum.Bounds = graph.BoundingBox()
	if sum.Bounds.IsEmpty() {
		sum.Bounds = geom.Box3{}
	}
	return sum
}

// Axes adds the origin gizmo under parent: red X, green Y and blue Z lines of
// the given length.
func Axes(parent *Node, length, width float64, res *Resolution) {
	axes := []struct {
		name  string
		dir   mgl64.Vec3
		color uint32
	}{
		{"axis-x", mgl64.Vec3{1, 0, 0}, 0xff0000},
		{"axis-y", mgl64.Vec3{0, 1, 0}, 0x00ff00},
		{"axis-z", mgl64.Vec3{0, 0, 1}, 0x0000ff},
	}
	for _, a := range axes {
		MakeLine([]mgl64.Vec3{{}, a.dir.Mul(length)}, RGB(a.color),
			WithName(a.name),
			WithWidth(width),
			WithResolution(res),
			WithParent(parent),
		)
	}
}
