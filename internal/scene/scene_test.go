package scene

import (
	"bytes"
	"log"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"origamiview/internal/dataset"
	"origamiview/internal/geom"
)

func assertOrigin(t *testing.T, v mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, v[i], 1e-9)
	}
}

func TestMakeLine(t *testing.T) {
	parent := NewNode("graph")
	pts := []mgl64.Vec3{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}}
	n := MakeLine(pts, RGB(0x00ff00), WithParent(parent), WithWidth(0.02), WithName("l"))

	require.NotNil(t, n.Line)
	assert.Equal(t, 3, n.Line.Len())
	assert.False(t, n.Line.Degenerate())
	assert.Same(t, parent, n.Parent())
	assert.Equal(t, []*Node{n}, parent.Children())

	m := n.Line.Material
	assert.Equal(t, 1.0, m.Opacity)
	assert.Equal(t, 0.02, m.Width)
	assert.False(t, m.SizeAttenuation)
	assert.Equal(t, 1.0, m.Color.G)
	assert.Equal(t, 0.0, m.Color.R)

	// the line owns its points
	pts[0] = mgl64.Vec3{9, 9, 9}
	assert.Equal(t, mgl64.Vec3{}, n.Line.Points[0])
}

func TestMakeLineDegenerate(t *testing.T) {
	for _, pts := range [][]mgl64.Vec3{nil, {{1, 1, 1}}} {
		n := MakeLine(pts, RGB(0xffffff))
		require.NotNil(t, n.Line)
		assert.True(t, n.Line.Degenerate())
		assert.Equal(t, len(pts), n.Line.Len())
		assert.Nil(t, n.Parent())
	}
}

func TestPixelWidth(t *testing.T) {
	res := &Resolution{}
	res.Set(800, 600)
	m := Material{Width: 0.01, Resolution: res}
	assert.InDelta(t, 6, m.PixelWidth(0), 1e-9)

	res.Set(400, 100)
	assert.Equal(t, 1.0, m.PixelWidth(0))

	m.SizeAttenuation = true
	m.Width = 0.5
	assert.InDelta(t, 5, m.PixelWidth(10), 1e-9)
}

func TestNodeTree(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	root.Add(a)
	a.Add(b)
	a.Position = mgl64.Vec3{1, 0, 0}
	b.Position = mgl64.Vec3{0, 2, 0}
	assert.Equal(t, mgl64.Vec3{1, 2, 0}, b.WorldPosition())
	assert.Same(t, b, root.Find("b"))
	assert.Nil(t, root.Find("missing"))

	// re-parenting detaches from the old parent
	root.Add(b)
	assert.Empty(t, a.Children())
	assert.Same(t, root, b.Parent())
	assert.Equal(t, mgl64.Vec3{0, 2, 0}, b.WorldPosition())

	assert.True(t, root.Remove(a))
	assert.False(t, root.Remove(a))
	assert.Nil(t, a.Parent())

	root.Clear()
	assert.Empty(t, root.Children())
	assert.Nil(t, b.Parent())
}

func TestBoundingBoxWorldSpace(t *testing.T) {
	root := NewNode("root")
	g := NewNode("graph")
	root.Add(g)
	g.Position = mgl64.Vec3{10, 0, 0}
	MakeLine([]mgl64.Vec3{{0, 0, 0}, {2, 2, 2}}, RGB(0), WithParent(g))

	b := root.BoundingBox()
	assert.Equal(t, mgl64.Vec3{10, 0, 0}, b.Min)
	assert.Equal(t, mgl64.Vec3{12, 2, 2}, b.Max)

	// lines without points add nothing; other lines merge in
	MakeLine(nil, RGB(0), WithParent(g))
	MakeLine([]mgl64.Vec3{{-1, 5, 0}}, RGB(0), WithParent(root))
	b = root.BoundingBox()
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, b.Min)
	assert.Equal(t, mgl64.Vec3{12, 5, 2}, b.Max)
	assert.Equal(t, mgl64.Vec3{13, 5, 2}, b.Size())
	assert.True(t, NewNode("empty").BoundingBox().IsEmpty())
}

func TestAssembleRedLineScenario(t *testing.T) {
	graph := NewNode("graph")
	recs := []dataset.Record{{Name: "r", Color: 0xff0000, Coords: [][3]float64{{0, 0, 0}, {1, 0, 0}}}}
	sum := Assemble(graph, recs, AssembleOptions{Transform: geom.FlipZ, ScaffoldThreshold: DefaultScaffoldThreshold})

	require.Len(t, graph.Children(), 1)
	line := graph.Children()[0].Line
	assert.Equal(t, "r", graph.Children()[0].Name)
	assert.Equal(t, RGB(0xff0000), line.Material.Color)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, line.Points[1])
	assert.Equal(t, 1, sum.Lines)
	assert.Equal(t, 2, sum.Points)
	assert.Empty(t, sum.Scaffolds)

	assert.Equal(t, mgl64.Vec3{0.5, 0, 0}, sum.Center)
	assert.Equal(t, mgl64.Vec3{-0.5, 0, 0}, graph.Position)
	assertOrigin(t, graph.BoundingBox().Center())
	assertOrigin(t, sum.Bounds.Center())
}

func TestAssembleTransforms(t *testing.T) {
	recs := []dataset.Record{
		{Name: "a", Coords: [][3]float64{{1, 2, 3}, {4, 5, 6}, {-7, 8, -9}}},
		{Name: "b", Coords: [][3]float64{{0, 0, 10}}},
	}
	for _, tr := range []geom.Transform{geom.FlipZ, geom.Identity} {
		graph := NewNode("graph")
		Assemble(graph, recs, AssembleOptions{Transform: tr})
		for i, child := range graph.Children() {
			src := recs[i].Coords
			require.Equal(t, len(src), child.Line.Len())
			for j, p := range child.Line.Points {
				want := src[j][2]
				if tr == geom.FlipZ {
					want = -want
				}
				assert.Equal(t, want, p.Z(), "%v record %d point %d", tr, i, j)
				assert.Equal(t, src[j][0], p.X())
			}
		}
		assertOrigin(t, graph.BoundingBox().Center())
	}
}

func TestAssembleEmpty(t *testing.T) {
	graph := NewNode("graph")
	graph.Position = mgl64.Vec3{3, 3, 3}
	sum := Assemble(graph, nil, AssembleOptions{Transform: geom.FlipZ})
	assert.Equal(t, 0, sum.Lines)
	assert.Equal(t, geom.Box3{}, sum.Bounds)
	assert.Equal(t, mgl64.Vec3{}, graph.Position)
	assert.True(t, graph.BoundingBox().IsEmpty())
}

func TestAssembleRecentersOnReload(t *testing.T) {
	graph := NewNode("graph")
	recs := []dataset.Record{{Coords: [][3]float64{{10, 10, 10}, {20, 20, 20}}}}
	Assemble(graph, recs, AssembleOptions{})
	graph.Clear()
	Assemble(graph, recs, AssembleOptions{})
	assert.Equal(t, mgl64.Vec3{-15, -15, -15}, graph.Position)
}

func TestAssembleLogsScaffold(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	long := make([][3]float64, 5)
	recs := []dataset.Record{
		{Name: "staple", Coords: long[:2]},
		{Name: "scaffold", Coords: long},
	}
	graph := NewNode("graph")
	sum := Assemble(graph, recs, AssembleOptions{ScaffoldThreshold: 3, Logger: logger})
	assert.Equal(t, []string{"scaffold"}, sum.Scaffolds)
	assert.Equal(t, "scaffold candidate: scaffold (5 points)\n", buf.String())
	// reporting never changes what is built
	assert.Len(t, graph.Children(), 2)
	assert.Equal(t, 5, graph.Children()[1].Line.Len())
}

func TestAxes(t *testing.T) {
	origin := NewNode("origin")
	Axes(origin, 4, 0.005, nil)
	require.Len(t, origin.Children(), 3)
	z := origin.Find("axis-z")
	require.NotNil(t, z)
	assert.Equal(t, mgl64.Vec3{0, 0, 4}, z.Line.Points[1])
	assert.Equal(t, RGB(0x0000ff), z.Line.Material.Color)
	assert.Equal(t, 0.005, z.Line.Material.Width)
}
