package tui

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"origamiview/internal/config"
	"origamiview/internal/dataset"
	"origamiview/internal/render"
	"origamiview/internal/viewer"
	"origamiview/internal/watch"
)

func newModel(t *testing.T) Model {
	t.Helper()
	br := render.NewBraille(1, 1)
	v, err := viewer.New(config.Default(), br, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	v.Load(dataset.Curves())
	m := New(v, br)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResizeFollowsLayout(t *testing.T) {
	m := newModel(t)
	w, h := m.v.Renderer.Size()
	assert.Equal(t, 80*2, w)
	assert.Equal(t, (24-headerHeight-footerHeight)*4, h)
	assert.InDelta(t, 50, m.v.Camera.Top, 1e-9)

	// the sidebar takes columns from the viewport
	m = send(t, m, key("tab"))
	assert.True(t, m.showSidebar)
	w, _ = m.v.Renderer.Size()
	assert.Equal(t, (80-sidebarWidth-1)*2, w)
}

func TestFramesDrawScene(t *testing.T) {
	m := newModel(t)
	cmd := m.v.Start()
	require.NotNil(t, cmd)
	next, again := m.Update(cmd())
	assert.NotNil(t, again)
	assert.Equal(t, uint64(1), m.v.Driver.Frames())
	assert.Equal(t, 8, m.v.Stats.Lines)
	assert.Contains(t, next.View(), "origamiview")
}

func TestLayerKeys(t *testing.T) {
	m := newModel(t)
	m = send(t, m, key("1"))
	assert.False(t, m.v.Origin.Visible)
	assert.True(t, m.v.Graph.Visible)
	m = send(t, m, key("2"))
	assert.False(t, m.v.Graph.Visible)
	m = send(t, m, key("l"))
	assert.True(t, m.v.Origin.Visible)
	assert.True(t, m.v.Graph.Visible)
	m = send(t, m, key("l"))
	assert.False(t, m.v.Origin.Visible)
}

func TestOrbitAndResetKeys(t *testing.T) {
	m := newModel(t)
	start := m.v.Camera.Position
	m = send(t, m, key("left"))
	m.v.Controls.Update()
	require.NotEqual(t, start, m.v.Camera.Position)

	m = send(t, m, key(" "))
	assert.Equal(t, "camera reset", m.status)
	assert.InDelta(t, 0, m.v.Camera.Position.Sub(start).Len(), 1e-9)

	m = send(t, m, key("+"))
	m.v.Controls.Update()
	assert.Greater(t, m.v.Camera.Zoom, 1.0)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPasteAddsLine(t *testing.T) {
	m := newModel(t)
	m = send(t, m, key("p"))
	require.True(t, m.pasteMode)
	m = send(t, m, key("LINESTRING Z (0 0 0, 1 1 1, 2 2 2)"))
	m = send(t, m, key("enter"))
	assert.False(t, m.pasteMode)
	assert.Equal(t, 6, m.v.Summary.Lines)
	assert.NotNil(t, m.v.Graph.Find("paste000"))
	assert.Contains(t, m.status, "added 1 line(s)")

	m = send(t, m, key("p"))
	m = send(t, m, key("POINT (1 2)"))
	m = send(t, m, key("enter"))
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "wkt error")
	m = send(t, m, key("esc"))
	assert.False(t, m.pasteMode)
}

func TestPasteDropsStaleHover(t *testing.T) {
	m := newModel(t)
	m = send(t, m, tea.MouseMsg{X: 40, Y: 10 + headerHeight, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.True(t, m.hoverHasHit)

	// a far away line moves the graph centre, so the hovered vertex moves too
	m = send(t, m, key("p"))
	m = send(t, m, key("LINESTRING Z (500 500 500, 501 501 501)"))
	m = send(t, m, key("enter"))
	require.Equal(t, 6, m.v.Summary.Lines)
	assert.False(t, m.hoverHasHit)
	assert.True(t, m.hovering)
}

func TestEmptyDirListsExtensions(t *testing.T) {
	m := newModel(t)
	m.cwd = t.TempDir()
	m.refreshDir()
	assert.Empty(t, m.items)
	assert.Contains(t, m.status, ".json .js .yaml")
}

func TestRecordsTable(t *testing.T) {
	m := newModel(t)
	m = send(t, m, key("a"))
	require.True(t, m.showRecords)
	assert.Len(t, m.tbl.Rows(), 5)
	assert.Equal(t, "curve0", m.tbl.Rows()[0][1])
	assert.Equal(t, "200", m.tbl.Rows()[0][3])
	m = send(t, m, key("esc"))
	assert.False(t, m.showRecords)
}

func TestInspect(t *testing.T) {
	m := newModel(t)
	m = send(t, m, key("i"))
	assert.Contains(t, m.inspectPopup, "nearest:")
	assert.Contains(t, m.inspectPopup, "kind: synthetic")
	assert.Contains(t, m.inspectPopup, "size: ")
	m = send(t, m, key("esc"))
	assert.Empty(t, m.inspectPopup)
}

func TestLoadErrorKeepsScene(t *testing.T) {
	m := newModel(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"coords":[[1,2]]}]`), 0o644))
	m.loadPath(bad)
	assert.Contains(t, m.status, "load error")
	assert.Equal(t, "demo curves", m.v.Dataset.Name)
	assert.Equal(t, 5, m.v.Summary.Lines)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile_coords.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"a","color":"#ff0000","coords":[[0,0,0],[1,0,0]]}]`), 0o644))
	w, err := watch.New(path)
	require.NoError(t, err)
	defer w.Close()

	m := newModel(t).WithWatcher(w)
	next, cmd := m.Update(watch.ChangedMsg{Path: path})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, "tile_coords.json", m.v.Dataset.Name)
	assert.Equal(t, 1, m.v.Summary.Lines)
	assert.Contains(t, m.status, "loaded: tile_coords.json")

	m = send(t, m, key("r"))
	assert.Contains(t, m.status, "loaded")
}

func TestMouseHoverAndDrag(t *testing.T) {
	m := newModel(t)
	// the world origin sits at the viewport centre: cell (40, 10) below the header
	m = send(t, m, tea.MouseMsg{X: 40, Y: 10 + headerHeight, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.True(t, m.hovering)
	assert.True(t, m.hoverHasHit)

	m = send(t, m, tea.MouseMsg{X: 200, Y: 10, Action: tea.MouseActionMotion})
	assert.False(t, m.hovering)

	start := m.v.Camera.Position
	m = send(t, m, tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.dragging)
	m = send(t, m, tea.MouseMsg{X: 50, Y: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.v.Controls.Update()
	assert.NotEqual(t, start, m.v.Camera.Position)
	m = send(t, m, tea.MouseMsg{X: 50, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, m.dragging)

	m = send(t, m, tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m.v.Controls.Update()
	assert.Greater(t, m.v.Camera.Zoom, 1.0)
}
