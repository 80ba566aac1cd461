package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"origamiview/internal/dataset"
	"origamiview/internal/loop"
	"origamiview/internal/scene"
	"origamiview/internal/watch"
)

const (
	rotateStep = 0.1
	// panFraction of the viewport moved per shift+arrow
	panFraction = 0.05
	// hoverRadius in micro-pixels within which a vertex counts as hovered
	hoverRadius = 6.0
)

var hoverColor = scene.RGB(0xffa500)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case loop.FrameMsg:
		cmd := m.v.Driver.Update(msg)
		m.markHover()
		return m, cmd
	case watch.ChangedMsg:
		m.loadPath(msg.Path)
		return m, m.watcher.Next()
	case watch.ErrMsg:
		m.status = "watch error: " + msg.Error()
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showRecords {
			switch msg.String() {
			case "esc", "a":
				m.showRecords = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if m.handleKey(msg.String()) {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize refits the viewer to the current viewport area.
func (m *Model) resize() {
	lo := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}
	if lo.mapW == m.mapW && lo.mapH == m.mapH {
		return
	}
	m.mapW, m.mapH = lo.mapW, lo.mapH
	if err := m.v.Resize(lo.mapW*2, lo.mapH*4); err != nil {
		m.status = "resize error: " + err.Error()
	}
}

// handleKey runs a view-mode key binding and reports whether to quit.
func (m *Model) handleKey(key string) bool {
	c := m.v.Controls
	w, h := m.v.Renderer.Size()
	panX, panY := float64(w)*panFraction, float64(h)*panFraction
	switch key {
	case "ctrl+c", "q":
		return true
	case "esc":
		m.inspectPopup = ""
	case "left":
		c.Rotate(rotateStep, 0)
	case "right":
		c.Rotate(-rotateStep, 0)
	case "up":
		c.Rotate(0, rotateStep)
	case "down":
		c.Rotate(0, -rotateStep)
	case "shift+left":
		c.Pan(-panX, 0, float64(w), float64(h))
	case "shift+right":
		c.Pan(panX, 0, float64(w), float64(h))
	case "shift+up":
		c.Pan(0, -panY, float64(w), float64(h))
	case "shift+down":
		c.Pan(0, panY, float64(w), float64(h))
	case "+", "=":
		c.ZoomIn()
	case "-", "_":
		c.ZoomOut()
	case " ":
		m.v.ResetCamera()
		m.status = "camera reset"
	case "1":
		m.v.Origin.Visible = !m.v.Origin.Visible
		m.status = fmt.Sprintf("axes: %v", m.v.Origin.Visible)
	case "2":
		m.v.Graph.Visible = !m.v.Graph.Visible
		m.status = fmt.Sprintf("graph: %v", m.v.Graph.Visible)
	case "l":
		all := m.v.Origin.Visible && m.v.Graph.Visible
		m.v.Origin.Visible = !all
		m.v.Graph.Visible = !all
		m.status = fmt.Sprintf("layers: axes=%v graph=%v", m.v.Origin.Visible, m.v.Graph.Visible)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
		}
		m.resize()
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	case "r":
		if m.selPath == "" {
			m.status = "nothing to reload"
		} else {
			m.loadPath(m.selPath)
		}
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste mode"
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showRecords = true
		m.refreshRecords()
	case "i":
		m.inspect()
	}
	return false
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		recs, err := dataset.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		for _, r := range recs {
			r.Name = fmt.Sprintf("paste%03d", m.pasted)
			m.pasted++
			m.v.AddRecord(r)
		}
		// recentring moved every vertex
		m.hoverHasHit = false
		m.status = fmt.Sprintf("added %d line(s)", len(recs)) + m.counts()
		if m.showRecords {
			m.refreshRecords()
		}
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// inspect describes the record nearest to the viewport centre.
func (m *Model) inspect() {
	hit, ok := m.v.Inspect()
	if !ok {
		m.inspectPopup = ""
		m.status = "nothing in view"
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = m.v.Dataset.Name
	}
	s := m.v.Summary
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("kind: %s", m.v.Dataset.Kind),
		fmt.Sprintf("bounds: %s - %s", fmtVec(s.Bounds.Min), fmtVec(s.Bounds.Max)),
		fmt.Sprintf("size: %s", fmtVec(s.Bounds.Size())),
		fmt.Sprintf("counts: lines=%d points=%d", s.Lines, s.Points),
		fmt.Sprintf("nearest: %s #%d %s", hit.Node.Name, hit.Index, fmtVec(hit.World)),
	}
	if rec, ok := m.v.Record(hit.Node); ok {
		meta = append(meta, fmt.Sprintf("record: %s %s, %d points", rec.Name, rec.Color.Hex(), len(rec.Coords)))
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	lo := m.layout()
	cx, cy, in := lo.inMap(msg.X, msg.Y)
	c := m.v.Controls
	w, h := m.v.Renderer.Size()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		c.ZoomIn()
	case msg.Button == tea.MouseButtonWheelDown:
		c.ZoomOut()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if in {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Action == tea.MouseActionMotion && m.dragging:
		// one cell is 2x4 micro-pixels
		dx := float64(msg.X-m.dragX) * 2
		dy := float64(msg.Y-m.dragY) * 4
		m.dragX, m.dragY = msg.X, msg.Y
		if msg.Shift || msg.Ctrl {
			c.Pan(dx, dy, float64(w), float64(h))
		} else {
			c.RotatePixels(dx, dy, float64(h))
		}
	}

	m.hovering = in
	m.hoverHasHit = false
	if !in {
		return
	}
	m.hoverCellX, m.hoverCellY = cx, cy
	hit, ok := m.v.Pick(float64(cx*2+1), float64(cy*4+2))
	if ok && hit.Distance <= hoverRadius {
		m.hoverHit, m.hoverHasHit = hit, true
	}
}

// markHover draws the hover ring on the freshly rendered frame.
func (m Model) markHover() {
	if !m.hovering || !m.hoverHasHit {
		return
	}
	// the camera may have moved since the pick; follow the vertex
	p := m.v.Camera.Project(m.hoverHit.World)
	if p.X() < -1 || p.X() > 1 || p.Y() < -1 || p.Y() > 1 {
		return
	}
	w, h := m.v.Renderer.Size()
	x := (p.X() + 1) / 2 * float64(w)
	y := (1 - p.Y()) / 2 * float64(h)
	m.br.Mark(int(x)/2, int(y)/4, '◯', hoverColor)
}
