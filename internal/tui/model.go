package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"origamiview/internal/render"
	"origamiview/internal/viewer"
	"origamiview/internal/watch"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Scene
	v  *viewer.Viewer
	br *render.Braille

	// last laid out viewport size in cells
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model
	pasted    int

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverHit    render.Hit
	hoverHasHit bool

	// pointer drag
	dragging bool
	dragX    int
	dragY    int

	// records table
	showRecords bool
	tbl         table.Model

	watcher *watch.Watcher
}

// New builds the terminal UI around v, which must draw onto br.
func New(v *viewer.Viewer, br *render.Braille) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "origamiview ready",
		v:           v,
		br:          br,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (LINESTRING Z, MULTILINESTRING Z). Press Enter to add; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath remembers path as the loaded file for reload and inspect.
// The caller has already loaded it into v.
func NewWithPath(v *viewer.Viewer, br *render.Braille, path string) Model {
	m := New(v, br)
	m.selPath = path
	m.status = "loaded: " + v.Dataset.Name + m.counts()
	return m
}

// WithWatcher reloads the file whenever w reports a change.
func (m Model) WithWatcher(w *watch.Watcher) Model {
	m.watcher = w
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.v.Start()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}
