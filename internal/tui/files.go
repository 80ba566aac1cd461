package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"origamiview/internal/dataset"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !dataset.Supported(name) {
			continue
		}
		items = append(items, fileItem{
			title: name,
			desc:  strings.ToLower(filepath.Ext(name)),
			path:  filepath.Join(m.cwd, name),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no coordinate files (" + strings.Join(dataset.Extensions(), " ") + ") in current directory"
	}
}

// loadPath replaces the scene with the file at p. On error the previous
// scene stays.
func (m *Model) loadPath(p string) {
	ds, err := dataset.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.v.Load(ds)
	m.hoverHasHit = false
	m.inspectPopup = ""
	m.status = "loaded: " + filepath.Base(p) + m.counts()
	if m.showRecords {
		m.refreshRecords()
	}
}

func (m Model) counts() string {
	s := m.v.Summary
	out := fmt.Sprintf("  lines=%d points=%d", s.Lines, s.Points)
	if n := len(s.Scaffolds); n > 0 {
		out += fmt.Sprintf(" scaffolds=%d", n)
	}
	return out
}
