// Package watch reports changes to a loaded coordinate file as bubbletea
// messages.
package watch

import (
	"errors"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ChangedMsg reports that the watched file was written or replaced.
type ChangedMsg struct {
	Path string
}

// ErrMsg carries a watcher error.
type ErrMsg struct {
	Err error
}

func (e ErrMsg) Error() string { return e.Err.Error() }

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches one file. The parent directory is watched so that
// editors replacing the file by rename are still seen.
type Watcher struct {
	Path     string
	Debounce time.Duration

	w *fsnotify.Watcher
}

func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{Path: abs, Debounce: DefaultDebounce, w: fw}, nil
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.Path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Next returns a command that waits for the next change. Issue it again
// after each message to keep watching.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.w.Events:
				if !ok {
					return ErrMsg{errors.New("watch: closed")}
				}
				if !w.relevant(ev) {
					continue
				}
				w.drain()
				return ChangedMsg{Path: w.Path}
			case err, ok := <-w.w.Errors:
				if !ok {
					return ErrMsg{errors.New("watch: closed")}
				}
				return ErrMsg{err}
			}
		}
	}
}

// drain swallows events until Debounce passes quietly.
func (w *Watcher) drain() {
	if w.Debounce <= 0 {
		return
	}
	t := time.NewTimer(w.Debounce)
	defer t.Stop()
	for {
		select {
		case _, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !t.Stop() {
				<-t.C
			}
			t.Reset(w.Debounce)
		case <-t.C:
			return
		}
	}
}

func (w *Watcher) Close() error { return w.w.Close() }
