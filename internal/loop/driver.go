// Package loop drives per-frame work: a bubbletea tick scheduler, a headless
// ticker, and direct stepping for hosts that own their own loop.
package loop

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DefaultFPS is used when New gets a non-positive rate.
const DefaultFPS = 30

// FrameMsg asks the driver for one frame. Messages from before the last
// Start are ignored.
type FrameMsg struct {
	Time time.Time
	gen  uint64
}

// Driver calls its frame function once per scheduled frame while running.
type Driver struct {
	Interval time.Duration

	frame  func(now time.Time)
	state  State
	gen    uint64
	frames uint64
}

func New(fps int, frame func(now time.Time)) *Driver {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Driver{Interval: time.Second / time.Duration(fps), frame: frame}
}

func (d *Driver) State() State { return d.state }

// Frames is the number of frames drawn since New.
func (d *Driver) Frames() uint64 { return d.frames }

// Start moves the driver to Running and returns the command scheduling the
// first frame. It returns nil when already running.
func (d *Driver) Start() tea.Cmd {
	if d.state == Running {
		return nil
	}
	d.state = Running
	d.gen++
	return d.tick()
}

// Stop halts the driver; pending frame messages become stale.
func (d *Driver) Stop() {
	if d.state == Running {
		d.state = Stopped
	}
}

func (d *Driver) tick() tea.Cmd {
	gen := d.gen
	return tea.Tick(d.Interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, gen: gen}
	})
}

// Update handles FrameMsg for bubbletea hosts: it draws one frame and
// schedules the next.
func (d *Driver) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.gen != d.gen {
		return nil
	}
	if !d.Step(fm.Time) {
		return nil
	}
	return d.tick()
}

// Step draws one frame if running and reports whether it did.
func (d *Driver) Step(now time.Time) bool {
	if d.state != Running {
		return false
	}
	if d.frame != nil {
		d.frame(now)
	}
	d.frames++
	return true
}

// Run draws frames on a ticker until ctx is done or, when ticks is
// positive, ticks frames have been drawn.
func (d *Driver) Run(ctx context.Context, ticks uint64) error {
	if d.Interval <= 0 {
		return fmt.Errorf("loop: invalid interval %v", d.Interval)
	}
	d.Start()
	defer d.Stop()

	t := time.NewTicker(d.Interval)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if !d.Step(now) {
				return nil
			}
			n++
			if ticks > 0 && n >= ticks {
				return nil
			}
		}
	}
}
