package tui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fmtVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}

// layout holds the screen geometry shared by Update and View.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) layout() layout {
	var lo layout
	lo.contentW = max(10, m.width)
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	gap := 0
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		gap = 1
	}
	lo.mapW = max(10, lo.contentW-lo.sidebarW-gap)
	lo.mapH = lo.contentH
	lo.mapX = lo.sidebarW + gap
	lo.mapY = headerHeight
	return lo
}

// inMap converts a terminal cell to viewport cell coordinates.
func (lo layout) inMap(x, y int) (cx, cy int, ok bool) {
	cx, cy = x-lo.mapX, y-lo.mapY
	return cx, cy, cx >= 0 && cx < lo.mapW && cy >= 0 && cy < lo.mapH
}
