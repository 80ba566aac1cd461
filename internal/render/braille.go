package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// brailleBits maps a micro-pixel (column rx, row ry) inside a cell to its
// dot bit in the U+2800 block.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type mark struct {
	r rune
	c colorful.Color
}

// Braille is a terminal Surface with 2x4 micro-pixels per character cell.
// Each cell takes the colour of the nearest segment that touched it.
type Braille struct {
	w, h  int // in cells
	mask  [][]uint8
	color [][]colorful.Color
	depth [][]float64
	marks map[[2]int]mark
}

// NewBraille returns a surface of w x h cells.
func NewBraille(w, h int) *Braille {
	b := &Braille{}
	b.Resize(w*2, h*4)
	return b
}

// Resize takes the size in micro-pixels; partial cells are dropped.
func (b *Braille) Resize(w, h int) {
	cw, ch := max(w/2, 1), max(h/4, 1)
	if cw == b.w && ch == b.h {
		b.Clear()
		return
	}
	b.w, b.h = cw, ch
	b.mask = make([][]uint8, ch)
	b.color = make([][]colorful.Color, ch)
	b.depth = make([][]float64, ch)
	for i := 0; i < ch; i++ {
		b.mask[i] = make([]uint8, cw)
		b.color[i] = make([]colorful.Color, cw)
		b.depth[i] = make([]float64, cw)
	}
	b.Clear()
}

// Cells returns the size in character cells.
func (b *Braille) Cells() (w, h int) { return b.w, b.h }

func (b *Braille) Clear() {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			b.mask[y][x] = 0
			b.depth[y][x] = math.Inf(1)
		}
	}
	b.marks = nil
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *Braille) setPixel(mx, my int, z float64, c colorful.Color) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.mask[cy][cx] |= brailleBits[mx%2][my%4]
	if z <= b.depth[cy][cx] {
		b.depth[cy][cx] = z
		b.color[cy][cx] = c
	}
}

// stamp sets a square of micro-pixels of the given radius around mx, my.
func (b *Braille) stamp(mx, my, r int, z float64, c colorful.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			b.setPixel(mx+dx, my+dy, z, c)
		}
	}
}

// Segment draws a line on the microgrid using Bresenham, interpolating depth
// along the way.
func (b *Braille) Segment(p, q Point, width float64, c colorful.Color) {
	x0, y0 := int(math.Floor(p.X)), int(math.Floor(p.Y))
	x1, y1 := int(math.Floor(q.X)), int(math.Floor(q.Y))
	r := 0
	if width > 1 {
		r = int((width - 1) / 2)
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	err := dx + dy
	for i := 0; ; i++ {
		z := p.Z
		if steps > 0 {
			z += (q.Z - p.Z) * float64(i) / float64(steps)
		}
		b.stamp(x0, y0, r, z, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Mark overlays glyph r on cell cx, cy until the next Clear.
func (b *Braille) Mark(cx, cy int, r rune, c colorful.Color) {
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h {
		return
	}
	if b.marks == nil {
		b.marks = make(map[[2]int]mark)
	}
	b.marks[[2]int{cx, cy}] = mark{r, c}
}

func (b *Braille) cell(x, y int) (rune, colorful.Color, bool) {
	if m, ok := b.marks[[2]int{x, y}]; ok {
		return m.r, m.c, true
	}
	mask := b.mask[y][x]
	if mask == 0 {
		return ' ', colorful.Color{}, false
	}
	return rune(0x2800 + int(mask)), b.color[y][x], true
}

// Plain returns the raster without colour.
func (b *Braille) Plain() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x], _, _ = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Lines returns the raster with each run of same-coloured cells styled by
// lipgloss.
func (b *Braille) Lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb, run strings.Builder
		var runColor colorful.Color
		styled := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if styled {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor.Hex())).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			r, c, on := b.cell(x, y)
			if on != styled || (on && c != runColor) {
				flush()
				styled, runColor = on, c
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

// String joins Lines with newlines.
func (b *Braille) String() string {
	return strings.Join(b.Lines(), "\n")
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
