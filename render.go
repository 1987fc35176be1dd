package main

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
)

type paint int

const (
	paintNormal paint = iota
	paintAccent
	paintMuted
	numPaints
)

var paintColors = [numPaints]color.RGBA{
	paintNormal: {0xff, 0xff, 0xff, 0xff},
	paintAccent: {0xff, 0x00, 0x00, 0xff},
	paintMuted:  {0x77, 0x77, 0x77, 0xff},
}

var paintStyles = [numPaints]lipgloss.Style{
	paintNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	paintAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
	paintMuted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
}

// paintOf resolves the color of particle i. Hotspot particles turn muted
// while the pointer hovers the hotspot.
func paintOf(f *Field, i int) paint {
	if f.Hovering && f.Hotspot.Owns(i) {
		return paintMuted
	}
	if f.Particles[i].Class == ClassAccent {
		return paintAccent
	}
	return paintNormal
}

// Renderer paints frames of a field into an RGBA image.
type Renderer struct {
	dc   *gg.Context
	size float64
}

func NewRenderer(width, height int, particleSize float64) *Renderer {
	if particleSize <= 0 {
		particleSize = defaultParticle
	}
	return &Renderer{dc: gg.NewContext(max(width, 1), max(height, 1)), size: particleSize}
}

func (r *Renderer) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if r.dc.Width() == width && r.dc.Height() == height {
		return
	}
	r.dc = gg.NewContext(width, height)
}

// Draw repaints the whole frame: an opaque black clear followed by one
// square per particle. The returned image is reused by the next call.
func (r *Renderer) Draw(f *Field) image.Image {
	dc := r.dc
	dc.SetRGBA(0, 0, 0, 1)
	dc.Clear()

	// one fill per color keeps the path count low on large fields
	for c := paint(0); c < numPaints; c++ {
		drawn := false
		for i := range f.Particles {
			if paintOf(f, i) != c {
				continue
			}
			p := f.Particles[i].Pos
			dc.DrawRectangle(p.X, p.Y, r.size, r.size)
			drawn = true
		}
		if drawn {
			dc.SetColor(paintColors[c])
			dc.Fill()
		}
	}
	return dc.Image()
}

func (r *Renderer) Context() *gg.Context {
	return r.dc
}

// TermRenderer maps the field onto Braille cells: every cell holds 2x4 dots
// and every dot covers dotSize pixels on each side.
type TermRenderer struct {
	dotSize float64
}

func NewTermRenderer(dotSize float64) *TermRenderer {
	if dotSize <= 0 {
		dotSize = defaultDotSize
	}
	return &TermRenderer{dotSize: dotSize}
}

// FieldSize is the pixel viewport covered by cols x rows cells.
func (t *TermRenderer) FieldSize(cols, rows int) (float64, float64) {
	return float64(cols) * 2 * t.dotSize, float64(rows) * 4 * t.dotSize
}

// CellCenter converts a cell coordinate into the pixel at its center.
func (t *TermRenderer) CellCenter(col, row int) Vec {
	return Vec{(float64(col) + 0.5) * 2 * t.dotSize, (float64(row) + 0.5) * 4 * t.dotSize}
}

var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type termCell struct {
	bits   rune
	counts [numPaints]int
}

func (c *termCell) paint() paint {
	best := paintNormal
	for p := paint(1); p < numPaints; p++ {
		if c.counts[p] > c.counts[best] {
			best = p
		}
	}
	return best
}

func (t *TermRenderer) cells(f *Field, cols, rows int) [][]termCell {
	grid := make([][]termCell, rows)
	for r := range grid {
		grid[r] = make([]termCell, cols)
	}
	for i := range f.Particles {
		p := f.Particles[i].Pos
		dotX := int(math.Floor(p.X / t.dotSize))
		dotY := int(math.Floor(p.Y / t.dotSize))
		if dotX < 0 || dotY < 0 {
			continue
		}
		col, row := dotX/2, dotY/4
		if col >= cols || row >= rows {
			continue
		}
		cell := &grid[row][col]
		cell.bits |= brailleBits[dotY%4][dotX%2]
		cell.counts[paintOf(f, i)]++
	}
	return grid
}

// Render returns one styled string per terminal row.
func (t *TermRenderer) Render(f *Field, cols, rows int) []string {
	grid := t.cells(f, cols, rows)
	lines := make([]string, rows)
	for r, row := range grid {
		var line strings.Builder
		var run strings.Builder
		runPaint := paint(-1)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runPaint < 0 {
				line.WriteString(run.String())
			} else {
				line.WriteString(paintStyles[runPaint].Render(run.String()))
			}
			run.Reset()
		}
		for _, cell := range row {
			p := paint(-1)
			ch := ' '
			if cell.bits != 0 {
				p = cell.paint()
				ch = 0x2800 + cell.bits
			}
			if p != runPaint {
				flush()
				runPaint = p
			}
			run.WriteRune(ch)
		}
		flush()
		lines[r] = line.String()
	}
	return lines
}

// RenderPlain is Render without color, for text export.
func (t *TermRenderer) RenderPlain(f *Field, cols, rows int) []string {
	grid := t.cells(f, cols, rows)
	lines := make([]string, rows)
	for r, row := range grid {
		runes := make([]rune, len(row))
		for c, cell := range row {
			runes[c] = ' '
			if cell.bits != 0 {
				runes[c] = 0x2800 + cell.bits
			}
		}
		lines[r] = strings.TrimRight(string(runes), " ")
	}
	return lines
}
