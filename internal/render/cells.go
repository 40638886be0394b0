package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Cells draws onto a terminal screen. Each cell stands for CellW×CellH
// pixels so scenes laid out for a window keep their proportions.
type Cells struct {
	screen       tcell.Screen
	CellW, CellH float64
	bg           tcell.Color
}

// NewCells wraps screen with the given cell size in pixels.
func NewCells(screen tcell.Screen, cellW, cellH float64) *Cells {
	return &Cells{screen: screen, CellW: cellW, CellH: cellH, bg: tcell.ColorBlack}
}

// Size returns the screen size in pixels, not cells.
func (c *Cells) Size() (int, int) {
	cols, rows := c.screen.Size()
	return int(float64(cols) * c.CellW), int(float64(rows) * c.CellH)
}

// ToCell converts a pixel position to a cell column and row.
func (c *Cells) ToCell(p geom.Point) (int, int) {
	return int(math.Floor(p.X / c.CellW)), int(math.Floor(p.Y / c.CellH))
}

// ToPixel converts a cell column and row to the pixel at the cell's centre.
func (c *Cells) ToPixel(col, row int) geom.Point {
	return geom.Pt((float64(col)+0.5)*c.CellW, (float64(row)+0.5)*c.CellH)
}

// Fill clears the screen to clr.
func (c *Cells) Fill(clr color.Color) {
	c.bg = tcellColor(clr)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.bg))
}

// StrokeLine plots the line cell by cell. Width is ignored.
func (c *Cells) StrokeLine(from, to geom.Point, _ float64, clr color.Color) {
	ch := lineRune(to.Sub(from))
	style := tcell.StyleDefault.Foreground(tcellColor(clr)).Background(c.bg)

	x0, y0 := c.ToCell(from)
	x1, y1 := c.ToCell(to)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		c.set(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillCircle marks the cell under center.
func (c *Cells) FillCircle(center geom.Point, radius float64, clr color.Color) {
	ch := '•'
	if radius*2 >= c.CellW {
		ch = '●'
	}
	x, y := c.ToCell(center)
	c.set(x, y, ch, tcell.StyleDefault.Foreground(tcellColor(clr)).Background(c.bg))
}

func (c *Cells) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := c.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	c.screen.SetContent(x, y, ch, nil, style)
}

// lineRune picks the box character closest to the direction of d.
// Screen Y grows downward.
func lineRune(d geom.Point) rune {
	a := math.Mod(geom.Degrees(geom.Angle(d))+180, 180)
	switch {
	case a < 22.5 || a >= 157.5:
		return '─'
	case a < 67.5:
		return '╲'
	case a < 112.5:
		return '│'
	default:
		return '╱'
	}
}

func tcellColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
