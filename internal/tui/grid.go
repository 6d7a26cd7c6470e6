package tui

import (
	"math"

	"github.com/jask/autolayout/internal/layout"
)

// Grid maps layout pixels onto terminal cells.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// Viewport returns the pixel size of cols x rows cells.
func (g Grid) Viewport(cols, rows int) layout.Size {
	return layout.Size{Width: float64(cols) * g.CellWidth, Height: float64(rows) * g.CellHeight}
}

// Cells returns the cell rectangle covering r. Edges are rounded
// independently so adjacent boxes stay adjacent.
func (g Grid) Cells(r layout.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X / g.CellWidth))
	y = int(math.Round(r.Y / g.CellHeight))
	w = int(math.Round(r.Right()/g.CellWidth)) - x
	h = int(math.Round(r.Bottom()/g.CellHeight)) - y
	return x, y, max(w, 0), max(h, 0)
}

// Point returns the pixel at the centre of cell (col, row).
func (g Grid) Point(col, row int) layout.Point {
	return layout.Point{X: (float64(col) + 0.5) * g.CellWidth, Y: (float64(row) + 0.5) * g.CellHeight}
}
