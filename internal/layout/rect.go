package layout

import (
	"fmt"
	"math"
)

// Point is a position or offset in pixels.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is a box in pixels. X and Y are the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rectangle.
// The left and top edges are inside; the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by the given edges. Negative edges expand it.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  math.Max(0, r.Width-e.Horizontal()),
		Height: math.Max(0, r.Height-e.Vertical()),
	}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ApproxEqual reports whether every component of r and o differs by at most tol.
func (r Rect) ApproxEqual(o Rect, tol float64) bool {
	return math.Abs(r.X-o.X) <= tol &&
		math.Abs(r.Y-o.Y) <= tol &&
		math.Abs(r.Width-o.Width) <= tol &&
		math.Abs(r.Height-o.Height) <= tol
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.Width, r.Height)
}

// Edges holds per-side spacing (padding, margin).
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeTRBL returns Edges in CSS order.
func EdgeTRBL(top, right, bottom, left float64) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}
