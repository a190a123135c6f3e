// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport projects a continuous world (y up) onto a grid of terminal
// cells (y down). Terminal cells are roughly twice as tall as they are
// wide, so one row covers CellAspect times the world units of one column.
type Viewport struct {
	CenterX, CenterY float64 // World point shown at the middle of the screen
	UnitsPerCol      float64 // World units covered by one column
	CellAspect       float64 // Row height divided by column width
	W, H             int     // Screen size in cells
}

// NewViewport creates a viewport that fits worldW world units across w columns.
func NewViewport(w, h int, worldW float64) Viewport {
	cols := Max(w, 1)
	return Viewport{
		UnitsPerCol: worldW / float64(cols),
		CellAspect:  2,
		W:           w,
		H:           h,
	}
}

// Project maps a world point to a cell. ok is false when the cell is off screen.
func (v Viewport) Project(x, y float64) (col, row int, ok bool) {
	if v.UnitsPerCol <= 0 {
		return 0, 0, false
	}
	fx := (x-v.CenterX)/v.UnitsPerCol + float64(v.W)/2
	fy := -(y-v.CenterY)/(v.UnitsPerCol*v.CellAspect) + float64(v.H)/2
	col = int(math.Floor(fx))
	row = int(math.Floor(fy))
	ok = col >= 0 && col < v.W && row >= 0 && row < v.H
	return col, row, ok
}

// CellsFor returns how many columns a world length spans, at least 1.
func (v Viewport) CellsFor(length float64) int {
	if v.UnitsPerCol <= 0 {
		return 1
	}
	return Max(int(math.Round(length/v.UnitsPerCol)), 1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
