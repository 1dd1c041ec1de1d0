// Package life implements Conway's Game of Life (B3/S23) on a bounded grid.
// Cells beyond the edge are permanently dead; the board does not wrap.
package life

import "term-life/internal/core"

// CellStatus is a cell's own state and its live Moore-neighbour count.
type CellStatus struct {
	Alive     bool
	Neighbors int
}

// Check scans the 3x3 neighbourhood of (x, y) in g. Neighbours that fall off
// the board count as dead.
func Check(g *core.Grid, x, y int) CellStatus {
	var s CellStatus
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || !g.Alive(nx, ny) {
				continue
			}
			if dx == 0 && dy == 0 {
				s.Alive = true
				continue
			}
			s.Neighbors++
		}
	}
	return s
}

// Next reports whether the cell is alive in the following generation.
func (s CellStatus) Next() bool {
	if s.Alive {
		return s.Neighbors == 2 || s.Neighbors == 3
	}
	return s.Neighbors == 3
}

// Step writes the generation after src into dst. Every cell of dst is
// overwritten; dst may be sized differently from src, in which case cells
// outside src read as dead.
func Step(dst, src *core.Grid) {
	for y := 0; y < dst.Rows(); y++ {
		for x := 0; x < dst.Columns(); x++ {
			if Check(src, x, y).Next() {
				dst.Set(x, y)
			} else {
				dst.Unset(x, y)
			}
		}
	}
}
