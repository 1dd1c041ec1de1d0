package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// ErrGridTooLarge is returned when rows*columns does not fit the bit set.
var ErrGridTooLarge = errors.New("grid dimensions overflow")

// Grid stores a bounded 2D matrix of live/dead cells packed into a bit set
// in row-major order. The bit at y*columns+x is set iff cell (x, y) is alive.
type Grid struct {
	rows, columns int
	cells         *bitset.BitSet
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 0 || columns < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, columns, rows)
	}
	if columns != 0 && rows > math.MaxInt/columns {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, columns, rows)
	}
	return &Grid{rows: rows, columns: columns, cells: bitset.New(uint(rows * columns))}, nil
}

// NewGridOfSize allocates a grid matching a terminal size.
func NewGridOfSize(s Size) (*Grid, error) { return NewGrid(s.H, s.W) }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Index returns the linear bit index for (x, y). ok is false for any
// coordinate outside the grid.
func (g *Grid) Index(x, y int) (idx int, ok bool) {
	if x < 0 || y < 0 || x >= g.columns || y >= g.rows {
		return 0, false
	}
	return y*g.columns + x, true
}

// Position is the inverse of Index.
func (g *Grid) Position(idx int) (x, y int, ok bool) {
	if idx < 0 || idx >= g.rows*g.columns {
		return 0, 0, false
	}
	return idx % g.columns, idx / g.columns, true
}

// Alive reports whether (x, y) is alive. Cells off the board are dead.
func (g *Grid) Alive(x, y int) bool {
	idx, ok := g.Index(x, y)
	return ok && g.cells.Test(uint(idx))
}

// Set marks (x, y) alive and reports whether the bit changed. Out of range
// coordinates are ignored.
func (g *Grid) Set(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok || g.cells.Test(uint(idx)) {
		return false
	}
	g.cells.Set(uint(idx))
	return true
}

// Unset marks (x, y) dead and reports whether the bit changed.
func (g *Grid) Unset(x, y int) bool {
	idx, ok := g.Index(x, y)
	if !ok || !g.cells.Test(uint(idx)) {
		return false
	}
	g.cells.Clear(uint(idx))
	return true
}

// Matches reports whether the grid has exactly the given dimensions.
func (g *Grid) Matches(rows, columns int) bool {
	return g.rows == rows && g.columns == columns
}

// MatchesSize is Matches for a terminal size.
func (g *Grid) MatchesSize(s Size) bool { return g.Matches(s.H, s.W) }

// Count returns the number of live cells.
func (g *Grid) Count() int { return int(g.cells.Count()) }

// Each calls fn for every live cell in index order.
func (g *Grid) Each(fn func(x, y int)) {
	for i, ok := g.cells.NextSet(0); ok; i, ok = g.cells.NextSet(i + 1) {
		x, y, in := g.Position(int(i))
		if !in {
			return
		}
		fn(x, y)
	}
}

// Clear kills every cell.
func (g *Grid) Clear() { g.cells.ClearAll() }
