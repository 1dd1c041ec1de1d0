// Package render draws grids onto a character-cell display.
package render

import "term-life/internal/core"

// Display is the terminal surface a run loop draws on. Writes are buffered
// until Flush, so a cleared screen is never shown on its own.
type Display interface {
	Size() core.Size
	Clear()
	Put(x, y int, glyph rune)
	Flush()
	HideCursor()
	ShowCursor()
}

// Frame clears d, draws glyph at every live cell of g and flushes once.
// Dead cells are never drawn; the clear removes stale glyphs.
func Frame(d Display, g *core.Grid, glyph rune) {
	d.Clear()
	g.Each(func(x, y int) {
		d.Put(x, y, glyph)
	})
	d.Flush()
}
