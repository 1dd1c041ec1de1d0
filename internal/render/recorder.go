package render

import (
	"fmt"
	"sort"
	"strings"

	"term-life/internal/core"
)

// Recorder is an in-memory Display. It keeps the glyphs of every flushed
// frame and a log of cursor calls.
type Recorder struct {
	// Sizes is consumed one entry per Size call; the last entry repeats.
	Sizes []core.Size
	// OnFlush, if set, runs after each frame is recorded.
	OnFlush func(frame int)

	Frames  []map[[2]int]rune
	Cursor  []string
	pending map[[2]int]rune
	cleared bool
}

// NewRecorder returns a Recorder reporting the given sizes in turn.
func NewRecorder(sizes ...core.Size) *Recorder {
	return &Recorder{Sizes: sizes, pending: map[[2]int]rune{}}
}

func (r *Recorder) Size() core.Size {
	if len(r.Sizes) == 0 {
		return core.Size{}
	}
	s := r.Sizes[0]
	if len(r.Sizes) > 1 {
		r.Sizes = r.Sizes[1:]
	}
	return s
}

func (r *Recorder) Clear() {
	r.pending = map[[2]int]rune{}
	r.cleared = true
}

func (r *Recorder) Put(x, y int, glyph rune) {
	if r.pending == nil {
		r.pending = map[[2]int]rune{}
	}
	r.pending[[2]int{x, y}] = glyph
}

// Flush records the pending frame. A frame drawn without a preceding Clear
// panics, since its stale glyphs would stay visible.
func (r *Recorder) Flush() {
	if !r.cleared {
		panic("render: frame flushed without clear")
	}
	r.Frames = append(r.Frames, r.pending)
	r.pending = map[[2]int]rune{}
	r.cleared = false
	if r.OnFlush != nil {
		r.OnFlush(len(r.Frames))
	}
}

func (r *Recorder) HideCursor() { r.Cursor = append(r.Cursor, "hide") }

func (r *Recorder) ShowCursor() { r.Cursor = append(r.Cursor, "show") }

// String renders the last frame's live positions, sorted, for diagnostics.
func (r *Recorder) String() string {
	if len(r.Frames) == 0 {
		return "<no frames>"
	}
	var cells []string
	for pos := range r.Frames[len(r.Frames)-1] {
		cells = append(cells, fmt.Sprintf("%d,%d", pos[0], pos[1]))
	}
	sort.Strings(cells)
	return strings.Join(cells, " ")
}
