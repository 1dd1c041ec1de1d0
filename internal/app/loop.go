package app

import (
	"fmt"
	"time"

	"term-life/internal/core"
	"term-life/internal/render"
	"term-life/internal/sims/life"
)

// FramePeriod is the minimum spacing between rendered generations.
const FramePeriod = 50 * time.Millisecond

// Poller is polled once per tick for a stop request.
type Poller interface {
	Poll() (bool, error)
}

// Loop advances and renders generations until interrupted. It owns two grid
// buffers: the displayed generation and a spare reused as the next write
// target while the display size is unchanged.
type Loop struct {
	display   render.Display
	interrupt Poller
	limiter   *core.FrameLimiter
	glyph     rune

	current  *core.Grid
	previous *core.Grid

	generations int
}

// NewLoop constructs a Loop starting from the seeded grid.
func NewLoop(display render.Display, interrupt Poller, limiter *core.FrameLimiter, initial *core.Grid, glyph rune) *Loop {
	return &Loop{
		display:   display,
		interrupt: interrupt,
		limiter:   limiter,
		glyph:     glyph,
		current:   initial,
	}
}

// Current returns the generation most recently rendered.
func (l *Loop) Current() *core.Grid { return l.current }

// Generations returns the number of generations computed so far.
func (l *Loop) Generations() int { return l.generations }

// Run hides the cursor, ticks until a stop is polled and restores the
// cursor. A failing interrupt or grid allocation ends the loop with an error.
func (l *Loop) Run() error {
	l.display.HideCursor()
	defer l.display.ShowCursor()

	for {
		stop, err := l.interrupt.Poll()
		if err != nil {
			return fmt.Errorf("poll interrupt: %w", err)
		}
		if stop {
			return nil
		}
		if err := l.Tick(); err != nil {
			return err
		}
		l.limiter.Wait()
	}
}

// Tick computes and renders one generation.
func (l *Loop) Tick() error {
	work, err := l.workBuffer()
	if err != nil {
		return err
	}
	life.Step(work, l.current)

	l.previous, l.current = l.current, work
	l.generations++

	render.Frame(l.display, l.current, l.glyph)
	return nil
}

// workBuffer reuses the spare grid while it still matches the display and
// allocates a fresh one otherwise.
func (l *Loop) workBuffer() (*core.Grid, error) {
	size := l.display.Size()
	if l.previous != nil && l.previous.MatchesSize(size) {
		work := l.previous
		l.previous = nil
		return work, nil
	}
	work, err := core.NewGridOfSize(size)
	if err != nil {
		return nil, fmt.Errorf("allocate %dx%d grid: %w", size.W, size.H, err)
	}
	return work, nil
}
