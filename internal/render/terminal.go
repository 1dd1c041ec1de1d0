package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/core"
)

// Terminal adapts a tcell.Screen to Display.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminal opens and initialises the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return NewTerminalFromScreen(screen), nil
}

// NewTerminalFromScreen wraps an already initialised screen.
func NewTerminalFromScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, style: tcell.StyleDefault}
}

// Size returns the current screen dimensions.
func (t *Terminal) Size() core.Size {
	w, h := t.screen.Size()
	return core.Size{W: w, H: h}
}

func (t *Terminal) Clear() { t.screen.Clear() }

func (t *Terminal) Put(x, y int, glyph rune) {
	t.screen.SetContent(x, y, glyph, nil, t.style)
}

// Flush pushes the buffered frame to the terminal in one update.
func (t *Terminal) Flush() { t.screen.Show() }

func (t *Terminal) HideCursor() { t.screen.HideCursor() }

func (t *Terminal) ShowCursor() {
	t.screen.ShowCursor(0, 0)
	t.screen.Show()
}

// Listen polls terminal events until the screen is finalised. Ctrl-C, Esc
// and q call stop; resizes resync the screen so the next Size is current.
func (t *Terminal) Listen(stop func()) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				stop()
			}
		}
	}
}

// Close restores the terminal. Listen returns once Close has run.
func (t *Terminal) Close() { t.screen.Fini() }
