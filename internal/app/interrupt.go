package app

import (
	"errors"
	"sync"
)

// ErrInterruptClosed is returned by Poll once the notifying side has gone
// away without requesting a stop.
var ErrInterruptClosed = errors.New("interrupt channel closed")

// Interrupt hands a stop request from listener goroutines to the run loop.
// Any number of Notify calls coalesce into a single pending request.
type Interrupt struct {
	mu     sync.Mutex
	ch     chan struct{}
	closed bool
}

// NewInterrupt returns an Interrupt with nothing pending.
func NewInterrupt() *Interrupt {
	return &Interrupt{ch: make(chan struct{}, 1)}
}

// Notify records a stop request without blocking. It is a no-op after Close.
func (i *Interrupt) Notify() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	select {
	case i.ch <- struct{}{}:
	default:
	}
}

// Close marks the notifying side as gone. A request made before Close is
// still delivered by Poll.
func (i *Interrupt) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.closed {
		i.closed = true
		close(i.ch)
	}
}

// Poll reports whether a stop was requested. It never blocks.
func (i *Interrupt) Poll() (bool, error) {
	select {
	case _, ok := <-i.ch:
		if !ok {
			return false, ErrInterruptClosed
		}
		return true, nil
	default:
		return false, nil
	}
}
