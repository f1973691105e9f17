// Package device defines the hardware collaborators the clock core
// talks to: a settable wall clock, a slow monochrome display, and a
// four-button keypad. The core only ever sees these interfaces, so the
// same loop drives a real panel and the terminal simulator alike.
package device

import (
	"errors"
	"time"

	"github.com/akerr/inkclock/internal/layout"
)

// ErrBusy is returned by Display.Refresh while the panel is still
// settling from a previous refresh. It is transient: the caller may
// retry after a short delay or simply wait for the next cycle.
var ErrBusy = errors.New("device: display busy")

// Key identifies one of the four physical buttons.
type Key int

const (
	KeyA Key = iota // advance / enter set mode
	KeyB            // increment
	KeyC            // decrement
	KeyD            // save
)

// String returns the button's label.
func (k Key) String() string {
	switch k {
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeyC:
		return "C"
	case KeyD:
		return "D"
	}
	return "?"
}

// Event is a single key transition.
type Event struct {
	Key     Key
	Pressed bool
}

// Keypad polls button events without blocking.
type Keypad interface {
	// Poll reports at most one pending event. ok is false when no
	// event is waiting.
	Poll() (ev Event, ok bool)
}

// Clock reads and sets wall time.
type Clock interface {
	Now() time.Time
	Set(t time.Time) error
}

// Display is a fixed-size monochrome panel. Commit replaces the staged
// frame; Refresh pushes the staged frame to the glass and may fail with
// ErrBusy while the panel is mid-refresh.
type Display interface {
	// Size returns the drawable area in layout units.
	Size() (width, height int)
	// Measure reports the rendered size of text in layout units.
	// Uniform for a fixed-width font; the layout engine relies on that.
	Measure(text string) (width, height int)
	Commit(runs []layout.GlyphRun)
	Refresh() error
}
