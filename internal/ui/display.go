package ui

import (
	"time"

	"github.com/akerr/inkclock/internal/device"
	"github.com/akerr/inkclock/internal/layout"
)

// Default panel size in character cells, roughly the aspect ratio of a
// 296x152 e-ink module.
const (
	DefaultWidth  = 58
	DefaultHeight = 16
)

// Display is the simulated e-ink panel: a cell grid where one layout
// unit is one character cell. Like the real glass it is double
// buffered: Commit stages a frame, Refresh latches it onto the visible
// surface, and refreshing again too soon reports busy.
//
// Not goroutine-safe; the Bubble Tea event loop is its only caller.
type Display struct {
	width, height int
	busyWindow    time.Duration

	now         func() time.Time
	lastRefresh time.Time
	refreshes   int

	staged  []layout.GlyphRun
	visible []layout.GlyphRun
}

// NewDisplay creates a simulated panel. busyWindow is how long a
// refresh keeps the panel busy; zero disables busy emulation.
func NewDisplay(width, height int, busyWindow time.Duration) *Display {
	return &Display{
		width:      width,
		height:     height,
		busyWindow: busyWindow,
		now:        time.Now,
	}
}

// Size returns the drawable area in cells.
func (d *Display) Size() (int, int) { return d.width, d.height }

// Measure reports text size in cells: one cell per byte of sanitized
// ASCII, one cell tall.
func (d *Display) Measure(text string) (int, int) { return len(text), 1 }

// Commit replaces the staged frame.
func (d *Display) Commit(runs []layout.GlyphRun) {
	d.staged = append([]layout.GlyphRun(nil), runs...)
}

// Refresh latches the staged frame onto the glass, or reports ErrBusy
// while the previous refresh is still settling.
func (d *Display) Refresh() error {
	if d.busyWindow > 0 && !d.lastRefresh.IsZero() && d.now().Sub(d.lastRefresh) < d.busyWindow {
		return device.ErrBusy
	}
	d.visible = append([]layout.GlyphRun(nil), d.staged...)
	d.lastRefresh = d.now()
	d.refreshes++
	return nil
}

// Runs returns the visible frame.
func (d *Display) Runs() []layout.GlyphRun { return d.visible }

// Refreshes returns how many frames have reached the glass.
func (d *Display) Refreshes() int { return d.refreshes }
