// Package settime is the four-button clock-setting workflow: a small
// explicit state machine (idle, hour, minute, save) driven by key
// events, kept free of any display or clock dependency so it can be
// unit tested as a pure transition function.
package settime

import "github.com/akerr/inkclock/internal/device"

// Mode is the editor's current state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeHour
	ModeMinute
	ModeSave
)

// Editor holds the field being edited and the pending hour/minute
// values. The zero Editor is idle.
type Editor struct {
	mode   Mode
	hour   int
	minute int
}

// Mode returns the current state.
func (e *Editor) Mode() Mode { return e.mode }

// Active reports whether an edit is in progress.
func (e *Editor) Active() bool { return e.mode != ModeIdle }

// Previewing reports whether the display should show the edited time
// instead of the real one. Only the hour and minute states preview; the
// save prompt keeps the last previewed frame.
func (e *Editor) Previewing() bool { return e.mode == ModeHour || e.mode == ModeMinute }

// Time returns the pending hour and minute.
func (e *Editor) Time() (hour, minute int) { return e.hour, e.minute }

// Begin enters edit mode seeded with the current time.
func (e *Editor) Begin(hour, minute int) {
	e.mode = ModeHour
	e.hour = hour
	e.minute = minute
}

// Handle applies one key press and reports whether the pending time
// should be committed to the clock. Keys: A advances the field (cycling
// hour -> minute -> save -> hour), B increments, C decrements (both
// wrapping), D commits and leaves edit mode. Calling Handle while idle
// is a no-op.
func (e *Editor) Handle(k device.Key) (commit bool) {
	if e.mode == ModeIdle {
		return false
	}
	switch k {
	case device.KeyA:
		switch e.mode {
		case ModeHour:
			e.mode = ModeMinute
		case ModeMinute:
			e.mode = ModeSave
		case ModeSave:
			e.mode = ModeHour
		}
	case device.KeyB:
		switch e.mode {
		case ModeHour:
			e.hour = (e.hour + 1) % 24
		case ModeMinute:
			e.minute = (e.minute + 1) % 60
		}
	case device.KeyC:
		switch e.mode {
		case ModeHour:
			e.hour = (e.hour + 23) % 24
		case ModeMinute:
			e.minute = (e.minute + 59) % 60
		}
	case device.KeyD:
		e.mode = ModeIdle
		return true
	}
	return false
}

// Status returns the footer prompt for the current state, empty when idle.
func (e *Editor) Status() string {
	switch e.mode {
	case ModeHour:
		return "Set H  (A next  B+  C-  D save)"
	case ModeMinute:
		return "Set M  (A next  B+  C-  D save)"
	case ModeSave:
		return "Press D to Save (A cycles)"
	}
	return ""
}
