package ui

import "github.com/akerr/inkclock/internal/device"

// Keypad adapts terminal key presses to the four-button device
// interface. Bubble Tea pushes events in; the session polls them out
// one per loop iteration, exactly like the hardware event queue.
type Keypad struct {
	queue []device.Event
}

// NewKeypad returns an empty keypad queue.
func NewKeypad() *Keypad { return &Keypad{} }

// Push enqueues a button press.
func (k *Keypad) Push(key device.Key) {
	k.queue = append(k.queue, device.Event{Key: key, Pressed: true})
}

// Poll pops at most one pending event.
func (k *Keypad) Poll() (device.Event, bool) {
	if len(k.queue) == 0 {
		return device.Event{}, false
	}
	ev := k.queue[0]
	k.queue = k.queue[1:]
	return ev, true
}
