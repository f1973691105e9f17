// Package diag keeps a small in-memory ring of render and refresh
// events. The simulator's debug overlay reads it live and dumps the
// counts to the log on quit, which is the only forensic trail a
// headless device has.
package diag

import (
	"fmt"
	"sync"
	"time"
)

// DefaultRingSize is the default ring capacity.
const DefaultRingSize = 256

// Kind classifies an event.
type Kind string

const (
	KindRender  Kind = "render"  // content pipeline ran
	KindSkip    Kind = "skip"    // tick suppressed by bucket gating
	KindRefresh Kind = "refresh" // hardware refresh pushed
	KindBusy    Kind = "busy"    // panel reported busy
	KindTimeSet Kind = "timeset" // clock committed via the button workflow
)

// Event is one recorded occurrence.
type Event struct {
	Time   time.Time
	Kind   Kind
	Detail string
}

// String formats the event for the debug overlay.
func (e Event) String() string {
	return fmt.Sprintf("%s %-8s %s", e.Time.Format("15:04:05"), e.Kind, e.Detail)
}

// Ring is a fixed-size circular buffer of Events. Goroutine-safe so the
// overlay can snapshot while the loop pushes.
type Ring struct {
	mu    sync.Mutex
	buf   []Event
	size  int
	head  int // next write position
	count int // number of valid entries (0..size)
}

// NewRing creates a ring with the given capacity.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Ring{buf: make([]Event, size), size: size}
}

// Push adds an event, overwriting the oldest if full.
func (r *Ring) Push(e Event) {
	r.mu.Lock()
	r.buf[r.head] = e
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
	r.mu.Unlock()
}

// Record is shorthand for pushing a timestamped event.
func (r *Ring) Record(kind Kind, format string, args ...any) {
	r.Push(Event{Time: time.Now(), Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

// Last returns the n most recent events in chronological order. If n
// exceeds the count, all events are returned.
func (r *Ring) Last(n int) []Event {
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return nil
	}
	if n > r.count {
		n = r.count
	}

	result := make([]Event, n)
	start := (r.head - n + r.size) % r.size
	if start+n <= r.size {
		copy(result, r.buf[start:start+n])
	} else {
		first := r.size - start
		copy(result, r.buf[start:])
		copy(result[first:], r.buf[:n-first])
	}
	return result
}

// Len returns the number of buffered events.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Stats returns counts by Kind over all buffered events.
func (r *Ring) Stats() map[Kind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[Kind]int)
	start := 0
	if r.count >= r.size {
		start = r.head
	}
	for i := 0; i < r.count; i++ {
		counts[r.buf[(start+i)%r.size].Kind]++
	}
	return counts
}
