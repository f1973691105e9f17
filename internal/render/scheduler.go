// Package render decides when the display pipeline actually runs. The
// quote only changes once per time bucket, so most ticks are no-ops, and
// the panel hardware tolerates at most a couple of refreshes per second.
package render

import (
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/akerr/inkclock/internal/device"
	"github.com/akerr/inkclock/internal/logging"
)

// DefaultMinRefreshGap is the minimum spacing between hardware
// refreshes.
const DefaultMinRefreshGap = 500 * time.Millisecond

// DefaultBusyRetryDelay is how long to wait before the single retry
// after the panel reports busy.
const DefaultBusyRetryDelay = 500 * time.Millisecond

// Bucket quantizes a minute down to the bucket width. Bucket(47, 5) is
// 45: the content shown at :45 stays up until :50.
func Bucket(minute, bucketMinutes int) int {
	if bucketMinutes <= 0 {
		return minute
	}
	return minute / bucketMinutes * bucketMinutes
}

// Scheduler gates content re-renders by bucket and hardware refreshes by
// a minimum interval. It owns the "last rendered bucket" memory that used
// to be ambient state, so tests can drive it deterministically. Not
// goroutine-safe; it belongs to the single control loop.
type Scheduler struct {
	lastBucket int
	limiter    *rate.Limiter
	retryDelay time.Duration

	// sleep is swapped out in tests so the busy retry does not stall them.
	sleep func(time.Duration)
}

// NewScheduler builds a scheduler with the given refresh gap and busy
// retry delay; zero values select the defaults.
func NewScheduler(minGap, retryDelay time.Duration) *Scheduler {
	if minGap <= 0 {
		minGap = DefaultMinRefreshGap
	}
	if retryDelay <= 0 {
		retryDelay = DefaultBusyRetryDelay
	}
	return &Scheduler{
		lastBucket: -1,
		limiter:    rate.NewLimiter(rate.Every(minGap), 1),
		retryDelay: retryDelay,
		sleep:      time.Sleep,
	}
}

// ShouldRender reports whether the content pipeline needs to run for the
// given bucket. Forced renders and live previews always run; otherwise a
// bucket that matches the last committed one is a no-op, which is what
// makes repeated ticks within the same bucket idempotent.
func (s *Scheduler) ShouldRender(bucket int, forced, preview bool) bool {
	if forced || preview {
		return true
	}
	return bucket != s.lastBucket
}

// Commit records the bucket that was just rendered. Previews never
// commit: leaving the memory untouched guarantees the first real render
// after editing is not spuriously suppressed.
func (s *Scheduler) Commit(bucket int, preview bool) {
	if !preview {
		s.lastBucket = bucket
	}
}

// Reset clears the bucket memory so the next render always runs.
func (s *Scheduler) Reset() {
	s.lastBucket = -1
}

// RefreshResult says what became of a refresh request.
type RefreshResult int

const (
	RefreshDone     RefreshResult = iota // frame is on the glass
	RefreshSkipped                       // inside the minimum gap
	RefreshRetried                       // busy once, retry succeeded
	RefreshDeferred                      // busy twice, gave up until next cycle
)

// Refresh pushes the committed frame to the glass, rate limited to the
// configured minimum gap. A busy panel gets exactly one retry after the
// retry delay, then the attempt is abandoned; the next bucket tick will
// catch the frame up. Refresh never returns an error to the loop because
// the loop has nowhere to put one; the result is informational only.
func (s *Scheduler) Refresh(d device.Display) RefreshResult {
	if !s.limiter.Allow() {
		return RefreshSkipped
	}
	err := d.Refresh()
	if err == nil {
		return RefreshDone
	}
	if !errors.Is(err, device.ErrBusy) {
		logging.Warn("refresh failed", "err", err)
		return RefreshDeferred
	}
	s.sleep(s.retryDelay)
	if err := d.Refresh(); err != nil {
		logging.Debug("refresh still busy, deferring to next cycle", "err", err)
		return RefreshDeferred
	}
	return RefreshRetried
}
