// Package app owns the clock's control loop. A Session holds all the
// loop's mutable state (last bucket, last refresh, edit mode), runs the
// render pipeline, and polls the keypad and clock cooperatively on a
// single goroutine.
package app

import (
	"context"
	"time"

	"github.com/akerr/inkclock/internal/config"
	"github.com/akerr/inkclock/internal/dataset"
	"github.com/akerr/inkclock/internal/device"
	"github.com/akerr/inkclock/internal/diag"
	"github.com/akerr/inkclock/internal/layout"
	"github.com/akerr/inkclock/internal/logging"
	"github.com/akerr/inkclock/internal/markup"
	"github.com/akerr/inkclock/internal/render"
	"github.com/akerr/inkclock/internal/settime"
	"github.com/akerr/inkclock/internal/store"
)

// plausibleYear is the cutoff below which the clock is considered
// uninitialized and gets a default time.
const plausibleYear = 2023

// Session drives one display. Not goroutine-safe: every method must be
// called from the single control loop goroutine.
type Session struct {
	cfg     *config.Config
	index   *dataset.Index
	clock   device.Clock
	display device.Display
	keypad  device.Keypad

	sched  *render.Scheduler
	editor settime.Editor
	events *diag.Ring

	lastMinute int
}

// New assembles a session. The index must be non-empty; use LoadDataset
// to get one with the fallback substitution applied.
func New(cfg *config.Config, index *dataset.Index, clock device.Clock, display device.Display, keypad device.Keypad) *Session {
	return &Session{
		cfg:        cfg,
		index:      index,
		clock:      clock,
		display:    display,
		keypad:     keypad,
		sched:      render.NewScheduler(cfg.MinRefreshGap(), cfg.BusyRetryDelay()),
		events:     diag.NewRing(diag.DefaultRingSize),
		lastMinute: -1,
	}
}

// LoadDataset loads the configured dataset, from the quote database when
// path names one, else from the pipe-delimited text file. The result is
// never empty: any failure yields the built-in fallback index.
func LoadDataset(path string) *dataset.Index {
	if store.IsDatabase(path) {
		st, err := store.Open(path)
		if err != nil {
			logging.Error("open quote database failed, using fallback", "path", path, "err", err)
			return dataset.Fallback()
		}
		defer st.Close()
		ix, err := st.LoadIndex()
		if err != nil || ix.Len() == 0 {
			logging.Error("quote database empty or unreadable, using fallback", "path", path, "err", err)
			return dataset.Fallback()
		}
		return ix
	}
	ix := dataset.LoadFile(path)
	if ix.Len() == 0 {
		logging.Warn("dataset missing or empty, using fallback", "path", path)
		return dataset.Fallback()
	}
	return ix
}

// Events exposes the diagnostic ring for the debug overlay.
func (s *Session) Events() *diag.Ring { return s.events }

// Editing reports whether the set-time workflow is active.
func (s *Session) Editing() bool { return s.editor.Active() }

// Start applies the default-time guard and paints the first frame.
func (s *Session) Start() {
	if s.clock.Now().Year() < plausibleYear {
		def := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)
		if err := s.clock.Set(def); err != nil {
			logging.Error("failed to set default time", "err", err)
		} else {
			logging.Warn("clock implausible, set default time", "time", def)
		}
	}
	s.Render(true)
}

// Run is the headless control loop: poll, maybe render, sleep, repeat,
// until the context is cancelled. The simulator drives Step from its own
// event loop instead.
func (s *Session) Run(ctx context.Context) {
	s.Start()
	ticker := time.NewTicker(s.cfg.PollInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step is one loop iteration: at most one key event, then a re-render
// when the minute has rolled over and no edit is in progress.
func (s *Session) Step() {
	if ev, ok := s.keypad.Poll(); ok {
		s.HandleKey(ev)
	}
	now := s.clock.Now()
	if !s.editor.Active() && now.Minute() != s.lastMinute {
		s.Render(false)
		s.lastMinute = now.Minute()
	}
}

// HandleKey feeds one keypad event through the set-time workflow.
// Outside edit mode only A does anything: it begins an edit seeded with
// the current time. Inside, the editor interprets the key and the
// session re-renders the live preview or commits the clock.
func (s *Session) HandleKey(ev device.Event) {
	if !ev.Pressed {
		return
	}
	if !s.editor.Active() {
		if ev.Key == device.KeyA {
			now := s.clock.Now()
			s.editor.Begin(now.Hour(), now.Minute())
			s.Render(false)
		}
		return
	}
	if s.editor.Handle(ev.Key) {
		s.commitTime()
		return
	}
	s.Render(false)
}

// commitTime writes the edited time to the clock, keeping today's date,
// and forces a real render of the new time.
func (s *Session) commitTime() {
	now := s.clock.Now()
	hour, minute := s.editor.Time()
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if err := s.clock.Set(t); err != nil {
		logging.Error("failed to set clock", "err", err)
	}
	s.events.Record(diag.KindTimeSet, "%02d:%02d", hour, minute)
	s.Render(true)
}

// Render runs the content pipeline when the scheduler allows it: pick
// the quote for the (possibly previewed) time, lay out the quote field
// and footer, commit the frame and request a hardware refresh. Preview
// frames never update the bucket memory.
func (s *Session) Render(force bool) {
	preview := s.editor.Active()
	now := s.clock.Now()
	hour, minute := now.Hour(), now.Minute()
	if s.editor.Previewing() {
		hour, minute = s.editor.Time()
	}

	bucket := render.Bucket(minute, s.cfg.UpdateMinutes)
	if !s.sched.ShouldRender(bucket, force, preview) {
		s.events.Record(diag.KindSkip, "bucket %02d unchanged", bucket)
		return
	}

	rec := s.index.Pick(hour, minute, s.cfg.UpdateMinutes)
	s.display.Commit(s.compose(rec, hour, minute))

	switch s.sched.Refresh(s.display) {
	case render.RefreshDone, render.RefreshRetried:
		s.events.Record(diag.KindRefresh, "bucket %02d", bucket)
	case render.RefreshDeferred:
		s.events.Record(diag.KindBusy, "deferred to next cycle")
	}

	s.sched.Commit(bucket, preview)
	s.events.Record(diag.KindRender, "%02d:%02d %s", hour, minute, rec.Work)
}

// compose lays out the full frame: quote field on top, then the time
// line and the meta (or edit prompt) line anchored to the bottom edge.
// The footer gaps scale with the measured line height (a third of a
// line between time and meta, two thirds between quote and time) so
// the same geometry holds in pixel and cell units.
func (s *Session) compose(rec dataset.Record, hour, minute int) []layout.GlyphRun {
	width, height := s.display.Size()
	margin := s.cfg.Margin

	meta := markup.Sanitize(rec.Work + " - " + rec.Author)
	if s.editor.Active() {
		meta = s.editor.Status()
	}
	_, metaH := s.display.Measure(meta)
	metaTop := height - margin - metaH

	timeText := markup.Sanitize("Time: " + FormatClock(hour, minute, s.cfg.TwentyFourHour))
	_, timeH := s.display.Measure(timeText)
	footerPad := timeH / 3
	quotePad := 2 * timeH / 3
	timeBottom := metaTop - footerPad
	timeTop := timeBottom - timeH

	engine := layout.Engine{
		Measure:   s.display,
		LineWidth: width,
		Margin:    margin,
		LinePad:   s.cfg.LinePad,
	}
	runs := engine.Layout(rec.Text, margin, timeTop-quotePad)

	runs = append(runs,
		layout.GlyphRun{Text: timeText, X: margin, Y: timeTop},
		layout.GlyphRun{Text: meta, X: margin, Y: metaTop},
	)
	return runs
}
