// End-to-end coverage: a real dataset file and a real quote database
// driven through the full session, simulated panel included. The unit
// tests pin each stage; these pin the seams between them.
package e2e

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akerr/inkclock/internal/app"
	"github.com/akerr/inkclock/internal/dataset"
	"github.com/akerr/inkclock/internal/device"
	"github.com/akerr/inkclock/internal/store"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.Local)
}

func TestMorningWalkFromTextFile(t *testing.T) {
	path, err := seedDatasetFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	f := newFixture(app.LoadDataset(path), at(9, 0))
	f.session.Start()
	f.settle()

	if got := f.glass(); !strings.Contains(got, "Time: 09:00") {
		t.Fatalf("first frame missing time line:\n%s", got)
	}
	if got := f.glass(); !strings.Contains(got, "Morning Book - A. Author") {
		t.Errorf("first frame missing attribution:\n%s", got)
	}
	painted := f.display.Refreshes()

	// Ticks inside the same bucket must not touch the glass.
	for i := 0; i < 4; i++ {
		f.clock.advance(time.Minute)
		f.settle()
		f.session.Step()
	}
	if f.display.Refreshes() != painted {
		t.Errorf("refreshes = %d inside one bucket, want %d", f.display.Refreshes(), painted)
	}
	if got := f.glass(); !strings.Contains(got, "Time: 09:00") {
		t.Errorf("glass changed inside bucket:\n%s", got)
	}

	// Crossing into 09:05 swaps the quote.
	f.clock.advance(time.Minute)
	f.settle()
	f.session.Step()
	got := f.glass()
	if !strings.Contains(got, "Time: 09:05") {
		t.Fatalf("bucket edge did not repaint:\n%s", got)
	}
	if !strings.Contains(got, "Five") {
		t.Errorf("bucket edge shows stale quote:\n%s", got)
	}

	// 09:47 has no entry; the 09:45 bucket is empty too, but 09:30 is
	// not its bucket, so the last-resort slot answers.
	f.clock.t = at(9, 47)
	f.settle()
	f.session.Step()
	if got := f.glass(); !strings.Contains(got, "Time: 09:47") {
		t.Errorf("minute rollover missed:\n%s", got)
	}
}

func TestDatabaseRoundTripMatchesTextFile(t *testing.T) {
	dir := t.TempDir()
	path, err := seedDatasetFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(dir, "quotes.db")

	src := dataset.LoadFile(path)
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	n, err := st.Import(src)
	st.Close()
	if err != nil {
		t.Fatal(err)
	}
	if n != src.Len() {
		t.Fatalf("imported %d records, want %d", n, src.Len())
	}

	fromDB := app.LoadDataset(dbPath)
	if fromDB.Len() != src.Len() {
		t.Fatalf("db index has %d records, want %d", fromDB.Len(), src.Len())
	}
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 5, 30, 47} {
			want := src.Pick(hour, minute, 5)
			got := fromDB.Pick(hour, minute, 5)
			if got != want {
				t.Fatalf("Pick(%d,%d) = %+v from db, want %+v", hour, minute, got, want)
			}
		}
	}
}

func TestSetTimeThroughTheGlass(t *testing.T) {
	path, err := seedDatasetFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	f := newFixture(app.LoadDataset(path), at(9, 0))
	f.session.Start()
	f.settle()

	press := func(k device.Key) {
		f.settle()
		f.keypad.Push(k)
		f.session.Step()
	}

	press(device.KeyA)
	if got := f.glass(); !strings.Contains(got, "Set H") {
		t.Fatalf("edit mode prompt missing:\n%s", got)
	}

	// +3 hours, then the preview must show 12:00 and the noon quote.
	press(device.KeyB)
	press(device.KeyB)
	press(device.KeyB)
	got := f.glass()
	if !strings.Contains(got, "Time: 12:00") {
		t.Fatalf("preview not live:\n%s", got)
	}
	if !strings.Contains(got, "noon") {
		t.Errorf("preview shows wrong quote:\n%s", got)
	}

	press(device.KeyA) // minute field
	press(device.KeyB) // 12:01
	press(device.KeyD) // save
	if f.session.Editing() {
		t.Fatal("session still editing after save")
	}
	now := f.clock.Now()
	if now.Hour() != 12 || now.Minute() != 1 {
		t.Fatalf("clock = %02d:%02d, want 12:01", now.Hour(), now.Minute())
	}
	if got := f.glass(); !strings.Contains(got, "Time: 12:01") {
		t.Errorf("saved time not on glass:\n%s", got)
	}
}

func TestDefaultTimeGuardEndToEnd(t *testing.T) {
	path, err := seedDatasetFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	f := newFixture(app.LoadDataset(path), time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local))
	f.session.Start()
	f.settle()

	now := f.clock.Now()
	if now.Year() != 2025 || now.Hour() != 12 || now.Minute() != 0 {
		t.Fatalf("guard left clock at %v", now)
	}
	if got := f.glass(); !strings.Contains(got, "Time: 12:00") {
		t.Errorf("glass does not show defaulted time:\n%s", got)
	}
}
