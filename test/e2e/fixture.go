package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akerr/inkclock/internal/app"
	"github.com/akerr/inkclock/internal/config"
	"github.com/akerr/inkclock/internal/dataset"
	"github.com/akerr/inkclock/internal/ui"
)

const fixtureData = `# e2e fixture dataset
09:00|It was ^nine o'clock^ in the morning.|Morning Book|A. Author|sfw
09:05|Five past ^nine^ already.|Morning Book|A. Author|sfw
09:30|^Half past nine^ and all was well.|Night Watch|B. Author|sfw
12:00|The bells struck ^noon^.|Noon Book|C. Author|sfw
12:00|^Noon^ again, said the second voice.|Noon Book II|D. Author|sfw
`

func seedDatasetFile(dir string) (string, error) {
	path := filepath.Join(dir, "quotes.txt")
	return path, os.WriteFile(path, []byte(fixtureData), 0644)
}

// manualClock is a fully manual RTC so a test can walk through a day
// without waiting for one.
type manualClock struct {
	t time.Time
}

func (c *manualClock) Now() time.Time { return c.t }

func (c *manualClock) Set(t time.Time) error {
	c.t = t
	return nil
}

func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	cfg     *config.Config
	clock   *manualClock
	display *ui.Display
	keypad  *ui.Keypad
	session *app.Session
}

// newFixture wires the whole stack against the simulated panel, the
// same way cmd/inkclock does, minus the terminal frontend. The refresh
// gap is 1ms so tests only have to pace themselves at bucket edges.
func newFixture(ix *dataset.Index, start time.Time) *fixture {
	cfg := config.Default()
	cfg.Margin = 2
	cfg.LinePad = 1
	cfg.MinRefreshGapMs = 1
	cfg.BusyRetryMs = 1

	clock := &manualClock{t: start}
	display := ui.NewDisplay(ui.DefaultWidth, ui.DefaultHeight, 0)
	keypad := ui.NewKeypad()
	return &fixture{
		cfg:     cfg,
		clock:   clock,
		display: display,
		keypad:  keypad,
		session: app.New(cfg, ix, clock, display, keypad),
	}
}

// settle waits out the refresh gap so the next render reaches the glass.
func (f *fixture) settle() { time.Sleep(3 * time.Millisecond) }

// glass flattens the visible frame into one string for containment
// checks.
func (f *fixture) glass() string {
	var b strings.Builder
	for _, r := range f.display.Runs() {
		b.WriteString(r.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
