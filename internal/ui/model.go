// Package ui is the terminal simulator: a Bubble Tea model that renders
// the simulated e-ink panel and feeds terminal keys to the session as
// button presses. The session still believes it is polling hardware.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akerr/inkclock/internal/app"
	"github.com/akerr/inkclock/internal/device"
	"github.com/akerr/inkclock/internal/layout"
	"github.com/akerr/inkclock/internal/logging"
)

// debugEventCount is how many recent events the overlay shows.
const debugEventCount = 8

// tickMsg drives the session's polling loop.
type tickMsg time.Time

// Model is the root Bubble Tea model. It owns the simulated hardware
// and the session, and runs everything on the Tea goroutine, which
// preserves the single-threaded ownership the session requires.
type Model struct {
	session *app.Session
	display *Display
	keypad  *Keypad

	keys      keyMap
	help      help.Model
	poll      time.Duration
	showDebug bool
	width     int
}

// NewModel wires the simulator around an already-started session.
func NewModel(session *app.Session, display *Display, keypad *Keypad, poll time.Duration) Model {
	return Model{
		session: session,
		display: display,
		keypad:  keypad,
		keys:    defaultKeyMap(),
		help:    help.New(),
		poll:    poll,
	}
}

// Init schedules the first poll tick.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.poll, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles terminal keys and poll ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.session.Step()
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			for kind, n := range m.session.Events().Stats() {
				logging.Info("session events", "kind", kind, "count", n)
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Debug):
			m.showDebug = !m.showDebug
			return m, nil
		case key.Matches(msg, m.keys.ButtonA):
			m.keypad.Push(device.KeyA)
		case key.Matches(msg, m.keys.ButtonB):
			m.keypad.Push(device.KeyB)
		case key.Matches(msg, m.keys.ButtonC):
			m.keypad.Push(device.KeyC)
		case key.Matches(msg, m.keys.ButtonD):
			m.keypad.Push(device.KeyD)
		}
		// Feed the press through immediately instead of waiting out the
		// poll tick; one Step consumes exactly one queued event.
		m.session.Step()
		return m, nil
	}
	return m, nil
}

// View draws the panel, a status bar, and optionally the event overlay.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(Panel.Render(m.renderGlass()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(StatusBar.Render(m.help.View(m.keys)))
	if m.showDebug {
		b.WriteString("\n")
		b.WriteString(m.renderEvents())
	}
	return b.String()
}

// renderGlass rasterizes the visible glyph runs into the cell grid.
func (m Model) renderGlass() string {
	width, height := m.display.Size()

	cells := make([][]rune, height)
	bold := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		bold[y] = make([]bool, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}

	var prev layout.GlyphRun
	for _, r := range m.display.Runs() {
		// The layout engine bolds by double-striking one unit right.
		// A cell grid cannot strike at sub-cell offsets, so collapse
		// the second strike into a bold attribute on the first.
		if r.Highlighted && r.Text == prev.Text && r.Y == prev.Y && r.X == prev.X+1 {
			prev = r
			continue
		}
		m.drawRun(cells, bold, r)
		prev = r
	}

	rows := make([]string, height)
	for y := range cells {
		rows[y] = styleRow(cells[y], bold[y])
	}
	return strings.Join(rows, "\n")
}

func (m Model) drawRun(cells [][]rune, bold [][]bool, r layout.GlyphRun) {
	width, height := m.display.Size()
	if r.Y < 0 || r.Y >= height {
		return
	}
	for i, ch := range r.Text {
		x := r.X + i
		if x < 0 || x >= width {
			continue
		}
		cells[r.Y][x] = ch
		bold[r.Y][x] = r.Highlighted
	}
}

// styleRow renders one grid row, chunking consecutive cells with the
// same attribute to keep the escape-sequence count down.
func styleRow(cells []rune, bold []bool) string {
	var out strings.Builder
	start := 0
	for start < len(cells) {
		end := start
		for end < len(cells) && bold[end] == bold[start] {
			end++
		}
		chunk := string(cells[start:end])
		if bold[start] {
			out.WriteString(BoldInk.Render(chunk))
		} else {
			out.WriteString(Ink.Render(chunk))
		}
		start = end
	}
	return out.String()
}

func (m Model) renderStatus() string {
	status := fmt.Sprintf("refreshes %d", m.display.Refreshes())
	if m.session.Editing() {
		return StatusBar.Render(status) + EditBadge.Render(" EDIT")
	}
	return StatusBar.Render(status)
}

func (m Model) renderEvents() string {
	events := m.session.Events().Last(debugEventCount)
	if len(events) == 0 {
		return DebugPane.Render("no events yet")
	}
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = e.String()
	}
	return DebugPane.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
