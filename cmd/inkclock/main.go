// Command inkclock runs the quote clock against a simulated e-ink panel
// in the terminal. Keys a/b/c/d stand in for the four device buttons,
// 'e' toggles the event overlay, q quits.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/akerr/inkclock/internal/app"
	"github.com/akerr/inkclock/internal/config"
	"github.com/akerr/inkclock/internal/logging"
	"github.com/akerr/inkclock/internal/ui"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// The simulator's layout unit is a character cell, not a pixel, so
	// the panel-sized margins would eat the whole grid.
	cfg.Margin = 2
	cfg.LinePad = 1

	if err := logging.Init(config.DataDir(), cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "inkclock: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	index := app.LoadDataset(cfg.DatasetPath)
	logging.Info("dataset loaded", "path", cfg.DatasetPath, "records", index.Len())

	display := ui.NewDisplay(ui.DefaultWidth, ui.DefaultHeight, cfg.MinRefreshGap())
	clock := ui.NewClock()
	keypad := ui.NewKeypad()

	session := app.New(cfg, index, clock, display, keypad)
	session.Start()

	program := tea.NewProgram(
		ui.NewModel(session, display, keypad, cfg.PollInterval()),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		logging.Error("program failed", "err", err)
		fmt.Fprintf(os.Stderr, "inkclock: %v\n", err)
		os.Exit(1)
	}
}
