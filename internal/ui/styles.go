package ui

import "github.com/charmbracelet/lipgloss"

// E-ink palette: dark glyphs on paper white.
var (
	colorPaper = lipgloss.Color("255")
	colorInk   = lipgloss.Color("235")
	colorMuted = lipgloss.Color("243")
	colorAlert = lipgloss.Color("130")
)

// Panel frames the simulated glass.
var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Background(colorPaper).
	Foreground(colorInk)

// Ink is a normal glyph cell.
var Ink = lipgloss.NewStyle().
	Background(colorPaper).
	Foreground(colorInk)

// BoldInk renders the double-struck highlight span.
var BoldInk = lipgloss.NewStyle().
	Background(colorPaper).
	Foreground(colorInk).
	Bold(true)

// StatusBar sits under the panel.
var StatusBar = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// EditBadge flags an active set-time edit.
var EditBadge = lipgloss.NewStyle().
	Foreground(colorAlert).
	Bold(true)

// DebugPane styles the event overlay.
var DebugPane = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(colorMuted).
	Foreground(colorMuted).
	Padding(0, 1)
