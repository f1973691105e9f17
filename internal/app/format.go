package app

import "fmt"

// FormatClock renders an hour/minute pair for the footer, 24-hour or
// 12-hour with AM/PM.
func FormatClock(hour, minute int, twentyFourHour bool) string {
	if twentyFourHour {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}
