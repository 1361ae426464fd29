package ui

import "fmt"

// ANSI256 color codes.
const (
	colorAccent  = 74  // blue
	colorCmd     = 250 // light gray
	colorMuted   = 245 // medium gray
	colorBlocked = 167 // soft red
	colorAllowed = 114 // green
	colorWarn    = 179 // amber
)

var noColor bool

func paint(code int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string { return paint(colorAccent, s) }

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string { return paint(colorMuted, s) }

// RenderCommand returns s styled as a command name (light gray).
func RenderCommand(s string) string { return paint(colorCmd, s) }

// RenderBlocked marks a blocking decision.
func RenderBlocked(s string) string { return paint(colorBlocked, s) }

// RenderAllowed marks an allowing decision.
func RenderAllowed(s string) string { return paint(colorAllowed, s) }

// RenderWarn is used for recoverable problems such as a reset record.
func RenderWarn(s string) string { return paint(colorWarn, s) }

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
