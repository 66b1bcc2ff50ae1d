// Package style provides shared styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import (
	"os"

	"github.com/muesli/termenv"
)

// Brand colors.
const (
	Iris   = "#8B5CF6"
	Slate  = "#667085"
	Green  = "#22A06B"
	Red    = "#D93025"
	Yellow = "#F59E0B"
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Profile returns the color profile for CLI output.
// It honors NO_COLOR, returning Ascii if set.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func colorize(s, hex string) string {
	p := Profile()
	return termenv.String(s).Foreground(p.Color(hex)).String()
}

// Good renders s in the success color.
func Good(s string) string { return colorize(s, Green) }

// Bad renders s in the failure color.
func Bad(s string) string { return colorize(s, Red) }

// Warn renders s in the warning color.
func Warn(s string) string { return colorize(s, Yellow) }

// Muted renders s in the muted color.
func Muted(s string) string { return colorize(s, Slate) }

// Header renders s in the brand color, bold.
func Header(s string) string {
	p := Profile()
	if p == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(p.Color(Iris)).Bold().String()
}

// Bold renders s bold.
func Bold(s string) string {
	if Profile() == termenv.Ascii {
		return s
	}
	return termenv.String(s).Bold().String()
}

// Status renders a pass/fail icon for ok.
func Status(ok bool) string {
	if ok {
		return Good(Check)
	}
	return Bad(Cross)
}
