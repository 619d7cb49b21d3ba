// ABOUTME: Terminal capability setup that must happen before bubbletea initializes
// ABOUTME: Pins lipgloss to a dark background and resolves the color profile for the style engine

package termfix

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// init runs before bubbletea's own init as long as this package does not
// import bubbletea. With an explicit background lipgloss never sends the
// OSC 10/11 queries whose replies would leak into the input stream.
func init() {
	lipgloss.SetHasDarkBackground(true)
}

// Profile returns the color profile for output w, honoring NO_COLOR and
// CLICOLOR_FORCE. Non-terminal writers get termenv.Ascii.
func Profile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}
