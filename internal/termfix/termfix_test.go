// ABOUTME: Tests for terminal capability setup
// ABOUTME: Checks the forced dark background and profile detection for non-terminals

package termfix

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestDarkBackgroundPinned(t *testing.T) {
	if !lipgloss.HasDarkBackground() {
		t.Error("HasDarkBackground() = false, want true")
	}
}

func TestProfile_NonTerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("NO_COLOR", "")
	if got := Profile(&bytes.Buffer{}); got != termenv.Ascii {
		t.Errorf("Profile(buffer) = %v, want Ascii", got)
	}
}
