// ABOUTME: Tests for colors, fonts and layered style resolution
// ABOUTME: Covers named/RGB sequences, composite fonts, state layering and Write wrapping

package style

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestColor_Sequences(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		c      Color
		fg, bg string
	}{
		{"none", None, "", ""},
		{"red", Red, "\x1b[31m", "\x1b[41m"},
		{"white", White, "\x1b[37m", "\x1b[47m"},
		{"rgb", RGB(1, 2, 3), "\x1b[38;2;1;2;3m", "\x1b[48;2;1;2;3m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.c.FG(); got != tt.fg {
				t.Errorf("FG() = %q; want %q", got, tt.fg)
			}
			if got := tt.c.BG(); got != tt.bg {
				t.Errorf("BG() = %q; want %q", got, tt.bg)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"magenta", Magenta, false},
		{" Blue ", Blue, false},
		{"#ff8000", RGB(255, 128, 0), false},
		{"rgb(1, 2, 3)", RGB(1, 2, 3), false},
		{"none", None, false},
		{"", None, false},
		{"chartreuse", None, true},
		{"rgb(1,2)", None, true},
		{"#zzzzzz", None, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestFont_CompositeConcatenates(t *testing.T) {
	t.Parallel()
	f := Fonts(Underline, Bold)
	if got, want := f.Sequence(), "\x1b[1m\x1b[4m"; got != want {
		t.Errorf("Sequence() = %q; want %q", got, want)
	}
	if got := Fonts(Bold, Underline, Bold).Sequence(); got != f.Sequence() {
		t.Errorf("repeated members: Sequence() = %q; want %q", got, f.Sequence())
	}
	if FontNone.Sequence() != "" {
		t.Error("FontNone should have empty sequence")
	}
	if !f.Has(Bold) || f.Has(Italic) {
		t.Errorf("Has mismatch for %v", f)
	}
}

func TestParseFont(t *testing.T) {
	t.Parallel()
	f, err := ParseFont("bold+strikethrough")
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	if f != Fonts(Bold, Strike) {
		t.Errorf("ParseFont = %v; want bold+strike", f)
	}
	if _, err := ParseFont("blink"); err == nil {
		t.Error("expected error for unknown font")
	}
}

func TestStyle_ResolveLayers(t *testing.T) {
	t.Parallel()
	var s Style
	s.Base.FG.Set(Red)
	s.Base.BG.Set(Blue)
	s.Hover.FG.Set(Green)
	s.Clicked.BG.Set(White)
	s.Selected.Font.Set(Bold)

	tests := []struct {
		state State
		fg    Color
		bg    Color
		font  Font
	}{
		{Idle, Red, Blue, FontNone},
		{Hovered, Green, Blue, FontNone},
		{Clicked, Red, White, FontNone},
		{Selected, Red, Blue, Bold},
	}
	for _, tt := range tests {
		a := s.Resolve(tt.state)
		if a.FG != tt.fg || a.BG != tt.bg || a.Font != tt.font {
			t.Errorf("Resolve(%v) = %+v; want fg=%v bg=%v font=%v", tt.state, a, tt.fg, tt.bg, tt.font)
		}
	}
}

func TestStyle_IdleIgnoresOverrides(t *testing.T) {
	t.Parallel()
	var s Style
	s.Hover.FG.Set(Green)
	if got := s.Prefix(Idle); got != "" {
		t.Errorf("Prefix(Idle) = %q; want empty", got)
	}
}

func TestStyle_WriteWrapsEachLine(t *testing.T) {
	t.Parallel()
	var s Style
	s.Base.FG.Set(Red)
	got := s.Write(Idle, "a\nb")
	want := "\x1b[31ma\x1b[0m\n\x1b[31mb\x1b[0m"
	if got != want {
		t.Errorf("Write() = %q; want %q", got, want)
	}
}

func TestStyle_WriteWithoutAttrsPassesThrough(t *testing.T) {
	t.Parallel()
	var s Style
	if got := s.Write(Hovered, "plain"); got != "plain" {
		t.Errorf("Write() = %q; want %q", got, "plain")
	}
}

func TestStyle_CursorAndOutline(t *testing.T) {
	t.Parallel()
	var s Style
	s.Base.CursorFG.Set(Magenta)
	s.Base.Outline.Set(Cyan)
	if got, want := s.WriteCursor(Idle, ">"), "\x1b[35m>\x1b[0m"; got != want {
		t.Errorf("WriteCursor() = %q; want %q", got, want)
	}
	if got, want := s.WriteOutline(Idle, "|"), "\x1b[36m|\x1b[0m"; got != want {
		t.Errorf("WriteOutline() = %q; want %q", got, want)
	}
}

func TestSetProfile_DegradesRGB(t *testing.T) {
	// Mutates the global profile; not parallel.
	defer SetProfile(termenv.TrueColor)

	SetProfile(termenv.Ascii)
	if got := RGB(255, 0, 0).FG(); got != "" {
		t.Errorf("Ascii FG = %q; want empty", got)
	}
	SetProfile(termenv.ANSI256)
	if got := RGB(255, 0, 0).FG(); got == "" || got == "\x1b[38;2;255;0;0m" {
		t.Errorf("ANSI256 FG = %q; want a 256-color sequence", got)
	}
}
