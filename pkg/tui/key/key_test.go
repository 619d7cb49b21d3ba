// ABOUTME: Table-driven tests for key parsing and binding names
// ABOUTME: ParseKey covers raw bytes and escape sequences; Name/Parse must round trip

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		{name: "lowercase a", data: "a", want: Key{Type: KeyRune, Rune: 'a'}},
		{name: "uppercase A", data: "A", want: Key{Type: KeyRune, Rune: 'A'}},
		{name: "space", data: " ", want: Key{Type: KeyRune, Rune: ' '}},
		{name: "multibyte", data: "é", want: Key{Type: KeyRune, Rune: 'é'}},
		{name: "ctrl+c", data: "\x03", want: Key{Type: KeyCtrlC, Ctrl: true}},
		{name: "ctrl+l", data: "\x0c", want: Key{Type: KeyCtrlL, Ctrl: true}},
		{name: "ctrl+x", data: "\x18", want: Key{Type: KeyRune, Rune: 'x', Ctrl: true}},
		{name: "enter", data: "\r", want: Key{Type: KeyEnter}},
		{name: "tab", data: "\t", want: Key{Type: KeyTab}},
		{name: "backspace", data: "\x7f", want: Key{Type: KeyBackspace}},
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},
		{name: "arrow up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow left", data: "\x1b[D", want: Key{Type: KeyLeft}},
		{name: "SS3 down", data: "\x1bOB", want: Key{Type: KeyDown}},
		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}},
		{name: "backtab", data: "\x1b[Z", want: Key{Type: KeyBackTab, Shift: true}},
		{name: "alt+x", data: "\x1bx", want: Key{Type: KeyRune, Rune: 'x', Alt: true}},
		{name: "empty", data: "", want: Key{Type: KeyUnknown}},
		{name: "garbage csi", data: "\x1b[999q", want: Key{Type: KeyUnknown}},
		{name: "ctrl+right", data: "\x1b[1;5C", want: Key{Type: KeyRight, Ctrl: true}},
		{name: "shift+up", data: "\x1b[1;2A", want: Key{Type: KeyUp, Shift: true}},
		{name: "alt+pgdown", data: "\x1b[6;3~", want: Key{Type: KeyPageDown, Alt: true}},
		{name: "rxvt home", data: "\x1b[7~", want: Key{Type: KeyHome}},
		{name: "bad modifier", data: "\x1b[1;0A", want: Key{Type: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseKey(tt.data)
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %+v; want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestKeyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		k    Key
		want string
	}{
		{Key{Type: KeyRune, Rune: 'q'}, "q"},
		{Key{Type: KeyRune, Rune: ' '}, "space"},
		{Key{Type: KeyRune, Rune: 'x', Ctrl: true}, "ctrl+x"},
		{Key{Type: KeyRune, Rune: 'f', Alt: true}, "alt+f"},
		{Key{Type: KeyBackTab, Shift: true}, "shift+tab"},
		{Key{Type: KeyUp}, "up"},
		{Key{Type: KeyUp, Shift: true}, "shift+up"},
		{Key{Type: KeyCtrlC, Ctrl: true}, "ctrl+c"},
		{Key{Type: KeyUnknown}, ""},
	}
	for _, tt := range tests {
		if got := tt.k.Name(); got != tt.want {
			t.Errorf("Name(%+v) = %q; want %q", tt.k, got, tt.want)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"q", "space", "ctrl+x", "alt+f", "shift+tab", "up", "shift+up", "ctrl+c", "enter", "pgdown"} {
		k, ok := Parse(name)
		if !ok {
			t.Errorf("Parse(%q) failed", name)
			continue
		}
		if got := k.Name(); got != name {
			t.Errorf("Parse(%q).Name() = %q", name, got)
		}
	}
	if _, ok := Parse("hyper+x"); ok {
		t.Error("Parse should reject unknown modifiers")
	}
	if _, ok := Parse("notakey"); ok {
		t.Error("Parse should reject unknown names")
	}
}

func TestParse_MatchesRawInput(t *testing.T) {
	t.Parallel()

	k, _ := Parse("ctrl+c")
	if k != ParseKey("\x03") {
		t.Errorf("Parse(ctrl+c) = %+v; want %+v", k, ParseKey("\x03"))
	}
	k, _ = Parse("shift+tab")
	if k != ParseKey("\x1b[Z") {
		t.Errorf("Parse(shift+tab) = %+v; want %+v", k, ParseKey("\x1b[Z"))
	}
}
