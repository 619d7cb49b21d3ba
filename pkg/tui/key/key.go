// ABOUTME: Key model for normalized keyboard input: named keys, runes and modifiers
// ABOUTME: ParseKey decodes raw terminal bytes; Name/Parse map keys to binding strings

package key

import (
	"strings"
	"unicode/utf8"
)

// Key is one normalized keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events the runtime can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyCtrlL                    // Ctrl+L
	KeyCtrlR                    // Ctrl+R
	KeyUnknown                  // Unrecognized input
)

var ctrlKeys = map[byte]Key{
	0x03: {Type: KeyCtrlC, Ctrl: true},
	0x04: {Type: KeyCtrlD, Ctrl: true},
	0x0c: {Type: KeyCtrlL, Ctrl: true},
	0x12: {Type: KeyCtrlR, Ctrl: true},
}

// ParseKey parses raw terminal input data into a Key.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	// Remaining C0 controls are ctrl+letter.
	if b >= 0x01 && b <= 0x1a {
		return Key{Type: KeyRune, Rune: rune('a' + b - 1), Ctrl: true}
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	if k, ok := parseLegacy(data); ok {
		return k
	}
	// Alt+letter: ESC followed by a single printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeyUnknown}
}

var typeNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "escape",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyCtrlL:     "ctrl+l",
	KeyCtrlR:     "ctrl+r",
}

// Name returns the binding string for k, e.g. "up", "shift+tab", "ctrl+x"
// or "a". Unknown keys yield "".
func (k Key) Name() string {
	if k.Type == KeyUnknown {
		return ""
	}
	if name, ok := typeNames[k.Type]; ok && (k.Type >= KeyCtrlC || k.Type == KeyBackTab) {
		return name
	}
	var parts []string
	if k.Ctrl {
		parts = append(parts, "ctrl")
	}
	if k.Alt {
		parts = append(parts, "alt")
	}
	if k.Shift && k.Type != KeyRune {
		parts = append(parts, "shift")
	}
	switch k.Type {
	case KeyRune:
		if k.Rune == ' ' {
			parts = append(parts, "space")
		} else {
			parts = append(parts, string(k.Rune))
		}
	default:
		parts = append(parts, typeNames[k.Type])
	}
	return strings.Join(parts, "+")
}

// String returns the key name for display.
func (k Key) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return "unknown"
}

// Printable reports whether k inserts text.
func (k Key) Printable() bool {
	return k.Type == KeyRune && !k.Ctrl && !k.Alt
}

// Parse is the inverse of Name.
func Parse(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Key{}, false
	}
	for t, n := range typeNames {
		if n == name {
			k := Key{Type: t}
			switch {
			case t == KeyBackTab:
				k.Shift = true
			case t >= KeyCtrlC:
				k.Ctrl = true
			}
			return k, true
		}
	}
	var k Key
	parts := strings.Split(name, "+")
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			k.Ctrl = true
		case "alt":
			k.Alt = true
		case "shift":
			k.Shift = true
		default:
			return Key{}, false
		}
	}
	last := parts[len(parts)-1]
	if last == "space" {
		k.Type, k.Rune = KeyRune, ' '
		return k, true
	}
	if utf8.RuneCountInString(last) == 1 {
		k.Type = KeyRune
		k.Rune, _ = utf8.DecodeRuneInString(last)
		return k, true
	}
	for t, n := range typeNames {
		if n == last && t < KeyCtrlC {
			k.Type = t
			return k, true
		}
	}
	return Key{}, false
}
