// ABOUTME: SGR state machine tracking which text attributes an escape stream left active
// ABOUTME: The compositor uses it to reset and restore styling at merge boundaries

package ansitrack

import (
	"strconv"
	"strings"
)

// Tracker holds the cumulative SGR state. The zero value is unstyled and
// Trackers may be copied to snapshot state.
type Tracker struct {
	attrs uint16
	fg    string // e.g. "31" or "38;2;1;2;3"
	bg    string
}

const (
	bold uint16 = 1 << iota
	dim
	italic
	underline
	blink
	reverse
	hidden
	strike
)

var attrCodes = []struct {
	bit  uint16
	code string
}{
	{bold, "1"}, {dim, "2"}, {italic, "3"}, {underline, "4"},
	{blink, "5"}, {reverse, "7"}, {hidden, "8"}, {strike, "9"},
}

// Reset clears all SGR state.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// ProcessRun applies every SGR sequence in a run of consecutive escape
// sequences. Non-SGR sequences are ignored.
func (t *Tracker) ProcessRun(run string) {
	for len(run) > 0 {
		i := strings.IndexByte(run, '\x1b')
		if i < 0 {
			return
		}
		run = run[i:]
		end := 2
		if len(run) > 1 && run[1] == '[' {
			for end < len(run) && (run[end] < 0x40 || run[end] > 0x7e) {
				end++
			}
			if end < len(run) {
				end++
			}
		}
		if end > len(run) {
			end = len(run)
		}
		t.Process(run[:end])
		run = run[end:]
	}
}

// Process applies one complete CSI SGR sequence (e.g. "\x1b[31;1m").
func (t *Tracker) Process(seq string) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return
	}
	params := seq[2 : len(seq)-1]
	if params == "" {
		t.Reset()
		return
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			t.Reset()
		case code >= 1 && code <= 9:
			for _, a := range attrCodes {
				if a.code == parts[i] {
					t.attrs |= a.bit
				}
			}
		case code == 22:
			t.attrs &^= bold | dim
		case code == 23:
			t.attrs &^= italic
		case code == 24:
			t.attrs &^= underline
		case code == 25:
			t.attrs &^= blink
		case code == 27:
			t.attrs &^= reverse
		case code == 28:
			t.attrs &^= hidden
		case code == 29:
			t.attrs &^= strike
		case code >= 30 && code <= 37, code >= 90 && code <= 97:
			t.fg = parts[i]
		case code >= 40 && code <= 47, code >= 100 && code <= 107:
			t.bg = parts[i]
		case code == 38 || code == 48:
			n := extendedLen(parts[i:])
			v := strings.Join(parts[i:i+n], ";")
			if code == 38 {
				t.fg = v
			} else {
				t.bg = v
			}
			i += n - 1
		case code == 39:
			t.fg = ""
		case code == 49:
			t.bg = ""
		}
	}
}

// extendedLen returns how many parameters a 38/48 color spans.
func extendedLen(parts []string) int {
	if len(parts) < 2 {
		return len(parts)
	}
	n := len(parts)
	switch parts[1] {
	case "5":
		n = 3
	case "2":
		n = 5
	}
	if n > len(parts) {
		n = len(parts)
	}
	return n
}

// Restore returns the minimal SGR sequence re-establishing the current
// state, or "" when nothing is active.
func (t *Tracker) Restore() string {
	var codes []string
	for _, a := range attrCodes {
		if t.attrs&a.bit != 0 {
			codes = append(codes, a.code)
		}
	}
	if t.fg != "" {
		codes = append(codes, t.fg)
	}
	if t.bg != "" {
		codes = append(codes, t.bg)
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// IsActive reports whether any attribute or color is set.
func (t *Tracker) IsActive() bool {
	return t.attrs != 0 || t.fg != "" || t.bg != ""
}

// Attr names one boolean SGR attribute for callers that translate the
// tracked state into another styling model.
type Attr uint16

const (
	Bold      = Attr(bold)
	Dim       = Attr(dim)
	Italic    = Attr(italic)
	Underline = Attr(underline)
	Blink     = Attr(blink)
	Reverse   = Attr(reverse)
	Hidden    = Attr(hidden)
	Strike    = Attr(strike)
)

// Has reports whether a is active.
func (t *Tracker) Has(a Attr) bool {
	return t.attrs&uint16(a) != 0
}

// Foreground returns the active foreground parameters, such as "31" or
// "38;2;1;2;3", or "" for the default.
func (t *Tracker) Foreground() string { return t.fg }

// Background is Foreground for the background color.
func (t *Tracker) Background() string { return t.bg }
