// ABOUTME: Terminal colors: eight named palette entries plus 24-bit RGB
// ABOUTME: FG/BG emit SGR sequences degraded through the active termenv profile

package style

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/muesli/termenv"
)

// ColorKind tags the Color variant.
type ColorKind uint8

const (
	KindNone ColorKind = iota
	KindNamed
	KindRGB
)

// Color is either absent, a named palette entry, or an RGB triple.
// The zero Color is None and contributes no escape sequence.
type Color struct {
	kind    ColorKind
	index   uint8 // named palette index 0-7
	r, g, b uint8
}

// None is the absent color.
var None = Color{}

var (
	Black   = Color{kind: KindNamed, index: 0}
	Red     = Color{kind: KindNamed, index: 1}
	Green   = Color{kind: KindNamed, index: 2}
	Yellow  = Color{kind: KindNamed, index: 3}
	Blue    = Color{kind: KindNamed, index: 4}
	Magenta = Color{kind: KindNamed, index: 5}
	Cyan    = Color{kind: KindNamed, index: 6}
	White   = Color{kind: KindNamed, index: 7}
)

var colorNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind reports the color variant.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsNone reports whether c is the absent color.
func (c Color) IsNone() bool {
	return c.kind == KindNone
}

// Hex returns "#rrggbb" for RGB colors and the palette name otherwise.
func (c Color) Hex() string {
	switch c.kind {
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	case KindNamed:
		return colorNames[c.index]
	}
	return ""
}

func (c Color) String() string {
	if c.kind == KindNone {
		return "none"
	}
	return c.Hex()
}

var profile atomic.Int32

func init() {
	profile.Store(int32(termenv.TrueColor))
}

// SetProfile selects how RGB colors are emitted. TrueColor (the default)
// writes exact 24-bit sequences; ANSI256 and ANSI degrade; Ascii drops color.
func SetProfile(p termenv.Profile) {
	profile.Store(int32(p))
}

// Profile returns the active color profile.
func Profile() termenv.Profile {
	return termenv.Profile(profile.Load())
}

// FG returns the foreground SGR sequence, or "" for None.
func (c Color) FG() string {
	return c.sequence(false)
}

// BG returns the background SGR sequence, or "" for None.
func (c Color) BG() string {
	return c.sequence(true)
}

func (c Color) sequence(bg bool) string {
	p := Profile()
	if p == termenv.Ascii {
		return ""
	}
	switch c.kind {
	case KindNamed:
		base := 30
		if bg {
			base = 40
		}
		return "\x1b[" + strconv.Itoa(base+int(c.index)) + "m"
	case KindRGB:
		if p == termenv.TrueColor {
			lead := "38"
			if bg {
				lead = "48"
			}
			return fmt.Sprintf("\x1b[%s;2;%d;%d;%dm", lead, c.r, c.g, c.b)
		}
		seq := p.Color(c.Hex()).Sequence(bg)
		if seq == "" {
			return ""
		}
		return "\x1b[" + seq + "m"
	}
	return ""
}

// ParseColor accepts a palette name, "#rrggbb", "rgb(r,g,b)" or "none".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "default" {
		return None, nil
	}
	for i, name := range colorNames {
		if s == name {
			return Color{kind: KindNamed, index: uint8(i)}, nil
		}
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return None, fmt.Errorf("parsing color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return None, fmt.Errorf("parsing color %q: want three components", s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return None, fmt.Errorf("parsing color %q: %w", s, err)
			}
			rgb[i] = uint8(n)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	}
	return None, fmt.Errorf("unknown color %q", s)
}
