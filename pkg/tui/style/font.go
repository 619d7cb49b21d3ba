// ABOUTME: Font decorators as a bit set; several bits form the composite variant
// ABOUTME: Sequence concatenates member SGR codes in a fixed canonical order

package style

import (
	"fmt"
	"strings"
)

// Font is a set of text decorators. FontNone contributes nothing.
type Font uint8

const (
	Bold Font = 1 << iota
	Italic
	Underline
	Reverse
	Strike

	FontNone Font = 0
)

var fontOrder = []struct {
	f    Font
	code string
	name string
}{
	{Bold, "\x1b[1m", "bold"},
	{Italic, "\x1b[3m", "italic"},
	{Underline, "\x1b[4m", "underline"},
	{Reverse, "\x1b[7m", "reverse"},
	{Strike, "\x1b[9m", "strike"},
}

// Fonts combines several decorators into one composite font.
func Fonts(fs ...Font) Font {
	var out Font
	for _, f := range fs {
		out |= f
	}
	return out
}

// Has reports whether every decorator in other is set in f.
func (f Font) Has(other Font) bool {
	return other != 0 && f&other == other
}

// Sequence returns the SGR codes of all members, bold first.
func (f Font) Sequence() string {
	if f == FontNone {
		return ""
	}
	var b strings.Builder
	for _, e := range fontOrder {
		if f&e.f != 0 {
			b.WriteString(e.code)
		}
	}
	return b.String()
}

func (f Font) String() string {
	if f == FontNone {
		return "none"
	}
	var names []string
	for _, e := range fontOrder {
		if f&e.f != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "+")
}

// ParseFont reads names such as "bold" or "bold+underline" (commas and
// spaces also separate members).
func ParseFont(s string) (Font, error) {
	var out Font
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})
	for _, field := range fields {
		if field == "none" {
			continue
		}
		found := false
		for _, e := range fontOrder {
			if field == e.name || (field == "strikethrough" && e.f == Strike) {
				out |= e.f
				found = true
				break
			}
		}
		if !found {
			return FontNone, fmt.Errorf("unknown font %q", field)
		}
	}
	return out, nil
}
