// ABOUTME: Escape sequence scanning for styled text: boundaries, stripping and extraction
// ABOUTME: Understands CSI, OSC, DCS/APC/PM strings, charset designation and two-byte escapes

package width

import "strings"

const (
	esc = '\x1b'
	bel = '\x07'
)

// StripANSI removes every escape sequence from s.
func StripANSI(s string) string {
	if !containsESC(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == esc {
			i = seqEnd(s, i)
			continue
		}
		j := strings.IndexByte(s[i:], esc)
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i : i+j])
		i += j
	}
	return b.String()
}

// ExtractANSI returns the escape sequences of s in order.
func ExtractANSI(s string) []string {
	var seqs []string
	for i := strings.IndexByte(s, esc); i >= 0 && i < len(s); {
		end := seqEnd(s, i)
		seqs = append(seqs, s[i:end])
		j := strings.IndexByte(s[end:], esc)
		if j < 0 {
			break
		}
		i = end + j
	}
	return seqs
}

func containsESC(s string) bool {
	return strings.IndexByte(s, esc) >= 0
}

// seqEnd returns the index just past the escape sequence starting at
// s[i]. An unterminated sequence runs to the end of s.
func seqEnd(s string, i int) int {
	if i >= len(s) || s[i] != esc {
		return i
	}
	if i+1 >= len(s) {
		return len(s)
	}
	switch s[i+1] {
	case '[':
		for j := i + 2; j < len(s); j++ {
			if s[j] >= 0x40 && s[j] <= 0x7e {
				return j + 1
			}
		}
		return len(s)
	case ']':
		return stringEnd(s, i+2, true)
	case 'P', '_', '^':
		return stringEnd(s, i+2, false)
	case '(', ')':
		return min(i+3, len(s))
	}
	return i + 2
}

// stringEnd finds the string terminator (ST, or BEL when allowed).
func stringEnd(s string, j int, belOK bool) int {
	for ; j < len(s); j++ {
		switch {
		case belOK && s[j] == bel:
			return j + 1
		case s[j] == esc && j+1 < len(s) && s[j+1] == '\\':
			return j + 2
		}
	}
	return len(s)
}
