// ABOUTME: Splits ANSI text into visible grapheme cells plus escape runs anchored by cell index
// ABOUTME: String() replays the runs at their anchors and reproduces the input exactly

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Compressed is ANSI text separated into visible cells and escape runs.
// Escapes[i] is the run replayed before cell i; Escapes[len(Cells)] is
// the run that trails the last cell.
type Compressed struct {
	Cells   []string
	Escapes map[int]string
}

// Compress strips escape runs from s, recording each consecutive run
// against the index of the visible cell that follows it.
func Compress(s string) Compressed {
	c := Compressed{Escapes: map[int]string{}}
	if !containsESC(s) {
		c.Cells = cells(s, c.Cells)
		return c
	}
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			start := i
			for i < len(s) && s[i] == '\x1b' {
				i = seqEnd(s, i)
			}
			c.Escapes[len(c.Cells)] += s[start:i]
			continue
		}
		j := strings.IndexByte(s[i:], '\x1b')
		if j < 0 {
			j = len(s)
		} else {
			j += i
		}
		c.Cells = cells(s[i:j], c.Cells)
		i = j
	}
	return c
}

func cells(s string, dst []string) []string {
	if isPlainASCII(s) {
		for i := 0; i < len(s); i++ {
			dst = append(dst, s[i:i+1])
		}
		return dst
	}
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		dst = append(dst, cluster)
	}
	return dst
}

// Len returns the number of visible cells.
func (c Compressed) Len() int {
	return len(c.Cells)
}

// Escape returns the run anchored at cell i, if any.
func (c Compressed) Escape(i int) string {
	return c.Escapes[i]
}

// Trailing returns the run after the last visible cell.
func (c Compressed) Trailing() string {
	return c.Escapes[len(c.Cells)]
}

// Plain returns the visible text without escapes.
func (c Compressed) Plain() string {
	return strings.Join(c.Cells, "")
}

// String reinserts every escape run at its anchor.
func (c Compressed) String() string {
	var b strings.Builder
	for i, cell := range c.Cells {
		b.WriteString(c.Escapes[i])
		b.WriteString(cell)
	}
	b.WriteString(c.Trailing())
	return b.String()
}
