// ABOUTME: Display width of styled text: escape runs are free, grapheme clusters take 1 or 2 columns
// ABOUTME: The transparent tab cell counts as one column so frame rows keep their width

package width

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// maxCached bounds the width memo. When full it is dropped wholesale;
// frames repeat the same rows, so it refills from the current screen.
const maxCached = 1024

type memo struct {
	mu sync.Mutex
	m  map[string]int
}

func (c *memo) load(s string) (int, bool) {
	c.mu.Lock()
	w, ok := c.m[s]
	c.mu.Unlock()
	return w, ok
}

func (c *memo) store(s string, w int) {
	c.mu.Lock()
	if c.m == nil || len(c.m) >= maxCached {
		c.m = make(map[string]int, maxCached)
	}
	c.m[s] = w
	c.mu.Unlock()
}

var widths memo

// VisibleWidth returns the number of terminal columns s occupies.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widths.load(s); ok {
		return w
	}
	w := 0
	rest := StripANSI(s)
	state := -1
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w += CellWidth(cluster)
	}
	widths.store(s, w)
	return w
}

// isPlainASCII reports whether s holds only printable ASCII, where bytes
// and columns coincide.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// CellWidth returns the columns taken by one grapheme cluster. Emoji
// presentation selectors widen a narrow base to two columns.
func CellWidth(cluster string) int {
	switch cluster {
	case "":
		return 0
	case "\t":
		return 1
	}
	r, size := utf8.DecodeRuneInString(cluster)
	w := runewidth.RuneWidth(r)
	if w == 1 && size < len(cluster) && containsRune(cluster[size:], '\uFE0F') {
		return 2
	}
	return w
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
