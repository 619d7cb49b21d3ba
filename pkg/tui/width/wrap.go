// ABOUTME: ANSI-aware word wrapping and truncation over grapheme cells
// ABOUTME: Wrapped lines reopen the SGR state that was active where they start

package width

import (
	"strings"

	"github.com/mauromedda/gridtui/pkg/tui/internal/ansitrack"
)

// WrapTextWithAnsi wraps s into lines of at most maxWidth visible columns,
// breaking after the last space that fits and inside words only when a
// word alone is too long. Spaces at a break are dropped. Every line after
// the first restores the SGR state active at its first cell.
func WrapTextWithAnsi(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = wrapLine(out, line, maxWidth)
	}
	return out
}

func wrapLine(out []string, line string, maxWidth int) []string {
	c := Compress(line)
	n := c.Len()

	// prefix[i] re-establishes the state in force just before Escapes[i].
	prefix := make([]string, n+1)
	var tr ansitrack.Tracker
	for i := 0; i <= n; i++ {
		prefix[i] = tr.Restore()
		tr.ProcessRun(c.Escape(i))
	}

	emit := func(a, b int) {
		var sb strings.Builder
		if a > 0 {
			sb.WriteString(prefix[a])
		}
		for j := a; j < b; j++ {
			sb.WriteString(c.Escape(j))
			sb.WriteString(c.Cells[j])
		}
		if b == n {
			sb.WriteString(c.Trailing())
		}
		out = append(out, sb.String())
	}

	emitted := false
	start, col, lastSpace := 0, 0, -1
	for i := 0; i < n; i++ {
		if i < start {
			continue
		}
		cw := CellWidth(c.Cells[i])
		if col+cw > maxWidth && i > start {
			end, next := i, i
			if lastSpace > start {
				end, next = lastSpace, lastSpace+1
			}
			emit(start, end)
			emitted = true
			for next < n && c.Cells[next] == " " {
				next++
			}
			start, col, lastSpace = next, 0, -1
			for j := start; j < i; j++ {
				col += CellWidth(c.Cells[j])
			}
			if i < start {
				continue
			}
		}
		if c.Cells[i] == " " {
			lastSpace = i
		}
		col += cw
	}
	if start < n || !emitted {
		emit(start, n)
	}
	return out
}

// TruncateToWidth truncates s to at most maxWidth visible columns. When
// text is cut the last column becomes an ellipsis after an SGR reset.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	c := Compress(s)
	var b strings.Builder
	col, target := 0, maxWidth-1
	for i, cell := range c.Cells {
		cw := CellWidth(cell)
		if col+cw > target {
			break
		}
		b.WriteString(c.Escape(i))
		b.WriteString(cell)
		col += cw
	}
	b.WriteString("\x1b[0m…")
	return b.String()
}
