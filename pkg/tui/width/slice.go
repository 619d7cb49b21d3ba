// ABOUTME: Column-range extraction from styled text
// ABOUTME: Escape runs are kept so the slice renders with the styling of its source

package width

import "strings"

// SliceByColumn returns the cells of s that lie wholly inside columns
// [start, end). A wide cell cut by either edge becomes spaces for the
// columns it would have covered inside the range. All escape runs are
// replayed, so the result carries the styling in force at each cell.
func SliceByColumn(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if start >= end || s == "" {
		return ""
	}

	c := Compress(s)
	var b strings.Builder
	col := 0
	for i, cell := range c.Cells {
		b.WriteString(c.Escape(i))
		cw := CellWidth(cell)
		lo, hi := col, col+cw
		col = hi
		switch {
		case hi <= start || lo >= end:
		case lo >= start && hi <= end:
			b.WriteString(cell)
		default:
			b.WriteString(strings.Repeat(" ", min(hi, end)-max(lo, start)))
		}
	}
	b.WriteString(c.Trailing())
	return b.String()
}
