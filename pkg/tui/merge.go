// ABOUTME: ANSI-aware line merge and widget placement onto frames
// ABOUTME: Tab cells in an overlay are transparent; escape runs never split or leak

package tui

import (
	"strings"

	"github.com/mauromedda/gridtui/pkg/tui/internal/ansitrack"
	"github.com/mauromedda/gridtui/pkg/tui/internal/pool"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

// Transparent is the overlay cell that leaves the frame cell beneath visible.
const Transparent = "\t"

// MergeLine overlays line onto frameLine starting at visible column x.
//
// Opaque overlay cells replace frame cells and carry the overlay's escape
// runs; frame cells elsewhere keep their own. Styling never bleeds across
// a boundary: frame styling is reset before overlay cells and restored
// after them. When no opaque overlay cell lands inside the frame the
// frame line is returned unchanged.
func MergeLine(frameLine, line string, x int) string {
	fc := width.Compress(frameLine)
	n := fc.Len()
	if n == 0 {
		return frameLine
	}
	oc := width.Compress(line)
	if !landsOpaque(oc, x, n) {
		return frameLine
	}

	var (
		cur       ansitrack.Tracker // state of what has been written
		ft, ot    ansitrack.Tracker
		before    ansitrack.Tracker
		pending   string
		inOverlay bool
	)
	b := pool.Builder()
	b.Grow(len(frameLine) + len(line))

	write := func(s string) {
		b.WriteString(s)
		cur.ProcessRun(s)
	}
	reset := func() {
		if cur.IsActive() {
			write(style.Reset)
		}
	}
	queue := func(run string) {
		if run == "" {
			return
		}
		if pending == "" {
			before = ot
		}
		pending += run
		ot.ProcessRun(run)
	}

	// Runs anchored on cells clipped off the left edge still apply.
	for j := 0; j < -x && j < oc.Len(); j++ {
		queue(oc.Escape(j))
	}

	for i := 0; i < n; i++ {
		j := i - x
		frameEsc := fc.Escape(i)

		if j >= 0 && j < oc.Len() {
			queue(oc.Escape(j))
		}
		if j == oc.Len() && j > 0 {
			// The trailing overlay run, typically a reset, closes the overlay.
			queue(oc.Trailing())
			if inOverlay {
				write(pending)
			}
			pending = ""
		}

		if j >= 0 && j < oc.Len() && oc.Cells[j] != Transparent {
			ft.ProcessRun(frameEsc)
			if !inOverlay {
				reset()
				if pending != "" {
					write(before.Restore())
				} else {
					write(ot.Restore())
				}
				inOverlay = true
			}
			write(pending)
			pending = ""
			b.WriteString(oc.Cells[j])
			continue
		}

		if inOverlay {
			reset()
			write(ft.Restore())
			inOverlay = false
		}
		ft.ProcessRun(frameEsc)
		write(frameEsc)
		b.WriteString(fc.Cells[i])
	}

	if inOverlay {
		if n-x == oc.Len() {
			queue(oc.Trailing())
			write(pending)
		}
		reset()
	}
	b.WriteString(fc.Trailing())
	return pool.String(b)
}

func landsOpaque(oc width.Compressed, x, n int) bool {
	for j, cell := range oc.Cells {
		if i := x + j; i >= 0 && i < n && cell != Transparent {
			return true
		}
	}
	return false
}

// RenderTo renders w in state and merges each output line into f at the
// widget's placed position. Rows outside the frame are clipped. It returns
// the number of lines the widget produced.
func RenderTo(state style.State, f *Frame, w Widget) int {
	e := w.Element()
	x, y := e.Pos()
	out := w.Render(state)
	if out == "" {
		return 0
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		f.Merge(y+i, line, x)
	}
	return len(lines)
}
