// ABOUTME: Outline drawing shared by widgets that set Border: a box in the outline color
// ABOUTME: The inner area is transparent so content merged beforehand stays visible

package component

import (
	"strings"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// inset returns the content origin and size inside an optional border.
func inset(e *tui.Element) (x, y, w, h int) {
	w, h = e.Size()
	if !e.Layout().Border.Get() {
		return 0, 0, w, h
	}
	return 1, 1, max(w-2, 0), max(h-2, 0)
}

// frameFor returns a w x h frame whose blank cells carry the background of
// st in state.
func frameFor(st style.Style, state style.State, w, h int) *tui.Frame {
	f := tui.AcquireFrame(w, h)
	if a := st.Resolve(state); !a.BG.IsNone() {
		blank := st.Write(state, strings.Repeat(" ", w))
		for i := range f.Lines {
			f.Lines[i] = blank
		}
	}
	return f
}

// outline draws a box around f's edge using the outline color.
func outline(f *tui.Frame, st style.Style, state style.State) {
	w, h := f.Width(), f.Height()
	if w < 2 || h < 2 {
		return
	}
	inner := w - 2
	f.Merge(0, st.WriteOutline(state, "┌"+strings.Repeat("─", inner)+"┐"), 0)
	side := st.WriteOutline(state, "│")
	mid := side + strings.Repeat(tui.Transparent, inner) + side
	for y := 1; y < h-1; y++ {
		f.Merge(y, mid, 0)
	}
	f.Merge(h-1, st.WriteOutline(state, "└"+strings.Repeat("─", inner)+"┘"), 0)
}

// boxed renders body inside e's border when it has one.
func boxed(e *tui.Element, state style.State, body string) string {
	if !e.Layout().Border.Get() {
		return body
	}
	w, h := e.Size()
	st := e.Computed()
	f := frameFor(st, state, w, h)
	defer tui.ReleaseFrame(f)
	for i, line := range strings.Split(body, "\n") {
		f.Merge(i+1, line, 1)
	}
	outline(f, st, state)
	return f.String()
}
