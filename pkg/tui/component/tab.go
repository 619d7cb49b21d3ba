// ABOUTME: Tab strip: cycles focus among children with tab and shift+tab
// ABOUTME: Draws a centred indicator per child on the first row and the focused child below it

package component

import (
	"strings"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

// Tab actions.
const (
	ActionNext     = "next"
	ActionPrevious = "previous"
)

// Tab shows one child at a time beneath an indicator row.
type Tab struct {
	elem tui.Element
	// Marker is drawn once per child in the indicator row.
	Marker string
}

// NewTab creates a tab strip over children.
func NewTab(children ...tui.Widget) *Tab {
	t := &Tab{elem: tui.NewElement(tui.ChildrenContent(children...)), Marker: "*"}
	t.elem.Binds.Bind("tab", ActionNext).Bind("shift+tab", ActionPrevious)
	t.elem.Style.Clicked.FG = style.Default(style.Red)
	return t
}

// Element implements tui.Widget.
func (t *Tab) Element() *tui.Element { return &t.elem }

// Current returns the focused index.
func (t *Tab) Current() int { return t.elem.Content.Focus() }

// Render implements tui.Widget.
func (t *Tab) Render(state style.State) string {
	w, h := t.elem.Size()
	st := t.elem.StateFor(state)
	comp := t.elem.Computed()
	f := frameFor(comp, st, w, h)
	defer tui.ReleaseFrame(f)

	c := &t.elem.Content
	var b strings.Builder
	for i := range c.Len() {
		if i == c.Focus() {
			b.WriteString(comp.Write(style.Clicked, t.Marker))
		} else {
			b.WriteString(comp.Write(st, t.Marker))
		}
	}
	f.Merge(0, b.String(), max((w-c.Len()*width.VisibleWidth(t.Marker))/2, 0))

	if ch := c.Focused(); ch != nil && h > 1 {
		ch.Element().Place(0, 1, w, h-1)
		tui.RenderTo(st, f, ch)
	}
	return f.String()
}

// Event implements tui.Widget.
func (t *Tab) Event(ev tui.Event) tui.Response {
	c := &t.elem.Content
	n := c.Len()
	switch t.elem.Binds.Action(ev) {
	case ActionNext:
		if n > 0 {
			c.SetFocus((c.Focus() + 1) % n)
		}
		return tui.Handled()
	case ActionPrevious:
		if n > 0 {
			c.SetFocus((c.Focus() + n - 1) % n)
		}
		return tui.Handled()
	}
	ch := c.Focused()
	if ch == nil {
		return tui.None()
	}
	return tui.Apply(c, c.Focus(), tui.Send(ch, ev))
}

// Clone implements tui.Widget.
func (t *Tab) Clone() tui.Widget {
	return &Tab{elem: t.elem.CloneElement(), Marker: t.Marker}
}
