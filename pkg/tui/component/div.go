// ABOUTME: Div container: lays out children, moves focus with arrow keys, forwards other input
// ABOUTME: Children with zero size take the rest of the div; AutoY stacks them vertically

package component

import (
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// Div is a generic container. The focused child receives events and the
// parent's render state; the others render idle. A key bound to a focus
// direction is consumed even when no sibling lies that way; rekey or drop
// those bindings to hand the arrows to a child.
type Div struct {
	elem tui.Element
}

// NewDiv creates a container with arrow-key focus movement.
func NewDiv(children ...tui.Widget) *Div {
	d := &Div{elem: tui.NewElement(tui.ChildrenContent(children...))}
	d.elem.Binds.
		Bind("up", tui.ActionFocusUp).
		Bind("down", tui.ActionFocusDown).
		Bind("left", tui.ActionFocusLeft).
		Bind("right", tui.ActionFocusRight)
	return d
}

// Element implements tui.Widget.
func (d *Div) Element() *tui.Element { return &d.elem }

// Append adds a child.
func (d *Div) Append(w tui.Widget) *Div {
	d.elem.Content.Append(w)
	return d
}

// Render implements tui.Widget.
func (d *Div) Render(state style.State) string {
	w, h := d.elem.Size()
	st := d.elem.StateFor(state)
	f := frameFor(d.elem.Computed(), st, w, h)
	defer tui.ReleaseFrame(f)
	layoutChildren(&d.elem, st, f)
	if d.elem.Layout().Border.Get() {
		outline(f, d.elem.Computed(), st)
	}
	return f.String()
}

// layoutChildren places and renders every child of e into f.
func layoutChildren(e *tui.Element, state style.State, f *tui.Frame) {
	ox, oy, iw, ih := inset(e)
	c := &e.Content
	auto := e.Layout().AutoY.Get()
	next := 0
	for i, ch := range c.Children() {
		ce := ch.Element()
		g := ce.Layout()
		x, y := g.X.Get(), g.Y.Get()
		if auto {
			y = next
		}
		cw, chh := g.Width.Get(), g.Height.Get()
		if cw <= 0 {
			cw = iw - x
		}
		if chh <= 0 {
			chh = ih - y
		}
		ce.Place(ox+x, oy+y, min(cw, iw-x), min(chh, ih-y))
		cs := style.Idle
		if i == c.Focus() {
			cs = state
		}
		n := tui.RenderTo(cs, f, ch)
		if auto {
			if h := g.Height.Get(); h > 0 {
				n = h
			}
			next = y + n
		}
	}
}

// Event implements tui.Widget.
func (d *Div) Event(ev tui.Event) tui.Response {
	c := &d.elem.Content
	if dir, ok := tui.DirectionFor(d.elem.Binds.Action(ev)); ok {
		c.SetFocus(tui.Closest(c.Children(), c.Focus(), dir))
		return tui.Handled()
	}
	ch := c.Focused()
	if ch == nil {
		return tui.None()
	}
	return tui.Apply(c, c.Focus(), tui.Send(ch, ev))
}

// Clone implements tui.Widget.
func (d *Div) Clone() tui.Widget {
	return &Div{elem: d.elem.CloneElement()}
}
