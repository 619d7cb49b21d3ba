// ABOUTME: Widget capability interface and the Element record every widget embeds
// ABOUTME: Element keeps authored geometry/style apart from the per-pass computed values

package tui

import (
	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// Widget is a renderable, event-responsive tree node.
type Widget interface {
	// Element returns the widget's node record. It must be stable for the
	// widget's lifetime.
	Element() *Element
	// Render draws the widget for the state its parent hands down.
	Render(state style.State) string
	// Event handles one input event and declares any structural change.
	Event(ev Event) Response
	// Clone returns a deep copy sharing no mutable state.
	Clone() Widget
}

// Ticker is implemented by widgets that react to scheduled animation steps.
// Tick receives the index of the step being applied.
type Ticker interface {
	Tick(i int) error
}

// Flags are a widget's interaction flags.
type Flags struct {
	Active   bool // on the focus path
	Clicked  bool
	Selected bool
}

// Element is the shared node record: identity, authored attributes,
// interaction flags and content.
type Element struct {
	ID    string
	Class string
	style.Geometry
	Style   style.Style
	Binds   Bindings
	Flags   Flags
	Content Content

	resolved bool
	computed style.Style
	geom     style.Geometry
	placed   bool
	x, y     int
	w, h     int
}

// NewElement returns an element with the given content.
func NewElement(c Content) Element {
	return Element{Content: c, Binds: Bindings{}}
}

// Resolve recomputes the effective style and geometry: authored values
// first, then sheet rules for the element's classes where still unset.
func (e *Element) Resolve(sheet style.Sheet) {
	e.computed = e.Style
	e.geom = e.Geometry
	sheet.Apply(e.Class, &e.computed, &e.geom)
	e.resolved = true
}

// Computed returns the effective style.
func (e *Element) Computed() style.Style {
	if !e.resolved {
		return e.Style
	}
	return e.computed
}

// Layout returns the effective authored geometry.
func (e *Element) Layout() style.Geometry {
	if !e.resolved {
		return e.Geometry
	}
	return e.geom
}

// Place records the position and size chosen by the parent for this pass.
func (e *Element) Place(x, y, w, h int) {
	e.placed = true
	e.x, e.y = x, y
	e.w, e.h = max(w, 0), max(h, 0)
}

// Pos returns the placed position, or the authored one before layout.
func (e *Element) Pos() (int, int) {
	if e.placed {
		return e.x, e.y
	}
	g := e.Layout()
	return g.X.Get(), g.Y.Get()
}

// Size returns the placed size, or the authored one before layout.
func (e *Element) Size() (int, int) {
	if e.placed {
		return e.w, e.h
	}
	g := e.Layout()
	return g.Width.Get(), g.Height.Get()
}

// StateFor derives the element's render state from its parent's.
func (e *Element) StateFor(parent style.State) style.State {
	switch {
	case e.Flags.Clicked:
		return style.Clicked
	case e.Flags.Selected:
		return style.Selected
	}
	return parent
}

// CloneElement deep-copies the record, cloning children.
func (e *Element) CloneElement() Element {
	out := *e
	out.Binds = e.Binds.clone()
	out.Content = e.Content.clone()
	return out
}

// Send delivers ev to w. A key bound to a handler becomes a deferred Call
// run off the loop on a clone; anything else goes to w.Event.
func Send(w Widget, ev Event) Response {
	if ke, ok := ev.(KeyEvent); ok {
		if b, ok := w.Element().Binds.Lookup(ke.Key); ok && b.Handler != nil {
			return None().WithCall(Call{Handler: b.Handler, Self: w.Clone(), Event: ev})
		}
	}
	return w.Event(ev)
}
