// ABOUTME: Shared test doubles for the tui package: a configurable leaf and a container
// ABOUTME: They record events and ticks so dispatch and scheduling can be asserted

package tui

import "github.com/mauromedda/gridtui/pkg/tui/style"

type mockWidget struct {
	elem   Element
	text   string
	events []Event
	resp   Response
	ticks  []int
	states []style.State
}

func newMock(id string, x, y int, text string) *mockWidget {
	m := &mockWidget{elem: NewElement(TextContent(text)), text: text}
	m.elem.ID = id
	m.elem.X.Set(x)
	m.elem.Y.Set(y)
	return m
}

func (m *mockWidget) Element() *Element { return &m.elem }

func (m *mockWidget) Render(state style.State) string {
	st := m.elem.StateFor(state)
	m.states = append(m.states, st)
	return m.elem.Computed().Write(st, m.text)
}

func (m *mockWidget) Event(ev Event) Response {
	m.events = append(m.events, ev)
	return m.resp
}

func (m *mockWidget) Clone() Widget {
	c := *m
	c.elem = m.elem.CloneElement()
	c.events = append([]Event(nil), m.events...)
	c.ticks = append([]int(nil), m.ticks...)
	return &c
}

func (m *mockWidget) Tick(i int) error {
	m.ticks = append(m.ticks, i)
	if m.text == "panic" {
		panic("tick exploded")
	}
	return nil
}

// mockBox forwards events to its focused child and renders children into
// a frame, the way real containers do.
type mockBox struct {
	elem Element
}

func newBox(id string, children ...Widget) *mockBox {
	b := &mockBox{elem: NewElement(ChildrenContent(children...))}
	b.elem.ID = id
	return b
}

func (b *mockBox) Element() *Element { return &b.elem }

func (b *mockBox) Render(state style.State) string {
	w, h := b.elem.Size()
	f := NewFrame(w, h)
	c := &b.elem.Content
	for i, ch := range c.Children() {
		ce := ch.Element()
		x, y := ce.Layout().X.Get(), ce.Layout().Y.Get()
		ce.Place(x, y, w-x, h-y)
		st := style.Idle
		if i == c.Focus() {
			st = state
		}
		RenderTo(st, f, ch)
	}
	return f.String()
}

func (b *mockBox) Event(ev Event) Response {
	if d, ok := DirectionFor(b.elem.Binds.Action(ev)); ok {
		c := &b.elem.Content
		c.SetFocus(Closest(c.Children(), c.Focus(), d))
		return Handled()
	}
	c := &b.elem.Content
	ch := c.Focused()
	if ch == nil {
		return None()
	}
	return Apply(c, c.Focus(), Send(ch, ev))
}

func (b *mockBox) Clone() Widget {
	c := *b
	c.elem = b.elem.CloneElement()
	return &c
}
