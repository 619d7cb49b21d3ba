// ABOUTME: Menu widget: a vertical list with cyclic up/down selection and an activation callback
// ABOUTME: Typing filters the items with fuzzy matching; escape clears the filter

package component

import (
	"strings"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/fuzzy"
	"github.com/mauromedda/gridtui/pkg/tui/key"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

// Menu actions.
const (
	ActionMenuUp   = "menuUp"
	ActionMenuDown = "menuDown"
	ActionSelect   = "select"
	ActionClear    = "clear"
)

const cursorMark = "> "

// Menu lists items and reports the chosen one to OnSelect, which runs on a
// clone whose state is adopted afterwards. Its response is returned to the
// parent unchanged.
type Menu struct {
	elem     tui.Element
	items    []string
	view     []int
	cursor   int
	query    string
	OnSelect func(m *Menu, index int, item string) tui.Response
}

// NewMenu creates a menu over items.
func NewMenu(items []string, onSelect func(m *Menu, index int, item string) tui.Response) *Menu {
	m := &Menu{elem: tui.NewElement(tui.NoContent()), OnSelect: onSelect}
	m.elem.Binds.
		Bind("up", ActionMenuUp).
		Bind("down", ActionMenuDown).
		Bind("enter", ActionSelect).
		Bind("escape", ActionClear)
	m.elem.Style.Selected.BG = style.Default(style.Magenta)
	m.elem.Style.Selected.FG = style.Default(style.Black)
	m.elem.Style.Base.CursorFG = style.Default(style.Magenta)
	m.SetItems(items)
	return m
}

// Element implements tui.Widget.
func (m *Menu) Element() *tui.Element { return &m.elem }

// SetItems replaces the list and clears the filter.
func (m *Menu) SetItems(items []string) {
	m.items = append([]string(nil), items...)
	m.query = ""
	m.refilter()
}

// Items returns the full item list.
func (m *Menu) Items() []string { return m.items }

// Query returns the active filter.
func (m *Menu) Query() string { return m.query }

// Visible returns the items that match the filter, in display order.
func (m *Menu) Visible() []string {
	out := make([]string, len(m.view))
	for i, idx := range m.view {
		out[i] = m.items[idx]
	}
	return out
}

// Selected returns the index into Items of the highlighted entry, or -1.
func (m *Menu) Selected() int {
	if len(m.view) == 0 {
		return -1
	}
	return m.view[m.cursor]
}

func (m *Menu) refilter() {
	m.view = fuzzy.Filter(m.query, m.items)
	m.cursor = 0
}

// Render implements tui.Widget.
func (m *Menu) Render(state style.State) string {
	st := m.elem.StateFor(state)
	comp := m.elem.Computed()
	pad := strings.Repeat(" ", len(cursorMark))
	lines := make([]string, 0, len(m.view)+1)
	if m.query != "" {
		lines = append(lines, comp.Write(st, "/"+m.query))
	}
	for i, idx := range m.view {
		if i == m.cursor {
			lines = append(lines, comp.WriteCursor(st, cursorMark)+comp.Write(style.Selected, m.items[idx]))
			continue
		}
		lines = append(lines, comp.Write(st, pad+m.items[idx]))
	}
	if _, _, w, _ := inset(&m.elem); w > 0 {
		for i, l := range lines {
			lines[i] = width.TruncateToWidth(l, w)
		}
	}
	return boxed(&m.elem, st, strings.Join(lines, "\n"))
}

// Event implements tui.Widget.
func (m *Menu) Event(ev tui.Event) tui.Response {
	n := len(m.view)
	switch m.elem.Binds.Action(ev) {
	case ActionMenuUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
		return tui.Handled()
	case ActionMenuDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
		return tui.Handled()
	case ActionSelect:
		return m.activate()
	case ActionClear:
		if m.query == "" {
			return tui.None()
		}
		m.query = ""
		m.refilter()
		return tui.Handled()
	}
	switch e := ev.(type) {
	case tui.PasteEvent:
		m.query += e.Text
	case tui.KeyEvent:
		switch {
		case e.Key.Type == key.KeyBackspace && m.query != "":
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
		case e.Key.Printable():
			m.query += string(e.Key.Rune)
		default:
			return tui.None()
		}
	default:
		return tui.None()
	}
	m.refilter()
	return tui.Handled()
}

func (m *Menu) activate() tui.Response {
	idx := m.Selected()
	if idx < 0 {
		return tui.None()
	}
	if m.OnSelect == nil {
		return tui.Handled()
	}
	cp := m.clone()
	var resp tui.Response
	if err := tui.Guard("menu "+m.elem.ID, func() { resp = m.OnSelect(cp, idx, m.items[idx]) }); err != nil {
		return tui.Handled()
	}
	*m = *cp
	resp.Handled = true
	return resp
}

func (m *Menu) clone() *Menu {
	cp := *m
	cp.elem = m.elem.CloneElement()
	cp.items = append([]string(nil), m.items...)
	cp.view = append([]int(nil), m.view...)
	return &cp
}

// Clone implements tui.Widget.
func (m *Menu) Clone() tui.Widget { return m.clone() }
