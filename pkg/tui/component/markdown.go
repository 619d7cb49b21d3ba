// ABOUTME: Markdown widget: renders its text content through glamour at the placed width
// ABOUTME: Keeps the last rendering keyed by source and width; up/down scroll the view

package component

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/gridtui/internal/log"
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

// Scroll actions.
const (
	ActionScrollUp   = "scrollUp"
	ActionScrollDown = "scrollDown"
	ActionPageUp     = "pageUp"
	ActionPageDown   = "pageDown"
)

// DefaultMarkdownStyle is the glamour standard style used when none is set.
const DefaultMarkdownStyle = "dark"

type rendered struct {
	src   string
	width int
	lines []string
}

// Markdown displays formatted markdown.
type Markdown struct {
	elem tui.Element
	// Glamour is a glamour standard style name such as "dark", "light"
	// or "notty".
	Glamour string
	offset  int
	cache   rendered
}

// NewMarkdown creates a markdown view of src.
func NewMarkdown(src string) *Markdown {
	m := &Markdown{elem: tui.NewElement(tui.TextContent(src)), Glamour: DefaultMarkdownStyle}
	m.elem.Binds.
		Bind("up", ActionScrollUp).
		Bind("down", ActionScrollDown).
		Bind("pgup", ActionPageUp).
		Bind("pgdown", ActionPageDown)
	return m
}

// Element implements tui.Widget.
func (m *Markdown) Element() *tui.Element { return &m.elem }

// SetSource replaces the markdown and scrolls to the top.
func (m *Markdown) SetSource(src string) {
	m.elem.Content.SetText(src)
	m.offset = 0
}

// Offset returns the first displayed line.
func (m *Markdown) Offset() int { return m.offset }

// lines renders the source for width, reusing the previous result.
func (m *Markdown) lines(cols int) []string {
	src := m.elem.Content.Text()
	if m.cache.lines != nil && m.cache.src == src && m.cache.width == cols {
		return m.cache.lines
	}
	out := src
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.Glamour),
		glamour.WithWordWrap(cols),
	)
	if err == nil {
		out, err = r.Render(src)
	}
	if err != nil {
		log.Warn("markdown: rendering failed, showing source: %v", err)
		out = src
	}
	out = strings.ReplaceAll(strings.TrimRight(out, "\n "), "\t", "    ")
	m.cache = rendered{src: src, width: cols, lines: strings.Split(out, "\n")}
	return m.cache.lines
}

// Render implements tui.Widget.
func (m *Markdown) Render(state style.State) string {
	st := m.elem.StateFor(state)
	_, _, w, h := inset(&m.elem)
	lines := m.lines(w)
	m.offset = clampOffset(m.offset, len(lines), h)
	if h > 0 && len(lines) > h {
		lines = lines[m.offset : m.offset+h]
	}
	if w > 0 {
		clipped := make([]string, len(lines))
		for i, l := range lines {
			clipped[i] = width.SliceByColumn(l, 0, w)
		}
		lines = clipped
	}
	return boxed(&m.elem, st, strings.Join(lines, "\n"))
}

func clampOffset(off, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	return max(min(off, total-height), 0)
}

// Event implements tui.Widget.
func (m *Markdown) Event(ev tui.Event) tui.Response {
	_, _, _, h := inset(&m.elem)
	page := max(h-1, 1)
	before := m.offset
	switch m.elem.Binds.Action(ev) {
	case ActionScrollUp:
		m.offset--
	case ActionScrollDown:
		m.offset++
	case ActionPageUp:
		m.offset -= page
	case ActionPageDown:
		m.offset += page
	default:
		return tui.None()
	}
	m.offset = clampOffset(m.offset, len(m.cache.lines), h)
	if m.offset == before {
		return tui.None()
	}
	return tui.Handled()
}

// Clone implements tui.Widget.
func (m *Markdown) Clone() tui.Widget {
	cp := *m
	cp.elem = m.elem.CloneElement()
	cp.cache.lines = append([]string(nil), m.cache.lines...)
	return &cp
}
