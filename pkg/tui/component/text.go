// ABOUTME: Static text widget; renders its content in the style of its state
// ABOUTME: Optionally word-wraps to its width; ignores every event

package component

import (
	"strings"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

// Text renders static text content. With Wrap set, lines longer than the
// available width break at spaces.
type Text struct {
	elem tui.Element
	Wrap bool
}

// NewText creates a Text widget.
func NewText(content string) *Text {
	return &Text{elem: tui.NewElement(tui.TextContent(content))}
}

// Element implements tui.Widget.
func (t *Text) Element() *tui.Element { return &t.elem }

// Text returns the displayed text.
func (t *Text) Text() string { return t.elem.Content.Text() }

// SetText replaces the displayed text.
func (t *Text) SetText(s string) { t.elem.Content.SetText(s) }

// Render implements tui.Widget.
func (t *Text) Render(state style.State) string {
	st := t.elem.StateFor(state)
	body := t.elem.Computed().Write(st, t.Text())
	if _, _, w, _ := inset(&t.elem); t.Wrap && w > 0 {
		body = strings.Join(width.WrapTextWithAnsi(body, w), "\n")
	}
	return boxed(&t.elem, st, body)
}

// Event implements tui.Widget.
func (t *Text) Event(tui.Event) tui.Response { return tui.None() }

// Clone implements tui.Widget.
func (t *Text) Clone() tui.Widget {
	return &Text{elem: t.elem.CloneElement(), Wrap: t.Wrap}
}
