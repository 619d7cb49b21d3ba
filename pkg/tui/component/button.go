// ABOUTME: Button widget: Enter flashes the clicked state for a few ticks and calls OnClick
// ABOUTME: Toggle buttons flip the clicked state instead; callbacks run on a private clone

package component

import (
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// ActionClick activates a button.
const ActionClick = "click"

// DefaultClickTicks is how long a button stays clicked.
const DefaultClickTicks = 12

// Button calls OnClick when the clicked state is entered and again when
// it reverts. Toggle buttons call it once per flip.
type Button struct {
	elem    tui.Element
	OnClick func(b *Button)
	Toggle  bool
	Delay   int
	Clicks  int
}

// NewButton creates a button bound to enter.
func NewButton(label string, onClick func(b *Button)) *Button {
	b := &Button{elem: tui.NewElement(tui.TextContent(label)), OnClick: onClick, Delay: DefaultClickTicks}
	b.elem.Binds.Bind("enter", ActionClick)
	b.elem.Style.Clicked.BG = style.Default(style.White)
	b.elem.Style.Clicked.FG = style.Default(style.Black)
	return b
}

// Element implements tui.Widget.
func (b *Button) Element() *tui.Element { return &b.elem }

// Label returns the button text.
func (b *Button) Label() string { return b.elem.Content.Text() }

// SetLabel replaces the button text.
func (b *Button) SetLabel(s string) { b.elem.Content.SetText(s) }

// Clicked reports whether the button shows the clicked state.
func (b *Button) Clicked() bool { return b.elem.Flags.Clicked }

// Render implements tui.Widget.
func (b *Button) Render(state style.State) string {
	st := b.elem.StateFor(state)
	return boxed(&b.elem, st, b.elem.Computed().Write(st, b.Label()))
}

// Event implements tui.Widget.
func (b *Button) Event(ev tui.Event) tui.Response {
	if b.elem.Binds.Action(ev) != ActionClick {
		return tui.None()
	}
	if b.Toggle {
		b.elem.Flags.Clicked = !b.elem.Flags.Clicked
		if err := b.invoke(); err != nil {
			b.elem.Flags.Clicked = !b.elem.Flags.Clicked
		}
		return tui.Handled()
	}
	return tui.Handled().Animate(b,
		tui.Step{State: style.Clicked},
		tui.Step{State: style.Idle, Delay: b.Delay},
	)
}

// Tick implements tui.Ticker: step 0 enters the clicked state, step 1
// reverts it. Both call OnClick.
func (b *Button) Tick(i int) error {
	switch i {
	case 0:
		b.elem.Flags.Clicked = true
	case 1:
		b.elem.Flags.Clicked = false
	default:
		return nil
	}
	return b.invoke()
}

// invoke runs OnClick on a clone and adopts the clone when it returns.
func (b *Button) invoke() error {
	if b.OnClick == nil {
		b.Clicks++
		return nil
	}
	cp := b.clone()
	cp.Clicks++
	if err := tui.Guard("button "+b.elem.ID, func() { b.OnClick(cp) }); err != nil {
		return err
	}
	*b = *cp
	return nil
}

func (b *Button) clone() *Button {
	cp := *b
	cp.elem = b.elem.CloneElement()
	return &cp
}

// Clone implements tui.Widget.
func (b *Button) Clone() tui.Widget {
	return b.clone()
}
