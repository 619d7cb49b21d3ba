// ABOUTME: Tests for the widget set: Text, Button, Div, Tab and borders
// ABOUTME: Rendering is checked on plain text; Button activation runs through the runtime

package component

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

func plain(s string) []string {
	return strings.Split(width.StripANSI(s), "\n")
}

func at[W tui.Widget](w W, x, y int) W {
	e := w.Element()
	e.X.Set(x)
	e.Y.Set(y)
	return w
}

func TestText_RenderAndIgnoreEvents(t *testing.T) {
	t.Parallel()

	txt := NewText("hello")
	assert.Equal(t, "hello", txt.Render(style.Idle))
	assert.False(t, txt.Event(tui.Press("enter")).Handled)

	txt.SetText("bye")
	assert.Equal(t, "bye", txt.Text())
}

func TestText_Border(t *testing.T) {
	t.Parallel()

	txt := NewText("hi")
	txt.elem.Width.Set(5)
	txt.elem.Height.Set(3)
	txt.elem.Border.Set(true)

	assert.Equal(t, []string{"┌───┐", "│hi │", "└───┘"}, plain(txt.Render(style.Idle)))
}

func TestText_Wrap(t *testing.T) {
	t.Parallel()

	txt := NewText("one two three")
	txt.elem.Width.Set(7)
	assert.Equal(t, []string{"one two three"}, plain(txt.Render(style.Idle)), "no wrap by default")

	txt.Wrap = true
	assert.Equal(t, []string{"one two", "three"}, plain(txt.Render(style.Idle)))

	cp := txt.Clone().(*Text)
	assert.True(t, cp.Wrap)
}

func TestButton_ActivationScenario(t *testing.T) {
	t.Parallel()

	var calls int
	b := NewButton("ok", func(*Button) { calls++ })
	r := tui.New(b, tui.Options{Width: 4, Height: 1})

	r.Dispatch(tui.Press("enter"))
	assert.True(t, b.Clicked(), "enter switches to the clicked state")
	assert.Equal(t, 1, calls)
	assert.True(t, r.Pending())

	for range DefaultClickTicks - 1 {
		r.Advance()
	}
	assert.True(t, b.Clicked(), "still clicked before the delay elapses")
	assert.Equal(t, 1, calls)

	r.Advance()
	assert.False(t, b.Clicked())
	assert.Equal(t, 2, calls, "revert invokes the callback again")
	assert.False(t, r.Pending())
	assert.Equal(t, 2, b.Clicks)
}

func TestButton_ClickedStyleDefaults(t *testing.T) {
	t.Parallel()

	b := NewButton("ok", nil)
	b.elem.Style.Clicked.BG.TrySet(style.Blue)
	assert.Equal(t, style.Blue, b.elem.Style.Resolve(style.Clicked).BG, "author value replaces the widget default")
	assert.Equal(t, style.Black, b.elem.Style.Resolve(style.Clicked).FG)
}

func TestButton_Toggle(t *testing.T) {
	t.Parallel()

	b := NewButton("t", nil)
	b.Toggle = true

	resp := b.Event(tui.Press("enter"))
	assert.True(t, resp.Handled)
	assert.Empty(t, resp.Animations)
	assert.True(t, b.Clicked())

	b.Event(tui.Press("enter"))
	assert.False(t, b.Clicked())
	assert.Equal(t, 2, b.Clicks)
}

func TestButton_PanickingCallback(t *testing.T) {
	t.Parallel()

	b := NewButton("boom", func(b *Button) {
		b.SetLabel("changed")
		panic("callback failed")
	})
	err := b.Tick(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tui.ErrPoisoned))
	assert.Equal(t, "boom", b.Label(), "state from a failed callback is discarded")
}

func TestButton_CallbackMutatesLabel(t *testing.T) {
	t.Parallel()

	b := NewButton("0", func(b *Button) { b.SetLabel(strings.Repeat("+", b.Clicks)) })
	require.NoError(t, b.Tick(0))
	assert.Equal(t, "+", b.Label())
	require.NoError(t, b.Tick(1))
	assert.Equal(t, "++", b.Label())
}

func TestDiv_RenderComposesChildren(t *testing.T) {
	t.Parallel()

	d := NewDiv(at(NewText("a"), 0, 0), at(NewText("b"), 2, 0))
	d.elem.Width.Set(4)
	d.elem.Height.Set(1)

	assert.Equal(t, []string{"a b "}, plain(d.Render(style.Hovered)))
}

func TestDiv_AutoYStacks(t *testing.T) {
	t.Parallel()

	d := NewDiv(NewText("a"), NewText("bc"))
	d.elem.Width.Set(3)
	d.elem.Height.Set(3)
	d.elem.AutoY.Set(true)

	assert.Equal(t, []string{"a  ", "bc ", "   "}, plain(d.Render(style.Hovered)))
}

func TestDiv_FocusedChildGetsState(t *testing.T) {
	t.Parallel()

	a, b := at(NewText("a"), 0, 0), at(NewText("b"), 2, 0)
	a.elem.Style.Hover.FG = style.Custom(style.Red)
	b.elem.Style.Hover.FG = style.Custom(style.Red)
	d := NewDiv(a, b)
	d.elem.Width.Set(4)
	d.elem.Height.Set(1)

	out := d.Render(style.Hovered)
	assert.Contains(t, out, style.Red.FG()+"a")
	assert.NotContains(t, out, style.Red.FG()+"b")
}

func TestDiv_ArrowKeysMoveFocus(t *testing.T) {
	t.Parallel()

	d := NewDiv(
		at(NewText("a"), 0, 0),
		at(NewText("b"), 0, 1),
		at(NewText("c"), 0, 2),
		at(NewText("d"), 1, 0),
	)

	assert.True(t, d.Event(tui.Press("down")).Handled)
	assert.Equal(t, 1, d.elem.Content.Focus(), "nearest on-axis sibling")

	d.elem.Content.SetFocus(0)
	d.Event(tui.Press("right"))
	assert.Equal(t, 3, d.elem.Content.Focus())

	d.Event(tui.Press("right"))
	assert.Equal(t, 3, d.elem.Content.Focus(), "no candidate keeps focus")
}

func TestDiv_UnmovedArrowIsConsumed(t *testing.T) {
	t.Parallel()

	m := NewMenu([]string{"a", "b", "c"}, nil)
	d := NewDiv(m)

	assert.True(t, d.Event(tui.Press("down")).Handled)
	assert.Equal(t, 0, m.Selected(), "the div keeps its bound arrow")
	assert.Equal(t, 0, d.elem.Content.Focus())
}

func TestDiv_DroppedArrowsReachChild(t *testing.T) {
	t.Parallel()

	m := NewMenu([]string{"a", "b", "c"}, nil)
	d := NewDiv(m)
	d.elem.Binds.Rekey(map[string][]string{tui.ActionFocusUp: nil, tui.ActionFocusDown: nil})

	d.Event(tui.Press("down"))
	assert.Equal(t, 1, m.Selected())
}

func TestDiv_SplicesReplaceSelf(t *testing.T) {
	t.Parallel()

	next := NewText("next")
	m := NewMenu([]string{"go"}, func(*Menu, int, string) tui.Response {
		return tui.ReplaceSelf(next)
	})
	d := NewDiv(m)

	resp := d.Event(tui.Press("enter"))
	assert.True(t, resp.Handled)
	assert.False(t, resp.Structural(), "the div consumes the replacement")
	assert.Same(t, tui.Widget(next), d.elem.Content.Child(0))
}

func TestDiv_PropagatesUnmatchedReplaceByID(t *testing.T) {
	t.Parallel()

	next := NewText("next")
	m := NewMenu([]string{"go"}, func(*Menu, int, string) tui.Response {
		return tui.ReplaceByID("elsewhere", next)
	})
	d := NewDiv(m)

	resp := d.Event(tui.Press("enter"))
	assert.Equal(t, tui.RespReplaceByID, resp.Kind)
	assert.Equal(t, "elsewhere", resp.ID)
}

func TestTab_CyclesAndDrawsIndicator(t *testing.T) {
	t.Parallel()

	tab := NewTab(NewText("one"), NewText("two"))
	tab.elem.Width.Set(5)
	tab.elem.Height.Set(2)

	assert.Equal(t, []string{" **  ", "one  "}, plain(tab.Render(style.Hovered)))

	tab.Event(tui.Press("tab"))
	assert.Equal(t, 1, tab.Current())
	assert.Equal(t, []string{" **  ", "two  "}, plain(tab.Render(style.Hovered)))

	tab.Event(tui.Press("tab"))
	assert.Equal(t, 0, tab.Current(), "wraps forward")
	tab.Event(tui.Press("shift+tab"))
	assert.Equal(t, 1, tab.Current(), "wraps backward")
}

func TestTab_IndicatorMarksCurrent(t *testing.T) {
	t.Parallel()

	tab := NewTab(NewText("one"), NewText("two"))
	tab.elem.Width.Set(5)
	tab.elem.Height.Set(2)
	tab.Event(tui.Press("tab"))

	first := strings.Split(tab.Render(style.Hovered), "\n")[0]
	red := style.Red.FG()
	assert.Equal(t, 1, strings.Count(first, red))
	assert.Less(t, strings.Index(first, "*"), strings.Index(first, red), "second marker is highlighted")
}

func TestTab_ForwardsOtherKeys(t *testing.T) {
	t.Parallel()

	b := NewButton("b", nil)
	b.Toggle = true
	tab := NewTab(b)

	tab.Event(tui.Press("enter"))
	assert.True(t, b.Clicked())
}
