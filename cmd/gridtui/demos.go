// ABOUTME: Demo widget trees: counter, todo, login, menu, tabs and markdown
// ABOUTME: Handlers reach the tree only through the client; hints sit off the focus axes

package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/mauromedda/gridtui/internal/log"
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/component"
	"github.com/mauromedda/gridtui/pkg/tui/theme"
)

// handlerTimeout bounds every client round trip a demo handler makes.
const handlerTimeout = 2 * time.Second

var demos = map[string]func() tui.Widget{
	"counter":  counterDemo,
	"todo":     todoDemo,
	"login":    loginDemo,
	"menu":     menuDemo,
	"tabs":     tabsDemo,
	"markdown": markdownDemo,
}

func demoNames() []string {
	return slices.Sorted(maps.Keys(demos))
}

// column stacks children vertically.
func column(children ...tui.Widget) *component.Div {
	d := component.NewDiv(children...)
	d.Element().AutoY.Set(true)
	return d
}

// tabFocus moves d's focus changes to tab and shift+tab so the arrow keys
// reach the focused field.
func tabFocus(d *component.Div) *component.Div {
	d.Element().Binds.Rekey(map[string][]string{
		tui.ActionFocusUp:    {"shift+tab"},
		tui.ActionFocusDown:  {"tab"},
		tui.ActionFocusLeft:  nil,
		tui.ActionFocusRight: nil,
	})
	return d
}

// hint is a one-row text indented by one column so vertical focus moves
// between x=0 widgets never land on it.
func hint(id, class, s string) *component.Text {
	t := component.NewText(s)
	e := t.Element()
	e.ID, e.Class = id, class
	e.X.Set(1)
	e.Height.Set(1)
	return t
}

func button(id, label string, onClick func(*component.Button)) *component.Button {
	b := component.NewButton(label, onClick)
	b.Element().ID = id
	b.Element().Class = theme.ClassButton
	return b
}

func newField(id, placeholder string) *component.Input {
	in := component.NewInput(placeholder)
	in.Element().ID = id
	in.Element().Class = theme.ClassInput
	in.Element().Height.Set(1)
	return in
}

func newCounter() *component.Button {
	b := button("counter", "pressed 0 times", func(b *component.Button) {
		if b.Clicked() {
			b.SetLabel(fmt.Sprintf("pressed %d times", (b.Clicks+1)/2))
		}
	})
	b.Element().Width.Set(20)
	b.Element().Height.Set(1)
	return b
}

func counterDemo() tui.Widget {
	reset := button("reset", "reset", nil)
	reset.Element().X.Set(22)
	reset.Element().Width.Set(7)
	reset.Element().Height.Set(1)
	reset.Element().Binds.Handle("enter", func(_ tui.Widget, _ tui.Event, c *tui.Client) {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()
		if err := c.Replace(ctx, "counter", newCounter()); err != nil {
			log.Warn("counter: reset: %v", err)
		}
	})

	help := hint("help", theme.ClassStatus, "enter presses, left/right moves, ctrl+c quits")
	help.Element().Y.Set(2)

	root := component.NewDiv(newCounter(), reset, help)
	root.Element().Class = theme.ClassRoot
	return root
}

func todoDemo() tui.Widget {
	list := component.NewMenu(nil, func(m *component.Menu, i int, _ string) tui.Response {
		m.SetItems(slices.Delete(slices.Clone(m.Items()), i, i+1))
		return tui.None()
	})
	list.Element().ID = "todo-list"
	list.Element().Class = theme.ClassMenu
	list.Element().Height.Set(8)

	entry := newField("todo-entry", "what needs doing?")
	entry.OnSubmit(addTodo)

	root := tabFocus(column(
		hint("todo-title", theme.ClassTitle, "todo: enter adds, enter on an item completes it, tab switches"),
		list,
		entry,
	))
	root.Element().Class = theme.ClassRoot
	root.Element().Content.SetFocus(2)
	return root
}

func addTodo(self tui.Widget, _ tui.Event, c *tui.Client) {
	in, ok := self.(*component.Input)
	if !ok {
		return
	}
	text := strings.TrimSpace(in.Value())
	if text == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	w, err := c.GetElementByID(ctx, "todo-list")
	if err != nil {
		log.Warn("todo: %v", err)
		return
	}
	list, ok := w.(*component.Menu)
	if !ok {
		return
	}
	list.SetItems(append(list.Items(), text))
	if err := c.Replace(ctx, "todo-list", list); err != nil {
		log.Warn("todo: %v", err)
		return
	}
	in.SetValue("")
	if err := c.Replace(ctx, "todo-entry", in); err != nil {
		log.Warn("todo: %v", err)
	}
}

func loginDemo() tui.Widget {
	user := newField("login-user", "user")
	pass := newField("login-pass", "password")
	pass.Mask = '*'
	pass.OnSubmit(signIn)

	submit := button("login-submit", "sign in", nil)
	submit.Element().Width.Set(9)
	submit.Element().Height.Set(1)
	submit.Element().Binds.Handle("enter", signIn)

	root := tabFocus(column(
		hint("login-title", theme.ClassTitle, "sign in"),
		user,
		pass,
		submit,
		hint("login-status", theme.ClassStatus, ""),
	))
	root.Element().Class = theme.ClassRoot
	root.Element().Content.SetFocus(1)
	return root
}

// signIn reads both fields and reports the outcome in the status line.
func signIn(_ tui.Widget, _ tui.Event, c *tui.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	value := func(id string) string {
		w, err := c.GetElementByID(ctx, id)
		if err != nil {
			log.Warn("login: %v", err)
			return ""
		}
		if in, ok := w.(*component.Input); ok {
			return in.Value()
		}
		return ""
	}
	user, pass := strings.TrimSpace(value("login-user")), value("login-pass")

	status := hint("login-status", theme.ClassStatus, "welcome, "+user)
	switch {
	case user == "":
		status = hint("login-status", theme.ClassError, "user is required")
	case len(pass) < 4:
		status = hint("login-status", theme.ClassError, "password needs at least 4 characters")
	}
	if err := c.Replace(ctx, "login-status", status); err != nil {
		log.Warn("login: %v", err)
	}
}

var fruits = []string{"apple", "banana", "cherry", "durian", "elderberry", "fig", "grape", "kiwi", "lemon", "mango"}

func menuDemo() tui.Widget {
	m := component.NewMenu(fruits, func(_ *component.Menu, _ int, item string) tui.Response {
		return tui.ReplaceByID("menu-picked", hint("menu-picked", theme.ClassStatus, "picked "+item))
	})
	m.Element().ID = "menu"
	m.Element().Class = theme.ClassMenu
	m.Element().Width.Set(16)

	info := column(
		hint("menu-title", theme.ClassTitle, "type to filter, escape clears"),
		hint("menu-picked", theme.ClassStatus, "nothing picked"),
	)
	info.Element().ID = "menu-info"
	info.Element().X.Set(18)

	// Up and down belong to the menu; left and right still move focus.
	root := component.NewDiv(m, info)
	root.Element().Binds.Rekey(map[string][]string{tui.ActionFocusUp: nil, tui.ActionFocusDown: nil})
	root.Element().Class = theme.ClassRoot
	return root
}

const aboutText = "Every widget renders into a frame of its own size; " +
	"the parent merges the result at the child's position. " +
	"Focus follows the path of focused children from the root."

func tabsDemo() tui.Widget {
	buttons := component.NewDiv(
		button("tab-a", "first", nil),
		button("tab-b", "second", nil),
	)
	for i, w := range buttons.Element().Content.Children() {
		e := w.Element()
		e.X.Set(i * 10)
		e.Width.Set(8)
		e.Height.Set(1)
	}

	about := component.NewText(aboutText)
	about.Wrap = true

	notes := component.NewMarkdown("# Tabs\n\n- `tab` shows the next page\n- `shift+tab` the previous one\n")

	root := component.NewTab(buttons, about, notes)
	root.Element().Class = theme.ClassTab
	return root
}

const markdownDoc = `# gridtui

A terminal runtime for widget trees.

## Keys

- up and down scroll
- pgup and pgdown move a page
- ctrl+c quits

## Layout

Children are placed relative to their parent. A div with auto_y stacks
them, each one starting below the previous.
`

func markdownDemo() tui.Widget {
	md := component.NewMarkdown(markdownDoc)
	md.Element().ID = "doc"

	root := tabFocus(column(hint("md-title", theme.ClassTitle, "markdown viewer"), md))
	root.Element().Class = theme.ClassRoot
	root.Element().Content.SetFocus(1)
	return root
}
