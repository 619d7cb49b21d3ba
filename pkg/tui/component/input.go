// ABOUTME: Single-line text input with a caret, emacs-style editing keys, kill ring and undo
// ABOUTME: Inserted text is NFC-normalized; enter can be bound to an off-loop submit handler

package component

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/gridtui/internal/log"
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/clipboard"
	"github.com/mauromedda/gridtui/pkg/tui/internal/killring"
	"github.com/mauromedda/gridtui/pkg/tui/internal/undo"
	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// Input editing actions.
const (
	ActionCaretLeft  = "caretLeft"
	ActionCaretRight = "caretRight"
	ActionCaretHome  = "caretHome"
	ActionCaretEnd   = "caretEnd"
	ActionWordLeft   = "wordLeft"
	ActionWordRight  = "wordRight"
	ActionBackspace  = "backspace"
	ActionDelete     = "delete"
	ActionKillEnd    = "killEnd"
	ActionKillStart  = "killStart"
	ActionKillWord   = "killWord"
	ActionYank       = "yank"
	ActionYankPop    = "yankPop"
	ActionUndo       = "undo"
	ActionRedo       = "redo"
)

const undoDepth = 64

type snapshot struct {
	text  []rune
	caret int
}

// Input is a one-line editor. Mask, when set, replaces every displayed
// rune.
type Input struct {
	elem        tui.Element
	text        []rune
	caret       int
	Placeholder string
	Mask        rune

	kills    *killring.Ring
	history  *undo.History[snapshot]
	lastKill bool
	lastYank int
}

// NewInput creates an empty input.
func NewInput(placeholder string) *Input {
	in := &Input{
		elem:        tui.NewElement(tui.NoContent()),
		Placeholder: placeholder,
		kills:       killring.New(killring.DefaultSize),
		history:     undo.New[snapshot](undoDepth),
		lastYank:    -1,
	}
	in.elem.Binds.
		Bind("left", ActionCaretLeft).
		Bind("ctrl+b", ActionCaretLeft).
		Bind("right", ActionCaretRight).
		Bind("ctrl+f", ActionCaretRight).
		Bind("home", ActionCaretHome).
		Bind("ctrl+a", ActionCaretHome).
		Bind("end", ActionCaretEnd).
		Bind("ctrl+e", ActionCaretEnd).
		Bind("alt+b", ActionWordLeft).
		Bind("alt+f", ActionWordRight).
		Bind("backspace", ActionBackspace).
		Bind("delete", ActionDelete).
		Bind("ctrl+d", ActionDelete).
		Bind("ctrl+k", ActionKillEnd).
		Bind("ctrl+u", ActionKillStart).
		Bind("ctrl+w", ActionKillWord).
		Bind("ctrl+y", ActionYank).
		Bind("alt+y", ActionYankPop).
		Bind("ctrl+z", ActionUndo).
		Bind("ctrl+r", ActionRedo).
		Handle("alt+w", copyValue)
	in.elem.Style.Base.CursorBG = style.Default(style.White)
	in.elem.Style.Base.CursorFG = style.Default(style.Black)
	return in
}

// OnSubmit binds enter to h. The handler runs off the loop on a clone
// of the input and talks back through the client.
func (in *Input) OnSubmit(h tui.Handler) *Input {
	in.elem.Binds.Handle("enter", h)
	return in
}

// copyValue puts an unmasked input's text on the system clipboard. The
// clipboard command can block, so it is bound as a handler.
func copyValue(self tui.Widget, _ tui.Event, _ *tui.Client) {
	in, ok := self.(*Input)
	if !ok || in.Mask != 0 || len(in.text) == 0 {
		return
	}
	if err := clipboard.Write(in.Value()); err != nil {
		log.Warn("input %s: copy: %v", in.elem.ID, err)
	}
}

// Element implements tui.Widget.
func (in *Input) Element() *tui.Element { return &in.elem }

// Value returns the text.
func (in *Input) Value() string { return string(in.text) }

// Caret returns the caret position in runes.
func (in *Input) Caret() int { return in.caret }

// SetValue replaces the text and moves the caret to the end.
func (in *Input) SetValue(s string) {
	in.text = []rune(norm.NFC.String(sanitize(s)))
	in.caret = len(in.text)
}

// Render implements tui.Widget.
func (in *Input) Render(state style.State) string {
	st := in.elem.StateFor(state)
	comp := in.elem.Computed()
	w, _ := in.elem.Size()
	if in.elem.Layout().Border.Get() {
		w -= 2
	}
	focused := st != style.Idle

	if len(in.text) == 0 && !focused {
		return boxed(&in.elem, st, comp.Write(st, in.Placeholder))
	}

	shown := in.display()
	start := visibleFrom(shown, in.caret, w)
	var b strings.Builder
	cols := 0
	for i := start; i <= len(shown); i++ {
		cell := " "
		if i < len(shown) {
			cell = string(shown[i])
		}
		cw := max(runewidth.StringWidth(cell), 1)
		if w > 0 && cols+cw > w {
			break
		}
		cols += cw
		switch {
		case focused && i == in.caret:
			b.WriteString(comp.WriteCursor(st, cell))
		case i < len(shown):
			b.WriteString(comp.Write(st, cell))
		}
	}
	return boxed(&in.elem, st, b.String())
}

func (in *Input) display() []rune {
	if in.Mask == 0 {
		return in.text
	}
	out := make([]rune, len(in.text))
	for i := range out {
		out[i] = in.Mask
	}
	return out
}

// visibleFrom returns the first rune to show so the caret stays within
// width columns.
func visibleFrom(text []rune, caret, width int) int {
	if width <= 0 {
		return 0
	}
	cols := 1
	start := caret
	for start > 0 {
		cw := runewidth.RuneWidth(text[start-1])
		if cols+cw > width {
			break
		}
		cols += cw
		start--
	}
	return start
}

// Event implements tui.Widget.
func (in *Input) Event(ev tui.Event) tui.Response {
	action := in.elem.Binds.Action(ev)
	wasKill, wasYank := in.lastKill, in.lastYank
	in.lastKill, in.lastYank = false, -1

	switch action {
	case ActionCaretLeft:
		in.caret = max(in.caret-1, 0)
	case ActionCaretRight:
		in.caret = min(in.caret+1, len(in.text))
	case ActionCaretHome:
		in.caret = 0
	case ActionCaretEnd:
		in.caret = len(in.text)
	case ActionWordLeft:
		in.caret = wordStart(in.text, in.caret)
	case ActionWordRight:
		in.caret = wordEnd(in.text, in.caret)
	case ActionBackspace:
		if in.caret == 0 {
			return tui.None()
		}
		in.cut(in.caret-1, in.caret)
	case ActionDelete:
		if in.caret == len(in.text) {
			return tui.None()
		}
		in.cut(in.caret, in.caret+1)
	case ActionKillEnd:
		in.kill(in.caret, len(in.text), wasKill, false)
	case ActionKillStart:
		in.kill(0, in.caret, wasKill, true)
	case ActionKillWord:
		in.kill(wordStart(in.text, in.caret), in.caret, wasKill, true)
	case ActionYank:
		if s, ok := in.kills.Yank(); ok {
			in.insert(s)
			in.lastYank = len([]rune(s))
		}
	case ActionYankPop:
		if wasYank < 0 {
			return tui.None()
		}
		if s, ok := in.kills.Rotate(); ok {
			in.text = append(in.text[:in.caret-wasYank:in.caret-wasYank], in.text[in.caret:]...)
			in.caret -= wasYank
			in.insertRaw(s)
			in.lastYank = len([]rune(s))
		}
	case ActionUndo:
		if s, ok := in.history.Undo(in.snapshot()); ok {
			in.restore(s)
		}
	case ActionRedo:
		if s, ok := in.history.Redo(in.snapshot()); ok {
			in.restore(s)
		}
	default:
		return in.typed(ev)
	}
	return tui.Handled()
}

func (in *Input) typed(ev tui.Event) tui.Response {
	switch e := ev.(type) {
	case tui.PasteEvent:
		in.insert(e.Text)
	case tui.KeyEvent:
		if !e.Key.Printable() {
			return tui.None()
		}
		in.insert(string(e.Key.Rune))
	default:
		return tui.None()
	}
	return tui.Handled()
}

func (in *Input) snapshot() snapshot {
	return snapshot{text: append([]rune(nil), in.text...), caret: in.caret}
}

func (in *Input) restore(s snapshot) {
	in.text, in.caret = s.text, s.caret
}

// insert records an undo point and inserts s at the caret.
func (in *Input) insert(s string) {
	s = sanitize(s)
	if s == "" {
		return
	}
	in.history.Record(in.snapshot())
	in.insertRaw(s)
}

// insertRaw inserts s and normalizes the text before the caret so
// combining marks compose with the preceding rune.
func (in *Input) insertRaw(s string) {
	head := norm.NFC.String(string(in.text[:in.caret]) + s)
	tail := in.text[in.caret:]
	hr := []rune(head)
	in.text = append(hr, tail...)
	in.caret = len(hr)
}

func (in *Input) cut(from, to int) string {
	if from >= to {
		return ""
	}
	in.history.Record(in.snapshot())
	removed := string(in.text[from:to])
	in.text = append(in.text[:from:from], in.text[to:]...)
	in.caret = from
	return removed
}

func (in *Input) kill(from, to int, extend, prepend bool) {
	if s := in.cut(from, to); s != "" {
		in.kills.Kill(s, extend, prepend)
	}
	in.lastKill = true
}

func wordStart(text []rune, i int) int {
	for i > 0 && unicode.IsSpace(text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(text[i-1]) {
		i--
	}
	return i
}

func wordEnd(text []rune, i int) int {
	for i < len(text) && unicode.IsSpace(text[i]) {
		i++
	}
	for i < len(text) && !unicode.IsSpace(text[i]) {
		i++
	}
	return i
}

// sanitize flattens line breaks and tabs to spaces and drops other
// control characters.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Clone implements tui.Widget.
func (in *Input) Clone() tui.Widget {
	cp := *in
	cp.elem = in.elem.CloneElement()
	cp.text = append([]rune(nil), in.text...)
	cp.kills = in.kills.Clone()
	cp.history = in.history.Clone()
	return &cp
}
