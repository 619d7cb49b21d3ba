// ABOUTME: Layered widget style: base, hover, clicked and selected attribute layers
// ABOUTME: Resolve picks each attribute family from the state layer or falls back to base

package style

import "strings"

// Reset ends any SGR styling.
const Reset = "\x1b[0m"

// State is a widget's interaction state.
type State uint8

const (
	Idle State = iota
	Hovered
	Clicked
	Selected
)

func (s State) String() string {
	switch s {
	case Hovered:
		return "hover"
	case Clicked:
		return "clicked"
	case Selected:
		return "selected"
	}
	return "idle"
}

// Layer is one set of attribute cells.
type Layer struct {
	FG       Value[Color]
	BG       Value[Color]
	Outline  Value[Color]
	CursorFG Value[Color]
	CursorBG Value[Color]
	Font     Value[Font]
}

// Style holds the base layer and one override layer per non-idle state.
type Style struct {
	Base     Layer
	Hover    Layer
	Clicked  Layer
	Selected Layer
}

// Attrs is a fully resolved set of attributes.
type Attrs struct {
	FG, BG             Color
	Outline            Color
	CursorFG, CursorBG Color
	Font               Font
}

// Layer returns a pointer to the layer that overrides base for state,
// or the base layer for Idle.
func (s *Style) Layer(state State) *Layer {
	switch state {
	case Hovered:
		return &s.Hover
	case Clicked:
		return &s.Clicked
	case Selected:
		return &s.Selected
	}
	return &s.Base
}

func pickColor(over, base Value[Color]) Color {
	if over.IsCustom() || !over.Get().IsNone() {
		return over.Get()
	}
	return base.Get()
}

func pickFont(over, base Value[Font]) Font {
	if over.IsCustom() || over.Get() != FontNone {
		return over.Get()
	}
	return base.Get()
}

// Resolve computes the effective attributes for state. Each family is
// taken from the state's layer when set there, otherwise from base.
func (s Style) Resolve(state State) Attrs {
	b := s.Base
	if state == Idle {
		return Attrs{
			FG: b.FG.Get(), BG: b.BG.Get(), Outline: b.Outline.Get(),
			CursorFG: b.CursorFG.Get(), CursorBG: b.CursorBG.Get(), Font: b.Font.Get(),
		}
	}
	o := *s.Layer(state)
	return Attrs{
		FG:       pickColor(o.FG, b.FG),
		BG:       pickColor(o.BG, b.BG),
		Outline:  pickColor(o.Outline, b.Outline),
		CursorFG: pickColor(o.CursorFG, b.CursorFG),
		CursorBG: pickColor(o.CursorBG, b.CursorBG),
		Font:     pickFont(o.Font, b.Font),
	}
}

// Prefix returns the fg, bg and font sequences of a.
func (a Attrs) Prefix() string {
	return a.FG.FG() + a.BG.BG() + a.Font.Sequence()
}

// OutlinePrefix returns the sequence used for border glyphs.
func (a Attrs) OutlinePrefix() string {
	return a.Outline.FG() + a.BG.BG()
}

// CursorPrefix returns the sequence used for cursor cells.
func (a Attrs) CursorPrefix() string {
	return a.CursorFG.FG() + a.CursorBG.BG()
}

// Prefix resolves state and returns its attribute prefix.
func (s Style) Prefix(state State) string {
	return s.Resolve(state).Prefix()
}

// Write styles every line of text for state. With no attributes the text
// is returned unchanged.
func (s Style) Write(state State, text string) string {
	return wrap(s.Prefix(state), text)
}

// WriteOutline styles text with the outline color for state.
func (s Style) WriteOutline(state State, text string) string {
	return wrap(s.Resolve(state).OutlinePrefix(), text)
}

// WriteCursor styles text with the cursor colors for state.
func (s Style) WriteCursor(state State, text string) string {
	return wrap(s.Resolve(state).CursorPrefix(), text)
}

func wrap(prefix, text string) string {
	if prefix == "" {
		return text
	}
	if !strings.Contains(text, "\n") {
		return prefix + text + Reset
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l + Reset
	}
	return strings.Join(lines, "\n")
}

// TryMerge try-sets every custom cell of src into l.
func (l *Layer) TryMerge(src Layer) {
	if src.FG.IsCustom() {
		l.FG.TrySet(src.FG.Get())
	}
	if src.BG.IsCustom() {
		l.BG.TrySet(src.BG.Get())
	}
	if src.Outline.IsCustom() {
		l.Outline.TrySet(src.Outline.Get())
	}
	if src.CursorFG.IsCustom() {
		l.CursorFG.TrySet(src.CursorFG.Get())
	}
	if src.CursorBG.IsCustom() {
		l.CursorBG.TrySet(src.CursorBG.Get())
	}
	if src.Font.IsCustom() {
		l.Font.TrySet(src.Font.Get())
	}
}
