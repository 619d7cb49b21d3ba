// ABOUTME: Named stylesheets: a Theme is a style.Sheet plus the name it was loaded under
// ABOUTME: Class names shared by the built-in themes and the demo widgets live here

package theme

import (
	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// Classes styled by every built-in theme.
const (
	ClassRoot   = "root"
	ClassPanel  = "panel"
	ClassTitle  = "title"
	ClassButton = "button"
	ClassMenu   = "menu"
	ClassTab    = "tab"
	ClassInput  = "input"
	ClassStatus = "status"
	ClassError  = "error"
)

// Theme is a named stylesheet.
type Theme struct {
	Name  string
	Sheet style.Sheet
}

// Clone returns a copy whose sheet can be modified freely.
func (t *Theme) Clone() *Theme {
	if t == nil {
		return nil
	}
	return &Theme{Name: t.Name, Sheet: t.Sheet.Merge(nil)}
}

// Extend returns a theme named name with rules layered over t's.
func (t *Theme) Extend(name string, rules style.Sheet) *Theme {
	return &Theme{Name: name, Sheet: t.Sheet.Merge(rules)}
}

// rule is shorthand for building sheet entries in Go.
type rule struct {
	style.Rule
}

func newRule() *rule { return &rule{} }

func (r *rule) fg(c style.Color) *rule      { r.FG.Set(c); return r }
func (r *rule) bg(c style.Color) *rule      { r.BG.Set(c); return r }
func (r *rule) outline(c style.Color) *rule { r.Outline.Set(c); return r }
func (r *rule) font(f style.Font) *rule     { r.Font.Set(f); return r }
func (r *rule) border() *rule               { r.Border.Set(true); return r }

func (r *rule) cursor(fg, bg style.Color) *rule {
	r.CursorFG.Set(fg)
	r.CursorBG.Set(bg)
	return r
}

func (r *rule) done() style.Rule { return r.Rule }
