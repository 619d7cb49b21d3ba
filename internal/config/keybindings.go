// ABOUTME: Keybinding table: widget actions mapped to key names, with defaults
// ABOUTME: Overrides come from the keybindings section of settings.yaml

package config

import (
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// KeyAction names an action a widget binds keys to.
type KeyAction string

const (
	ActionExit       KeyAction = "exit"
	ActionRedraw     KeyAction = "redraw"
	ActionFocusUp    KeyAction = "focusUp"
	ActionFocusDown  KeyAction = "focusDown"
	ActionFocusLeft  KeyAction = "focusLeft"
	ActionFocusRight KeyAction = "focusRight"
	ActionClick      KeyAction = "click"
	ActionNext       KeyAction = "next"
	ActionPrevious   KeyAction = "previous"
	ActionMenuUp     KeyAction = "menuUp"
	ActionMenuDown   KeyAction = "menuDown"
	ActionSelect     KeyAction = "select"
	ActionClear      KeyAction = "clear"
	ActionCaretLeft  KeyAction = "caretLeft"
	ActionCaretRight KeyAction = "caretRight"
	ActionCaretHome  KeyAction = "caretHome"
	ActionCaretEnd   KeyAction = "caretEnd"
	ActionWordLeft   KeyAction = "wordLeft"
	ActionWordRight  KeyAction = "wordRight"
	ActionBackspace  KeyAction = "backspace"
	ActionDelete     KeyAction = "delete"
	ActionKillEnd    KeyAction = "killEnd"
	ActionKillStart  KeyAction = "killStart"
	ActionKillWord   KeyAction = "killWord"
	ActionYank       KeyAction = "yank"
	ActionYankPop    KeyAction = "yankPop"
	ActionUndo       KeyAction = "undo"
	ActionRedo       KeyAction = "redo"
	ActionScrollUp   KeyAction = "scrollUp"
	ActionScrollDown KeyAction = "scrollDown"
	ActionPageUp     KeyAction = "pageUp"
	ActionPageDown   KeyAction = "pageDown"
)

// Scope groups actions that are live on the same widget at once. Keys only
// conflict inside a scope or with the global scope.
type Scope string

const (
	ScopeGlobal   Scope = "global"
	ScopeFocus    Scope = "focus"
	ScopeButton   Scope = "button"
	ScopeTab      Scope = "tab"
	ScopeMenu     Scope = "menu"
	ScopeInput    Scope = "input"
	ScopeMarkdown Scope = "markdown"
)

type actionDefault struct {
	scope Scope
	keys  []string
}

var defaultBindings = map[KeyAction]actionDefault{
	ActionExit:       {ScopeGlobal, []string{"ctrl+c"}},
	ActionRedraw:     {ScopeGlobal, []string{"ctrl+l"}},
	ActionFocusUp:    {ScopeFocus, []string{"up"}},
	ActionFocusDown:  {ScopeFocus, []string{"down"}},
	ActionFocusLeft:  {ScopeFocus, []string{"left"}},
	ActionFocusRight: {ScopeFocus, []string{"right"}},
	ActionClick:      {ScopeButton, []string{"enter"}},
	ActionNext:       {ScopeTab, []string{"tab"}},
	ActionPrevious:   {ScopeTab, []string{"shift+tab"}},
	ActionMenuUp:     {ScopeMenu, []string{"up"}},
	ActionMenuDown:   {ScopeMenu, []string{"down"}},
	ActionSelect:     {ScopeMenu, []string{"enter"}},
	ActionClear:      {ScopeMenu, []string{"escape"}},
	ActionCaretLeft:  {ScopeInput, []string{"left", "ctrl+b"}},
	ActionCaretRight: {ScopeInput, []string{"right", "ctrl+f"}},
	ActionCaretHome:  {ScopeInput, []string{"home", "ctrl+a"}},
	ActionCaretEnd:   {ScopeInput, []string{"end", "ctrl+e"}},
	ActionWordLeft:   {ScopeInput, []string{"alt+b"}},
	ActionWordRight:  {ScopeInput, []string{"alt+f"}},
	ActionBackspace:  {ScopeInput, []string{"backspace"}},
	ActionDelete:     {ScopeInput, []string{"delete", "ctrl+d"}},
	ActionKillEnd:    {ScopeInput, []string{"ctrl+k"}},
	ActionKillStart:  {ScopeInput, []string{"ctrl+u"}},
	ActionKillWord:   {ScopeInput, []string{"ctrl+w"}},
	ActionYank:       {ScopeInput, []string{"ctrl+y"}},
	ActionYankPop:    {ScopeInput, []string{"alt+y"}},
	ActionUndo:       {ScopeInput, []string{"ctrl+z"}},
	ActionRedo:       {ScopeInput, []string{"ctrl+r"}},
	ActionScrollUp:   {ScopeMarkdown, []string{"up"}},
	ActionScrollDown: {ScopeMarkdown, []string{"down"}},
	ActionPageUp:     {ScopeMarkdown, []string{"pgup"}},
	ActionPageDown:   {ScopeMarkdown, []string{"pgdown"}},
}

// Keybindings maps actions to key names.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings creates a Keybindings holding the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[KeyAction][]string, len(defaultBindings))}
	for a, d := range defaultBindings {
		kb.Bindings[a] = slices.Clone(d.keys)
	}
	return kb
}

// Bindings returns the default keybindings with the settings overrides applied.
// Unknown actions are ignored; Validate reports them.
func (s *Settings) Bindings() *Keybindings {
	kb := NewKeybindings()
	kb.Override(s.Keybindings)
	return kb
}

// Override replaces the keys of every known action in raw.
func (kb *Keybindings) Override(raw map[string][]string) {
	for name, keys := range raw {
		a := KeyAction(name)
		if _, ok := defaultBindings[a]; ok {
			kb.Bindings[a] = slices.Clone(keys)
		}
	}
}

// GetBindings returns the bindings for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// Actions returns every known action sorted by name.
func (kb *Keybindings) Actions() []KeyAction {
	return slices.Sorted(maps.Keys(kb.Bindings))
}

// DefaultKeys returns the built-in keys of an action.
func DefaultKeys(a KeyAction) []string {
	return slices.Clone(defaultBindings[a].keys)
}

// ScopeOf returns the scope an action belongs to.
func ScopeOf(a KeyAction) Scope {
	return defaultBindings[a].scope
}

// ExportTemplate renders the bindings as a YAML keybindings section.
func (kb *Keybindings) ExportTemplate() (string, error) {
	raw := make(map[string][]string, len(kb.Bindings))
	for action, keys := range kb.Bindings {
		raw[string(action)] = keys
	}
	data, err := yaml.Marshal(map[string]any{"keybindings": raw})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
