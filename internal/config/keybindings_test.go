// ABOUTME: Tests for the keybinding table and settings overrides

package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestKeybindings_Defaults(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	if got := kb.GetBindings(ActionClick); len(got) != 1 || got[0] != "enter" {
		t.Errorf("click = %v", got)
	}
	if got := kb.GetBindings(ActionCaretLeft); len(got) != 2 {
		t.Errorf("caretLeft = %v", got)
	}
	if len(kb.Actions()) != len(defaultBindings) {
		t.Errorf("Actions() = %d entries", len(kb.Actions()))
	}
}

func TestKeybindings_DefaultsAreCopies(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	kb.Bindings[ActionExit][0] = "ctrl+q"
	if NewKeybindings().GetBindings(ActionExit)[0] != "ctrl+c" {
		t.Error("editing a table changed the defaults")
	}
}

func TestSettings_Bindings(t *testing.T) {
	t.Parallel()

	s := &Settings{Keybindings: map[string][]string{"click": {"space"}, "unknown": {"x"}}}
	kb := s.Bindings()
	if got := kb.GetBindings(ActionClick); len(got) != 1 || got[0] != "space" {
		t.Errorf("click = %v", got)
	}
	if _, ok := kb.Bindings["unknown"]; ok {
		t.Error("unknown action should be ignored")
	}
}

func TestScopeOf(t *testing.T) {
	t.Parallel()

	if ScopeOf(ActionMenuUp) != ScopeMenu || ScopeOf(ActionExit) != ScopeGlobal {
		t.Error("unexpected scopes")
	}
}

func TestKeybindings_ExportTemplate(t *testing.T) {
	t.Parallel()

	out, err := NewKeybindings().ExportTemplate()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "keybindings:") {
		t.Errorf("template starts %q", out[:20])
	}
	var s Settings
	if err := yaml.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("template does not parse as settings: %v", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		t.Errorf("template fails validation: %v", err)
	}
}
