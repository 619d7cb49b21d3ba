// ABOUTME: Tests for keybindings manager
// ABOUTME: Validates scoped lookup, conflict detection, rebinding and format

package keybindings

import (
	"strings"
	"testing"

	"github.com/mauromedda/gridtui/internal/config"
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/key"
)

func mustKey(t *testing.T, name string) key.Key {
	t.Helper()
	k, ok := key.Parse(name)
	if !ok {
		t.Fatalf("key.Parse(%q) failed", name)
	}
	return k
}

func TestManager_DefaultBindings(t *testing.T) {
	t.Parallel()
	m := New(nil)

	tests := []struct {
		scope  config.Scope
		key    string
		action config.KeyAction
	}{
		{config.ScopeMenu, "up", config.ActionMenuUp},
		{config.ScopeMarkdown, "up", config.ActionScrollUp},
		{config.ScopeFocus, "up", config.ActionFocusUp},
		{config.ScopeTab, "shift+tab", config.ActionPrevious},
		{config.ScopeInput, "ctrl+b", config.ActionCaretLeft},
		{config.ScopeInput, "ctrl+c", config.ActionExit},
		{config.ScopeButton, "ctrl+l", config.ActionRedraw},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			got := m.ActionForKey(tt.scope, mustKey(t, tt.key))
			if got != tt.action {
				t.Errorf("ActionForKey(%s, %s) = %q; want %q", tt.scope, tt.key, got, tt.action)
			}
		})
	}
}

func TestManager_UnboundKey(t *testing.T) {
	t.Parallel()
	m := New(nil)

	if action := m.ActionForKey(config.ScopeMenu, mustKey(t, "z")); action != "" {
		t.Errorf("expected empty action for unbound key, got %q", action)
	}
}

func TestManager_NoDefaultConflicts(t *testing.T) {
	t.Parallel()

	if c := New(nil).Conflicts(); len(c) != 0 {
		t.Errorf("default bindings conflict: %v", c)
	}
}

func TestManager_Conflicts(t *testing.T) {
	t.Parallel()

	kb := config.NewKeybindings()
	kb.Override(map[string][]string{
		"menuDown": {"Up"},
		"click":    {"ctrl+c"},
		"pageDown": {"down"}, // scrollDown already has down
	})
	conflicts := New(kb).Conflicts()

	got := make([]string, len(conflicts))
	for i, c := range conflicts {
		got[i] = c.String()
	}
	want := []string{
		"ctrl+c: click, exit",
		"down: pageDown, scrollDown",
		"up: menuDown, menuUp",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Conflicts() = %v, want %v", got, want)
	}
}

func TestManager_ApplyTo(t *testing.T) {
	t.Parallel()

	kb := config.NewKeybindings()
	kb.Override(map[string][]string{"click": {"space", "ENTER"}})
	m := New(kb)

	var handled bool
	b := tui.Bindings{}
	b.Bind("enter", "click").Handle("ctrl+s", func(tui.Widget, tui.Event, *tui.Client) { handled = true })
	m.ApplyTo(b)

	if got := b.Action(tui.Press("space")); got != "click" {
		t.Errorf("space -> %q, want click", got)
	}
	if got := b.Action(tui.Press("enter")); got != "click" {
		t.Errorf("enter -> %q, want click", got)
	}
	if bd, ok := b["ctrl+s"]; !ok || bd.Handler == nil {
		t.Error("handler binding should survive rekeying")
	}
	if handled {
		t.Error("handler should not run")
	}
}

func TestManager_ApplyToKeepsWidgetDefaults(t *testing.T) {
	t.Parallel()

	b := tui.Bindings{}
	b.Bind("tab", tui.ActionFocusDown).Bind("enter", "click")
	New(config.NewKeybindings()).ApplyTo(b)

	if got := b.Action(tui.Press("tab")); got != tui.ActionFocusDown {
		t.Errorf("tab -> %q, want %s", got, tui.ActionFocusDown)
	}
	if _, ok := b["down"]; ok {
		t.Error("default keys should not be reapplied over a widget's own choice")
	}
}

func TestManager_Configure(t *testing.T) {
	t.Parallel()

	kb := config.NewKeybindings()
	kb.Override(map[string][]string{"exit": {"ctrl+q", "escape"}})
	var opts tui.Options
	New(kb).Configure(&opts)

	if strings.Join(opts.ExitKeys, ",") != "ctrl+q,escape" {
		t.Errorf("ExitKeys = %v", opts.ExitKeys)
	}
	if strings.Join(opts.RedrawKeys, ",") != "ctrl+l" {
		t.Errorf("RedrawKeys = %v", opts.RedrawKeys)
	}
	if opts.Rebind == nil {
		t.Error("Rebind not installed")
	}
}

func TestManager_FormatAll(t *testing.T) {
	t.Parallel()

	out := New(nil).FormatAll()
	for _, want := range []string{"## Global", "## Input", "ctrl+c", "killWord", "shift+tab"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatAll() missing %q", want)
		}
	}
}
