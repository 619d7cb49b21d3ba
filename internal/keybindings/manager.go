// ABOUTME: Keybindings manager: scoped key-to-action lookup, conflicts and widget rebinding
// ABOUTME: ApplyTo re-keys a widget's binding table; Configure wires it into tui.Options

package keybindings

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/mauromedda/gridtui/internal/config"
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/key"
)

// ConflictInfo describes a key bound to several actions that can be live
// at the same time.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

func (c ConflictInfo) String() string {
	names := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		names[i] = string(a)
	}
	return fmt.Sprintf("%s: %s", c.Key, strings.Join(names, ", "))
}

// Manager provides key-to-action lookup per scope.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[config.Scope]map[string]config.KeyAction // scope -> "ctrl+g" -> action
	widget   map[string][]string                          // overridden widget actions -> canonical keys
}

// New creates a Manager from a keybinding table.
func New(kb *config.Keybindings) *Manager {
	if kb == nil {
		kb = config.NewKeybindings()
	}
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionForKey returns the action bound to k in scope, falling back to the
// global scope, or "" if unbound.
func (m *Manager) ActionForKey(scope config.Scope, k key.Key) config.KeyAction {
	name := k.Name()
	if a, ok := m.lookup[scope][name]; ok {
		return a
	}
	return m.lookup[config.ScopeGlobal][name]
}

// Keys returns the canonical key names bound to action.
func (m *Manager) Keys(action config.KeyAction) []string {
	return canonical(m.bindings.GetBindings(action))
}

// Conflicts detects keys bound to several actions within one scope, or to
// a scoped action and a global one. Results are sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	global := map[string][]config.KeyAction{}
	for _, a := range m.bindings.Actions() {
		if config.ScopeOf(a) != config.ScopeGlobal {
			continue
		}
		for _, k := range m.Keys(a) {
			global[k] = append(global[k], a)
		}
	}

	seen := map[string][]config.KeyAction{}
	add := func(k string, actions []config.KeyAction) {
		for _, a := range actions {
			if !slices.Contains(seen[k], a) {
				seen[k] = append(seen[k], a)
			}
		}
	}
	perScope := map[config.Scope]map[string][]config.KeyAction{}
	for _, a := range m.bindings.Actions() {
		s := config.ScopeOf(a)
		if s == config.ScopeGlobal {
			continue
		}
		if perScope[s] == nil {
			perScope[s] = map[string][]config.KeyAction{}
		}
		for _, k := range m.Keys(a) {
			perScope[s][k] = append(perScope[s][k], a)
		}
	}
	for _, keys := range perScope {
		for k, actions := range keys {
			all := append(slices.Clone(actions), global[k]...)
			if len(all) > 1 {
				add(k, all)
			}
		}
	}
	for k, actions := range global {
		if len(actions) > 1 {
			add(k, actions)
		}
	}

	out := make([]ConflictInfo, 0, len(seen))
	for k, actions := range seen {
		slices.Sort(actions)
		out = append(out, ConflictInfo{Key: k, Actions: actions})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ApplyTo re-keys every widget action whose keys the settings override.
// Actions left at their defaults keep whatever keys the widget was built
// with. Global actions are handled by the runtime and never appear in
// widget tables.
func (m *Manager) ApplyTo(b tui.Bindings) {
	b.Rekey(m.widget)
}

// Configure points the runtime's exit and redraw keys at the configured
// ones and installs ApplyTo as the rebind hook.
func (m *Manager) Configure(opts *tui.Options) {
	opts.ExitKeys = m.Keys(config.ActionExit)
	opts.RedrawKeys = m.Keys(config.ActionRedraw)
	opts.Rebind = m.ApplyTo
}

// FormatAll returns a table of all keybindings grouped by scope.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	b.WriteString("Keybindings:\n\n")

	scopes := []struct {
		name  string
		scope config.Scope
	}{
		{"Global", config.ScopeGlobal},
		{"Focus", config.ScopeFocus},
		{"Button", config.ScopeButton},
		{"Tabs", config.ScopeTab},
		{"Menu", config.ScopeMenu},
		{"Input", config.ScopeInput},
		{"Markdown", config.ScopeMarkdown},
	}
	for _, s := range scopes {
		fmt.Fprintf(&b, "## %s\n", s.name)
		for _, action := range m.bindings.Actions() {
			if config.ScopeOf(action) != s.scope {
				continue
			}
			keys := m.Keys(action)
			if len(keys) == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %-20s %s\n", strings.Join(keys, ", "), action)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[config.Scope]map[string]config.KeyAction)
	m.widget = make(map[string][]string)
	for _, action := range m.bindings.Actions() {
		scope := config.ScopeOf(action)
		if m.lookup[scope] == nil {
			m.lookup[scope] = make(map[string]config.KeyAction)
		}
		keys := m.Keys(action)
		for _, k := range keys {
			if _, taken := m.lookup[scope][k]; !taken {
				m.lookup[scope][k] = action
			}
		}
		if scope != config.ScopeGlobal && !slices.Equal(keys, canonical(config.DefaultKeys(action))) {
			m.widget[string(action)] = keys
		}
	}
}

// canonical normalises key names so "Escape" and "ESCAPE" compare equal.
// Unparsable names are dropped.
func canonical(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if k, ok := key.Parse(n); ok {
			out = append(out, k.Name())
		}
	}
	return out
}
