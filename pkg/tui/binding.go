// ABOUTME: Per-widget key binding table mapping key names to actions or async handlers
// ABOUTME: Handlers receive a private clone and talk to the tree only through a Client

package tui

import (
	"github.com/mauromedda/gridtui/internal/log"
	"github.com/mauromedda/gridtui/pkg/tui/key"
)

// Handler is an opaque user callback bound to a key. It runs off the loop
// goroutine on a clone of the widget it was bound to.
type Handler func(self Widget, ev Event, c *Client)

// Binding is a named action, a handler, or both.
type Binding struct {
	Action  string
	Handler Handler
}

// Bindings maps key names (see key.Key.Name) to bindings.
type Bindings map[string]Binding

// Bind maps a key name to an action. A nil table is allocated.
func (b *Bindings) Bind(name, action string) *Bindings {
	b.set(name, Binding{Action: action})
	return b
}

// Handle maps a key name to a handler. A nil table is allocated.
func (b *Bindings) Handle(name string, h Handler) *Bindings {
	b.set(name, Binding{Handler: h})
	return b
}

func (b *Bindings) set(name string, bd Binding) {
	if *b == nil {
		*b = Bindings{}
	}
	(*b)[name] = bd
}

// Lookup returns the binding for k.
func (b Bindings) Lookup(k key.Key) (Binding, bool) {
	if len(b) == 0 {
		return Binding{}, false
	}
	bd, ok := b[k.Name()]
	return bd, ok
}

// Action returns the action bound to ev's key, or "".
func (b Bindings) Action(ev Event) string {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return ""
	}
	bd, _ := b.Lookup(ke.Key)
	return bd.Action
}

// Actions returns action -> key names.
func (b Bindings) Actions() map[string][]string {
	out := map[string][]string{}
	for name, bd := range b {
		if bd.Action != "" {
			out[bd.Action] = append(out[bd.Action], name)
		}
	}
	return out
}

// Rekey replaces the keys of every action present in keys. Handlers and
// actions not named in keys are left alone. A new key already held by
// one of those is skipped, so rekeying never steals a binding.
func (b Bindings) Rekey(keys map[string][]string) {
	moved := map[string]bool{}
	for name, bd := range b {
		if _, ok := keys[bd.Action]; ok && bd.Action != "" && bd.Handler == nil {
			delete(b, name)
			moved[bd.Action] = true
		}
	}
	for action, names := range keys {
		if !moved[action] {
			continue
		}
		for _, n := range names {
			if cur, taken := b[n]; taken && cur.Action != action {
				log.Warn("bindings: %s keeps %q, not rebound to %s", n, bindingName(cur), action)
				continue
			}
			b[n] = Binding{Action: action}
		}
	}
}

func bindingName(bd Binding) string {
	if bd.Action != "" {
		return bd.Action
	}
	return "handler"
}

func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
