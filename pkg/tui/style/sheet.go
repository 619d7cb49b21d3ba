// ABOUTME: Class stylesheet table keyed by "class" or "class:state"
// ABOUTME: Apply try-sets rule cells so per-instance author values always win

package style

import (
	"sort"
	"strings"
)

// Geometry is the authored placement of a widget. Zero sizes inherit the
// parent's remaining size at layout time.
type Geometry struct {
	X, Y          Value[int]
	Width, Height Value[int]
	AutoY         Value[bool]
	Border        Value[bool]
}

// TryMerge try-sets every custom cell of src into g.
func (g *Geometry) TryMerge(src Geometry) {
	tryInt := func(dst *Value[int], s Value[int]) {
		if s.IsCustom() {
			dst.TrySet(s.Get())
		}
	}
	tryBool := func(dst *Value[bool], s Value[bool]) {
		if s.IsCustom() {
			dst.TrySet(s.Get())
		}
	}
	tryInt(&g.X, src.X)
	tryInt(&g.Y, src.Y)
	tryInt(&g.Width, src.Width)
	tryInt(&g.Height, src.Height)
	tryBool(&g.AutoY, src.AutoY)
	tryBool(&g.Border, src.Border)
}

// Rule is one stylesheet entry. Geometry is only honored on base rules.
type Rule struct {
	Layer
	Geometry
}

// Sheet maps "class" and "class:hover|clicked|selected" keys to rules.
type Sheet map[string]Rule

// Key builds the sheet key for class in state.
func Key(class string, state State) string {
	if state == Idle {
		return class
	}
	return class + ":" + state.String()
}

// Apply try-sets the rules for every space separated class into st and g.
// Earlier classes take precedence over later ones.
func (sh Sheet) Apply(class string, st *Style, g *Geometry) {
	if len(sh) == 0 {
		return
	}
	for _, c := range strings.Fields(class) {
		if r, ok := sh[c]; ok {
			st.Base.TryMerge(r.Layer)
			if g != nil {
				g.TryMerge(r.Geometry)
			}
		}
		for _, state := range []State{Hovered, Clicked, Selected} {
			if r, ok := sh[Key(c, state)]; ok {
				st.Layer(state).TryMerge(r.Layer)
			}
		}
	}
}

// Merge returns a new sheet with other's rules replacing sh's on key clash.
func (sh Sheet) Merge(other Sheet) Sheet {
	out := make(Sheet, len(sh)+len(other))
	for k, v := range sh {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns the sheet's keys sorted.
func (sh Sheet) Keys() []string {
	keys := make([]string, 0, len(sh))
	for k := range sh {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
