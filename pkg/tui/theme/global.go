// ABOUTME: Process-wide active theme, swapped atomically on config reload
// ABOUTME: Current never returns nil; it falls back to the default built-in

package theme

import "sync/atomic"

var current atomic.Pointer[Theme]

// Current returns the active theme.
func Current() *Theme {
	if t := current.Load(); t != nil {
		return t
	}
	return builtins[DefaultName]
}

// Set installs t as the active theme. A nil t restores the default.
func Set(t *Theme) {
	current.Store(t)
}
