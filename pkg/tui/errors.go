// ABOUTME: Sentinel errors for lookups, command delivery and recovered callback panics
// ABOUTME: Callers match them with errors.Is; wrappers add context with %w

package tui

import (
	"errors"
	"fmt"
)

var (
	// ErrElementNotFound reports an identifier lookup miss.
	ErrElementNotFound = errors.New("element not found")
	// ErrChannelClosed reports that the runtime no longer accepts commands.
	ErrChannelClosed = errors.New("command channel closed")
	// ErrPoisoned reports a user callback that panicked. The widget keeps
	// the state it had before the call.
	ErrPoisoned = errors.New("callback panicked")
	// ErrInvalidGeometry reports a negative or empty size that was clamped.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Guard runs fn and converts a panic into an error wrapping ErrPoisoned.
func Guard(what string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %w: %v", what, ErrPoisoned, r)
		}
	}()
	fn()
	return nil
}
