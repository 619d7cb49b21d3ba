// ABOUTME: Normalized input events delivered to the runtime and widgets
// ABOUTME: Source is the external collaborator that produces them

package tui

import (
	"context"

	"github.com/mauromedda/gridtui/pkg/tui/key"
)

// Event is a key press, a paste, or a terminal resize.
type Event interface {
	isEvent()
}

// KeyEvent carries one key press.
type KeyEvent struct {
	Key key.Key
}

// PasteEvent carries bracketed paste content.
type PasteEvent struct {
	Text string
}

// ResizeEvent carries new terminal dimensions.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) isEvent()    {}
func (PasteEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}

// Source yields input events. Poll blocks until an event arrives, the
// context ends, or the source fails; io.EOF marks a closed source.
type Source interface {
	Poll(ctx context.Context) (Event, error)
}

// Press builds a KeyEvent from a binding name such as "enter" or
// "shift+tab". Unknown names yield an unknown key.
func Press(name string) KeyEvent {
	k, ok := key.Parse(name)
	if !ok {
		k = key.Key{Type: key.KeyUnknown}
	}
	return KeyEvent{Key: k}
}
