// ABOUTME: ProcessTerminal implements Terminal over an input and output file using x/term
// ABOUTME: Raw mode applies to the input descriptor; size is read from the output

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal reports that a descriptor is not attached to a TTY.
var ErrNotTerminal = errors.New("not a terminal")

// ProcessTerminal is a real terminal backed by two files and x/term.
type ProcessTerminal struct {
	in, out *os.File

	mu       sync.Mutex
	oldState *term.State
	resizeFn func(width, height int)

	listenOnce sync.Once
	stop       func()
}

// NewProcessTerminal returns a ProcessTerminal on stdin and stdout.
func NewProcessTerminal() *ProcessTerminal {
	return Open(os.Stdin, os.Stdout)
}

// Open returns a ProcessTerminal reading keys from in and drawing to out.
func Open(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// IsTerminal reports whether both files are TTYs.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// EnterRawMode switches the input to raw mode, saving the previous state.
// Entering twice keeps the first saved state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("entering raw mode on %s: %w", t.in.Name(), ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the input to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// IsRawMode reports whether raw mode is active.
func (t *ProcessTerminal) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.oldState != nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// The platform listener starts on first use and lives until Close.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	t.mu.Unlock()

	t.listenOnce.Do(func() {
		t.stop = t.startResizeListener()
	})
}

// Close stops the resize listener and restores the input mode.
func (t *ProcessTerminal) Close() error {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()
	if stop != nil {
		stop()
	}
	return t.ExitRawMode()
}

// notifyResize reads the current size and passes it to the callback.
func (t *ProcessTerminal) notifyResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()
	if fn == nil {
		return
	}
	w, h, err := t.Size()
	if err != nil {
		return
	}
	fn(w, h)
}
