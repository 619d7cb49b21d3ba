// ABOUTME: Session is the scoped terminal resource held while the runtime loop runs
// ABOUTME: Acquire enters raw mode and the alternate screen; Release undoes it exactly once

package terminal

import (
	"fmt"
	"sync"
)

const (
	altScreenOn  = "\x1b[?1049h"
	altScreenOff = "\x1b[?1049l"
	cursorHide   = "\x1b[?25l"
	cursorShow   = "\x1b[?25h"
	pasteOn      = "\x1b[?2004h"
	pasteOff     = "\x1b[?2004l"
	clearScreen  = "\x1b[2J\x1b[H"
	resetSGR     = "\x1b[0m"

	acquireSeq = altScreenOn + pasteOn + cursorHide + clearScreen
	restoreSeq = resetSGR + cursorShow + pasteOff + altScreenOff
)

// Session owns raw mode and screen state for one runtime run.
type Session struct {
	t    Terminal
	once sync.Once
	err  error
}

// Acquire switches t into raw mode, the alternate screen, bracketed paste,
// and hides the cursor. On failure nothing is left changed.
func Acquire(t Terminal) (*Session, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, fmt.Errorf("acquiring terminal: %w", err)
	}
	if _, err := t.Write([]byte(acquireSeq)); err != nil {
		_ = t.ExitRawMode()
		return nil, fmt.Errorf("acquiring terminal: %w", err)
	}
	return &Session{t: t}, nil
}

// Terminal returns the underlying terminal.
func (s *Session) Terminal() Terminal {
	return s.t
}

// Release restores the terminal. Only the first call has any effect; later
// calls return the first call's result.
func (s *Session) Release() error {
	s.once.Do(func() {
		s.err = Restore(s.t)
	})
	return s.err
}
