// ABOUTME: Panic recovery that puts the terminal back before reporting the crash
// ABOUTME: RestoreOnPanic exits the process; RecoverGoroutine only restores and logs

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/mauromedda/gridtui/internal/log"
)

// Overridable in tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Restore writes the sequences that undo a session and leaves raw mode.
// It is safe on a terminal that was never acquired.
func Restore(t Terminal) error {
	_, werr := t.Write([]byte(restoreSeq))
	return errors.Join(werr, t.ExitRawMode())
}

// RestoreOnPanic should be deferred at the top of main (or any goroutine
// that owns the terminal). On panic it restores t, prints the panic value
// and stack trace to stderr, then exits with code 2.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	_ = Restore(t)
	log.Error("panic: %v", r)
	fmt.Fprintf(stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(2)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. It restores t and logs the
// panic but lets the owning goroutine decide how to shut down.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	_ = Restore(t)
	log.Error("goroutine panic: %v\n%s", r, debug.Stack())
}
