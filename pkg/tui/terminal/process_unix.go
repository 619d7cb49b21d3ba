// ABOUTME: Unix SIGWINCH handling for ProcessTerminal resize events
// ABOUTME: One goroutine per terminal forwards signals until the returned stop is called

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// startResizeListener relays SIGWINCH to the resize callback.
func (t *ProcessTerminal) startResizeListener() (stop func()) {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigCh:
				t.notifyResize()
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
