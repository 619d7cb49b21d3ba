// ABOUTME: Windows resize handling for ProcessTerminal
// ABOUTME: Console size is polled since there is no SIGWINCH

//go:build windows

package terminal

import "time"

const resizePollInterval = 250 * time.Millisecond

// startResizeListener polls the console size and reports changes.
func (t *ProcessTerminal) startResizeListener() (stop func()) {
	done := make(chan struct{})
	go func() {
		lw, lh, _ := t.Size()
		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				w, h, err := t.Size()
				if err != nil || (w == lw && h == lh) {
					continue
				}
				lw, lh = w, h
				t.notifyResize()
			}
		}
	}()
	return func() { close(done) }
}
