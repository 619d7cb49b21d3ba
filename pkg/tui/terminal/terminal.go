// ABOUTME: Terminal interface for raw mode, size queries, output and resize notifications
// ABOUTME: ProcessTerminal targets a real TTY; VirtualTerminal records everything for tests

package terminal

// Terminal abstracts the low-level operations a runtime session needs.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	// OnResize replaces the resize callback. A nil fn stops notifications.
	OnResize(fn func(width, height int))
}
