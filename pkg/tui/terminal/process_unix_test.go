// ABOUTME: Raw-mode and size tests for ProcessTerminal against a pseudo terminal
// ABOUTME: Uses creack/pty so no real TTY is needed

//go:build unix

package terminal

import (
	"errors"
	"os"
	"testing"

	"github.com/creack/pty"
)

func openPTY(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func TestProcessTerminal_RawModeOnPTY(t *testing.T) {
	_, tty := openPTY(t)
	pt := Open(tty, tty)

	if !pt.IsTerminal() {
		t.Fatal("pty slave should be a terminal")
	}
	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() error: %v", err)
	}
	if !pt.IsRawMode() {
		t.Error("expected raw mode on")
	}
	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("second EnterRawMode() error: %v", err)
	}
	if err := pt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() error: %v", err)
	}
	if pt.IsRawMode() {
		t.Error("expected raw mode off")
	}
}

func TestProcessTerminal_SizeFromPTY(t *testing.T) {
	ptmx, tty := openPTY(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: 42, Rows: 7}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	w, h, err := Open(tty, tty).Size()
	if err != nil {
		t.Fatalf("Size() error: %v", err)
	}
	if w != 42 || h != 7 {
		t.Errorf("Size() = (%d, %d), want (42, 7)", w, h)
	}
}

func TestProcessTerminal_WriteReachesMaster(t *testing.T) {
	ptmx, tty := openPTY(t)
	pt := Open(tty, tty)

	if _, err := pt.Write([]byte("hi")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	buf := make([]byte, 8)
	n, err := ptmx.Read(buf)
	if err != nil {
		t.Fatalf("reading master: %v", err)
	}
	if string(buf[:n]) != "hi" {
		t.Errorf("master read %q", buf[:n])
	}
}

func TestProcessTerminal_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "plain")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	pt := Open(f, f)
	if pt.IsTerminal() {
		t.Error("regular file reported as terminal")
	}
	if err := pt.EnterRawMode(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("EnterRawMode() err = %v, want ErrNotTerminal", err)
	}
	if err := pt.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestProcessTerminal_OnResizeAndClose(t *testing.T) {
	_, tty := openPTY(t)
	pt := Open(tty, tty)

	pt.OnResize(func(int, int) {})
	pt.OnResize(nil)
	if err := pt.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := pt.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
}
