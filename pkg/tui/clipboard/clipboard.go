// ABOUTME: System clipboard writes for input widgets via pbcopy, wl-copy or xclip
// ABOUTME: The command runs with a timeout so a stuck helper cannot hold a handler worker

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Timeout bounds one clipboard command.
const Timeout = 2 * time.Second

// ErrUnsupported reports a platform without a known clipboard command.
var ErrUnsupported = errors.New("clipboard not supported")

// Write copies text to the system clipboard.
func Write(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	return WriteContext(ctx, text)
}

// WriteContext copies text to the system clipboard, stopping the helper
// when ctx ends.
func WriteContext(ctx context.Context, text string) error {
	name, args := clipboardCmd()
	if name == "" {
		return fmt.Errorf("%s: %w", runtime.GOOS, ErrUnsupported)
	}
	c := exec.CommandContext(ctx, name, args...)
	c.Stdin = strings.NewReader(text)
	if err := c.Run(); err != nil {
		return fmt.Errorf("clipboard %s: %w", name, err)
	}
	return nil
}

// clipboardCmd returns the clipboard command and arguments for the current OS.
func clipboardCmd() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			return "wl-copy", nil
		}
		return "xclip", []string{"-selection", "clipboard"}
	default:
		return "", nil
	}
}
