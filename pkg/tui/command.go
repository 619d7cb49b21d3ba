// ABOUTME: Commands handlers send to the runtime and the Client that carries them
// ABOUTME: Lookups are typed request/reply pairs answered on the loop goroutine

package tui

import (
	"context"

	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// Command is a request serialized onto the runtime loop.
type Command interface {
	isCommand()
}

// ExitCmd stops the loop before its next poll.
type ExitCmd struct{}

// RenderCmd requests a redraw.
type RenderCmd struct{}

// LookupCmd asks for a copy of the element with ID.
type LookupCmd struct {
	ID    string
	Reply chan<- LookupResult
}

// LookupResult answers a LookupCmd. Widget is a clone, never the live node.
type LookupResult struct {
	Widget Widget
	Err    error
}

// ReplaceCmd swaps the element with ID for Widget.
type ReplaceCmd struct {
	ID     string
	Widget Widget
	Reply  chan<- error
}

// SetRootCmd swaps the whole tree.
type SetRootCmd struct {
	Widget Widget
}

// SetSheetCmd installs a new stylesheet.
type SetSheetCmd struct {
	Sheet style.Sheet
}

func (ExitCmd) isCommand()     {}
func (RenderCmd) isCommand()   {}
func (LookupCmd) isCommand()   {}
func (ReplaceCmd) isCommand()  {}
func (SetRootCmd) isCommand()  {}
func (SetSheetCmd) isCommand() {}

// Client is the handle handlers use to reach the runtime. All methods are
// safe for concurrent use and fail with ErrChannelClosed once the runtime
// has stopped.
type Client struct {
	cmds chan<- Command
	done <-chan struct{}
}

// Send delivers cmd to the loop.
func (c *Client) Send(ctx context.Context, cmd Command) error {
	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}
	select {
	case c.cmds <- cmd:
		return nil
	case <-c.done:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Exit asks the loop to stop.
func (c *Client) Exit() error {
	return c.Send(context.Background(), ExitCmd{})
}

// Render asks for a redraw.
func (c *Client) Render() error {
	return c.Send(context.Background(), RenderCmd{})
}

// SetRoot replaces the whole tree.
func (c *Client) SetRoot(w Widget) error {
	return c.Send(context.Background(), SetRootCmd{Widget: w})
}

// SetSheet installs a new stylesheet.
func (c *Client) SetSheet(sh style.Sheet) error {
	return c.Send(context.Background(), SetSheetCmd{Sheet: sh})
}

// Replace swaps the element with id and waits for the outcome.
func (c *Client) Replace(ctx context.Context, id string, w Widget) error {
	reply := make(chan error, 1)
	if err := c.Send(ctx, ReplaceCmd{ID: id, Widget: w, Reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-c.done:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetElementByID returns a copy of the element with id. It blocks until the
// loop answers between dispatch steps.
func (c *Client) GetElementByID(ctx context.Context, id string) (Widget, error) {
	reply := make(chan LookupResult, 1)
	if err := c.Send(ctx, LookupCmd{ID: id, Reply: reply}); err != nil {
		return nil, err
	}
	select {
	case res := <-reply:
		return res.Widget, res.Err
	case <-c.done:
		return nil, ErrChannelClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
