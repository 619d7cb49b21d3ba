// ABOUTME: Runtime owns the document and runs the single-threaded event/tick/command loop
// ABOUTME: Dispatch, Advance, Handle and Render are also callable directly by hosts and tests

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/gridtui/internal/eventbus"
	"github.com/mauromedda/gridtui/internal/log"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/terminal"
)

// Defaults applied by New for zero Options fields.
const (
	DefaultTickInterval   = 10 * time.Millisecond
	DefaultHandlerWorkers = 4
)

// NoticeKind classifies a runtime notice.
type NoticeKind uint8

const (
	NoticeRendered NoticeKind = iota
	NoticeFailed
	NoticeResized
	NoticeExited
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeRendered:
		return "rendered"
	case NoticeFailed:
		return "failed"
	case NoticeResized:
		return "resized"
	case NoticeExited:
		return "exited"
	}
	return "unknown"
}

// Notice reports something the loop did. Err is set for NoticeFailed.
type Notice struct {
	Kind  NoticeKind
	Err   error
	Frame int
}

// Options configures a Runtime.
type Options struct {
	TickInterval   time.Duration
	HandlerWorkers int
	Sheet          style.Sheet
	// Output receives painted frames when the runtime is not started with Run.
	Output io.Writer
	Width  int
	Height int
	// ExitKeys and RedrawKeys are handled before the tree sees a key.
	// They default to ctrl+c and ctrl+l.
	ExitKeys   []string
	RedrawKeys []string
	// Rebind is applied to the binding table of every element that joins
	// the tree.
	Rebind  func(Bindings)
	Notices *eventbus.Bus[Notice]
}

// Runtime is the single owner of the widget tree.
type Runtime struct {
	opts  Options
	doc   *Document
	sheet style.Sheet
	sched scheduler
	sink  Sink

	cmds      chan Command
	done      chan struct{}
	closeOnce sync.Once
	client    *Client
	group     errgroup.Group
	backlog   []func() error

	width, height int
	dirty         bool
	last          []string
	frames        int
}

// New returns a runtime owning root.
func New(root Widget, opts Options) *Runtime {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.HandlerWorkers <= 0 {
		opts.HandlerWorkers = DefaultHandlerWorkers
	}
	if opts.ExitKeys == nil {
		opts.ExitKeys = []string{"ctrl+c"}
	}
	if opts.RedrawKeys == nil {
		opts.RedrawKeys = []string{"ctrl+l"}
	}
	r := &Runtime{
		opts:   opts,
		doc:    NewDocument(root),
		sheet:  opts.Sheet,
		cmds:   make(chan Command, 64),
		done:   make(chan struct{}),
		width:  max(opts.Width, 0),
		height: max(opts.Height, 0),
		dirty:  true,
	}
	r.client = &Client{cmds: r.cmds, done: r.done}
	r.group.SetLimit(opts.HandlerWorkers)
	if opts.Output != nil {
		r.sink = NewPainter(opts.Output)
	}
	r.rebind(root)
	return r
}

// Document returns the owned document. Callers must stay on the loop
// goroutine.
func (r *Runtime) Document() *Document {
	return r.doc
}

// Client returns the handle handlers use to reach the loop.
func (r *Runtime) Client() *Client {
	return r.client
}

// Commands exposes the command queue to hosts that run their own loop.
// Every received command must be passed to Handle.
func (r *Runtime) Commands() <-chan Command {
	return r.cmds
}

// TickInterval returns the animation tick period.
func (r *Runtime) TickInterval() time.Duration {
	return r.opts.TickInterval
}

// Exited reports whether the loop has been asked to stop.
func (r *Runtime) Exited() bool {
	return r.doc.Exited()
}

// Dirty reports whether the tree changed since the last Render.
func (r *Runtime) Dirty() bool {
	return r.dirty
}

// Size returns the frame size.
func (r *Runtime) Size() (int, int) {
	return r.width, r.height
}

// Pending reports whether animations are waiting for ticks.
func (r *Runtime) Pending() bool {
	return r.sched.Pending()
}

// Resize sets the frame size. Negative sizes clamp to zero.
func (r *Runtime) Resize(w, h int) {
	if w < 0 || h < 0 {
		err := fmt.Errorf("resize %dx%d: %w", w, h, ErrInvalidGeometry)
		log.Warn("runtime: %v", err)
		r.notify(Notice{Kind: NoticeFailed, Err: err})
		w, h = max(w, 0), max(h, 0)
	}
	r.width, r.height = w, h
	if r.sink != nil {
		r.sink.Invalidate()
	}
	r.dirty = true
	r.notify(Notice{Kind: NoticeResized})
}

// Dispatch routes one event down the focus path and settles the response.
func (r *Runtime) Dispatch(ev Event) {
	switch e := ev.(type) {
	case ResizeEvent:
		r.Resize(e.Width, e.Height)
		return
	case KeyEvent:
		name := e.Key.Name()
		if slices.Contains(r.opts.ExitKeys, name) {
			r.doc.Exit()
			return
		}
		if slices.Contains(r.opts.RedrawKeys, name) {
			if r.sink != nil {
				r.sink.Invalidate()
			}
			r.dirty = true
			return
		}
	}
	root := r.doc.Root()
	if root == nil {
		return
	}
	r.settle(Send(root, ev))
	r.dirty = true
}

func (r *Runtime) settle(resp Response) {
	switch resp.Kind {
	case RespReplaceSelf:
		r.doc.SetRoot(resp.Widget)
		r.rebind(resp.Widget)
	case RespReplaceByID:
		if err := r.doc.Replace(resp.ID, resp.Widget); err != nil {
			r.fail("replace", err)
		} else {
			r.rebind(resp.Widget)
		}
	}
	for _, a := range resp.Animations {
		for _, err := range r.sched.Add(a, applyStep) {
			r.fail("animation", err)
		}
	}
	for _, c := range resp.Calls {
		r.spawn(c)
	}
}

// Advance counts one loop tick against pending animations.
func (r *Runtime) Advance() {
	if !r.sched.Pending() {
		return
	}
	for _, err := range r.sched.Advance(applyStep, r.doc.Contains) {
		r.fail("animation", err)
	}
	r.dirty = true
}

// Handle executes one command on the loop goroutine.
func (r *Runtime) Handle(cmd Command) {
	switch c := cmd.(type) {
	case ExitCmd:
		r.doc.Exit()
	case RenderCmd:
		r.dirty = true
	case LookupCmd:
		res := LookupResult{}
		if w, ok := r.doc.Find(c.ID); ok {
			res.Widget = w.Clone()
		} else {
			res.Err = &LookupError{ID: c.ID}
		}
		if c.Reply != nil {
			c.Reply <- res
		}
	case ReplaceCmd:
		err := r.doc.Replace(c.ID, c.Widget)
		if err == nil {
			r.rebind(c.Widget)
			r.dirty = true
		}
		if c.Reply != nil {
			c.Reply <- err
		}
	case SetRootCmd:
		r.doc.SetRoot(c.Widget)
		r.rebind(c.Widget)
		r.dirty = true
	case SetSheetCmd:
		r.sheet = c.Sheet
		r.dirty = true
	default:
		log.Warn("runtime: unknown command %T", cmd)
	}
}

// Drain handles every queued command without blocking.
func (r *Runtime) Drain() {
	r.flushBacklog()
	for {
		select {
		case cmd := <-r.cmds:
			r.Handle(cmd)
		default:
			return
		}
	}
}

// Frame resolves styles, lays out the root and composes a frame.
func (r *Runtime) Frame() []string {
	root := r.doc.Root()
	if root == nil {
		return nil
	}
	r.doc.Walk(func(w Widget, _ int) bool {
		e := w.Element()
		e.Resolve(r.sheet)
		e.Flags.Active = false
		return true
	})
	for _, w := range r.doc.FocusPath() {
		w.Element().Flags.Active = true
	}

	e := root.Element()
	g := e.Layout()
	x, y := g.X.Get(), g.Y.Get()
	w, h := g.Width.Get(), g.Height.Get()
	if w == 0 {
		w = r.width - x
	}
	if h == 0 {
		h = r.height - y
	}
	e.Place(x, y, w, h)

	f := AcquireFrame(r.width, r.height)
	defer ReleaseFrame(f)
	RenderTo(style.Hovered, f, root)
	return slices.Clone(f.Lines)
}

// Render composes a frame and paints it when an output is attached.
func (r *Runtime) Render() error {
	lines := r.Frame()
	r.last = lines
	r.dirty = false
	r.frames++
	if r.sink != nil {
		if err := r.sink.Paint(lines); err != nil {
			return fmt.Errorf("painting frame: %w", err)
		}
	}
	r.notify(Notice{Kind: NoticeRendered, Frame: r.frames})
	return nil
}

// Last returns the most recently rendered frame.
func (r *Runtime) Last() []string {
	return r.last
}

// Run drives the loop until an exit command, an exit key, input failure or
// ctx cancellation. The terminal is acquired for the duration and
// restored exactly once on every path.
func (r *Runtime) Run(ctx context.Context, src Source, t terminal.Terminal) (err error) {
	sess, err := terminal.Acquire(t)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := sess.Release(); rerr != nil {
			log.Warn("runtime: restoring terminal: %v", rerr)
		}
	}()

	if w, h, serr := t.Size(); serr == nil {
		r.Resize(w, h)
	} else {
		log.Warn("runtime: %v", serr)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	resizes := make(chan Event, 4)
	t.OnResize(func(w, h int) {
		select {
		case resizes <- ResizeEvent{Width: w, Height: h}:
		case <-ctx.Done():
		}
	})
	return r.loop(ctx, src, NewPainter(t), resizes)
}

// Serve drives the loop like Run but leaves terminal modes alone: the
// sink and source own the screen, and the source reports resizes.
func (r *Runtime) Serve(ctx context.Context, src Source, sink Sink) error {
	return r.loop(ctx, src, sink, nil)
}

func (r *Runtime) loop(ctx context.Context, src Source, sink Sink, resizes <-chan Event) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer r.Close()

	r.sink = sink
	events := make(chan Event, 16)
	srcErr := make(chan error, 1)
	go func() {
		for {
			ev, perr := src.Poll(ctx)
			if perr != nil {
				srcErr <- perr
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		ticker *time.Ticker
		tick   <-chan time.Time
	)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	log.Debug("runtime: loop started %dx%d", r.width, r.height)
	for !r.doc.Exited() {
		if r.dirty {
			if rerr := r.Render(); rerr != nil {
				r.fail("render", rerr)
			}
		}
		switch {
		case r.sched.Pending() && ticker == nil:
			ticker = time.NewTicker(r.opts.TickInterval)
			tick = ticker.C
		case !r.sched.Pending() && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			r.doc.Exit()
		case perr := <-srcErr:
			switch {
			case ctx.Err() != nil:
				err = ctx.Err()
			case !errors.Is(perr, io.EOF):
				err = fmt.Errorf("input source: %w", perr)
			}
			log.Debug("runtime: input ended: %v", perr)
			r.doc.Exit()
		case ev := <-events:
			r.Dispatch(ev)
		case ev := <-resizes:
			r.Dispatch(ev)
		case cmd := <-r.cmds:
			r.Handle(cmd)
		case <-tick:
			r.Advance()
		}
		r.flushBacklog()
	}
	log.Debug("runtime: loop stopped after %d frames", r.frames)
	return err
}

// Close stops accepting commands and waits for running handlers. Queued
// handlers that never started are dropped.
func (r *Runtime) Close() {
	r.closeOnce.Do(func() {
		r.doc.Exit()
		close(r.done)
		if n := len(r.backlog); n > 0 {
			log.Debug("runtime: dropping %d queued handlers", n)
			r.backlog = nil
		}
		_ = r.group.Wait()
		r.notify(Notice{Kind: NoticeExited, Frame: r.frames})
	})
}

func (r *Runtime) spawn(c Call) {
	fn := func() error {
		err := Guard("handler", func() { c.Handler(c.Self, c.Event, r.client) })
		if err != nil {
			r.fail("handler", err)
		}
		return nil
	}
	if len(r.backlog) > 0 || !r.group.TryGo(fn) {
		r.backlog = append(r.backlog, fn)
	}
}

func (r *Runtime) flushBacklog() {
	for len(r.backlog) > 0 && r.group.TryGo(r.backlog[0]) {
		r.backlog[0] = nil
		r.backlog = r.backlog[1:]
	}
}

func (r *Runtime) rebind(w Widget) {
	if r.opts.Rebind == nil || w == nil {
		return
	}
	walk(w, 0, func(w Widget, _ int) bool {
		e := w.Element()
		if e.Binds != nil {
			r.opts.Rebind(e.Binds)
		}
		return true
	})
}

func (r *Runtime) fail(what string, err error) {
	log.Warn("runtime: %s: %v", what, err)
	r.notify(Notice{Kind: NoticeFailed, Err: fmt.Errorf("%s: %w", what, err)})
}

func (r *Runtime) notify(n Notice) {
	r.opts.Notices.Publish(n)
}
