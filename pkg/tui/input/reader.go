// ABOUTME: Reader turns raw terminal bytes into runtime events and serves them through Poll
// ABOUTME: Buffers partial escape sequences, times out a lone ESC and decodes bracketed paste

package input

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/key"
)

const (
	readBufSize  = 256
	escTimeout   = 50 * time.Millisecond
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// ErrClosed is returned by Poll after Close.
var ErrClosed = errors.New("input: reader closed")

// Reader is a tui.Source over a byte stream such as a raw-mode stdin.
// The underlying Read cannot be interrupted; a goroutine blocked in it
// exits once Read returns.
type Reader struct {
	src    io.Reader
	events chan tui.Event
	done   chan struct{}
	start  sync.Once
	stop   sync.Once
	buf    []byte
	err    error
}

// NewReader creates a Reader over r. Reading starts on the first Poll.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		src:    r,
		events: make(chan tui.Event, 64),
		done:   make(chan struct{}),
		buf:    make([]byte, 0, readBufSize),
	}
}

// Poll implements tui.Source. It returns io.EOF, or the read error, once
// the stream ends and every buffered event has been delivered.
func (r *Reader) Poll(ctx context.Context) (tui.Event, error) {
	r.start.Do(func() { go r.run() })
	select {
	case ev, ok := <-r.events:
		if !ok {
			return nil, r.err
		}
		return ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops event delivery.
func (r *Reader) Close() error {
	r.stop.Do(func() { close(r.done) })
	return nil
}

type chunk struct {
	data []byte
	err  error
}

func (r *Reader) run() {
	defer close(r.events)
	chunks := make(chan chunk)
	go r.readLoop(chunks)

	var timeout <-chan time.Time
	for {
		select {
		case <-r.done:
			r.err = ErrClosed
			return
		case c := <-chunks:
			if c.err != nil {
				r.flush()
				r.err = c.err
				return
			}
			r.buf = append(r.buf, c.data...)
			timeout = nil
			if r.drain() {
				timeout = time.After(escTimeout)
			}
		case <-timeout:
			timeout = nil
			if r.force() && r.drain() {
				timeout = time.After(escTimeout)
			}
		}
	}
}

// readLoop forwards chunks until Read fails or the reader is closed.
func (r *Reader) readLoop(ch chan<- chunk) {
	tmp := make([]byte, readBufSize)
	for {
		n, err := r.src.Read(tmp)
		if n > 0 {
			select {
			case ch <- chunk{data: bytes.Clone(tmp[:n])}:
			case <-r.done:
				return
			}
		}
		if err != nil {
			select {
			case ch <- chunk{err: err}:
			case <-r.done:
			}
			return
		}
	}
}

// drain emits every complete event in the buffer. It reports whether the
// remaining bytes need more input to decide.
func (r *Reader) drain() bool {
	for len(r.buf) > 0 {
		n, ev, wait := r.parse()
		if wait {
			return true
		}
		r.buf = r.buf[n:]
		if ev != nil && !r.emit(ev) {
			return false
		}
	}
	return false
}

// force resolves an undecidable prefix after the timeout: a leading ESC
// becomes Escape, any other byte is dropped. An unterminated paste keeps
// waiting. It reports whether the buffer changed.
func (r *Reader) force() bool {
	if len(r.buf) == 0 || bytes.HasPrefix(r.buf, []byte(bracketStart)) {
		return false
	}
	b := r.buf[0]
	r.buf = r.buf[1:]
	if b == 0x1b {
		r.emit(tui.KeyEvent{Key: key.Key{Type: key.KeyEscape}})
	}
	return true
}

// flush emits what is left at end of stream.
func (r *Reader) flush() {
	for r.drain() {
		if bytes.HasPrefix(r.buf, []byte(bracketStart)) {
			r.emit(tui.PasteEvent{Text: string(r.buf[len(bracketStart):])})
			r.buf = r.buf[:0]
			return
		}
		r.force()
	}
}

func (r *Reader) emit(ev tui.Event) bool {
	select {
	case r.events <- ev:
		return true
	case <-r.done:
		return false
	}
}

// parse decodes one event from the front of the buffer: the bytes it
// consumed, the event (nil for unrecognized input) and whether it must
// wait for more bytes.
func (r *Reader) parse() (int, tui.Event, bool) {
	b := r.buf
	if bytes.HasPrefix(b, []byte(bracketStart)) {
		end := bytes.Index(b[len(bracketStart):], []byte(bracketEnd))
		if end < 0 {
			return 0, nil, true
		}
		text := string(b[len(bracketStart) : len(bracketStart)+end])
		return len(bracketStart) + end + len(bracketEnd), tui.PasteEvent{Text: text}, false
	}
	if b[0] == 0x1b {
		if len(b) == 1 || (len(b) < len(bracketStart) && bytes.HasPrefix([]byte(bracketStart), b)) {
			return 0, nil, true
		}
		return parseEscape(b)
	}
	if !utf8.FullRune(b) {
		return 0, nil, true
	}
	rn, size := utf8.DecodeRune(b)
	if rn == utf8.RuneError {
		return 1, nil, false
	}
	return size, keyEvent(key.ParseKey(string(b[:size]))), false
}

// maxSeq caps how long an unterminated CSI may grow before its ESC is
// taken as a lone Escape.
const maxSeq = 16

// parseEscape decodes the sequence at the front of b. CSI and SS3
// sequences are consumed whole once their final byte is in, even when
// the key is unknown; ESC plus a printable byte is alt+key.
func parseEscape(b []byte) (int, tui.Event, bool) {
	switch b[1] {
	case '[', 'O':
		end := seqEnd(b)
		if end < 0 {
			if len(b) < maxSeq {
				return 0, nil, true
			}
			return 1, keyEvent(key.Key{Type: key.KeyEscape}), false
		}
		return end, keyEvent(key.ParseKey(string(b[:end]))), false
	}
	if k := key.ParseKey(string(b[:2])); k.Type != key.KeyUnknown {
		return 2, keyEvent(k), false
	}
	return 1, keyEvent(key.Key{Type: key.KeyEscape}), false
}

// seqEnd returns the length of the CSI or SS3 sequence at the front of b,
// or -1 while it is incomplete.
func seqEnd(b []byte) int {
	if b[1] == 'O' {
		if len(b) < 3 {
			return -1
		}
		return 3
	}
	for j := 2; j < len(b); j++ {
		if b[j] >= 0x40 && b[j] <= 0x7e {
			return j + 1
		}
	}
	return -1
}

func keyEvent(k key.Key) tui.Event {
	if k.Type == key.KeyUnknown {
		return nil
	}
	return tui.KeyEvent{Key: k}
}
