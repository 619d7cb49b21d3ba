// ABOUTME: Tests for the byte-stream event Reader
// ABOUTME: Covers keys, split sequences, lone ESC timeout, bracketed paste and end of stream

package input

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/key"
)

func pollAll(t *testing.T, src tui.Source) ([]tui.Event, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	var out []tui.Event
	for {
		ev, err := src.Poll(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, ev)
	}
}

func names(evs []tui.Event) []string {
	out := make([]string, 0, len(evs))
	for _, ev := range evs {
		switch e := ev.(type) {
		case tui.KeyEvent:
			out = append(out, e.Key.String())
		case tui.PasteEvent:
			out = append(out, "paste:"+e.Text)
		}
	}
	return out
}

func TestReader_KeysThenEOF(t *testing.T) {
	t.Parallel()

	evs, err := pollAll(t, NewReader(strings.NewReader("a\x1b[A\r\x1b[Z")))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"a", "up", "enter", "shift+tab"}, names(evs))
}

func TestReader_BracketedPaste(t *testing.T) {
	t.Parallel()

	evs, err := pollAll(t, NewReader(strings.NewReader("x\x1b[200~hi\nthere\x1b[201~y")))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"x", "paste:hi\nthere", "y"}, names(evs))
}

func TestReader_TrailingEscapeAtEOF(t *testing.T) {
	t.Parallel()

	evs, _ := pollAll(t, NewReader(strings.NewReader("\x1b")))
	assert.Equal(t, []string{"escape"}, names(evs))
}

func TestReader_SplitSequenceAndRune(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	r := NewReader(pr)
	go func() {
		pw.Write([]byte("\x1b["))
		pw.Write([]byte("B"))
		pw.Write([]byte("é")[:1])
		pw.Write([]byte("é")[1:])
		pw.Close()
	}()

	evs, err := pollAll(t, r)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"down", "é"}, names(evs))
}

func TestReader_LoneEscapeTimesOut(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewReader(pr)
	go pw.Write([]byte{0x1b})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := r.Poll(ctx)
	require.NoError(t, err)
	ke, ok := ev.(tui.KeyEvent)
	require.True(t, ok)
	assert.Equal(t, key.KeyEscape, ke.Key.Type)
}

func TestReader_PollHonorsContext(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewReader(pr)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.Poll(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReader_Close(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewReader(pr)
	require.NoError(t, r.Close())

	_, err := r.Poll(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestReader_SplitModifierSequence(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	r := NewReader(pr)
	go func() {
		pw.Write([]byte("\x1b[1;"))
		pw.Write([]byte("5C"))
		pw.Write([]byte("\x1b[99q\x1bb"))
		pw.Close()
	}()

	evs, err := pollAll(t, r)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"ctrl+right", "alt+b"}, names(evs))
}
