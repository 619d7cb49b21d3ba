// ABOUTME: Painter writes composed frames to the terminal, diffing against the last frame
// ABOUTME: Rows are addressed absolutely; rows that shrank or vanished are blanked with spaces

package tui

import (
	"io"
	"strconv"
	"strings"

	"github.com/mauromedda/gridtui/pkg/tui/internal/pool"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

type flusher interface {
	Flush() error
}

// Sink receives composed frames. Invalidate asks for a full redraw on the
// next Paint.
type Sink interface {
	Paint(lines []string) error
	Invalidate()
}

// Painter is the Sink for ANSI terminals.
type Painter struct {
	w      io.Writer
	prev   []string
	widths []int
	full   bool
}

// NewPainter returns a painter writing to w.
func NewPainter(w io.Writer) *Painter {
	return &Painter{w: w, full: true}
}

// Invalidate forces the next Paint to clear the screen and redraw all rows.
func (p *Painter) Invalidate() {
	p.full = true
}

// Paint writes the rows of lines that changed since the previous call,
// wrapped in a synchronized update, then flushes the writer if it can.
func (p *Painter) Paint(lines []string) error {
	b := pool.Builder()
	defer pool.Release(b)
	var num [20]byte

	moveTo := func(row int) {
		b.WriteString("\x1b[")
		b.Write(strconv.AppendInt(num[:0], int64(row+1), 10))
		b.WriteString(";1H")
	}

	if p.full {
		b.WriteString("\x1b[2J")
		p.prev, p.widths = nil, nil
	}

	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = width.VisibleWidth(line)
		if i < len(p.prev) && p.prev[i] == line {
			continue
		}
		moveTo(i)
		b.WriteString(line)
		b.WriteString("\x1b[0m")
		if i < len(p.widths) && p.widths[i] > widths[i] {
			b.WriteString(strings.Repeat(" ", p.widths[i]-widths[i]))
		}
	}
	for i := len(lines); i < len(p.prev); i++ {
		if p.widths[i] == 0 {
			continue
		}
		moveTo(i)
		b.WriteString(strings.Repeat(" ", p.widths[i]))
	}

	p.full = false
	p.prev = append(p.prev[:0], lines...)
	p.widths = widths

	if b.Len() == 0 {
		return nil
	}
	out := "\x1b[?2026h" + b.String() + "\x1b[?2026l"
	if _, err := io.WriteString(p.w, out); err != nil {
		return err
	}
	if f, ok := p.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
