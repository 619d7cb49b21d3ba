// ABOUTME: Frame is the fixed-size character grid a widget renders its children into
// ABOUTME: Frames are pooled via sync.Pool and recycled after each composite pass

package tui

import (
	"strings"
	"sync"

	"github.com/mauromedda/gridtui/internal/log"
)

var framePool = sync.Pool{
	New: func() any {
		return &Frame{Lines: make([]string, 0, 64)}
	},
}

// Frame is height rows of width visible cells.
type Frame struct {
	Lines []string
	width int
}

// NewFrame returns a frame of h blank rows of w spaces. Negative sizes
// clamp to zero.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.reset(w, h)
	return f
}

// AcquireFrame gets a blank w x h frame from the pool.
func AcquireFrame(w, h int) *Frame {
	f := framePool.Get().(*Frame)
	f.reset(w, h)
	return f
}

// ReleaseFrame returns a frame to the pool.
func ReleaseFrame(f *Frame) {
	if f == nil {
		return
	}
	f.Lines = f.Lines[:0]
	framePool.Put(f)
}

func (f *Frame) reset(w, h int) {
	if w < 0 || h < 0 {
		log.Debug("frame: clamping invalid geometry %dx%d", w, h)
		w, h = max(w, 0), max(h, 0)
	}
	f.width = w
	f.Lines = f.Lines[:0]
	blank := strings.Repeat(" ", w)
	for range h {
		f.Lines = append(f.Lines, blank)
	}
}

// Width returns the number of cells per row.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return len(f.Lines)
}

// Merge overlays line onto row y at column x. Rows outside the frame are
// dropped; it reports whether the row existed.
func (f *Frame) Merge(y int, line string, x int) bool {
	if y < 0 || y >= len(f.Lines) {
		return false
	}
	f.Lines[y] = MergeLine(f.Lines[y], line, x)
	return true
}

// String joins the rows with line breaks.
func (f *Frame) String() string {
	return strings.Join(f.Lines, "\n")
}
