// ABOUTME: Pooled strings.Builder values for the compositor's per-line string assembly
// ABOUTME: MergeLine and the painter build one string per row on every frame

package pool

import (
	"strings"
	"sync"
)

// maxRetained caps the capacity of builders returned to the pool so one
// oversized frame does not pin its memory.
const maxRetained = 64 << 10

var builders = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// Builder returns an empty builder.
func Builder() *strings.Builder {
	sb := builders.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// Release returns sb to the pool. The builder must not be used afterwards.
func Release(sb *strings.Builder) {
	if sb == nil || sb.Cap() > maxRetained {
		return
	}
	sb.Reset()
	builders.Put(sb)
}

// String returns sb's contents and releases it.
func String(sb *strings.Builder) string {
	s := sb.String()
	Release(sb)
	return s
}
