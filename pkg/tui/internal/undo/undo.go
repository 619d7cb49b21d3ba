// ABOUTME: Bounded undo/redo history of value snapshots
// ABOUTME: Undo and Redo trade the caller's current state for the stored one

package undo

// History records snapshots of S taken before each change.
type History[S any] struct {
	past   []S
	future []S
	limit  int
}

// New creates a history keeping at most limit snapshots.
func New[S any](limit int) *History[S] {
	return &History[S]{limit: max(limit, 1)}
}

// Record saves the state before a change and drops redo history.
func (h *History[S]) Record(s S) {
	if len(h.past) == h.limit {
		h.past = h.past[1:]
	}
	h.past = append(h.past, s)
	h.future = h.future[:0]
}

// Undo returns the previous state and keeps cur for Redo.
func (h *History[S]) Undo(cur S) (S, bool) {
	return swap(&h.past, &h.future, cur)
}

// Redo returns the state replaced by the last Undo and keeps cur for Undo.
func (h *History[S]) Redo(cur S) (S, bool) {
	return swap(&h.future, &h.past, cur)
}

// Len returns the number of undoable snapshots.
func (h *History[S]) Len() int { return len(h.past) }

// Clone returns an independent copy. Snapshots are copied shallowly.
func (h *History[S]) Clone() *History[S] {
	if h == nil {
		return nil
	}
	return &History[S]{
		past:   append([]S(nil), h.past...),
		future: append([]S(nil), h.future...),
		limit:  h.limit,
	}
}

func swap[S any](from, to *[]S, cur S) (S, bool) {
	if len(*from) == 0 {
		var zero S
		return zero, false
	}
	last := (*from)[len(*from)-1]
	*from = (*from)[:len(*from)-1]
	*to = append(*to, cur)
	return last, true
}
