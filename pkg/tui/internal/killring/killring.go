// ABOUTME: Kill ring backing the input widget's ctrl+k/ctrl+u/ctrl+w and ctrl+y yank
// ABOUTME: Consecutive kills extend the newest entry; the ring keeps a bounded history

package killring

// DefaultSize is the number of entries a ring keeps.
const DefaultSize = 16

// Ring stores killed text, newest last.
type Ring struct {
	entries []string
	size    int
	yank    int
}

// New creates a ring holding at most size entries.
func New(size int) *Ring {
	if size <= 0 {
		size = DefaultSize
	}
	return &Ring{size: size, yank: -1}
}

// Kill records text. When extend is set the text joins the newest entry,
// before it if prepend is set and after it otherwise.
func (r *Ring) Kill(text string, extend, prepend bool) {
	if text == "" {
		return
	}
	if extend && len(r.entries) > 0 {
		last := len(r.entries) - 1
		if prepend {
			r.entries[last] = text + r.entries[last]
		} else {
			r.entries[last] += text
		}
		r.yank = last
		return
	}
	if len(r.entries) == r.size {
		r.entries = r.entries[1:]
	}
	r.entries = append(r.entries, text)
	r.yank = len(r.entries) - 1
}

// Yank returns the newest entry.
func (r *Ring) Yank() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	r.yank = len(r.entries) - 1
	return r.entries[r.yank], true
}

// Rotate steps to the next older entry after a Yank, wrapping around.
func (r *Ring) Rotate() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	r.yank = (r.yank - 1 + len(r.entries)) % len(r.entries)
	return r.entries[r.yank], true
}

// Len returns the number of entries.
func (r *Ring) Len() int { return len(r.entries) }

// Clone returns an independent copy.
func (r *Ring) Clone() *Ring {
	if r == nil {
		return nil
	}
	cp := *r
	cp.entries = append([]string(nil), r.entries...)
	return &cp
}
