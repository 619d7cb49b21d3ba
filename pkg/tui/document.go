// ABOUTME: Document owns the root widget: top-down lookup, replacement and exit state
// ABOUTME: Only the runtime goroutine touches it; handlers go through a Client

package tui

// Document is the owner of the widget tree.
type Document struct {
	root   Widget
	exited bool
}

// NewDocument wraps root.
func NewDocument(root Widget) *Document {
	return &Document{root: root}
}

// Root returns the root widget.
func (d *Document) Root() Widget {
	return d.root
}

// SetRoot swaps the whole tree.
func (d *Document) SetRoot(w Widget) {
	d.root = w
}

// Exit marks the document finished.
func (d *Document) Exit() {
	d.exited = true
}

// Exited reports whether Exit was called.
func (d *Document) Exited() bool {
	return d.exited
}

// Walk visits widgets depth-first, parents before children. Returning
// false from fn skips the widget's subtree.
func (d *Document) Walk(fn func(w Widget, depth int) bool) {
	if d.root != nil {
		walk(d.root, 0, fn)
	}
}

func walk(w Widget, depth int, fn func(Widget, int) bool) {
	if !fn(w, depth) {
		return
	}
	for _, ch := range w.Element().Content.Children() {
		walk(ch, depth+1, fn)
	}
}

// Find returns the first widget with id in depth-first order.
func (d *Document) Find(id string) (Widget, bool) {
	var found Widget
	if id == "" {
		return nil, false
	}
	d.Walk(func(w Widget, _ int) bool {
		if found != nil {
			return false
		}
		if w.Element().ID == id {
			found = w
			return false
		}
		return true
	})
	return found, found != nil
}

// Contains reports whether w is part of the tree.
func (d *Document) Contains(target Widget) bool {
	found := false
	d.Walk(func(w Widget, _ int) bool {
		if w == target {
			found = true
		}
		return !found
	})
	return found
}

// Replace swaps the first widget with id for w, searching top-down.
func (d *Document) Replace(id string, w Widget) error {
	if d.root != nil && d.root.Element().ID == id && id != "" {
		d.root = w
		return nil
	}
	if d.root != nil && replaceIn(d.root, id, w) {
		return nil
	}
	return &LookupError{ID: id}
}

func replaceIn(parent Widget, id string, w Widget) bool {
	c := &parent.Element().Content
	if i := c.IndexOf(id); i >= 0 {
		return c.SetChild(i, w)
	}
	for _, ch := range c.Children() {
		if replaceIn(ch, id, w) {
			return true
		}
	}
	return false
}

// FocusPath returns the widgets from the root to the focused leaf.
func (d *Document) FocusPath() []Widget {
	var path []Widget
	for w := d.root; w != nil; w = w.Element().Content.Focused() {
		path = append(path, w)
	}
	return path
}

// LookupError reports a failed identifier lookup.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return "element " + e.ID + ": " + ErrElementNotFound.Error()
}

func (e *LookupError) Unwrap() error {
	return ErrElementNotFound
}
