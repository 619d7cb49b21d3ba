// ABOUTME: Widget content variant: nothing, literal text, or ordered children with focus
// ABOUTME: Mutators keep the focus index valid (0 when there are no children)

package tui

// ContentKind tags the Content variant.
type ContentKind uint8

const (
	ContentNone ContentKind = iota
	ContentText
	ContentChildren
)

// Content is exactly one of no content, text, or children plus a focus
// index into them.
type Content struct {
	kind     ContentKind
	text     string
	children []Widget
	focus    int
}

// NoContent returns the empty variant.
func NoContent() Content {
	return Content{}
}

// TextContent returns the text variant.
func TextContent(s string) Content {
	return Content{kind: ContentText, text: s}
}

// ChildrenContent returns the children variant focused on the first child.
func ChildrenContent(children ...Widget) Content {
	return Content{kind: ContentChildren, children: children}
}

// Kind reports the variant.
func (c *Content) Kind() ContentKind {
	return c.kind
}

// Text returns the text, or "" for other variants.
func (c *Content) Text() string {
	return c.text
}

// SetText switches to the text variant.
func (c *Content) SetText(s string) {
	*c = Content{kind: ContentText, text: s}
}

// Children returns the child list, nil for other variants.
func (c *Content) Children() []Widget {
	return c.children
}

// Len returns the number of children.
func (c *Content) Len() int {
	return len(c.children)
}

// Focus returns the focused child index.
func (c *Content) Focus() int {
	return c.focus
}

// Focused returns the focused child or nil when there is none.
func (c *Content) Focused() Widget {
	if c.focus < len(c.children) {
		return c.children[c.focus]
	}
	return nil
}

// SetFocus moves focus to i and reports whether i was valid.
func (c *Content) SetFocus(i int) bool {
	if i < 0 || i >= len(c.children) {
		return false
	}
	c.focus = i
	return true
}

// Child returns child i or nil.
func (c *Content) Child(i int) Widget {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// SetChild replaces child i and reports whether i was valid.
func (c *Content) SetChild(i int, w Widget) bool {
	if i < 0 || i >= len(c.children) || w == nil {
		return false
	}
	c.children[i] = w
	return true
}

// Append adds w as the last child, switching to the children variant.
func (c *Content) Append(w Widget) {
	if c.kind != ContentChildren {
		*c = Content{kind: ContentChildren}
	}
	c.children = append(c.children, w)
}

// Remove deletes child i, clamping focus.
func (c *Content) Remove(i int) bool {
	if i < 0 || i >= len(c.children) {
		return false
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
	if c.focus >= len(c.children) {
		c.focus = max(len(c.children)-1, 0)
	}
	return true
}

// IndexOf returns the index of the direct child with id, or -1.
func (c *Content) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, ch := range c.children {
		if ch.Element().ID == id {
			return i
		}
	}
	return -1
}

func (c Content) clone() Content {
	if c.kind != ContentChildren {
		return c
	}
	out := c
	out.children = make([]Widget, len(c.children))
	for i, ch := range c.children {
		out.children[i] = ch.Clone()
	}
	return out
}
