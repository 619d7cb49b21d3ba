// ABOUTME: Generic override cell distinguishing type defaults from author-set values
// ABOUTME: TrySet only writes a Default cell so sheet and author passes never clobber each other

package style

// Value holds either a type default or an explicitly set (custom) value.
// The zero Value is Default with T's zero value.
type Value[T comparable] struct {
	v      T
	custom bool
}

// Default returns a cell holding v that later TrySet calls may overwrite.
func Default[T comparable](v T) Value[T] {
	return Value[T]{v: v}
}

// Custom returns a cell holding an explicitly set v.
func Custom[T comparable](v T) Value[T] {
	return Value[T]{v: v, custom: true}
}

// Get returns the held value regardless of its origin.
func (c Value[T]) Get() T {
	return c.v
}

// IsCustom reports whether the value was explicitly set.
func (c Value[T]) IsCustom() bool {
	return c.custom
}

// Set stores v unconditionally and marks the cell custom.
func (c *Value[T]) Set(v T) {
	c.v = v
	c.custom = true
}

// TrySet stores v only when the cell still holds a default.
// The cell becomes custom after the first successful write.
func (c *Value[T]) TrySet(v T) bool {
	if c.custom {
		return false
	}
	c.v = v
	c.custom = true
	return true
}

// Or returns the held value when custom, otherwise fallback.
func (c Value[T]) Or(fallback T) T {
	if c.custom {
		return c.v
	}
	return fallback
}
