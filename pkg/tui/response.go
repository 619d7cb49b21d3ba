// ABOUTME: EventResponse: structural change requested by a widget plus carried side effects
// ABOUTME: Apply splices replacements into a parent's children; unmatched ids propagate up

package tui

import "github.com/mauromedda/gridtui/pkg/tui/style"

// ResponseKind tags the structural part of a Response.
type ResponseKind uint8

const (
	RespNone ResponseKind = iota
	RespReplaceSelf
	RespReplaceByID
)

// Step is one scheduled state change, Delay ticks after the previous step.
type Step struct {
	State style.State
	Delay int
}

// Animation is an ordered state sequence for Target.
type Animation struct {
	Target Widget
	Steps  []Step
}

// Call is a deferred handler invocation.
type Call struct {
	Handler Handler
	Self    Widget
	Event   Event
}

// Response is returned from Widget.Event. The structural kind is consumed
// by the first ancestor able to apply it; animations and calls travel up
// to the runtime untouched.
type Response struct {
	Kind   ResponseKind
	ID     string
	Widget Widget

	Animations []Animation
	Calls      []Call
	Handled    bool
}

// None reports no structural change.
func None() Response {
	return Response{}
}

// Handled reports no structural change but marks the event consumed.
func Handled() Response {
	return Response{Handled: true}
}

// ReplaceSelf asks the parent to put w where the responding child is.
func ReplaceSelf(w Widget) Response {
	return Response{Kind: RespReplaceSelf, Widget: w, Handled: true}
}

// ReplaceByID asks an ancestor to replace the element with id.
func ReplaceByID(id string, w Widget) Response {
	return Response{Kind: RespReplaceByID, ID: id, Widget: w, Handled: true}
}

// Animate attaches an animation for target.
func (r Response) Animate(target Widget, steps ...Step) Response {
	r.Animations = append(r.Animations, Animation{Target: target, Steps: steps})
	r.Handled = true
	return r
}

// WithCall attaches a deferred handler call.
func (r Response) WithCall(c Call) Response {
	r.Calls = append(r.Calls, c)
	r.Handled = true
	return r
}

// Structural reports whether a replacement is still pending.
func (r Response) Structural() bool {
	return r.Kind != RespNone
}

// Apply resolves r against a parent's children, where index is the child
// that produced it. A consumed replacement becomes RespNone; extras are
// preserved.
func Apply(c *Content, index int, r Response) Response {
	switch r.Kind {
	case RespReplaceSelf:
		if c.SetChild(index, r.Widget) {
			r.Kind, r.Widget = RespNone, nil
		}
	case RespReplaceByID:
		if i := c.IndexOf(r.ID); i >= 0 && c.SetChild(i, r.Widget) {
			r.Kind, r.ID, r.Widget = RespNone, "", nil
		}
	}
	return r
}
