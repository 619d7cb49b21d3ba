// ABOUTME: Loop-driven animation scheduler for transient widget states
// ABOUTME: Delays count loop ticks; each applied step sets flags then calls Tick(i)

package tui

import (
	"fmt"

	"github.com/mauromedda/gridtui/pkg/tui/style"
)

type running struct {
	anim Animation
	next int
	wait int
}

// scheduler holds at most one animation per target, in registration order.
type scheduler struct {
	items []*running
}

// stepFunc applies step i of an animation.
type stepFunc func(target Widget, i int, st style.State) error

// Add registers a, replacing any animation for the same target, and applies
// its leading zero-delay steps immediately.
func (s *scheduler) Add(a Animation, apply stepFunc) []error {
	if a.Target == nil || len(a.Steps) == 0 {
		return nil
	}
	for i, r := range s.items {
		if r.anim.Target == a.Target {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	r := &running{anim: a, wait: a.Steps[0].Delay}
	errs := r.due(apply)
	if r.next < len(a.Steps) {
		s.items = append(s.items, r)
	}
	return errs
}

// due applies every step whose delay has elapsed.
func (r *running) due(apply stepFunc) []error {
	var errs []error
	for r.next < len(r.anim.Steps) && r.wait <= 0 {
		if err := apply(r.anim.Target, r.next, r.anim.Steps[r.next].State); err != nil {
			errs = append(errs, err)
		}
		r.next++
		if r.next < len(r.anim.Steps) {
			r.wait = r.anim.Steps[r.next].Delay
		}
	}
	return errs
}

// Advance counts one tick against every animation and applies due steps.
// Animations whose target fails keep are dropped.
func (s *scheduler) Advance(apply stepFunc, keep func(Widget) bool) []error {
	var errs []error
	live := s.items[:0]
	for _, r := range s.items {
		if keep != nil && !keep(r.anim.Target) {
			continue
		}
		r.wait--
		errs = append(errs, r.due(apply)...)
		if r.next < len(r.anim.Steps) {
			live = append(live, r)
		}
	}
	clear(s.items[len(live):])
	s.items = live
	return errs
}

// Pending reports whether any animation is waiting.
func (s *scheduler) Pending() bool {
	return len(s.items) > 0
}

// applyStep is the default stepFunc: it maps the state onto flags and
// lets the widget react.
func applyStep(target Widget, i int, st style.State) (err error) {
	e := target.Element()
	switch st {
	case style.Idle:
		e.Flags.Clicked, e.Flags.Selected = false, false
	case style.Hovered:
		e.Flags.Active = true
	case style.Clicked:
		e.Flags.Clicked = true
	case style.Selected:
		e.Flags.Selected = true
	}
	t, ok := target.(Ticker)
	if !ok {
		return nil
	}
	if perr := Guard("tick", func() { err = t.Tick(i) }); perr != nil {
		return perr
	}
	if err != nil {
		return fmt.Errorf("tick %d: %w", i, err)
	}
	return nil
}
