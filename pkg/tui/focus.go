// ABOUTME: Directional focus search over sibling widgets on strict rows and columns
// ABOUTME: Closest picks the nearest aligned sibling; ties go to the earliest child

package tui

// Direction is a focus movement direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// DirectionFor maps a focus action name to a direction.
func DirectionFor(action string) (Direction, bool) {
	switch action {
	case ActionFocusUp:
		return Up, true
	case ActionFocusDown:
		return Down, true
	case ActionFocusLeft:
		return Left, true
	case ActionFocusRight:
		return Right, true
	}
	return 0, false
}

// Focus actions bound by containers.
const (
	ActionFocusUp    = "focusUp"
	ActionFocusDown  = "focusDown"
	ActionFocusLeft  = "focusLeft"
	ActionFocusRight = "focusRight"
)

// Closest returns the index of the sibling nearest to siblings[current] in
// dir. Candidates must lie strictly beyond the current widget on the
// movement axis and share its coordinate on the other axis. Distance is
// Manhattan; the first minimal candidate wins. With no candidate, or an
// invalid current index, current is returned.
func Closest(siblings []Widget, current int, dir Direction) int {
	if current < 0 || current >= len(siblings) {
		return current
	}
	cx, cy := siblings[current].Element().Pos()
	best, bestDist := current, -1
	for i, s := range siblings {
		if i == current {
			continue
		}
		x, y := s.Element().Pos()
		var ok bool
		switch dir {
		case Left:
			ok = y == cy && x < cx
		case Right:
			ok = y == cy && x > cx
		case Up:
			ok = x == cx && y < cy
		case Down:
			ok = x == cx && y > cy
		}
		if !ok {
			continue
		}
		d := abs(x-cx) + abs(y-cy)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
