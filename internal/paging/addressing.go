package paging

// NoPage is the index reported when the container holds no pages
const NoPage = -1

// Direction is the scroll axis that maps to the page index
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// String returns the config name of the direction
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection maps a config name to a Direction, defaulting to Horizontal
func ParseDirection(s string) Direction {
	if s == "vertical" || s == "v" {
		return Vertical
	}
	return Horizontal
}

// Transition is the direction hint of a programmatic page change
type Transition int

const (
	Auto Transition = iota
	Forward
	Backward
)

func (t Transition) String() string {
	switch t {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "auto"
	}
}

// Wrap maps an arbitrary index into [0, count).
// Linear domains clamp, circular domains reduce modulo count.
func Wrap(index, count int, circular bool) int {
	if count <= 0 {
		return NoPage
	}
	if circular {
		return mod(index, count)
	}
	if index < 0 {
		return 0
	}
	if index > count-1 {
		return count - 1
	}
	return index
}

// ResolveDirection picks Forward or Backward for a transition from one index to another.
// Explicit hints are returned unchanged. On a ring the shorter way round wins, ties go Forward.
func ResolveDirection(from, to, count int, circular bool, hint Transition) Transition {
	if hint == Forward || hint == Backward {
		return hint
	}
	if !circular || count <= 0 {
		if to > from {
			return Forward
		}
		return Backward
	}
	forward := mod(to-from, count)
	backward := mod(from-to, count)
	if backward < forward {
		return Backward
	}
	return Forward
}

// Neighbors returns the previous and next index of index.
// A ring of one page has no distinct neighbor.
func Neighbors(index, count int, circular bool) (prev, next int, hasPrev, hasNext bool) {
	prev, next = NoPage, NoPage
	if count <= 1 || index < 0 || index >= count {
		return prev, next, false, false
	}
	if circular {
		return mod(index-1, count), mod(index+1, count), true, true
	}
	if index > 0 {
		prev, hasPrev = index-1, true
	}
	if index < count-1 {
		next, hasNext = index+1, true
	}
	return prev, next, hasPrev, hasNext
}

// mod is the non-negative remainder of a / n
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
