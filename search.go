package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned for a grid with no cells or ragged rows.
	ErrInvalidGrid = errors.New("aoc: grid must be non-empty and rectangular")

	// ErrOutOfBounds is returned when a search starts outside its grid.
	ErrOutOfBounds = errors.New("aoc: position outside grid")

	// ErrNoPathFound is returned when a queried position was never reached.
	ErrNoPathFound = errors.New("aoc: no path found")
)

// A StepRule reports whether a single step from a cell of height from onto
// an adjacent cell of height to is allowed.
type StepRule func(from, to int) bool

// Climb allows a rise of at most one unit per step and any drop.
func Climb(from, to int) bool { return to-from <= 1 }

// Descend is Climb walked backwards: a drop of at most one unit per step and
// any rise. A Descend search from a goal gives the Climb distance from every
// cell to that goal.
func Descend(from, to int) bool { return from-to <= 1 }

// SearchOptions configures ShortestPaths.
type SearchOptions struct {
	// Rule decides which neighbour steps are legal. Defaults to Climb.
	Rule StepRule

	// OnSettle, if set, is called once for every position when its distance
	// becomes final, in settlement order.
	OnSettle func(p Pt, dist int)

	// Logf, if set, receives a trace line per settled position.
	Logf func(format string, args ...any)
}

// SearchOption configures ShortestPaths.
type SearchOption func(*SearchOptions)

// WithStepRule sets the rule for stepping between neighbours. A nil rule
// keeps the default.
func WithStepRule(rule StepRule) SearchOption {
	return func(o *SearchOptions) {
		if rule != nil {
			o.Rule = rule
		}
	}
}

// WithOnSettle calls fn with each position as its distance becomes final.
func WithOnSettle(fn func(p Pt, dist int)) SearchOption {
	return func(o *SearchOptions) {
		o.OnSettle = fn
	}
}

// WithDebug sends a trace of the search to logf.
func WithDebug(logf func(format string, args ...any)) SearchOption {
	return func(o *SearchOptions) {
		o.Logf = logf
	}
}

// DistanceTable maps every reached position to its step count from the
// search source.
type DistanceTable map[Pt]int

// To returns the distance to p, or ErrNoPathFound if p was not reached.
func (t DistanceTable) To(p Pt) (int, error) {
	d, ok := t[p]
	if !ok {
		return 0, fmt.Errorf("%w: %v is unreachable", ErrNoPathFound, p)
	}
	return d, nil
}

// Nearest returns the closest reached position whose height in grid
// satisfies match. Equal distances go to the smaller (Y, X).
func (t DistanceTable) Nearest(grid Grid[int], match func(height int) bool) (best Pt, dist int, ok bool) {
	for p, d := range t {
		h, in := grid.AtOk(p)
		if !in || !match(h) {
			continue
		}
		if !ok || d < dist || (d == dist && (p.Y < best.Y || p.Y == best.Y && p.X < best.X)) {
			best, dist, ok = p, d, true
		}
	}
	return best, dist, ok
}

// ShortestPaths returns the fewest steps from src to every position of grid
// reachable from it, moving between orthogonal neighbours whenever the
// configured StepRule allows it. Unreachable positions are left out of the
// table.
//
// The frontier is an indexed min-heap: a pending distance is lowered in place
// when a shorter route turns up, so the whole search is O(E log V).
func ShortestPaths(grid Grid[int], src Pt, opts ...SearchOption) (DistanceTable, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	size := grid.Size()
	if !grid.Contains(src) {
		return nil, fmt.Errorf("%w: source %v in %dx%d grid", ErrOutOfBounds, src, size.X, size.Y)
	}
	o := SearchOptions{Rule: Climb}
	for _, opt := range opts {
		opt(&o)
	}

	idx := func(p Pt) int { return p.Y*size.X + p.X }
	var (
		frontier Heap[Pt]
		pending  = make([]*Item[Pt], size.X*size.Y) // queued item per cell
		settled  = make([]bool, size.X*size.Y)
		dist     = make(DistanceTable)
	)
	if o.Logf != nil {
		o.Logf("searching %dx%d grid %v from %v", size.X, size.Y, grid.Hash(), src)
	}
	pending[idx(src)] = frontier.Push(src, 0)

	for frontier.Len() > 0 {
		cur := frontier.Pop()
		i := idx(cur.V)
		pending[i] = nil
		settled[i] = true
		dist[cur.V] = cur.P
		if o.OnSettle != nil {
			o.OnSettle(cur.V, cur.P)
		}
		if o.Logf != nil {
			o.Logf("settled %v at %d, %d pending", cur.V, cur.P, frontier.Len())
		}

		h := grid.At(cur.V)
		for _, d := range Directions {
			n, ok := grid.Step(cur.V, d)
			if !ok {
				continue
			}
			j := idx(n)
			if settled[j] || !o.Rule(h, grid.At(n)) {
				continue
			}
			if it := pending[j]; it != nil {
				frontier.Lower(it, cur.P+1)
				continue
			}
			pending[j] = frontier.Push(n, cur.P+1)
		}
	}
	return dist, nil
}
