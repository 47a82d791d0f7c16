package aoc

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular block of cells addressed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Contains reports whether p lies inside the grid.
func (g Grid[T]) Contains(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Validate returns ErrInvalidGrid unless g has at least one row, at least one
// column, and every row is the same length.
func (g Grid[T]) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidGrid)
	}
	for y, row := range g {
		if len(row) != len(g[0]) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), len(g[0]))
		}
	}
	return nil
}

// hashers caches one deephash function per grid type.
var hashers sync.Map // reflect.Type -> func(*Grid[T]) deephash.Sum

// Hash returns a deep hash of the cells of g. It is safe to call from
// several goroutines at once.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Step moves one cell from p in direction d. It returns false instead of a
// point outside the grid.
func (g Grid[T]) Step(p Pt, d Direction) (Pt, bool) {
	n := p.Move(d)
	if !g.Contains(n) {
		return Pt{}, false
	}
	return n, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four orthogonal directions, clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Move returns the point one step from p in direction d.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}
