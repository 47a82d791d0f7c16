package aoc

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"
)

func TestGridStep(t *testing.T) {
	g := MakeGrid[int](3, 2)
	tests := []struct {
		from Pt
		dir  Direction
		want Pt
		ok   bool
	}{
		{Pt{0, 0}, Up, Pt{}, false},
		{Pt{0, 0}, Left, Pt{}, false},
		{Pt{0, 0}, Right, Pt{1, 0}, true},
		{Pt{0, 0}, Down, Pt{0, 1}, true},
		{Pt{2, 1}, Right, Pt{}, false},
		{Pt{2, 1}, Down, Pt{}, false},
		{Pt{2, 1}, Up, Pt{2, 0}, true},
		{Pt{2, 1}, Left, Pt{1, 1}, true},
	}
	for _, tt := range tests {
		got, ok := g.Step(tt.from, tt.dir)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Step(%v, %v) = %v, %v; want %v, %v", tt.from, tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGridNeighbours(t *testing.T) {
	g := MakeGrid[int](3, 3)
	count := func(p Pt) int {
		n := 0
		for _, d := range Directions {
			if _, ok := g.Step(p, d); ok {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 2, count(Pt{0, 0}))
	assert.Equal(t, 3, count(Pt{1, 0}))
	assert.Equal(t, 4, count(Pt{1, 1}))
}

func TestGridValidate(t *testing.T) {
	assert.NoError(t, Grid[int]{{1}}.Validate())
	assert.NoError(t, MakeGrid[int](4, 2).Validate())
	assert.ErrorIs(t, Grid[int]{}.Validate(), ErrInvalidGrid)
	assert.ErrorIs(t, Grid[int]{{}, {}}.Validate(), ErrInvalidGrid)
	assert.ErrorIs(t, Grid[int]{{1, 2}, {3, 4}, {5}}.Validate(), ErrInvalidGrid)
}

func TestGridAtOk(t *testing.T) {
	g := Grid[int]{{1, 2}, {3, 4}}
	v, ok := g.AtOk(Pt{1, 1})
	require.True(t, ok)
	assert.Equal(t, 4, v)

	for _, p := range []Pt{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, ok := g.AtOk(p)
		assert.False(t, ok, "AtOk(%v)", p)
	}
	_, ok = Grid[int]{}.AtOk(Pt{0, 0})
	assert.False(t, ok)
}

func TestGridHash(t *testing.T) {
	g := Grid[int]{{1, 2}, {3, 4}}
	h := g.Hash()
	assert.Equal(t, h, Grid[int]{{1, 2}, {3, 4}}.Hash())

	g[1][0] = 9
	assert.NotEqual(t, h, g.Hash())
}

func TestGridHashConcurrentFirstUse(t *testing.T) {
	g := Grid[uint16]{{1, 2, 3}, {4, 5, 6}}
	hashers.Delete(reflect.TypeOf(g))

	sums := make([]deephash.Sum, 8)
	var wg sync.WaitGroup
	for i := range sums {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sums[i] = g.Hash()
		}(i)
	}
	wg.Wait()
	for i, s := range sums {
		assert.Equal(t, sums[0], s, "goroutine %d", i)
	}
}

func TestLetter(t *testing.T) {
	for _, tt := range []struct {
		in   byte
		want int
		ok   bool
	}{
		{'a', 0, true},
		{'m', 12, true},
		{'z', 25, true},
		{'S', 0, false},
		{'{', 0, false},
		{'`', 0, false},
	} {
		got, ok := Letter(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Letter(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	assert.Equal(t, 12, Int(" 12 "))
}
