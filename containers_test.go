package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap(t *testing.T) {
	var h Heap[string]
	items := map[string]*Item[string]{}
	for _, v := range []struct {
		name string
		p    int
	}{{"c", 5}, {"a", 1}, {"d", 7}, {"b", 3}} {
		items[v.name] = h.Push(v.name, v.p)
	}
	require.Equal(t, 4, h.Len())

	assert.False(t, h.Lower(items["a"], 4), "raising a priority")
	assert.True(t, h.Lower(items["d"], 0))
	assert.Equal(t, 0, items["d"].P)

	var got []string
	for h.Len() > 0 {
		got = append(got, h.Pop().V)
	}
	assert.Equal(t, []string{"d", "a", "b", "c"}, got)
}

func TestHeapLowerAfterPop(t *testing.T) {
	var h Heap[Pt]
	it := h.Push(Pt{1, 1}, 3)
	h.Push(Pt{2, 2}, 4)
	require.Same(t, it, h.Pop())

	assert.False(t, h.Lower(it, 0))
	assert.Equal(t, 3, it.P)
	assert.Equal(t, Pt{2, 2}, h.Pop().V)
}

func TestHeapEqualPriorities(t *testing.T) {
	var h Heap[int]
	for i := 0; i < 10; i++ {
		h.Push(i, i%3)
	}
	last := -1
	for h.Len() > 0 {
		it := h.Pop()
		assert.GreaterOrEqual(t, it.P, last)
		last = it.P
	}
}
