package aoc

import "container/heap"

// Item is a value waiting in a Heap at priority P.
type Item[T any] struct {
	V T
	P int

	slot int // index in the heap, -1 once popped
}

// Heap is a min-heap of Items whose priorities can be lowered in place.
// The zero value is an empty heap.
type Heap[T any] struct {
	items heapSlice[T]
}

func (h *Heap[T]) Len() int { return len(h.items) }

// Push queues v at priority p. Keep the returned item to Lower it later.
func (h *Heap[T]) Push(v T, p int) *Item[T] {
	it := &Item[T]{V: v, P: p}
	heap.Push(&h.items, it)
	return it
}

// Pop removes the item with the lowest priority.
func (h *Heap[T]) Pop() *Item[T] {
	return heap.Pop(&h.items).(*Item[T])
}

// Lower moves a queued item to priority p and reports whether it moved.
// Items already popped, and priorities that are not lower, are left alone.
func (h *Heap[T]) Lower(it *Item[T], p int) bool {
	if it.slot < 0 || p >= it.P {
		return false
	}
	it.P = p
	heap.Fix(&h.items, it.slot)
	return true
}

type heapSlice[T any] []*Item[T]

func (s heapSlice[T]) Len() int           { return len(s) }
func (s heapSlice[T]) Less(i, j int) bool { return s[i].P < s[j].P }

func (s heapSlice[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].slot, s[j].slot = i, j
}

func (s *heapSlice[T]) Push(x any) {
	it := x.(*Item[T])
	it.slot = len(*s)
	*s = append(*s, it)
}

func (s *heapSlice[T]) Pop() any {
	old := *s
	last := len(old) - 1
	it := old[last]
	old[last] = nil
	it.slot = -1
	*s = old[:last]
	return it
}
