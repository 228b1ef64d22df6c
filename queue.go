package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// PriorityQueue is a min-priority-queue.  ExtractMin always returns an item
// with the smallest key currently queued.  Which of several items with equal
// keys comes out first is up to the implementation, but it must be
// deterministic for a given sequence of calls.
type PriorityQueue[T any] interface {
	// Insert adds item with the given key.
	Insert(item T, key uint64)

	// ExtractMin removes and returns an item with the minimum key.  It
	// panics if the queue is empty.
	ExtractMin() T

	// Len returns the number of queued items.
	Len() int
}

// NewHeapQueue returns a PriorityQueue backed by a binary heap.  Items with
// equal keys are extracted in insertion order.
func NewHeapQueue[T any]() PriorityQueue[T] {
	return &heapQueue[T]{}
}

// type heapQueue + type keyedHeap {{{

type keyedItem[T any] struct {
	item T
	key  uint64
	seq  uint64
}

type heapQueue[T any] struct {
	h       keyedHeap[T]
	nextSeq uint64
}

func (q *heapQueue[T]) Insert(item T, key uint64) {
	heap.Push(&q.h, keyedItem[T]{item: item, key: key, seq: q.nextSeq})
	q.nextSeq++
}

func (q *heapQueue[T]) ExtractMin() T {
	assert.Assertf(q.h.Len() != 0, "ExtractMin called on an empty queue")
	return heap.Pop(&q.h).(keyedItem[T]).item
}

func (q *heapQueue[T]) Len() int {
	return q.h.Len()
}

var _ PriorityQueue[int] = (*heapQueue[int])(nil)

type keyedHeap[T any] struct {
	list []keyedItem[T]
}

func (h *keyedHeap[T]) Len() int {
	return len(h.list)
}

func (h *keyedHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *keyedHeap[T]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.key != b.key {
		return a.key < b.key
	}
	return a.seq < b.seq
}

func (h *keyedHeap[T]) Push(x interface{}) {
	h.list = append(h.list, x.(keyedItem[T]))
}

func (h *keyedHeap[T]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = keyedItem[T]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*keyedHeap[int])(nil)

// }}}
