package huffman

import (
	"fmt"
)

// BuildOption configures BuildTree.
type BuildOption[S Symbol] func(*buildConfig[S])

type buildConfig[S Symbol] struct {
	newQueue func() PriorityQueue[*Node[S]]
}

// WithQueue makes BuildTree use queues obtained from fn instead of the
// default binary heap.  fn is called once per build and must return an
// empty queue.
func WithQueue[S Symbol](fn func() PriorityQueue[*Node[S]]) BuildOption[S] {
	return func(cfg *buildConfig[S]) {
		if fn != nil {
			cfg.newQueue = fn
		}
	}
}

// BuildTree constructs a Huffman code tree from freq and returns its root.
//
// Leaves are queued in ascending symbol order.  The two lowest-frequency
// nodes are then repeatedly merged, the first one extracted becoming the left
// (bit '0') child, until a single root remains.  If freq holds only one
// symbol, its leaf is the root.
//
// BuildTree returns ErrEmptyInput if freq is empty or holds a zero count.
//
func BuildTree[S Symbol](freq Frequencies[S], opts ...BuildOption[S]) (*Node[S], error) {
	if len(freq) == 0 {
		return nil, fmt.Errorf("%w: no symbols to build a tree from", ErrEmptyInput)
	}

	cfg := buildConfig[S]{newQueue: NewHeapQueue[*Node[S]]}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Step 1: queue one leaf per symbol.

	pq := cfg.newQueue()
	for _, sym := range freq.Symbols() {
		count := freq[sym]
		if count == 0 {
			return nil, fmt.Errorf("%w: symbol %v has a frequency of 0", ErrEmptyInput, sym)
		}
		pq.Insert(NewLeaf(sym, count), count)
	}

	// Step 2: merge the two cheapest subtrees until only the root is left.

	for pq.Len() > 1 {
		left := pq.ExtractMin()
		right := pq.ExtractMin()
		parent := NewInternal(left, right)
		pq.Insert(parent, parent.freq)
	}

	return pq.ExtractMin(), nil
}
