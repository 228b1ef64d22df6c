package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman code tree.  A leaf holds exactly one symbol
// and no children; an internal node holds exactly two children and no
// symbol.  Nodes are immutable once constructed.
type Node[S Symbol] struct {
	freq   uint64
	symbol S
	leaf   bool
	left   *Node[S]
	right  *Node[S]
}

// NewLeaf constructs a leaf node for symbol with the given frequency.
func NewLeaf[S Symbol](symbol S, freq uint64) *Node[S] {
	return &Node[S]{freq: freq, symbol: symbol, leaf: true}
}

// NewInternal constructs an internal node owning left and right.  Its
// frequency is the (saturating) sum of its children's frequencies.
func NewInternal[S Symbol](left, right *Node[S]) *Node[S] {
	assert.Assertf(left != nil, "NewInternal: left child is nil")
	assert.Assertf(right != nil, "NewInternal: right child is nil")
	return &Node[S]{
		freq:  addSaturating(left.freq, right.freq),
		left:  left,
		right: right,
	}
}

// IsLeaf returns true iff this node holds a symbol.
func (n *Node[S]) IsLeaf() bool {
	return n.leaf
}

// Symbol returns the symbol held by a leaf.  The second result is false for
// internal nodes.
func (n *Node[S]) Symbol() (S, bool) {
	return n.symbol, n.leaf
}

// Frequency returns the occurrence count of a leaf, or the summed count of
// all leaves beneath an internal node.
func (n *Node[S]) Frequency() uint64 {
	return n.freq
}

// Left returns the child reached by a '0' bit, or nil for a leaf.
func (n *Node[S]) Left() *Node[S] {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for a leaf.
func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// Depth returns the length of the longest root-to-leaf path.  A lone leaf
// has depth 0.
func (n *Node[S]) Depth() int {
	var deepest int
	stack := []nodeDepth[S]{{n, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.leaf {
			if top.depth > deepest {
				deepest = top.depth
			}
			continue
		}
		stack = append(stack, nodeDepth[S]{top.node.left, top.depth + 1}, nodeDepth[S]{top.node.right, top.depth + 1})
	}
	return deepest
}

type nodeDepth[S Symbol] struct {
	node  *Node[S]
	depth int
}

// Validate checks that the tree rooted at n is a strict binary tree with
// symbols only at the leaves.  This matters for trees handed to Decode from
// elsewhere, e.g. a zero Node.
func (n *Node[S]) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: nil tree root", ErrMalformedEncoding)
	}

	stack := []*Node[S]{n}
	for len(stack) != 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		hasLeft, hasRight := node.left != nil, node.right != nil
		switch {
		case node.leaf && (hasLeft || hasRight):
			return fmt.Errorf("%w: leaf %v has children", ErrMalformedEncoding, node.symbol)
		case !node.leaf && !(hasLeft && hasRight):
			return fmt.Errorf("%w: internal node with frequency %d lacks a child", ErrMalformedEncoding, node.freq)
		case !node.leaf:
			stack = append(stack, node.left, node.right)
		}
	}
	return nil
}

// String returns a short description of this node.
func (n *Node[S]) String() string {
	if n.leaf {
		return fmt.Sprintf("Leaf(%s, %d)", formatSymbol(n.symbol), n.freq)
	}
	return fmt.Sprintf("Internal(%d)", n.freq)
}

var _ fmt.Stringer = (*Node[rune])(nil)
