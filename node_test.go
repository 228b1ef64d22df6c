package huffman

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Leaf(t *testing.T) {
	n := NewLeaf('x', 7)

	sym, ok := n.Symbol()
	require.True(t, ok)
	assert.Equal(t, 'x', sym)
	assert.True(t, n.IsLeaf())
	assert.Equal(t, uint64(7), n.Frequency())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
	assert.Equal(t, 0, n.Depth())
	assert.Equal(t, "Leaf('x', 7)", n.String())
	require.NoError(t, n.Validate())
}

func TestNode_Internal(t *testing.T) {
	a, b, c := NewLeaf('a', 1), NewLeaf('b', 2), NewLeaf('c', 4)
	n := NewInternal(NewInternal(a, b), c)

	_, ok := n.Symbol()
	assert.False(t, ok)
	assert.False(t, n.IsLeaf())
	assert.Equal(t, uint64(7), n.Frequency())
	assert.Same(t, c, n.Right())
	assert.Same(t, a, n.Left().Left())
	assert.Equal(t, 2, n.Depth())
	assert.Equal(t, "Internal(7)", n.String())
	require.NoError(t, n.Validate())
}

func TestNode_InternalSaturates(t *testing.T) {
	n := NewInternal(NewLeaf(byte(0), math.MaxUint64), NewLeaf(byte(1), 2))
	assert.Equal(t, uint64(math.MaxUint64), n.Frequency())
}

func TestNode_InternalRequiresBothChildren(t *testing.T) {
	leaf := NewLeaf('a', 1)
	assert.Panics(t, func() { NewInternal(nil, leaf) })
	assert.Panics(t, func() { NewInternal(leaf, nil) })
}

func TestNode_Validate(t *testing.T) {
	type testRow struct {
		name string
		root *Node[rune]
	}

	testData := [...]testRow{
		{name: "nil", root: nil},
		{name: "zero", root: &Node[rune]{}},
		{name: "nested-zero", root: NewInternal(NewLeaf('a', 1), &Node[rune]{})},
		{name: "leaf-with-child", root: &Node[rune]{symbol: 'a', leaf: true, left: NewLeaf('b', 1)}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			err := row.root.Validate()
			if !errors.Is(err, ErrMalformedEncoding) {
				t.Errorf("expected ErrMalformedEncoding, got %v", err)
			}
		})
	}
}
