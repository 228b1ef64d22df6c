package huffman

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput is returned when a tree is requested for an empty
	// source or frequency map.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrUnknownSymbol is returned when a symbol has no codeword in the
	// dictionary used to encode it.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrMalformedEncoding is returned when a bit string cannot be decoded
	// with the given tree, or when the tree itself is missing or invalid.
	ErrMalformedEncoding = errors.New("huffman: malformed encoding")
)

// addSaturating computes a+b, clamping at math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
