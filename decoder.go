package huffman

import (
	"fmt"
)

// Decode walks the tree rooted at root once per codeword in encoded, going
// left on '0' and right on '1', and returns the symbols of the leaves
// reached.
//
// Decode returns ErrMalformedEncoding if root is nil or not a valid code
// tree, if encoded contains a character other than '0' or '1', if a bit
// leads to a missing child, or if encoded ends in the middle of a codeword.
//
// When root is a lone leaf, its codeword is "0" (see BuildDictionary) and
// each '0' decodes to that leaf's symbol.
//
func Decode[S Symbol](encoded string, root *Node[S]) ([]S, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}

	if root.leaf {
		return decodeSingleLeaf(encoded, root)
	}

	out := make([]S, 0, len(encoded)/(root.Depth()+1)+1)
	cur := root
	start := 0
	for index := 0; index < len(encoded); index++ {
		switch encoded[index] {
		case '0':
			cur = cur.left
		case '1':
			cur = cur.right
		default:
			return nil, fmt.Errorf("%w: invalid bit %q at position %d", ErrMalformedEncoding, encoded[index], index)
		}

		if cur.leaf {
			out = append(out, cur.symbol)
			cur = root
			start = index + 1
		}
	}

	if cur != root {
		return nil, fmt.Errorf("%w: truncated codeword %q at position %d", ErrMalformedEncoding, encoded[start:], start)
	}
	return out, nil
}

func decodeSingleLeaf[S Symbol](encoded string, root *Node[S]) ([]S, error) {
	out := make([]S, len(encoded))
	for index := 0; index < len(encoded); index++ {
		if bit := encoded[index]; bit != '0' {
			return nil, fmt.Errorf("%w: invalid bit %q at position %d for a single-symbol code", ErrMalformedEncoding, bit, index)
		}
		out[index] = root.symbol
	}
	return out, nil
}
