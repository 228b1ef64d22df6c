package huffman

import (
	"fmt"
	"strings"
)

// Encode replaces each symbol of source with its codeword from dict and
// returns the concatenation as a string of '0' and '1' characters.
//
// If some symbol has no codeword, Encode returns ErrUnknownSymbol and no
// output at all.
//
func Encode[S Symbol](source []S, dict Dictionary[S]) (string, error) {
	var size int
	for index, sym := range source {
		cw, found := dict[sym]
		if !found {
			return "", fmt.Errorf("%w: %s at position %d", ErrUnknownSymbol, formatSymbol(sym), index)
		}
		size += cw.Len()
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, sym := range source {
		sb.WriteString(string(dict[sym]))
	}
	return sb.String(), nil
}
