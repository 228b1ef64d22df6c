package huffman

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Symbol is the constraint satisfied by every alphabet this package can code.
// Symbols must be ordered so that dumps and leaf insertion are reproducible;
// rune and byte are the usual choices.
type Symbol interface {
	constraints.Ordered
}

func sortedSymbols[S Symbol, V any](m map[S]V) []S {
	keys := make([]S, 0, len(m))
	for sym := range m {
		keys = append(keys, sym)
	}
	slices.Sort(keys)
	return keys
}

// formatSymbol renders sym for dumps: quoted for runes and bytes, %v for
// everything else.
func formatSymbol[S Symbol](sym S) string {
	switch x := any(sym).(type) {
	case rune:
		return strconv.QuoteRune(x)
	case byte:
		return strconv.QuoteRune(rune(x))
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
