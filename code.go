package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Codeword is the sequence of bits assigned to one symbol, written as a
// string of '0' and '1' characters.  The first character is the first bit.
type Codeword string

// Len returns the number of bits in this Codeword.
func (cw Codeword) Len() int {
	return len(cw)
}

// HasPrefix returns true if other is a prefix of this Codeword.
func (cw Codeword) HasPrefix(other Codeword) bool {
	return strings.HasPrefix(string(cw), string(other))
}

// String returns the quoted representation of this Codeword.
func (cw Codeword) String() string {
	return strconv.Quote(string(cw))
}

var _ fmt.Stringer = Codeword("")

// Dictionary maps each symbol of a code to its Codeword.
type Dictionary[S Symbol] map[S]Codeword

// BuildDictionary derives the symbol→codeword mapping of the tree rooted at
// root: a '0' is appended for each step to a left child, a '1' for each step
// to a right child.
//
// A tree consisting of a single leaf has no edges at all; its symbol is
// given the one-bit codeword "0" so that every occurrence still costs a bit
// and the symbol count survives encoding.
//
func BuildDictionary[S Symbol](root *Node[S]) (Dictionary[S], error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}

	if root.leaf {
		return Dictionary[S]{root.symbol: "0"}, nil
	}

	// Walk the tree with an explicit stack.  The stack holds the path
	// from the root, so its contents are also the current prefix.
	//
	// We use walkItem.x to keep track of where we are in the walk:
	//   x=0 → We just arrived at walkItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	dict := make(Dictionary[S])
	stack := make([]walkItem[S], 0, 32)
	prefix := make([]byte, 0, 32)

	processChild := func(child *Node[S], bit byte) {
		prefix = append(prefix, bit)
		if child.leaf {
			dict[child.symbol] = Codeword(prefix)
			prefix = prefix[:len(prefix)-1]
			return
		}
		stack = append(stack, walkItem[S]{node: child})
	}

	stack = append(stack, walkItem[S]{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, '0')
		case 1:
			processChild(top.node.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(prefix) != 0 {
				prefix = prefix[:len(prefix)-1]
			}
		}
	}

	return dict, nil
}

type walkItem[S Symbol] struct {
	node *Node[S]
	x    byte
}

// Cost returns the number of bits needed to encode a source with the given
// symbol frequencies, i.e. Σ freq(s)·len(codeword(s)).  Symbols of freq that
// are missing from the dictionary are ignored.
func (dict Dictionary[S]) Cost(freq Frequencies[S]) uint64 {
	var total uint64
	for sym, count := range freq {
		if cw, found := dict[sym]; found {
			total = addSaturating(total, count*uint64(cw.Len()))
		}
	}
	return total
}

// Clone returns a copy of this Dictionary.
func (dict Dictionary[S]) Clone() Dictionary[S] {
	if dict == nil {
		return nil
	}
	out := make(Dictionary[S], len(dict))
	for sym, cw := range dict {
		out[sym] = cw
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Dictionary to the
// given writer.  Symbols are listed in ascending order.
func (dict Dictionary[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	dict.dumpTo(&buf, "")
	return buf.WriteTo(w)
}

func (dict Dictionary[S]) dumpTo(buf *bytes.Buffer, indent string) {
	buf.WriteString("Dictionary{\n")
	for _, sym := range sortedSymbols(dict) {
		fmt.Fprintf(buf, "%s\tEncode(%s) = %s\n", indent, formatSymbol(sym), dict[sym])
	}
	buf.WriteString(indent)
	buf.WriteString("}\n")
}
