package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Encoding holds a source, its Huffman-coded bit string, the code tree and
// the derived dictionary.  An Encoding is immutable once constructed, and
// is safe for concurrent use by multiple goroutines.
type Encoding[S Symbol] struct {
	source  []S
	encoded string
	root    *Node[S]
	dict    Dictionary[S]
}

// FromSource builds a code tree for src, derives its dictionary, and encodes
// src with it.  It returns ErrEmptyInput if src is empty.
func FromSource[S Symbol](src []S, opts ...BuildOption[S]) (*Encoding[S], error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: source has no symbols", ErrEmptyInput)
	}

	root, err := BuildTree(Count(src), opts...)
	if err != nil {
		return nil, err
	}

	dict, err := BuildDictionary(root)
	if err != nil {
		return nil, err
	}

	encoded, err := Encode(src, dict)
	if err != nil {
		return nil, err
	}

	source := make([]S, len(src))
	copy(source, src)

	return &Encoding[S]{
		source:  source,
		encoded: encoded,
		root:    root,
		dict:    dict,
	}, nil
}

// FromText is FromSource for the runes of text.
func FromText(text string, opts ...BuildOption[rune]) (*Encoding[rune], error) {
	return FromSource([]rune(text), opts...)
}

// FromEncoded decodes encoded with the tree rooted at root, and derives the
// dictionary of that tree.
func FromEncoded[S Symbol](encoded string, root *Node[S]) (*Encoding[S], error) {
	source, err := Decode(encoded, root)
	if err != nil {
		return nil, err
	}

	dict, err := BuildDictionary(root)
	if err != nil {
		return nil, err
	}

	return &Encoding[S]{
		source:  source,
		encoded: encoded,
		root:    root,
		dict:    dict,
	}, nil
}

// Encoded returns the encoded bit string.
func (e *Encoding[S]) Encoded() string {
	return e.encoded
}

// Source returns a copy of the source symbols.
func (e *Encoding[S]) Source() []S {
	out := make([]S, len(e.source))
	copy(out, e.source)
	return out
}

// Root returns the root of the code tree.
func (e *Encoding[S]) Root() *Node[S] {
	return e.root
}

// Dictionary returns a copy of the symbol→codeword mapping.
func (e *Encoding[S]) Dictionary() Dictionary[S] {
	return e.dict.Clone()
}

// Text returns the source of a rune Encoding as a string.
func Text(e *Encoding[rune]) string {
	return string(e.source)
}

// Dump writes a programmer-readable debugging dump of the Encoding to the
// given writer.
func (e *Encoding[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoding{\n")
	fmt.Fprintf(&buf, "\tLen(Source()) = %d\n", len(e.source))
	fmt.Fprintf(&buf, "\tLen(Encoded()) = %d\n", len(e.encoded))
	fmt.Fprintf(&buf, "\tEncoded() = %s\n", strconv.Quote(e.encoded))
	fmt.Fprintf(&buf, "\tRoot() = %s\n", e.root)
	fmt.Fprintf(&buf, "\tDepth() = %d\n", e.root.Depth())
	buf.WriteString("\tDictionary() = ")
	e.dict.dumpTo(&buf, "\t")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
