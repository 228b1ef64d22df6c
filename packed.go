package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Pack packs a string of '0' and '1' characters into bytes, first bit in the
// most significant position.  The final byte is padded with zero bits; keep
// len(bits) to Unpack it again.
func Pack(bits string) ([]byte, error) {
	var bb bytes.Buffer
	bb.Grow((len(bits) + 7) / 8)

	w := bitio.NewWriter(&bb)
	for index := 0; index < len(bits); index++ {
		var bit bool
		switch bits[index] {
		case '0':
		case '1':
			bit = true
		default:
			return nil, fmt.Errorf("%w: invalid bit %q at position %d", ErrMalformedEncoding, bits[index], index)
		}
		if err := w.WriteBool(bit); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}

// Unpack reverses Pack, returning the first nbits bits of data as a string of
// '0' and '1' characters.
func Unpack(data []byte, nbits int) (string, error) {
	if nbits < 0 || nbits > 8*len(data) {
		return "", fmt.Errorf("%w: %d bits requested from %d bytes", ErrMalformedEncoding, nbits, len(data))
	}

	var sb strings.Builder
	sb.Grow(nbits)

	r := bitio.NewReader(bytes.NewReader(data))
	for index := 0; index < nbits; index++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}
