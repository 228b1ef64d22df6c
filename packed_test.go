package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	type testRow struct {
		bits   string
		packed []byte
	}

	testData := [...]testRow{
		{bits: "", packed: []byte{}},
		{bits: "1", packed: []byte{0x80}},
		{bits: "01100100111", packed: []byte{0x64, 0xe0}},
		{bits: "1111111100000001", packed: []byte{0xff, 0x01}},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			packed, err := Pack(row.bits)
			require.NoError(t, err)
			assert.Equal(t, row.packed, packed)

			bits, err := Unpack(packed, len(row.bits))
			require.NoError(t, err)
			assert.Equal(t, row.bits, bits)
		})
	}
}

func TestPack_InvalidBit(t *testing.T) {
	_, err := Pack("0102")
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestUnpack_TooManyBits(t *testing.T) {
	_, err := Unpack([]byte{0xff}, 9)
	require.ErrorIs(t, err, ErrMalformedEncoding)

	_, err = Unpack(nil, -1)
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestPack_EncodingRoundTrip(t *testing.T) {
	e, err := FromText("the quick brown fox jumps over the lazy dog")
	require.NoError(t, err)

	packed, err := Pack(e.Encoded())
	require.NoError(t, err)
	assert.Len(t, packed, (len(e.Encoded())+7)/8)

	bits, err := Unpack(packed, len(e.Encoded()))
	require.NoError(t, err)

	back, err := FromEncoded(bits, e.Root())
	require.NoError(t, err)
	assert.Equal(t, Text(e), Text(back))
}
