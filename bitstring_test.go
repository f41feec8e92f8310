package asn1parser

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
)

func TestBitString(t *testing.T) {
	b, err := NewBitString([]byte{0x6e, 0x5d, 0xc0}, 6)
	require.NoError(t, err)
	assert.Equal(t, hex2bytes("0304066e5dc0"), b.Bytes())
	assert.Equal(t, []byte{0x6e, 0x5d, 0xc0}, b.Value())
	assert.Equal(t, 6, b.UnusedBits())
	assert.Equal(t, 18, b.BitLen())

	// 0x6e is 01101110
	assert.Equal(t, 0, b.At(0))
	assert.Equal(t, 1, b.At(1))
	assert.Equal(t, 1, b.At(17))
	assert.Equal(t, 0, b.At(18))
	assert.Equal(t, 0, b.At(-1))

	s := cryptobyte.String(b.Bytes())
	var ref asn1.BitString
	require.True(t, s.ReadASN1BitString(&ref))
	assert.Equal(t, ref.BitLength, b.BitLen())
	assert.Equal(t, ref.Bytes, b.Value())

	d, err := ParseBitString(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, b.Value(), d.Value())
	assert.Equal(t, 6, d.UnusedBits())
}

func TestBitString_empty(t *testing.T) {
	b, err := NewBitString(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, hex2bytes("030100"), b.Bytes())
	assert.Equal(t, 0, b.BitLen())
	assert.Empty(t, b.Value())

	_, err = NewBitString(nil, 1)
	require.True(t, Is(err, ErrInvalidData), Details(err))
}

func TestBitString_errors(t *testing.T) {
	for _, unused := range []int{-1, 8} {
		_, err := NewBitString([]byte{0xff}, unused)
		assert.True(t, Is(err, ErrInvalidData), "%d: %v", unused, err)
	}

	for _, in := range []string{"0300", "030101", "030208ff"} {
		_, err := ParseBitString(hex2bytes(in))
		assert.True(t, Is(err, ErrInvalidData), "%s: %v", in, err)
	}

	_, err := ParseBitString(hex2bytes("0401ff"))
	require.True(t, Is(err, ErrInvalidTag), Details(err))
}

func TestCalculateUnusedBits(t *testing.T) {
	tests := []struct {
		in  []byte
		exp int
	}{
		{nil, 0},
		{[]byte{0x01}, 0},
		{[]byte{0x02}, 1},
		{[]byte{0x80}, 7},
		{[]byte{0x00}, 7},
		{[]byte{0xff, 0xc0}, 6},
		{[]byte{0xff, 0x10}, 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.exp, CalculateUnusedBits(tc.in), "%x", tc.in)
	}

	b := NewBitStringFromBytes([]byte{0x6e, 0x5d, 0xc0})
	assert.Equal(t, hex2bytes("0304066e5dc0"), b.Bytes())
}
