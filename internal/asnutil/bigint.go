package asnutil

import (
	"math/big"
)

var one = big.NewInt(1)

// BigIntBytes returns the minimal big-endian two's complement encoding of n,
// as required for the content octets of an ASN.1 INTEGER.  Zero encodes
// to a single 0x00 byte.  A nil n is treated as zero.
func BigIntBytes(n *big.Int) []byte {
	if n == nil {
		return []byte{0x00}
	}

	switch n.Sign() {
	case 0:
		return []byte{0x00}
	case 1:
		b := n.Bytes()
		// if n is positive, but the first bit is a 1, it will look like
		// a negative in 2's complement, so prepend a zero
		if b[0]&0x80 != 0 {
			return append([]byte{0x00}, b...)
		}
		return b
	default:
		length := uint(n.BitLen()/8+1) * 8
		j := new(big.Int).Lsh(one, length)
		b := j.Add(n, j).Bytes()
		// When the most significant bit is on a byte
		// boundary, we can get some extra significant
		// bits, so strip them off when that happens.
		return Unpad(b)
	}
}

// BigIntFromBytes decodes the big-endian two's complement value stored in
// data.  If data[0]&0x80 != 0, the number is negative.  If data is empty, the
// result will be 0.
func BigIntFromBytes(data []byte) *big.Int {
	n := new(big.Int).SetBytes(data)
	if len(data) > 0 && data[0]&0x80 > 0 {
		// first bit is 1, so number is negative.
		// left shifting 1 by the length in bits of the data
		// then subtracting the value from that gives us the
		// twos complement.
		n.Sub(n, new(big.Int).Lsh(one, uint(len(data))*8))
	}
	return n
}

// Unpad strips redundant leading sign bytes from a two's complement value.
// Pad bytes are 0x00 followed by a byte with the high bit clear, or 0xFF
// followed by a byte with the high bit set.
func Unpad(data []byte) []byte {
	if len(data) < 2 {
		return data
	}

	i := 0
	for ; (i + 1) < len(data); i++ {
		switch {
		case data[i] == 0xFF && data[i+1]&0x80 != 0:
		case data[i] == 0x00 && data[i+1]&0x80 == 0:
		default:
			return data[i:]
		}
	}
	// we've reached the last byte
	return data[i:]
}

// Minimal reports whether data is a minimal two's complement encoding:
// non-empty, and without a redundant leading 0x00 or 0xFF.
func Minimal(data []byte) bool {
	return len(data) > 0 && len(Unpad(data)) == len(data)
}
