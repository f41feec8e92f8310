package asn1parser

import (
	"math/bits"

	"github.com/gemalto/asn1parser/tlv"
)

// BitString is an ASN.1 BIT STRING.  The content octets are a leading count
// of unused bits, between 0 and 7, followed by the bits themselves packed
// most significant bit first.  The unused bits are the low order bits of the
// last octet.
type BitString struct {
	element
	unusedBits int
}

// NewBitString encodes v with the given count of unused trailing bits.
// unusedBits must be between 0 and 7, and must be 0 if v is empty.
func NewBitString(v []byte, unusedBits int) (*BitString, error) {
	if err := checkUnusedBits(len(v), unusedBits); err != nil {
		return nil, err
	}
	payload := make([]byte, 1, len(v)+1)
	payload[0] = byte(unusedBits)
	payload = append(payload, v...)
	return &BitString{element: newElement(tlv.TagBitString, payload), unusedBits: unusedBits}, nil
}

// NewBitStringFromBytes encodes v, with the count of unused bits set to the
// number of trailing zero bits in the last octet, per CalculateUnusedBits.
func NewBitStringFromBytes(v []byte) *BitString {
	b, err := NewBitString(v, CalculateUnusedBits(v))
	if err != nil {
		panic(err)
	}
	return b
}

// CalculateUnusedBits returns the number of trailing zero bits in the last
// octet of v, at most 7.  It returns 0 if v is empty.
func CalculateUnusedBits(v []byte) int {
	if len(v) == 0 {
		return 0
	}
	last := v[len(v)-1]
	if last == 0 {
		return 7
	}
	return bits.TrailingZeros8(last)
}

func checkUnusedBits(contentLen, unusedBits int) error {
	switch {
	case unusedBits < 0 || unusedBits > 7:
		return invalidData(tlv.TagBitString, "unused bits must be between 0 and 7, was %d", unusedBits)
	case contentLen == 0 && unusedBits != 0:
		return invalidData(tlv.TagBitString, "unused bits must be 0 for an empty bit string, was %d", unusedBits)
	}
	return nil
}

func DecodeBitString(n tlv.Node) (*BitString, error) {
	if err := checkTag(n, tlv.TagBitString); err != nil {
		return nil, err
	}
	p := n.Payload()
	if len(p) == 0 {
		return nil, invalidData(tlv.TagBitString, "missing unused bits octet")
	}
	if err := checkUnusedBits(len(p)-1, int(p[0])); err != nil {
		return nil, err
	}
	return &BitString{element: element{node: n}, unusedBits: int(p[0])}, nil
}

func ParseBitString(b []byte) (*BitString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeBitString(n)
}

// Value returns a copy of the bit octets, without the unused bits octet.
func (b *BitString) Value() []byte {
	return append([]byte{}, b.node.Payload()[1:]...)
}

func (b *BitString) UnusedBits() int {
	return b.unusedBits
}

// BitLen returns the number of bits in the string.
func (b *BitString) BitLen() int {
	return (b.node.PayloadLen()-1)*8 - b.unusedBits
}

// At returns the bit at index i, or 0 if i is out of range.
func (b *BitString) At(i int) int {
	if i < 0 || i >= b.BitLen() {
		return 0
	}
	x := i / 8
	y := 7 - uint(i%8)
	return int(b.node.Payload()[1+x]>>y) & 1
}

func (b *BitString) Interface() interface{} {
	return b.Value()
}
