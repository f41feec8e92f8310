package asn1parser

import (
	"github.com/gemalto/asn1parser/tlv"
)

// Boolean is an ASN.1 BOOLEAN.
type Boolean struct {
	element
	value bool
}

// NewBoolean encodes v.  true is encoded as 0xFF.
func NewBoolean(v bool) *Boolean {
	var b byte
	if v {
		b = 0xFF
	}
	return &Boolean{element: newElement(tlv.TagBoolean, []byte{b}), value: v}
}

// DecodeBoolean decodes a BOOLEAN element.  Any non-zero content octet is
// true.
func DecodeBoolean(n tlv.Node) (*Boolean, error) {
	if err := checkTag(n, tlv.TagBoolean); err != nil {
		return nil, err
	}
	p := n.Payload()
	if len(p) != 1 {
		return nil, invalidData(tlv.TagBoolean, "length must be 1, was %d", len(p))
	}
	return &Boolean{element: element{node: n}, value: p[0] != 0}, nil
}

// ParseBoolean decodes the BOOLEAN encoded in b.
func ParseBoolean(b []byte) (*Boolean, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeBoolean(n)
}

func (b *Boolean) Value() bool {
	return b.value
}

func (b *Boolean) Interface() interface{} {
	return b.value
}
