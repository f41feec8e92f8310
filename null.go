package asn1parser

import (
	"github.com/gemalto/asn1parser/tlv"
)

// Null is an ASN.1 NULL.  Its content is always empty.
type Null struct {
	element
}

func NewNull() *Null {
	return &Null{element: newElement(tlv.TagNull, nil)}
}

func DecodeNull(n tlv.Node) (*Null, error) {
	if err := checkTag(n, tlv.TagNull); err != nil {
		return nil, err
	}
	if n.PayloadLen() != 0 {
		return nil, invalidData(tlv.TagNull, "length must be 0, was %d", n.PayloadLen())
	}
	return &Null{element: element{node: n}}, nil
}

func ParseNull(b []byte) (*Null, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeNull(n)
}

func (*Null) Interface() interface{} {
	return nil
}
