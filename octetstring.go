package asn1parser

import (
	"github.com/gemalto/asn1parser/tlv"
)

// OctetString is an ASN.1 OCTET STRING.  Any content is valid.
type OctetString struct {
	element
}

// NewOctetString encodes a copy of v.
func NewOctetString(v []byte) *OctetString {
	return &OctetString{element: newElement(tlv.TagOctetString, v)}
}

func DecodeOctetString(n tlv.Node) (*OctetString, error) {
	if err := checkTag(n, tlv.TagOctetString); err != nil {
		return nil, err
	}
	return &OctetString{element: element{node: n}}, nil
}

func ParseOctetString(b []byte) (*OctetString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeOctetString(n)
}

// Value returns a copy of the content octets.
func (o *OctetString) Value() []byte {
	return append([]byte{}, o.node.Payload()...)
}

func (o *OctetString) Interface() interface{} {
	return o.Value()
}
