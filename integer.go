package asn1parser

import (
	"math/big"

	"github.com/gemalto/asn1parser/internal/asnutil"
	"github.com/gemalto/asn1parser/tlv"
)

// Integer is an ASN.1 INTEGER of arbitrary size.
type Integer struct {
	element
	value *big.Int
}

// NewInteger encodes v in the minimal two's complement form.  A nil v is
// encoded as 0.
func NewInteger(v *big.Int) *Integer {
	i := new(big.Int)
	if v != nil {
		i.Set(v)
	}
	return &Integer{element: newElement(tlv.TagInteger, asnutil.BigIntBytes(i)), value: i}
}

func NewInt64(v int64) *Integer {
	return NewInteger(big.NewInt(v))
}

// DecodeInteger decodes an INTEGER element.  Content octets which aren't
// minimal are accepted.
func DecodeInteger(n tlv.Node) (*Integer, error) {
	if err := checkTag(n, tlv.TagInteger); err != nil {
		return nil, err
	}
	if n.PayloadLen() == 0 {
		return nil, invalidData(tlv.TagInteger, "empty content")
	}
	return &Integer{element: element{node: n}, value: asnutil.BigIntFromBytes(n.Payload())}, nil
}

func ParseInteger(b []byte) (*Integer, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeInteger(n)
}

// Value returns a copy of the integer.
func (i *Integer) Value() *big.Int {
	return new(big.Int).Set(i.value)
}

// Int64 returns the integer as an int64, or ErrInvalidData if it doesn't fit.
func (i *Integer) Int64() (int64, error) {
	if !i.value.IsInt64() {
		return 0, invalidData(tlv.TagInteger, "%s overflows int64", i.value)
	}
	return i.value.Int64(), nil
}

func (i *Integer) Interface() interface{} {
	return i.Value()
}

// Enumerated is an ASN.1 ENUMERATED.  Values are limited to the range of
// uint64.
type Enumerated struct {
	element
	value uint64
}

func NewEnumerated(v uint64) *Enumerated {
	payload := asnutil.BigIntBytes(new(big.Int).SetUint64(v))
	return &Enumerated{element: newElement(tlv.TagEnumerated, payload), value: v}
}

// DecodeEnumerated decodes an ENUMERATED element.  Negative values and values
// above math.MaxUint64 are rejected.
func DecodeEnumerated(n tlv.Node) (*Enumerated, error) {
	if err := checkTag(n, tlv.TagEnumerated); err != nil {
		return nil, err
	}
	if n.PayloadLen() == 0 {
		return nil, invalidData(tlv.TagEnumerated, "empty content")
	}
	i := asnutil.BigIntFromBytes(n.Payload())
	if !i.IsUint64() {
		return nil, invalidData(tlv.TagEnumerated, "%s out of range", i)
	}
	return &Enumerated{element: element{node: n}, value: i.Uint64()}, nil
}

func ParseEnumerated(b []byte) (*Enumerated, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeEnumerated(n)
}

func (e *Enumerated) Value() uint64 {
	return e.value
}

func (e *Enumerated) Interface() interface{} {
	return e.value
}
