package asn1parser

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1parser/tlv"
)

// Decode decodes n with the wrapper matching its universal tag.  Elements of
// other classes, constructed elements, and universal types without a
// wrapper fail with ErrUnsupportedType.
func Decode(n tlv.Node) (Value, error) {
	if n.IsZero() || n.Class() != tlv.ClassUniversal || n.Constructed() {
		return nil, merry.Here(ErrUnsupportedType).Appendf("%s", n.Tag())
	}

	var v Value
	var err error
	switch u := tlv.UniversalTag(n.Tag().Number); u {
	case tlv.TagBoolean:
		v, err = nonNil(DecodeBoolean(n))
	case tlv.TagInteger:
		v, err = nonNil(DecodeInteger(n))
	case tlv.TagEnumerated:
		v, err = nonNil(DecodeEnumerated(n))
	case tlv.TagNull:
		v, err = nonNil(DecodeNull(n))
	case tlv.TagBitString:
		v, err = nonNil(DecodeBitString(n))
	case tlv.TagOctetString:
		v, err = nonNil(DecodeOctetString(n))
	case tlv.TagUTF8String:
		v, err = nonNil(DecodeUTF8String(n))
	case tlv.TagPrintableString:
		v, err = nonNil(DecodePrintableString(n))
	case tlv.TagIA5String:
		v, err = nonNil(DecodeIA5String(n))
	case tlv.TagVisibleString:
		v, err = nonNil(DecodeVisibleString(n))
	case tlv.TagTeletexString:
		v, err = nonNil(DecodeTeletexString(n))
	case tlv.TagNumericString:
		v, err = nonNil(DecodeNumericString(n))
	case tlv.TagBMPString:
		v, err = nonNil(DecodeBMPString(n))
	case tlv.TagUniversalString:
		v, err = nonNil(DecodeUniversalString(n))
	case tlv.TagUTCTime:
		v, err = nonNil(DecodeUTCTime(n))
	case tlv.TagGeneralizedTime:
		v, err = nonNil(DecodeGeneralizedTime(n))
	default:
		return nil, merry.Here(ErrUnsupportedType).Appendf("%s", u)
	}
	return v, err
}

// Parse decodes the single element encoded in b, as Decode.
func Parse(b []byte) (Value, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return Decode(n)
}

// nonNil converts a typed nil wrapper into a nil Value.
func nonNil(v Value, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
