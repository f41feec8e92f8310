package main

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ansel1/merry"
	"github.com/gemalto/asn1parser"
	"github.com/gemalto/asn1parser/internal/asnutil"
	"github.com/gemalto/asn1parser/tlv"
)

// encodeValue encodes the textual value s as the universal type tag.
func encodeValue(tag tlv.UniversalTag, s string, precise bool) (asn1parser.Value, error) {
	switch tag {
	case tlv.TagBoolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, merry.Prepend(err, "invalid boolean")
		}
		return asn1parser.NewBoolean(b), nil
	case tlv.TagInteger:
		i, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, merry.Errorf("invalid integer: %q", s)
		}
		return asn1parser.NewInteger(i), nil
	case tlv.TagEnumerated:
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, merry.Prepend(err, "invalid enumerated value")
		}
		return asn1parser.NewEnumerated(u), nil
	case tlv.TagNull:
		return asn1parser.NewNull(), nil
	case tlv.TagBitString:
		b, err := asnutil.ParseHex(s)
		if err != nil {
			return nil, err
		}
		return asn1parser.NewBitStringFromBytes(b), nil
	case tlv.TagOctetString:
		b, err := asnutil.ParseHex(s)
		if err != nil {
			return nil, err
		}
		return asn1parser.NewOctetString(b), nil
	case tlv.TagUTF8String:
		return nonNil(asn1parser.NewUTF8String(s))
	case tlv.TagPrintableString:
		return nonNil(asn1parser.NewPrintableString(s))
	case tlv.TagIA5String:
		return nonNil(asn1parser.NewIA5String(s))
	case tlv.TagVisibleString:
		return nonNil(asn1parser.NewVisibleString(s))
	case tlv.TagTeletexString:
		return nonNil(asn1parser.NewTeletexString(s))
	case tlv.TagNumericString:
		return nonNil(asn1parser.NewNumericString(s))
	case tlv.TagBMPString:
		return nonNil(asn1parser.NewBMPString(s))
	case tlv.TagUniversalString:
		return nonNil(asn1parser.NewUniversalString(s))
	case tlv.TagUTCTime, tlv.TagGeneralizedTime:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, merry.Prepend(err, "invalid time")
		}
		var zone *time.Location
		if _, offset := t.Zone(); offset != 0 {
			zone = t.Location()
		}
		if tag == tlv.TagUTCTime {
			return nonNil(asn1parser.NewUTCTime(t, zone, precise))
		}
		return nonNil(asn1parser.NewGeneralizedTime(t, zone, precise))
	}
	return nil, merry.Here(asn1parser.ErrUnsupportedType).Append(tag.String())
}

func nonNil(v asn1parser.Value, err error) (asn1parser.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
