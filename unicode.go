package asn1parser

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/gemalto/asn1parser/tlv"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	bmpEncoding       encoding.Encoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	universalEncoding encoding.Encoding = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	maxBMP       = 0xFFFF
)

func isSurrogate(r uint32) bool {
	return r >= surrogateMin && r <= surrogateMax
}

// BMPString is an ASN.1 BMPString: characters of the Basic Multilingual
// Plane, encoded as big endian UCS-2.
type BMPString struct {
	stringValue
}

// NewBMPString encodes s.  s must be valid UTF-8 and may not contain
// characters outside the Basic Multilingual Plane.
func NewBMPString(s string) (*BMPString, error) {
	if !utf8.ValidString(s) {
		return nil, invalidData(tlv.TagBMPString, "invalid UTF-8")
	}
	for i, r := range s {
		if r > maxBMP {
			return nil, invalidData(tlv.TagBMPString, "character %U at position %d is outside the BMP", r, i)
		}
	}
	b, err := bmpEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, invalidData(tlv.TagBMPString, "%v", err)
	}
	return &BMPString{stringValue{element: newElement(tlv.TagBMPString, b), value: s}}, nil
}

func DecodeBMPString(n tlv.Node) (*BMPString, error) {
	if err := checkTag(n, tlv.TagBMPString); err != nil {
		return nil, err
	}
	p := n.Payload()
	if len(p)%2 != 0 {
		return nil, invalidData(tlv.TagBMPString, "length must be a multiple of 2, was %d", len(p))
	}
	for i := 0; i < len(p); i += 2 {
		if isSurrogate(uint32(binary.BigEndian.Uint16(p[i:]))) {
			return nil, invalidData(tlv.TagBMPString, "surrogate code unit at position %d", i)
		}
	}
	s, err := bmpEncoding.NewDecoder().Bytes(p)
	if err != nil {
		return nil, invalidData(tlv.TagBMPString, "%v", err)
	}
	return &BMPString{stringValue{element: element{node: n}, value: string(s)}}, nil
}

func ParseBMPString(b []byte) (*BMPString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeBMPString(n)
}

// UniversalString is an ASN.1 UniversalString: any Unicode character,
// encoded as big endian UCS-4.
type UniversalString struct {
	stringValue
}

// NewUniversalString encodes s, which must be valid UTF-8.
func NewUniversalString(s string) (*UniversalString, error) {
	if !utf8.ValidString(s) {
		return nil, invalidData(tlv.TagUniversalString, "invalid UTF-8")
	}
	b, err := universalEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, invalidData(tlv.TagUniversalString, "%v", err)
	}
	return &UniversalString{stringValue{element: newElement(tlv.TagUniversalString, b), value: s}}, nil
}

func DecodeUniversalString(n tlv.Node) (*UniversalString, error) {
	if err := checkTag(n, tlv.TagUniversalString); err != nil {
		return nil, err
	}
	p := n.Payload()
	if len(p)%4 != 0 {
		return nil, invalidData(tlv.TagUniversalString, "length must be a multiple of 4, was %d", len(p))
	}
	for i := 0; i < len(p); i += 4 {
		r := binary.BigEndian.Uint32(p[i:])
		if r > utf8.MaxRune || isSurrogate(r) {
			return nil, invalidData(tlv.TagUniversalString, "invalid character 0x%08x at position %d", r, i)
		}
	}
	s, err := universalEncoding.NewDecoder().Bytes(p)
	if err != nil {
		return nil, invalidData(tlv.TagUniversalString, "%v", err)
	}
	return &UniversalString{stringValue{element: element{node: n}, value: string(s)}}, nil
}

func ParseUniversalString(b []byte) (*UniversalString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeUniversalString(n)
}
