package tlv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/asn1parser/internal/asnutil"
)

// Class is the class of an ASN.1 tag, stored in the top two bits of the first
// identifier octet.
type Class uint8

const (
	ClassUniversal       Class = 0
	ClassApplication     Class = 1
	ClassContextSpecific Class = 2
	ClassPrivate         Class = 3
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT SPECIFIC"
	case ClassPrivate:
		return "PRIVATE"
	}
	return fmt.Sprintf("%#02x", uint8(c))
}

const (
	constructedBit = 0x20
	highTagNumber  = 0x1f
)

// Tag is a decoded identifier: class, constructed flag and tag number.
// The zero value is the end-of-contents identifier.
type Tag struct {
	Class       Class
	Constructed bool
	Number      int
}

// Universal returns the primitive UNIVERSAL tag for u.
func Universal(u UniversalTag) Tag {
	return Tag{Class: ClassUniversal, Number: int(u)}
}

// UniversalConstructed returns the constructed UNIVERSAL tag for u, e.g.
// for SEQUENCE and SET.
func UniversalConstructed(u UniversalTag) Tag {
	return Tag{Class: ClassUniversal, Constructed: true, Number: int(u)}
}

// ContextSpecific returns a context specific tag, as used for [n] fields.
func ContextSpecific(number int, constructed bool) Tag {
	return Tag{Class: ClassContextSpecific, Constructed: constructed, Number: number}
}

// IsUniversal reports whether t is in the UNIVERSAL class with tag number u,
// ignoring the constructed flag.
func (t Tag) IsUniversal(u UniversalTag) bool {
	return t.Class == ClassUniversal && t.Number == int(u)
}

// Byte returns the single identifier octet of t.  ok is false if the tag
// number needs the high tag number form.
func (t Tag) Byte() (b byte, ok bool) {
	if t.Number < 0 || t.Number >= highTagNumber {
		return 0, false
	}
	return t.firstByte(), true
}

func (t Tag) firstByte() byte {
	b := byte(t.Class) << 6
	if t.Constructed {
		b |= constructedBit
	}
	if t.Number >= highTagNumber {
		return b | highTagNumber
	}
	return b | byte(t.Number)
}

// TagFromByte decodes a low tag number form identifier octet.
func TagFromByte(b byte) Tag {
	return Tag{
		Class:       Class(b >> 6),
		Constructed: b&constructedBit != 0,
		Number:      int(b & highTagNumber),
	}
}

func (t Tag) String() string {
	var s string
	switch t.Class {
	case ClassUniversal:
		s = UniversalTag(t.Number).String()
	case ClassContextSpecific:
		s = "[" + strconv.Itoa(t.Number) + "]"
	default:
		s = "[" + t.Class.String() + " " + strconv.Itoa(t.Number) + "]"
	}
	return s
}

// UniversalTag is a tag number of the UNIVERSAL class.
type UniversalTag int

const (
	TagEndOfContents    UniversalTag = 0x00
	TagBoolean          UniversalTag = 0x01
	TagInteger          UniversalTag = 0x02
	TagBitString        UniversalTag = 0x03
	TagOctetString      UniversalTag = 0x04
	TagNull             UniversalTag = 0x05
	TagObjectIdentifier UniversalTag = 0x06
	TagObjectDescriptor UniversalTag = 0x07
	TagExternal         UniversalTag = 0x08
	TagReal             UniversalTag = 0x09
	TagEnumerated       UniversalTag = 0x0A
	TagEmbeddedPDV      UniversalTag = 0x0B
	TagUTF8String       UniversalTag = 0x0C
	TagRelativeOID      UniversalTag = 0x0D
	TagTime             UniversalTag = 0x0E
	TagSequence         UniversalTag = 0x10
	TagSet              UniversalTag = 0x11
	TagNumericString    UniversalTag = 0x12
	TagPrintableString  UniversalTag = 0x13
	TagTeletexString    UniversalTag = 0x14
	TagVideotexString   UniversalTag = 0x15
	TagIA5String        UniversalTag = 0x16
	TagUTCTime          UniversalTag = 0x17
	TagGeneralizedTime  UniversalTag = 0x18
	TagGraphicString    UniversalTag = 0x19
	TagVisibleString    UniversalTag = 0x1A
	TagGeneralString    UniversalTag = 0x1B
	TagUniversalString  UniversalTag = 0x1C
	TagCharacterString  UniversalTag = 0x1D
	TagBMPString        UniversalTag = 0x1E
)

func init() {
	var m = map[UniversalTag]string{
		TagEndOfContents:    "END OF CONTENTS",
		TagBoolean:          "BOOLEAN",
		TagInteger:          "INTEGER",
		TagBitString:        "BIT STRING",
		TagOctetString:      "OCTET STRING",
		TagNull:             "NULL",
		TagObjectIdentifier: "OBJECT IDENTIFIER",
		TagObjectDescriptor: "ObjectDescriptor",
		TagExternal:         "EXTERNAL",
		TagReal:             "REAL",
		TagEnumerated:       "ENUMERATED",
		TagEmbeddedPDV:      "EMBEDDED PDV",
		TagUTF8String:       "UTF8String",
		TagRelativeOID:      "RELATIVE-OID",
		TagTime:             "TIME",
		TagSequence:         "SEQUENCE",
		TagSet:              "SET",
		TagNumericString:    "NumericString",
		TagPrintableString:  "PrintableString",
		TagTeletexString:    "TeletexString",
		TagVideotexString:   "VideotexString",
		TagIA5String:        "IA5String",
		TagUTCTime:          "UTCTime",
		TagGeneralizedTime:  "GeneralizedTime",
		TagGraphicString:    "GraphicString",
		TagVisibleString:    "VisibleString",
		TagGeneralString:    "GeneralString",
		TagUniversalString:  "UniversalString",
		TagCharacterString:  "CHARACTER STRING",
		TagBMPString:        "BMPString",
	}

	for tag, name := range m {
		RegisterUniversalTag(tag, name)
	}
	// common aliases
	_UniversalTagNameToValueMap[normalizeName("T61String")] = TagTeletexString
	_UniversalTagNameToValueMap[normalizeName("OID")] = TagObjectIdentifier
}

// RegisterUniversalTag sets the canonical name of a universal tag number.
// The name is also registered, in normalized form, for ParseUniversalTag.
func RegisterUniversalTag(tag UniversalTag, name string) {
	_UniversalTagValueToNameMap[tag] = name
	_UniversalTagNameToValueMap[normalizeName(name)] = tag
}

// String returns the canonical ASN.1 name of the tag.  If the tag isn't
// registered, it returns the hex value of the tag, e.g. "0x1f".
func (u UniversalTag) String() string {
	if s, ok := _UniversalTagValueToNameMap[u]; ok {
		return s
	}
	return fmt.Sprintf("%#02x", int(u))
}

func (u UniversalTag) MarshalText() (text []byte, err error) {
	return []byte(u.String()), nil
}

func (u *UniversalTag) UnmarshalText(text []byte) (err error) {
	*u, err = ParseUniversalTag(string(text))
	return
}

// ParseUniversalTag parses a universal tag name.  Names are matched ignoring
// case, spaces, dashes and underscores, so "bit string", "BIT_STRING" and
// "BitString" are all TagBitString.  Decimal numbers and hex numbers
// prefixed with "0x" are also accepted.
func ParseUniversalTag(s string) (UniversalTag, error) {
	if v, ok := _UniversalTagNameToValueMap[normalizeName(s)]; ok {
		return v, nil
	}
	i, err := asnutil.ParseInt(s)
	if err != nil {
		return 0, merry.Errorf("invalid universal tag \"%s\"", s)
	}
	if i < 0 || i >= highTagNumber {
		return 0, merry.Errorf("universal tag number out of range: %s", s)
	}
	return UniversalTag(i), nil
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToUpper(s))
}

var _UniversalTagValueToNameMap = map[UniversalTag]string{}
var _UniversalTagNameToValueMap = map[string]UniversalTag{}
