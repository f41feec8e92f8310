package asn1parser

import (
	"unicode/utf8"

	"github.com/gemalto/asn1parser/tlv"
)

// alphabet is the set of octets permitted in a single byte string type.
type alphabet struct {
	tag     tlv.UniversalTag
	allowed func(c byte) bool
}

var (
	printableAlphabet = alphabet{tlv.TagPrintableString, isPrintable}
	ia5Alphabet       = alphabet{tlv.TagIA5String, func(c byte) bool { return c < 0x80 }}
	visibleAlphabet   = alphabet{tlv.TagVisibleString, func(c byte) bool { return c >= 0x20 && c <= 0x7E }}
	teletexAlphabet   = alphabet{tlv.TagTeletexString, func(c byte) bool { return c < 0x80 }}
	numericAlphabet   = alphabet{tlv.TagNumericString, func(c byte) bool { return c == ' ' || c >= '0' && c <= '9' }}
)

func isPrintable(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func (a alphabet) check(b []byte) error {
	for i, c := range b {
		if !a.allowed(c) {
			return invalidData(a.tag, "character 0x%02x at position %d is not allowed", c, i)
		}
	}
	return nil
}

func (a alphabet) encode(s string) (element, error) {
	b := []byte(s)
	if err := a.check(b); err != nil {
		return element{}, err
	}
	return newElement(a.tag, b), nil
}

func (a alphabet) decode(n tlv.Node) (string, error) {
	if err := checkTag(n, a.tag); err != nil {
		return "", err
	}
	if err := a.check(n.Payload()); err != nil {
		return "", err
	}
	return string(n.Payload()), nil
}

// stringValue is embedded by the string wrappers.
type stringValue struct {
	element
	value string
}

func (s *stringValue) Value() string {
	return s.value
}

func (s *stringValue) Interface() interface{} {
	return s.value
}

func (s *stringValue) String() string {
	return s.value
}

// UTF8String is an ASN.1 UTF8String.  The content must be valid UTF-8.
type UTF8String struct {
	stringValue
}

func NewUTF8String(s string) (*UTF8String, error) {
	if !utf8.ValidString(s) {
		return nil, invalidData(tlv.TagUTF8String, "invalid UTF-8")
	}
	return &UTF8String{stringValue{element: newElement(tlv.TagUTF8String, []byte(s)), value: s}}, nil
}

func DecodeUTF8String(n tlv.Node) (*UTF8String, error) {
	if err := checkTag(n, tlv.TagUTF8String); err != nil {
		return nil, err
	}
	if !utf8.Valid(n.Payload()) {
		return nil, invalidData(tlv.TagUTF8String, "invalid UTF-8")
	}
	return &UTF8String{stringValue{element: element{node: n}, value: string(n.Payload())}}, nil
}

func ParseUTF8String(b []byte) (*UTF8String, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeUTF8String(n)
}

// PrintableString is an ASN.1 PrintableString: letters, digits, space, and
// the punctuation ' ( ) + , - . / : = ?
type PrintableString struct {
	stringValue
}

func NewPrintableString(s string) (*PrintableString, error) {
	e, err := printableAlphabet.encode(s)
	if err != nil {
		return nil, err
	}
	return &PrintableString{stringValue{element: e, value: s}}, nil
}

func DecodePrintableString(n tlv.Node) (*PrintableString, error) {
	s, err := printableAlphabet.decode(n)
	if err != nil {
		return nil, err
	}
	return &PrintableString{stringValue{element: element{node: n}, value: s}}, nil
}

func ParsePrintableString(b []byte) (*PrintableString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodePrintableString(n)
}

// IA5String is an ASN.1 IA5String: 7 bit ASCII.
type IA5String struct {
	stringValue
}

func NewIA5String(s string) (*IA5String, error) {
	e, err := ia5Alphabet.encode(s)
	if err != nil {
		return nil, err
	}
	return &IA5String{stringValue{element: e, value: s}}, nil
}

func DecodeIA5String(n tlv.Node) (*IA5String, error) {
	s, err := ia5Alphabet.decode(n)
	if err != nil {
		return nil, err
	}
	return &IA5String{stringValue{element: element{node: n}, value: s}}, nil
}

func ParseIA5String(b []byte) (*IA5String, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeIA5String(n)
}

// VisibleString is an ASN.1 VisibleString: printable ASCII, 0x20 through
// 0x7E.
type VisibleString struct {
	stringValue
}

func NewVisibleString(s string) (*VisibleString, error) {
	e, err := visibleAlphabet.encode(s)
	if err != nil {
		return nil, err
	}
	return &VisibleString{stringValue{element: e, value: s}}, nil
}

func DecodeVisibleString(n tlv.Node) (*VisibleString, error) {
	s, err := visibleAlphabet.decode(n)
	if err != nil {
		return nil, err
	}
	return &VisibleString{stringValue{element: element{node: n}, value: s}}, nil
}

func ParseVisibleString(b []byte) (*VisibleString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeVisibleString(n)
}

// TeletexString is an ASN.1 TeletexString (T61String).  Only the 7 bit ASCII
// subset of T.61 is supported.
type TeletexString struct {
	stringValue
}

func NewTeletexString(s string) (*TeletexString, error) {
	e, err := teletexAlphabet.encode(s)
	if err != nil {
		return nil, err
	}
	return &TeletexString{stringValue{element: e, value: s}}, nil
}

func DecodeTeletexString(n tlv.Node) (*TeletexString, error) {
	s, err := teletexAlphabet.decode(n)
	if err != nil {
		return nil, err
	}
	return &TeletexString{stringValue{element: element{node: n}, value: s}}, nil
}

func ParseTeletexString(b []byte) (*TeletexString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeTeletexString(n)
}

// NumericString is an ASN.1 NumericString: digits and space.
type NumericString struct {
	stringValue
}

func NewNumericString(s string) (*NumericString, error) {
	e, err := numericAlphabet.encode(s)
	if err != nil {
		return nil, err
	}
	return &NumericString{stringValue{element: e, value: s}}, nil
}

func DecodeNumericString(n tlv.Node) (*NumericString, error) {
	s, err := numericAlphabet.decode(n)
	if err != nil {
		return nil, err
	}
	return &NumericString{stringValue{element: element{node: n}, value: s}}, nil
}

func ParseNumericString(b []byte) (*NumericString, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeNumericString(n)
}
