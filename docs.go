// Package asn1parser decodes and encodes the ASN.1 universal types in their
// BER/DER representation.
//
// Every universal type has a wrapper type holding one encoded element and
// its decoded, strongly typed value:
//
// | ASN.1 type | Wrapper | Go value |
// | ---------- | ------- | -------- |
// | BOOLEAN | Boolean | bool |
// | INTEGER | Integer | *big.Int |
// | ENUMERATED | Enumerated | uint64 |
// | NULL | Null | |
// | BIT STRING | BitString | []byte, plus unused bit count |
// | OCTET STRING | OctetString | []byte |
// | UTF8String | UTF8String | string |
// | PrintableString | PrintableString | string |
// | IA5String | IA5String | string |
// | VisibleString | VisibleString | string |
// | TeletexString | TeletexString | string |
// | NumericString | NumericString | string |
// | BMPString | BMPString | string |
// | UniversalString | UniversalString | string |
// | UTCTime | UTCTime | time.Time, plus zone |
// | GeneralizedTime | GeneralizedTime | time.Time, plus zone |
//
// Each wrapper has three constructors:
//
// - DecodeXxx(n tlv.Node) decodes an element located with the tlv package.
// - ParseXxx(b []byte) decodes a buffer holding exactly one element.
// - NewXxx(v) encodes a native value.
//
// Decoding first checks the element's tag, and fails with ErrInvalidTag if it
// isn't the expected universal tag.  The content is then validated against
// the type's rules, failing with ErrInvalidData (or ErrInvalidTime) rather
// than being truncated or substituted.  Encoding produces the canonical DER
// form: BOOLEAN true is 0xFF, integers use the fewest octets, and lengths use
// the shortest form.
//
// Wrappers are immutable.  Bytes() returns the complete encoding, ready to be
// embedded in a larger structure, e.g. with tlv.Builder.  For wrappers
// created by decoding, Bytes() and Payload() alias the decoded buffer.
//
// Times
//
// UTCTime and GeneralizedTime values are UTC instants.  The Zone() of a
// decoded time is time.UTC unless the text carried an explicit offset, in
// which case it is a system zone with that standard offset.  Zone resolution
// is best effort and platform data dependent; compare Value(), not Zone().
package asn1parser
