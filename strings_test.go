package asn1parser

import (
	"testing"

	"github.com/gemalto/asn1parser/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name   string
		encode func(string) (Value, error)
		parse  func([]byte) (Value, error)
		in     string
		exp    string
	}{
		{
			name:   "utf8",
			encode: func(s string) (Value, error) { return nonNil(NewUTF8String(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParseUTF8String(b)) },
			in:     "héllo",
			exp:    "0c0668c3a96c6c6f",
		},
		{
			name:   "printable",
			encode: func(s string) (Value, error) { return nonNil(NewPrintableString(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParsePrintableString(b)) },
			in:     "HELLO (WORLD)",
			exp:    "130d48454c4c4f2028574f524c4429",
		},
		{
			name:   "ia5",
			encode: func(s string) (Value, error) { return nonNil(NewIA5String(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParseIA5String(b)) },
			in:     "a@b",
			exp:    "1603614062",
		},
		{
			name:   "visible",
			encode: func(s string) (Value, error) { return nonNil(NewVisibleString(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParseVisibleString(b)) },
			in:     "a~",
			exp:    "1a02617e",
		},
		{
			name:   "teletex",
			encode: func(s string) (Value, error) { return nonNil(NewTeletexString(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParseTeletexString(b)) },
			in:     "abc",
			exp:    "1403616263",
		},
		{
			name:   "numeric",
			encode: func(s string) (Value, error) { return nonNil(NewNumericString(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParseNumericString(b)) },
			in:     "12 34",
			exp:    "12053132203334",
		},
		{
			name:   "bmp",
			encode: func(s string) (Value, error) { return nonNil(NewBMPString(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParseBMPString(b)) },
			in:     "A€",
			exp:    "1e04004120ac",
		},
		{
			name:   "universal",
			encode: func(s string) (Value, error) { return nonNil(NewUniversalString(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParseUniversalString(b)) },
			in:     "A😀",
			exp:    "1c08000000410001f600",
		},
		{
			name:   "empty",
			encode: func(s string) (Value, error) { return nonNil(NewPrintableString(s)) },
			parse:  func(b []byte) (Value, error) { return nonNil(ParsePrintableString(b)) },
			in:     "",
			exp:    "1300",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.encode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, hex2bytes(tc.exp), v.Bytes())
			assert.Equal(t, tc.in, v.Interface())

			d, err := tc.parse(hex2bytes(tc.exp))
			require.NoError(t, err)
			assert.Equal(t, tc.in, d.Interface())
			assert.Equal(t, v.Tag(), d.Tag())
		})
	}
}

func TestStrings_invalidCharacters(t *testing.T) {
	tests := []struct {
		name string
		err  func() error
	}{
		{"printable underscore", func() error { _, err := NewPrintableString("hello_world"); return err }},
		{"printable star", func() error { _, err := NewPrintableString("a*b"); return err }},
		{"ia5 high", func() error { _, err := NewIA5String("é"); return err }},
		{"visible control", func() error { _, err := NewVisibleString("a\tb"); return err }},
		{"visible del", func() error { _, err := NewVisibleString("\x7f"); return err }},
		{"teletex high", func() error { _, err := NewTeletexString("\x80"); return err }},
		{"numeric letter", func() error { _, err := NewNumericString("12a"); return err }},
		{"utf8 invalid", func() error { _, err := NewUTF8String("\xff"); return err }},
		{"bmp outside plane", func() error { _, err := NewBMPString("😀"); return err }},
		{"bmp invalid utf8", func() error { _, err := NewBMPString("\xff"); return err }},
		{"universal invalid utf8", func() error { _, err := NewUniversalString("\xc3"); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.err()
			require.True(t, Is(err, ErrInvalidData), Details(err))
		})
	}
}

func TestStrings_decodeErrors(t *testing.T) {
	tests := []struct {
		in    string
		parse func([]byte) (Value, error)
	}{
		{"130b68656c6c6f5f776f726c64", func(b []byte) (Value, error) { return nonNil(ParsePrintableString(b)) }},
		{"1601ff", func(b []byte) (Value, error) { return nonNil(ParseIA5String(b)) }},
		{"1a0109", func(b []byte) (Value, error) { return nonNil(ParseVisibleString(b)) }},
		{"140180", func(b []byte) (Value, error) { return nonNil(ParseTeletexString(b)) }},
		{"12012d", func(b []byte) (Value, error) { return nonNil(ParseNumericString(b)) }},
		{"0c01ff", func(b []byte) (Value, error) { return nonNil(ParseUTF8String(b)) }},
		{"1e03004100", func(b []byte) (Value, error) { return nonNil(ParseBMPString(b)) }},
		{"1e02d800", func(b []byte) (Value, error) { return nonNil(ParseBMPString(b)) }},
		{"1c03000041", func(b []byte) (Value, error) { return nonNil(ParseUniversalString(b)) }},
		{"1c0400110000", func(b []byte) (Value, error) { return nonNil(ParseUniversalString(b)) }},
		{"1c040000d800", func(b []byte) (Value, error) { return nonNil(ParseUniversalString(b)) }},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := tc.parse(hex2bytes(tc.in))
			require.True(t, Is(err, ErrInvalidData), Details(err))
		})
	}

	_, err := ParsePrintableString(hex2bytes("0c0141"))
	require.True(t, Is(err, ErrInvalidTag), Details(err))
	exp, _ := ExpectedTag(err)
	assert.Equal(t, tlv.TagPrintableString, exp)
}

func TestStrings_stringer(t *testing.T) {
	s, err := NewIA5String("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", s.String())
	assert.Equal(t, "abc", s.Value())
}
