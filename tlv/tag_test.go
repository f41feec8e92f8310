package tlv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_String(t *testing.T) {
	assert.Equal(t, "BIT STRING", Universal(TagBitString).String())
	assert.Equal(t, "SEQUENCE", UniversalConstructed(TagSequence).String())
	assert.Equal(t, "[0]", ContextSpecific(0, true).String())
	assert.Equal(t, "[APPLICATION 3]", Tag{Class: ClassApplication, Number: 3}.String())
	assert.Equal(t, "[PRIVATE 40]", Tag{Class: ClassPrivate, Number: 40}.String())
	assert.Equal(t, "0x1f", UniversalTag(0x1f).String())
}

func TestTag_Byte(t *testing.T) {
	b, ok := UniversalConstructed(TagSequence).Byte()
	require.True(t, ok)
	assert.Equal(t, byte(0x30), b)

	b, ok = ContextSpecific(3, false).Byte()
	require.True(t, ok)
	assert.Equal(t, byte(0x83), b)

	_, ok = ContextSpecific(31, false).Byte()
	assert.False(t, ok)

	for _, b := range []byte{0x01, 0x30, 0x31, 0xa0, 0x5e, 0xde} {
		tag := TagFromByte(b)
		b2, ok := tag.Byte()
		require.True(t, ok)
		assert.Equal(t, b, b2)
	}
}

func TestTag_IsUniversal(t *testing.T) {
	assert.True(t, Universal(TagSequence).IsUniversal(TagSequence))
	assert.True(t, UniversalConstructed(TagSequence).IsUniversal(TagSequence))
	assert.False(t, ContextSpecific(16, true).IsUniversal(TagSequence))
}

func TestParseUniversalTag(t *testing.T) {
	tests := []struct {
		in  string
		exp UniversalTag
	}{
		{"BIT STRING", TagBitString},
		{"bit string", TagBitString},
		{"BIT_STRING", TagBitString},
		{"BitString", TagBitString},
		{"printablestring", TagPrintableString},
		{"T61String", TagTeletexString},
		{"UTCTime", TagUTCTime},
		{"0x1e", TagBMPString},
		{"12", TagUTF8String},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			tag, err := ParseUniversalTag(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, tag)
		})
	}

	for _, s := range []string{"bogus", "31", "-1", "0xzz"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseUniversalTag(s)
			assert.Error(t, err)
		})
	}
}

func TestUniversalTag_Text(t *testing.T) {
	b, err := TagGeneralizedTime.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "GeneralizedTime", string(b))

	var u UniversalTag
	require.NoError(t, u.UnmarshalText([]byte("octet string")))
	assert.Equal(t, TagOctetString, u)
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "UNIVERSAL", ClassUniversal.String())
	assert.Equal(t, "APPLICATION", ClassApplication.String())
	assert.Equal(t, "CONTEXT SPECIFIC", ClassContextSpecific.String())
	assert.Equal(t, "PRIVATE", ClassPrivate.String())
}
