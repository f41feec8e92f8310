package tlv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHeader(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		len  int
		exp  string
	}{
		{"zero", Universal(TagNull), 0, "0500"},
		{"short form max", Universal(TagOctetString), 127, "047f"},
		{"long form min", Universal(TagOctetString), 128, "048180"},
		{"long form 1 byte max", Universal(TagOctetString), 255, "0481ff"},
		{"long form 2 bytes", Universal(TagOctetString), 256, "04820100"},
		{"long form 3 bytes", Universal(TagOctetString), 65536, "0483010000"},
		{"constructed", UniversalConstructed(TagSequence), 3, "3003"},
		{"high tag number 31", ContextSpecific(31, true), 0, "bf1f00"},
		{"high tag number 200", Tag{Class: ClassUniversal, Number: 200}, 1, "1f814801"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := EncodeHeader(tc.tag, tc.len)
			assert.Equal(t, hex2bytes(tc.exp), h)
			assert.Equal(t, len(h), HeaderLen(tc.tag, tc.len))
		})
	}

	assert.Equal(t, hex2bytes("308180"), EncodeHeaderByte(0x30, 128))
	assert.Equal(t, hex2bytes("0101"), EncodeHeaderByte(0x01, 1))

	assert.Panics(t, func() {
		EncodeHeader(Universal(TagNull), -1)
	})
}

func TestEncode_roundtrip(t *testing.T) {
	tags := []Tag{
		Universal(TagOctetString),
		UniversalConstructed(TagSet),
		ContextSpecific(2, false),
		{Class: ClassPrivate, Constructed: true, Number: 16384},
	}
	for _, tag := range tags {
		for _, l := range []int{0, 1, 127, 128, 255, 256, 70000} {
			payload := make([]byte, l)
			for i := range payload {
				payload[i] = byte(i)
			}
			b := Encode(tag, payload)

			n, err := Parse(b)
			require.NoError(t, err)
			assert.Equal(t, tag, n.Tag())
			assert.Equal(t, l, n.PayloadLen())
			assert.Equal(t, len(b), n.End())
			assert.Equal(t, payload, n.Payload())
			assert.Equal(t, EncodeHeader(tag, l), n.Header())
		}
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	err := b.AddConstructed(UniversalConstructed(TagSequence), func(b *Builder) error {
		b.AddPrimitive(Universal(TagBoolean), []byte{0xff})
		b.AddRaw(hex2bytes("020105"))
		err := b.AddConstructed(Universal(TagSequence), func(b *Builder) error {
			b.AddPrimitive(Universal(TagNull), nil)
			return nil
		})
		require.NoError(t, err)
		b.AddPrimitive(Universal(TagOctetString), nil)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, hex2bytes(sample), b.Bytes())
	assert.Equal(t, 14, b.Len())

	b.Reset()
	assert.Zero(t, b.Len())
}

func TestBuilder_longForm(t *testing.T) {
	var b Builder
	err := b.AddConstructed(UniversalConstructed(TagSequence), func(b *Builder) error {
		b.AddPrimitive(Universal(TagOctetString), make([]byte, 200))
		return nil
	})
	require.NoError(t, err)

	exp := append(hex2bytes("3081cb 0481c8"), make([]byte, 200)...)
	assert.Equal(t, exp, b.Bytes())
}

func TestBuilder_error(t *testing.T) {
	var b Builder
	boom := assert.AnError
	err := b.AddConstructed(ContextSpecific(0, true), func(b *Builder) error {
		return boom
	})
	assert.Equal(t, boom, err)
	// the element is still closed, so the builder stays consistent
	assert.Equal(t, hex2bytes("a000"), b.Bytes())
}
