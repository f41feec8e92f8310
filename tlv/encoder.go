package tlv

import (
	"bytes"
)

// EncodeHeader returns the minimal identifier and length octets for an
// element with the given tag and payload length.  Lengths up to 127 use the
// short form; longer ones use the long form with as few length octets as
// possible, as DER requires.
func EncodeHeader(tag Tag, payloadLen int) []byte {
	return appendHeader(make([]byte, 0, HeaderLen(tag, payloadLen)), tag, payloadLen)
}

// EncodeHeaderByte is EncodeHeader for an identifier given as a single raw
// octet, e.g. 0x30 for SEQUENCE.
func EncodeHeaderByte(tagByte byte, payloadLen int) []byte {
	b := make([]byte, 0, 1+lengthLen(payloadLen))
	b = append(b, tagByte)
	return appendLength(b, payloadLen)
}

// Encode returns the full encoding of a primitive or constructed element:
// the minimal header for tag, followed by payload.
func Encode(tag Tag, payload []byte) []byte {
	b := make([]byte, 0, HeaderLen(tag, len(payload))+len(payload))
	b = appendHeader(b, tag, len(payload))
	return append(b, payload...)
}

// HeaderLen returns the number of octets EncodeHeader produces.
func HeaderLen(tag Tag, payloadLen int) int {
	l := 1
	if tag.Number >= highTagNumber {
		l += base128Len(tag.Number)
	}
	return l + lengthLen(payloadLen)
}

func appendHeader(b []byte, tag Tag, payloadLen int) []byte {
	if tag.Number < 0 {
		panic("tlv: negative tag number")
	}
	b = append(b, tag.firstByte())
	if tag.Number >= highTagNumber {
		b = appendBase128(b, tag.Number)
	}
	return appendLength(b, payloadLen)
}

func appendLength(b []byte, n int) []byte {
	if n < 0 {
		panic("tlv: negative length")
	}
	if n < 0x80 {
		return append(b, byte(n))
	}
	count := lengthLen(n) - 1
	b = append(b, 0x80|byte(count))
	for ; count > 0; count-- {
		b = append(b, byte(n>>uint((count-1)*8)))
	}
	return b
}

func lengthLen(n int) int {
	if n < 0x80 {
		return 1
	}
	l := 2
	for ; n > 255; n >>= 8 {
		l++
	}
	return l
}

func base128Len(n int) int {
	l := 1
	for ; n > 127; n >>= 7 {
		l++
	}
	return l
}

func appendBase128(b []byte, n int) []byte {
	for i := base128Len(n) - 1; i >= 0; i-- {
		c := byte(n>>uint(i*7)) & 0x7f
		if i != 0 {
			c |= 0x80
		}
		b = append(b, c)
	}
	return b
}

// Builder assembles DER encodings, including nested constructed elements.
// The zero value is ready to use.
type Builder struct {
	buf   bytes.Buffer
	depth int
}

// AddPrimitive appends a complete element with the given tag and payload.
func (b *Builder) AddPrimitive(tag Tag, payload []byte) {
	_, _ = b.buf.Write(EncodeHeader(tag, len(payload)))
	_, _ = b.buf.Write(payload)
}

// AddRaw appends already encoded bytes, like the Bytes() of a universal value.
func (b *Builder) AddRaw(raw []byte) {
	_, _ = b.buf.Write(raw)
}

// AddConstructed appends a constructed element.  f is called to add the
// children; the header is written once their total length is known.
func (b *Builder) AddConstructed(tag Tag, f func(b *Builder) error) error {
	tag.Constructed = true
	b.depth++
	i := b.begin()
	err := f(b)
	b.end(i, tag)
	b.depth--
	return err
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Bytes returns the encoded bytes.  It must not be called from inside
// AddConstructed.
func (b *Builder) Bytes() []byte {
	if b.depth > 0 {
		panic("tlv: Builder.Bytes called inside AddConstructed")
	}
	return b.buf.Bytes()
}

// Reset discards all bytes written so far.
func (b *Builder) Reset() {
	b.buf.Reset()
	b.depth = 0
}

func (b *Builder) begin() int {
	return b.buf.Len()
}

// end inserts the header in front of the payload written since begin.  The
// header length depends on the payload length, so the payload is shifted
// once it is complete.
func (b *Builder) end(i int, tag Tag) {
	n := b.buf.Len() - i
	header := EncodeHeader(tag, n)
	_, _ = b.buf.Write(header)
	raw := b.buf.Bytes()
	copy(raw[i+len(header):], raw[i:i+n])
	copy(raw[i:], header)
}
