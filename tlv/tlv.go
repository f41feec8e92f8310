package tlv

import (
	"math"
)

// maxTagNumber bounds high tag number form decoding so the number fits an int
// on every platform.
const maxTagNumber = math.MaxInt32

// Node is a view of one TLV element inside a byte buffer.  It stores offsets
// only; the buffer is shared, not copied.  Nodes are immutable, and are
// only valid as long as the buffer isn't modified.
//
// A Node reached via FirstChild or NextSibling also remembers its ancestors,
// which bound its siblings and make Parent() possible.
type Node struct {
	buf        []byte
	offset     int
	tag        Tag
	headerLen  int
	payloadLen int

	// bound is the exclusive end of the region this node and its siblings
	// live in: the parent's payload, or the end of the buffer.
	bound  int
	parent *Node
}

// Parse parses the element at the start of buf.
func Parse(buf []byte) (Node, error) {
	return ParseAt(buf, 0)
}

// ParseAt parses the element starting at offset.  The returned node is a
// top-level node: it has no parent, and its siblings are searched up to the
// end of buf.
func ParseAt(buf []byte, offset int) (Node, error) {
	return parseAt(buf, offset, len(buf), nil)
}

func parseAt(buf []byte, offset, bound int, parent *Node) (Node, error) {
	if offset < 0 || offset >= bound {
		return Node{}, atOffset(ErrTagTruncated, offset).Appendf("no identifier octet at offset %d", offset)
	}

	b := buf[offset]
	n := Node{
		buf:    buf,
		offset: offset,
		tag:    TagFromByte(b),
		bound:  bound,
		parent: parent,
	}

	i := offset + 1

	// If the bottom five bits are set, then the tag number is actually base 128
	// encoded afterward
	if b&highTagNumber == highTagNumber {
		num := 0
		for {
			if i >= bound {
				return Node{}, atOffset(ErrTagTruncated, offset).Appendf("high tag number form runs past offset %d", bound)
			}
			c := buf[i]
			i++
			if num > maxTagNumber>>7 {
				return Node{}, atOffset(ErrTagTooLarge, offset)
			}
			num = num<<7 | int(c&0x7f)
			if c&0x80 == 0 {
				break
			}
		}
		n.tag.Number = num
	}

	if i >= bound {
		return Node{}, atOffset(ErrLengthTruncated, offset).Appendf("no length octet at offset %d", i)
	}
	l := buf[i]
	i++

	var length int
	switch {
	case l&0x80 == 0:
		// short form
		length = int(l)
	case l == 0x80:
		return Node{}, atOffset(ErrIndefiniteLength, offset)
	case l == 0xff:
		// reserved by X.690 8.1.3.5
		return Node{}, atOffset(ErrInvalidLength, offset).Appendf("reserved length octet 0xff at offset %d", i-1)
	default:
		// Bottom 7 bits give the number of length bytes to follow.
		count := int(l & 0x7f)
		if count > bound-i {
			return Node{}, atOffset(ErrLengthTruncated, offset).Appendf("expected %d length octets, %d remaining", count, bound-i)
		}
		for _, c := range buf[i : i+count] {
			if length > math.MaxInt>>8 {
				// We can't shift length up without overflowing.
				return Node{}, atOffset(ErrLengthTooLarge, offset)
			}
			length = length<<8 | int(c)
		}
		i += count
	}

	n.headerLen = i - offset
	if length > bound-i {
		return Node{}, atOffset(ErrLengthOverrun, offset).Appendf("payload of %d bytes at offset %d, only %d remaining", length, i, bound-i)
	}
	n.payloadLen = length
	return n, nil
}

// IsZero reports whether n is the zero Node, i.e. wasn't produced by parsing.
func (n Node) IsZero() bool {
	return n.buf == nil
}

// Tag returns the decoded identifier of the node.
func (n Node) Tag() Tag {
	return n.tag
}

// TagByte returns the first identifier octet, including class and
// constructed bits.  For high tag number form identifiers the low five bits
// are all ones.
func (n Node) TagByte() byte {
	if n.IsZero() {
		return 0
	}
	return n.buf[n.offset]
}

func (n Node) Class() Class {
	return n.tag.Class
}

func (n Node) Constructed() bool {
	return n.tag.Constructed
}

// Offset returns the offset of the first identifier octet in the buffer.
func (n Node) Offset() int {
	return n.offset
}

// HeaderLen returns the number of identifier and length octets.
func (n Node) HeaderLen() int {
	return n.headerLen
}

// PayloadOffset returns the offset of the first content octet.
func (n Node) PayloadOffset() int {
	return n.offset + n.headerLen
}

// PayloadLen returns the number of content octets.
func (n Node) PayloadLen() int {
	return n.payloadLen
}

// End returns the offset just past the last content octet, which is where
// the next sibling starts.
func (n Node) End() int {
	return n.offset + n.headerLen + n.payloadLen
}

// Len returns the full encoded length, header plus payload.
func (n Node) Len() int {
	return n.headerLen + n.payloadLen
}

// Payload returns the content octets.  The slice aliases the buffer.
func (n Node) Payload() []byte {
	if n.IsZero() {
		return nil
	}
	return n.buf[n.PayloadOffset():n.End():n.End()]
}

// Raw returns the full encoding of the node, header and payload.  The slice
// aliases the buffer.
func (n Node) Raw() []byte {
	if n.IsZero() {
		return nil
	}
	return n.buf[n.offset:n.End():n.End()]
}

// Header returns the identifier and length octets.
func (n Node) Header() []byte {
	if n.IsZero() {
		return nil
	}
	return n.buf[n.offset:n.PayloadOffset():n.PayloadOffset()]
}

// Buffer returns the whole buffer the node was parsed from.
func (n Node) Buffer() []byte {
	return n.buf
}

// Depth returns the number of ancestors the node was reached through.
func (n Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Parent returns the constructed node this node was reached from.  ok is
// false for top-level nodes.
func (n Node) Parent() (parent Node, ok bool) {
	if n.parent == nil {
		return Node{}, false
	}
	return *n.parent, true
}

// FirstChild parses the first element in the payload of a constructed node.
// It returns ErrNotConstructed for primitive nodes and ErrEnd if the payload
// is empty.
func (n Node) FirstChild() (Node, error) {
	if !n.tag.Constructed {
		return Node{}, atOffset(ErrNotConstructed, n.offset).Append(n.tag.String())
	}
	if n.payloadLen == 0 {
		return Node{}, ErrEnd
	}
	p := n
	return parseAt(n.buf, n.PayloadOffset(), n.End(), &p)
}

// NextSibling parses the element that follows n inside the same parent.  It
// returns ErrEnd when n is the last one.
func (n Node) NextSibling() (Node, error) {
	if n.IsZero() || n.End() >= n.bound {
		return Node{}, ErrEnd
	}
	return parseAt(n.buf, n.End(), n.bound, n.parent)
}

// HasNextSibling reports whether any bytes follow n inside its parent.
func (n Node) HasNextSibling() bool {
	return !n.IsZero() && n.End() < n.bound
}

// Children parses all direct children of a constructed node.
func (n Node) Children() ([]Node, error) {
	var children []Node
	c, err := n.FirstChild()
	for err == nil {
		children = append(children, c)
		c, err = c.NextSibling()
	}
	if err == ErrEnd {
		return children, nil
	}
	return children, err
}
