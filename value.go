package asn1parser

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1parser/tlv"
)

// Value is implemented by every universal type wrapper.
type Value interface {
	// Tag returns the element's identifier.
	Tag() tlv.Tag
	// Node returns the element's position in its buffer.
	Node() tlv.Node
	// Bytes returns the full encoding: identifier, length and content octets.
	Bytes() []byte
	// Payload returns the content octets.
	Payload() []byte
	// Interface returns the decoded value as a native Go value, e.g. a bool for
	// a Boolean or a time.Time for a UTCTime.  It returns nil for Null.
	Interface() interface{}
}

// element holds the encoding of a value.  It's embedded in each wrapper.
type element struct {
	node tlv.Node
}

func (e element) Tag() tlv.Tag {
	return e.node.Tag()
}

func (e element) Node() tlv.Node {
	return e.node
}

func (e element) Bytes() []byte {
	return e.node.Raw()
}

func (e element) Payload() []byte {
	return e.node.Payload()
}

// newElement encodes payload as a primitive element with tag u.
func newElement(u tlv.UniversalTag, payload []byte) element {
	n, err := tlv.Parse(tlv.Encode(tlv.Universal(u), payload))
	if err != nil {
		// tlv.Encode always produces a well formed element
		panic(err)
	}
	return element{node: n}
}

// checkTag verifies n is a primitive element with universal tag u.
func checkTag(n tlv.Node, u tlv.UniversalTag) error {
	if n.IsZero() || n.Tag() != tlv.Universal(u) {
		return invalidTag(u, n)
	}
	return nil
}

// parseElement reads the single element contained in b.
func parseElement(b []byte) (tlv.Node, error) {
	n, err := tlv.Parse(b)
	if err != nil {
		return tlv.Node{}, err
	}
	if n.End() != len(b) {
		return tlv.Node{}, merry.Here(ErrTrailingData).Appendf("%d bytes after element", len(b)-n.End())
	}
	return n, nil
}
