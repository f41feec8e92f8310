package tlv

import (
	"errors"
	"fmt"
	"io"
)

// SkipChildren can be returned from a WalkFunc to skip the children of the
// constructed node it was called with.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each node visited by Walk.
type WalkFunc func(n Node) error

// Walk visits every element in buf, in document order: each top-level
// element, and depth-first all of its descendants.  Traversal stops at the
// first error returned by fn, or the first parse error.
func Walk(buf []byte, fn WalkFunc) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := Parse(buf)
	for err == nil {
		if err = n.walk(fn); err != nil {
			return err
		}
		n, err = n.NextSibling()
	}
	if err == ErrEnd {
		return nil
	}
	return err
}

// Walk visits n and all its descendants depth-first.
func (n Node) Walk(fn WalkFunc) error {
	return n.walk(fn)
}

func (n Node) walk(fn WalkFunc) error {
	err := fn(n)
	switch {
	case err == SkipChildren:
		return nil
	case err != nil:
		return err
	case !n.Constructed():
		return nil
	}

	c, err := n.FirstChild()
	for err == nil {
		if err = c.walk(fn); err != nil {
			return err
		}
		c, err = c.NextSibling()
	}
	if err == ErrEnd {
		return nil
	}
	return err
}

// Flatten parses every element in buf and returns them in the order Walk
// visits them.
func Flatten(buf []byte) ([]Node, error) {
	var nodes []Node
	err := Walk(buf, func(n Node) error {
		nodes = append(nodes, n)
		return nil
	})
	return nodes, err
}

// Print writes the structure of buf to w, one element per line, indented by
// depth:
//
//     SEQUENCE (2+6) @0
//       BOOLEAN (2+1) @2: ff
//       INTEGER (2+1) @5: 05
//
// Each line shows the tag, header and payload lengths, the offset, and for
// primitive elements the payload in hex.  If the buffer is malformed, the
// elements before the error are printed, followed by the error, which is
// also returned.
func Print(w io.Writer, indent string, buf []byte) error {
	first := true
	err := Walk(buf, func(n Node) error {
		if !first {
			fmt.Fprint(w, "\n")
		}
		first = false
		printNode(w, indent, n)
		return nil
	})
	if err != nil {
		if !first {
			fmt.Fprint(w, "\n")
		}
		fmt.Fprintf(w, "(%s)", err.Error())
	}
	return err
}

func printNode(w io.Writer, indent string, n Node) {
	for i := n.Depth(); i > 0; i-- {
		fmt.Fprint(w, indent)
	}
	fmt.Fprintf(w, "%v (%d+%d) @%d", n.Tag(), n.HeaderLen(), n.PayloadLen(), n.Offset())
	if !n.Constructed() && n.PayloadLen() > 0 {
		fmt.Fprintf(w, ": %x", n.Payload())
	}
}
