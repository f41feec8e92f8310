// Package tlv reads and writes the tag-length-value layer of the ASN.1
// Basic and Distinguished Encoding Rules (ITU-T X.690).
//
// The core representation is the Node type, an immutable view of a single
// TLV element inside a caller-supplied []byte.  A Node records where its
// identifier, length and content octets are, but never copies them:
// Payload() and Raw() return sub-slices of the original buffer.  Callers must
// not modify a buffer while Nodes derived from it are in use.
//
// Reading
//
// Parse and ParseAt decode the header found at an offset and validate that
// the content octets fit inside the buffer.  Both the low and high tag number
// forms are understood, as are the short and long definite length forms.
// The indefinite length form is rejected, since the engine targets DER.
//
//     n, err := tlv.Parse(der)
//     child, err := n.FirstChild()     // ErrNotConstructed for primitives
//     sib, err := child.NextSibling()  // ErrEnd after the last child
//     parent, ok := sib.Parent()
//
// Nodes remember the chain of ancestors they were reached through, so
// Parent() never scans backwards.  Walk and Flatten visit every node of a
// buffer in document order.
//
// Writing
//
// EncodeHeader produces the minimal identifier and length octets for a tag
// and a content length: short form lengths up to 127, otherwise the long form
// with as few length octets as possible.  Encode prepends that header to a
// payload, and Builder assembles nested constructed values.
//
// Tags
//
// Tag holds the class, constructed flag and number of an identifier.
// UniversalTag names the tag numbers of the UNIVERSAL class, and can be
// parsed from and formatted to their canonical ASN.1 names.
package tlv
