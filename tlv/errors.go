package tlv

import (
	"errors"

	"github.com/ansel1/merry"
)

var ErrTagTruncated = errors.New("tag truncated")
var ErrTagTooLarge = errors.New("tag number too large")
var ErrLengthTruncated = errors.New("length truncated")
var ErrLengthTooLarge = errors.New("length too large")
var ErrLengthOverrun = errors.New("length exceeds remaining buffer")
var ErrInvalidLength = errors.New("invalid length octet")
var ErrIndefiniteLength = errors.New("indefinite length not supported")
var ErrNotConstructed = errors.New("node is not constructed")
var ErrEnd = errors.New("no more nodes")

type errKey int

const (
	errorKeyOffset errKey = iota
)

func init() {
	merry.RegisterDetail("Offset", errorKeyOffset)
}

func atOffset(err error, offset int) merry.Error {
	return merry.WrapSkipping(err, 1).WithValue(errorKeyOffset, offset)
}

// Offset returns the buffer offset of the element an error was raised for.
// The second return value is false if err doesn't carry an offset.
func Offset(err error) (int, bool) {
	v, ok := merry.Value(err, errorKeyOffset).(int)
	return v, ok
}
