package asn1parser

import (
	"errors"

	"github.com/ansel1/merry"
	"github.com/gemalto/asn1parser/tlv"
)

func Is(err error, originals ...error) bool {
	return merry.Is(err, originals...)
}

func Details(err error) string {
	return merry.Details(err)
}

var ErrInvalidTag = errors.New("invalid tag")
var ErrInvalidData = errors.New("invalid data")
var ErrInvalidTime = errors.New("invalid time")
var ErrTrailingData = errors.New("trailing data after element")
var ErrUnsupportedType = errors.New("unsupported type")

type errKey int

const (
	errorKeyExpectedTag errKey = iota
	errorKeyActualTag
	errorKeyType
)

func init() {
	merry.RegisterDetail("Expected Tag", errorKeyExpectedTag)
	merry.RegisterDetail("Actual Tag", errorKeyActualTag)
	merry.RegisterDetail("Type", errorKeyType)
}

// ExpectedTag returns the universal tag a decoder expected when it failed
// with ErrInvalidTag.
func ExpectedTag(err error) (tlv.UniversalTag, bool) {
	v, ok := merry.Value(err, errorKeyExpectedTag).(tlv.UniversalTag)
	return v, ok
}

// TypeOf returns the universal type an ErrInvalidData, ErrInvalidTime or
// ErrInvalidTag error was raised for.
func TypeOf(err error) (tlv.UniversalTag, bool) {
	v, ok := merry.Value(err, errorKeyType).(tlv.UniversalTag)
	return v, ok
}

func invalidTag(expected tlv.UniversalTag, n tlv.Node) error {
	return merry.WrapSkipping(ErrInvalidTag, 2).
		WithValue(errorKeyExpectedTag, expected).
		WithValue(errorKeyActualTag, n.Tag()).
		WithValue(errorKeyType, expected).
		Appendf("expected %s, got %s", expected, n.Tag())
}

func invalidData(typ tlv.UniversalTag, format string, args ...interface{}) error {
	return merry.WrapSkipping(ErrInvalidData, 1).
		WithValue(errorKeyType, typ).
		Prepend(typ.String()).
		Appendf(format, args...)
}

func invalidTime(typ tlv.UniversalTag, cause error) error {
	return merry.WrapSkipping(ErrInvalidTime, 1).
		WithValue(errorKeyType, typ).
		WithCause(cause).
		Append(cause.Error())
}
