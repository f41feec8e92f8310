package asn1parser

import (
	"time"

	"github.com/gemalto/asn1parser/internal/asntime"
	"github.com/gemalto/asn1parser/tlv"
)

// timeValue is embedded by UTCTime and GeneralizedTime.
type timeValue struct {
	element
	value time.Time
	zone  *time.Location
}

// Value returns the instant, in UTC.
func (t *timeValue) Value() time.Time {
	return t.value
}

// Zone returns the zone the time was written in.  It's time.UTC unless the
// text carried an explicit offset.
func (t *timeValue) Zone() *time.Location {
	return t.zone
}

// Local returns the instant in Zone().
func (t *timeValue) Local() time.Time {
	return t.value.In(t.zone)
}

func (t *timeValue) Interface() interface{} {
	return t.value
}

func newTimeValue(kind asntime.Kind, tag tlv.UniversalTag, t time.Time, zone *time.Location, precise bool) (timeValue, error) {
	text, err := asntime.Encode(kind, t, zone, precise)
	if err != nil {
		return timeValue{}, invalidData(tag, "%v", err)
	}
	// the stored value is the instant the text denotes, so sub-millisecond
	// precision, and milliseconds when precise is false, are dropped
	v, _, err := asntime.Decode(kind, text)
	if err != nil {
		return timeValue{}, invalidTime(tag, err)
	}
	if zone == nil {
		zone = time.UTC
	}
	return timeValue{element: newElement(tag, text), value: v, zone: zone}, nil
}

func decodeTimeValue(kind asntime.Kind, tag tlv.UniversalTag, n tlv.Node) (timeValue, error) {
	if err := checkTag(n, tag); err != nil {
		return timeValue{}, err
	}
	v, zone, err := asntime.Decode(kind, n.Payload())
	if err != nil {
		return timeValue{}, invalidTime(tag, err)
	}
	return timeValue{element: element{node: n}, value: v, zone: zone}, nil
}

// UTCTime is an ASN.1 UTCTime.  Its two digit year covers 1950 through 2049.
type UTCTime struct {
	timeValue
}

// NewUTCTime encodes t.  If zone is nil, t is written in UTC with a "Z"
// suffix.  Otherwise it's written as the wall clock at zone's standard
// offset, followed by the offset.  If precise is true, milliseconds are
// included.
func NewUTCTime(t time.Time, zone *time.Location, precise bool) (*UTCTime, error) {
	v, err := newTimeValue(asntime.UTCTime, tlv.TagUTCTime, t, zone, precise)
	if err != nil {
		return nil, err
	}
	return &UTCTime{v}, nil
}

func DecodeUTCTime(n tlv.Node) (*UTCTime, error) {
	v, err := decodeTimeValue(asntime.UTCTime, tlv.TagUTCTime, n)
	if err != nil {
		return nil, err
	}
	return &UTCTime{v}, nil
}

func ParseUTCTime(b []byte) (*UTCTime, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeUTCTime(n)
}

// GeneralizedTime is an ASN.1 GeneralizedTime, with a four digit year.
type GeneralizedTime struct {
	timeValue
}

// NewGeneralizedTime encodes t, with the same options as NewUTCTime.
func NewGeneralizedTime(t time.Time, zone *time.Location, precise bool) (*GeneralizedTime, error) {
	v, err := newTimeValue(asntime.GeneralizedTime, tlv.TagGeneralizedTime, t, zone, precise)
	if err != nil {
		return nil, err
	}
	return &GeneralizedTime{v}, nil
}

func DecodeGeneralizedTime(n tlv.Node) (*GeneralizedTime, error) {
	v, err := decodeTimeValue(asntime.GeneralizedTime, tlv.TagGeneralizedTime, n)
	if err != nil {
		return nil, err
	}
	return &GeneralizedTime{v}, nil
}

func ParseGeneralizedTime(b []byte) (*GeneralizedTime, error) {
	n, err := parseElement(b)
	if err != nil {
		return nil, err
	}
	return DecodeGeneralizedTime(n)
}
