// Package asntime converts between time.Time values and the textual content
// octets of the ASN.1 UTCTime and GeneralizedTime types.
//
// Both types share one grammar: a fixed width date and time, an optional
// millisecond fraction, and an optional zone suffix which is either "Z" or an
// explicit "+HHMM" / "-HHMM" offset.  UTCTime carries a two digit year,
// resolved to the window 1950-2049.
//
// An explicit offset gives the zone of the wall clock, so the UTC instant is
// the wall clock minus the offset: "120000+0100" is 11:00 UTC.
package asntime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ansel1/merry"
)

var ErrInvalidFormat = errors.New("invalid time format")
var ErrOutOfRange = errors.New("time out of range")

// Kind selects between the two time encodings.
type Kind int

const (
	UTCTime Kind = iota
	GeneralizedTime
)

const (
	utcLayout = "060102150405"
	genLayout = "20060102150405"

	// UTCTime years below this are in the 21st century
	centuryPivot = 1950
)

func (k Kind) String() string {
	if k == UTCTime {
		return "UTCTime"
	}
	return "GeneralizedTime"
}

func (k Kind) layout() string {
	if k == UTCTime {
		return utcLayout
	}
	return genLayout
}

// width is the number of digits in the date and time part.
func (k Kind) width() int {
	return len(k.layout())
}

// Encode formats t.  If zone is nil, t is converted to UTC and a "Z" suffix
// is written.  Otherwise t is written as the wall clock of zone's standard
// offset, rounded to whole minutes, followed by that offset as "+HHMM" or
// "-HHMM".  If precise is true,
// milliseconds are written as a three digit fraction.
//
// ErrOutOfRange is returned for years the encoding can't represent.
func Encode(kind Kind, t time.Time, zone *time.Location, precise bool) ([]byte, error) {
	var offset int
	if zone == nil {
		t = t.UTC()
	} else {
		// the suffix has minute resolution, and the wall clock must match it
		offset = roundToMinute(StandardOffset(zone, t))
		t = t.In(time.FixedZone("", offset))
	}

	if err := checkYear(kind, t.Year()); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(t.Format(kind.layout()))
	if precise {
		fmt.Fprintf(&sb, ".%03d", t.Nanosecond()/int(time.Millisecond))
	}

	if zone == nil {
		sb.WriteByte('Z')
	} else {
		sign := byte('+')
		if offset < 0 {
			sign = '-'
			offset = -offset
		}
		sb.WriteByte(sign)
		fmt.Fprintf(&sb, "%02d%02d", offset/3600, offset%3600/60)
	}

	return []byte(sb.String()), nil
}

// roundToMinute rounds an offset in seconds to the nearest whole minute.
// Zones such as local mean time have offsets with a seconds part.
func roundToMinute(offset int) int {
	m, rem := offset/60, offset%60
	switch {
	case rem >= 30:
		m++
	case rem <= -30:
		m--
	}
	return m * 60
}

func checkYear(kind Kind, year int) error {
	switch {
	case kind == UTCTime && (year < centuryPivot || year >= centuryPivot+100):
		return merry.Here(ErrOutOfRange).Appendf("UTCTime can't represent year %d", year)
	case kind == GeneralizedTime && (year < 0 || year > 9999):
		return merry.Here(ErrOutOfRange).Appendf("GeneralizedTime can't represent year %d", year)
	}
	return nil
}

// Decode parses the content octets of a UTCTime or GeneralizedTime.
//
// The returned time is the UTC instant the text denotes.  The returned zone
// is time.UTC for "Z" suffixed and zone-less text.  For an explicit offset,
// it is the first zone of the system zone table with the same standard
// offset, or Greenwich if none matches; see ResolveZone.
//
// A "Z" suffixed fraction must have exactly three digits.  A fraction in
// text with an offset, or without a zone suffix, may have one to three.
func Decode(kind Kind, text []byte) (time.Time, *time.Location, error) {
	s := string(text)

	if i := strings.IndexAny(s, "zZ"); i >= 0 {
		t, err := decodeZulu(kind, s, i)
		return t, time.UTC, err
	}

	zone := time.UTC
	zoneStart := len(s)
	var offset int
	hasOffset := false
	if i := strings.IndexAny(s, "+-"); i >= 0 {
		var err error
		offset, err = parseOffset(s[i:])
		if err != nil {
			return time.Time{}, nil, err
		}
		zoneStart = i
		hasOffset = true
	}

	main := s[:zoneStart]
	var ms int
	if dot := strings.IndexByte(main, '.'); dot >= 0 {
		var err error
		ms, err = parseFraction(main[dot+1:])
		if err != nil {
			return time.Time{}, nil, err
		}
		main = main[:dot]
	}

	t, err := parseCore(kind, main)
	if err != nil {
		return time.Time{}, nil, err
	}

	if hasOffset {
		// the text is the wall clock at the offset
		t = t.Add(-time.Duration(offset) * time.Second)
		zone = ResolveZone(offset)
	}

	return t.Add(time.Duration(ms) * time.Millisecond), zone, nil
}

// decodeZulu handles text with a "Z" suffix at index z.  The position of the
// suffix tells whether a fraction is present.
func decodeZulu(kind Kind, s string, z int) (time.Time, error) {
	if z != len(s)-1 {
		return time.Time{}, merry.Here(ErrInvalidFormat).Appendf("%s: characters after zone suffix: %q", kind, s)
	}

	w := kind.width()
	var ms int
	switch z {
	case w:
	case w + 4:
		if s[w] != '.' {
			return time.Time{}, merry.Here(ErrInvalidFormat).Appendf("%s: expected fraction in %q", kind, s)
		}
		var err error
		ms, err = parseFraction(s[w+1 : z])
		if err != nil {
			return time.Time{}, err
		}
	default:
		return time.Time{}, merry.Here(ErrInvalidFormat).Appendf("%s: time zone suffix is not valid: %q", kind, s)
	}

	t, err := parseCore(kind, s[:w])
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(ms) * time.Millisecond), nil
}

// parseCore parses the fixed width date and time digits as a UTC wall clock.
func parseCore(kind Kind, s string) (time.Time, error) {
	if len(s) != kind.width() || !digits(s) {
		return time.Time{}, merry.Here(ErrInvalidFormat).Appendf("%s: expected %d digits, got %q", kind, kind.width(), s)
	}

	if kind == UTCTime {
		// widen to a four digit year inside the 1950-2049 window, so the
		// standard library's own two digit year pivot never applies
		yy, _ := strconv.Atoi(s[:2])
		year := 1900 + yy
		if year < centuryPivot {
			year += 100
		}
		s = strconv.Itoa(year) + s[2:]
	}

	t, err := time.Parse(genLayout, s)
	if err != nil {
		return time.Time{}, merry.Here(ErrInvalidFormat).WithCause(err).Appendf("%s: %q", kind, s)
	}
	return t, nil
}

// parseOffset parses "+HH", "+HHMM", "-HH" or "-HHMM" into signed seconds.
func parseOffset(s string) (int, error) {
	v := s[1:]
	if (len(v) != 2 && len(v) != 4) || !digits(v) {
		return 0, merry.Here(ErrInvalidFormat).Appendf("invalid zone offset %q", s)
	}
	hours, _ := strconv.Atoi(v[:2])
	var minutes int
	if len(v) == 4 {
		minutes, _ = strconv.Atoi(v[2:])
	}
	if hours > 23 || minutes > 59 {
		return 0, merry.Here(ErrInvalidFormat).Appendf("zone offset out of range %q", s)
	}
	offset := hours*3600 + minutes*60
	if s[0] == '-' {
		offset = -offset
	}
	return offset, nil
}

// parseFraction converts up to three fraction digits into milliseconds.
func parseFraction(s string) (int, error) {
	if len(s) == 0 || len(s) > 3 || !digits(s) {
		return 0, merry.Here(ErrInvalidFormat).Appendf("invalid millisecond fraction %q", s)
	}
	ms, _ := strconv.Atoi(s)
	for i := len(s); i < 3; i++ {
		ms *= 10
	}
	return ms, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
