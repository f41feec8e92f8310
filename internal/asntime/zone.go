package asntime

import (
	"sync"
	"time"
	// the zone table must not depend on the host's zoneinfo files
	_ "time/tzdata"

	"github.com/gemalto/flume"
)

var log = flume.New("asn1parser/asntime")

// Greenwich is the zone assigned to decoded times whose explicit offset
// matches no zone in the table.
var Greenwich = time.FixedZone("Greenwich Standard Time", 0)

// zoneNames is searched in order; the first zone whose standard offset
// matches wins.
var zoneNames = []string{
	"Etc/GMT+12",
	"Pacific/Pago_Pago",
	"Pacific/Honolulu",
	"Pacific/Marquesas",
	"America/Anchorage",
	"America/Los_Angeles",
	"America/Denver",
	"America/Chicago",
	"America/New_York",
	"America/Halifax",
	"America/St_Johns",
	"America/Sao_Paulo",
	"Atlantic/South_Georgia",
	"Atlantic/Azores",
	"Europe/London",
	"Europe/Berlin",
	"Europe/Athens",
	"Europe/Moscow",
	"Asia/Tehran",
	"Asia/Dubai",
	"Asia/Kabul",
	"Asia/Karachi",
	"Asia/Kolkata",
	"Asia/Kathmandu",
	"Asia/Dhaka",
	"Asia/Yangon",
	"Asia/Bangkok",
	"Asia/Shanghai",
	"Australia/Eucla",
	"Asia/Tokyo",
	"Australia/Darwin",
	"Australia/Sydney",
	"Australia/Lord_Howe",
	"Pacific/Noumea",
	"Pacific/Auckland",
	"Pacific/Chatham",
	"Pacific/Tongatapu",
	"Pacific/Kiritimati",
}

// standard offsets are taken at a fixed instant, so lookups don't depend on
// the current date
var zoneTableReference = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

type zoneEntry struct {
	loc    *time.Location
	offset int
}

var (
	zoneTableOnce sync.Once
	zoneTable     []zoneEntry
)

func loadZoneTable() {
	for _, name := range zoneNames {
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Debug("skipping zone", "zone", name, "error", err)
			continue
		}
		zoneTable = append(zoneTable, zoneEntry{loc: loc, offset: StandardOffset(loc, zoneTableReference)})
	}
	log.Debug("loaded zone table", "zones", len(zoneTable))
}

// ResolveZone returns the first zone of the table whose standard offset is
// offset seconds east of UTC, or Greenwich if there is none.
//
// The result is informational only: several zones share an offset, and
// which one is returned is a property of the table, not of the encoded
// time.  Compare decoded instants, not zones.  An offset which falls back to
// Greenwich is re-encoded as "+0000", so the encoded bytes don't survive a
// decode and encode round trip, though the instant does.
func ResolveZone(offset int) *time.Location {
	zoneTableOnce.Do(loadZoneTable)
	for _, z := range zoneTable {
		if z.offset == offset {
			return z.loc
		}
	}
	log.Debug("no zone matches offset, using Greenwich", "offset", offset)
	return Greenwich
}

// StandardOffset returns the offset of loc in seconds east of UTC, ignoring
// daylight saving time, in the year of at.
func StandardOffset(loc *time.Location, at time.Time) int {
	t := at.In(loc)
	_, offset := t.Zone()
	if !t.IsDST() {
		return offset
	}
	for _, m := range []time.Month{time.January, time.July} {
		c := time.Date(t.Year(), m, 1, 0, 0, 0, 0, loc)
		if !c.IsDST() {
			_, offset = c.Zone()
			return offset
		}
	}
	return offset
}
