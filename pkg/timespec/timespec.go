// Package timespec resolves user-supplied time specifications into pairs of
// access/modification timestamps.
//
// Three mutually exclusive specification forms are supported:
//   - a compact numeric form [[CC]YY]MMDDhhmm[.SS] (ResolveNumeric)
//   - an ISO-8601-like form YYYY-MM-DD{T| }hh:mm:ss[(.|,)frac][Z] (ResolveDateTime)
//   - an existing file whose timestamps are copied verbatim (ResolveReference)
//
// When no form is selected the resulting pair carries the "current time"
// sentinel and the timestamp-setting primitive substitutes live time at
// apply-time. ApplyPolicy narrows a resolved pair to the access-only or
// modification-only cases.
package timespec

import "time"

// Sentinel nanosecond values. Both are outside the valid [0, 999999999]
// range; the file-mutation layer translates them to the platform's
// UTIME_NOW/UTIME_OMIT equivalents.
const (
	// NsecCurrent marks a timestamp that should be replaced with the
	// current time when applied. The Sec field is ignored.
	NsecCurrent int64 = (1 << 30) - 1

	// NsecOmit marks a timestamp that should be left unchanged when
	// applied. The Sec field is ignored.
	NsecOmit int64 = (1 << 30) - 2
)

// Timespec is a single timestamp: seconds since the Unix epoch plus
// nanoseconds, where Nsec may also hold one of the two sentinels.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// IsCurrent reports whether the timestamp carries the "current time" sentinel.
func (t Timespec) IsCurrent() bool {
	return t.Nsec == NsecCurrent
}

// IsOmitted reports whether the timestamp carries the "leave unchanged" sentinel.
func (t Timespec) IsOmitted() bool {
	return t.Nsec == NsecOmit
}

// Time converts the timestamp to a time.Time. Only meaningful when Nsec
// holds a real nanosecond count.
func (t Timespec) Time() time.Time {
	return time.Unix(t.Sec, t.Nsec)
}

// Pair holds the access and modification timestamps that every resolver
// produces together, even when only one of them will ultimately be applied.
type Pair struct {
	Access Timespec
	Modify Timespec
}

// Flags are the independent option facets that influence how a resolved
// pair is applied. The three specification sources are mutually exclusive
// and selected before any resolver runs; they are not represented here.
type Flags struct {
	// AccessTime requests that the access time be changed (-a).
	AccessTime bool

	// ModTime requests that the modification time be changed (-m).
	ModTime bool

	// NoCreate suppresses creation of missing files (-c).
	NoCreate bool
}

// CalendarTime is a broken-down calendar time prior to epoch resolution.
// Month is 1-based. Daylight-saving status is always auto-detected during
// resolution.
type CalendarTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Zone selects the timezone context for epoch resolution.
type Zone int

const (
	// ZoneLocal resolves the calendar time in the process-local timezone.
	ZoneLocal Zone = iota

	// ZoneUTC resolves the calendar time in UTC.
	ZoneUTC
)

// String returns a human-readable name for the zone.
func (z Zone) String() string {
	switch z {
	case ZoneLocal:
		return "local"
	case ZoneUTC:
		return "utc"
	default:
		return "unknown"
	}
}
