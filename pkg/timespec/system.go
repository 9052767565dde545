package timespec

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// System abstracts the OS primitives the resolvers depend on. Production
// code uses OSSystem; tests substitute a double that injects controlled
// failures.
type System interface {
	// ResolveEpoch converts a broken-down calendar time to epoch seconds
	// under the given timezone context, auto-detecting daylight saving.
	// Out-of-range calendar fields are normalized. Returns an error for
	// unrepresentable dates.
	ResolveEpoch(ct CalendarTime, zone Zone) (int64, error)

	// FileTimes returns the access and modification timestamps of the
	// file at path.
	FileTimes(path string) (atime, mtime Timespec, err error)

	// SetTimezoneUTC forces the process-wide timezone context to UTC.
	// The mutation is never reverted; it outlives the parse that
	// triggered it.
	SetTimezoneUTC() error

	// ParseFrac converts a fractional-second literal (leading decimal
	// point included) to a floating value.
	ParseFrac(s string) (float64, error)
}

// OSSystem is the production System implementation.
type OSSystem struct{}

// Calendar years accepted by ResolveEpoch. The parsers cap years at four
// digits, so anything outside this window means a bogus CalendarTime.
const (
	minEpochYear = 0
	maxEpochYear = 9999
)

// ResolveEpoch implements System using the Go time package. time.Date
// normalizes out-of-range fields (Feb 31 becomes Mar 2 or 3) the same way
// the C library's mktime does.
func (OSSystem) ResolveEpoch(ct CalendarTime, zone Zone) (int64, error) {
	if ct.Year < minEpochYear || ct.Year > maxEpochYear {
		return 0, fmt.Errorf("year %d out of range", ct.Year)
	}

	loc := time.Local
	if zone == ZoneUTC {
		loc = time.UTC
	}

	t := time.Date(ct.Year, time.Month(ct.Month), ct.Day, ct.Hour, ct.Minute, ct.Second, 0, loc)
	return t.Unix(), nil
}

// SetTimezoneUTC implements System by mutating the process environment.
func (OSSystem) SetTimezoneUTC() error {
	return os.Setenv("TZ", "UTC")
}

// ParseFrac implements System using strconv. A literal with no digits
// after the decimal point (the bare ".") fails here, matching strtod.
func (OSSystem) ParseFrac(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
