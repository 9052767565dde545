package timespec

import "strings"

// Numeric time specification bounds.
//
//	MMDDhhmm        -> 8
//	CCYYMMDDhhmm.SS -> 15
const (
	minNumericLen = 8
	maxNumericLen = 15
)

// ResolveNumeric parses a compact numeric time specification of the form
//
//	[[CC]YY]MMDDhhmm[.SS]
//
// and resolves it in the local timezone with auto-detected daylight
// saving. Both timestamps of the returned pair share the resolved epoch
// seconds; nanoseconds are zero.
//
// A two-digit year follows the POSIX century-rollover rule: 69-99 map to
// 1900+YY, 00-68 map to 2000+YY. With no year field at all the calendar
// year stays at 1900, matching the behavior of touch builds that leave a
// zeroed struct tm for the missing field.
func (r *Resolver) ResolveNumeric(spec string) (Pair, error) {
	n := len(spec)
	if n < minNumericLen || n > maxNumericLen {
		return Pair{}, NewInvalidFormatError("time string length out of range", spec)
	}

	// A seconds suffix ".SS" occupies the last three characters and does
	// not count toward the layout length.
	base := n
	hasSeconds := strings.ContainsRune(spec, '.')
	if hasSeconds {
		base -= 3
	}

	var ct CalendarTime
	off := 0

	switch base {
	case 12:
		cc, okC := digitsField(spec, 0, 2)
		yy, okY := digitsField(spec, 2, 2)
		if !okC || !okY {
			return Pair{}, NewInvalidFormatError("invalid century or year field", spec)
		}
		ct.Year = cc*100 + yy
		off = 4
	case 10:
		yy, ok := digitsField(spec, 0, 2)
		if !ok {
			return Pair{}, NewInvalidFormatError("invalid year field", spec)
		}
		ct.Year = rolloverYear(yy)
		off = 2
	case 8:
		ct.Year = 1900
	default:
		return Pair{}, NewInvalidFormatError("no layout matches time string length", spec)
	}

	var ok [4]bool
	ct.Month, ok[0] = digitsField(spec, off, 2)
	ct.Day, ok[1] = digitsField(spec, off+2, 2)
	ct.Hour, ok[2] = digitsField(spec, off+4, 2)
	ct.Minute, ok[3] = digitsField(spec, off+6, 2)
	if !ok[0] || !ok[1] || !ok[2] || !ok[3] {
		return Pair{}, NewInvalidFormatError("invalid calendar field", spec)
	}

	if hasSeconds {
		if spec[base] != '.' {
			return Pair{}, NewInvalidFormatError("misplaced seconds separator", spec)
		}
		sec, okSec := digitsField(spec, base+1, 2)
		if !okSec {
			return Pair{}, NewInvalidFormatError("invalid seconds field", spec)
		}
		ct.Second = sec
	}

	if err := validateFieldRanges(ct); err != nil {
		return Pair{}, NewInvalidFormatError(err.Error(), spec)
	}

	epoch, err := r.sys.ResolveEpoch(ct, ZoneLocal)
	if err != nil {
		return Pair{}, NewTimeResolutionError(spec, err)
	}

	ts := Timespec{Sec: epoch}
	return Pair{Access: ts, Modify: ts}, nil
}

// rolloverYear applies the POSIX century-rollover rule to a two-digit year.
func rolloverYear(yy int) int {
	if yy >= 69 {
		return 1900 + yy
	}
	return 2000 + yy
}
