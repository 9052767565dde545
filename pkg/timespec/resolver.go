package timespec

import (
	"fmt"
	"math"
	"strconv"
)

// Resolver turns time specifications into timestamp pairs. It holds the
// System capability and the fractional-digit cap, both fixed at
// construction so nothing global is consulted during parsing.
type Resolver struct {
	sys           System
	maxFracDigits int
}

// MaxFracDigits returns the number of decimal digits in the largest
// integer nanoseconds can be stored in. This bounds the fractional-second
// field of a date_time specification.
func MaxFracDigits() int {
	return len(strconv.FormatInt(math.MaxInt64, 10))
}

// NewResolver creates a Resolver backed by the given System.
func NewResolver(sys System) *Resolver {
	return &Resolver{
		sys:           sys,
		maxFracDigits: MaxFracDigits(),
	}
}

// NewOSResolver creates a Resolver backed by the real OS primitives.
func NewOSResolver() *Resolver {
	return NewResolver(OSSystem{})
}

// ResolveReference copies the access and modification timestamps of an
// existing file, verbatim.
func (r *Resolver) ResolveReference(path string) (Pair, error) {
	atime, mtime, err := r.sys.FileTimes(path)
	if err != nil {
		return Pair{}, NewReferenceFileError(path, err)
	}
	return Pair{Access: atime, Modify: mtime}, nil
}

// validateFieldRanges enforces the per-field bounds strptime applies:
// month 1-12, day 1-31, hour 0-23, minute 0-59, second 0-60 (leap second
// allowed). Calendar normalization of impossible combinations such as
// Feb 31 is left to epoch resolution.
func validateFieldRanges(ct CalendarTime) error {
	switch {
	case ct.Month < 1 || ct.Month > 12:
		return fmt.Errorf("month %02d out of range", ct.Month)
	case ct.Day < 1 || ct.Day > 31:
		return fmt.Errorf("day %02d out of range", ct.Day)
	case ct.Hour > 23:
		return fmt.Errorf("hour %02d out of range", ct.Hour)
	case ct.Minute > 59:
		return fmt.Errorf("minute %02d out of range", ct.Minute)
	case ct.Second > 60:
		return fmt.Errorf("second %02d out of range", ct.Second)
	}
	return nil
}

// digitsField parses a fixed-width run of decimal digits starting at off.
// Reports failure if any byte in the run is not a digit.
func digitsField(s string, off, width int) (int, bool) {
	v := 0
	for i := off; i < off+width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
