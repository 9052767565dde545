// Package timeutil provides time formatting utilities for CLI output.
package timeutil

import (
	"fmt"

	"github.com/marmos91/ftouch/pkg/timespec"
)

// LocalTimeFormat is the format used for displaying local times in CLI output.
// Uses Go's reference time: Mon Jan 2 15:04:05 2006.
const LocalTimeFormat = "Mon Jan 2 15:04:05.000000000 2006"

// FormatTimespec renders a timestamp as a local time string. The sentinel
// values render as their symbolic names.
func FormatTimespec(ts timespec.Timespec) string {
	switch {
	case ts.IsCurrent():
		return "<current time>"
	case ts.IsOmitted():
		return "<unchanged>"
	default:
		return ts.Time().Local().Format(LocalTimeFormat)
	}
}

// FormatEpoch renders a timestamp as "seconds.nanoseconds" for
// machine-oriented output.
func FormatEpoch(ts timespec.Timespec) string {
	return fmt.Sprintf("%d.%09d", ts.Sec, ts.Nsec)
}
