package timespec

// ApplyPolicy computes the final pair of timestamps to apply given the
// selected flags and the resolved source pair. A nil source means no time
// specification was supplied and both entries receive the "current time"
// sentinel.
//
// With neither AccessTime nor ModTime requested, both timestamps are
// applied unchanged (the default is to touch both). Requesting only one of
// them replaces the other entry with the "leave unchanged" sentinel.
//
// The same returned pair is reused unmodified across every target path of
// an invocation.
func ApplyPolicy(flags Flags, source *Pair) Pair {
	var pair Pair
	if source == nil {
		pair.Access.Nsec = NsecCurrent
		pair.Modify.Nsec = NsecCurrent
	} else {
		pair = *source
	}

	switch {
	case !flags.AccessTime && !flags.ModTime:
		// Touch both.
	case !flags.AccessTime:
		pair.Access.Nsec = NsecOmit
	case !flags.ModTime:
		pair.Modify.Nsec = NsecOmit
	}

	return pair
}
