package timespec

// Fixed offsets within a date_time specification.
//
//	YYYY-MM-DDThh:mm:ss
//	0123456789012345678
//	          1
const (
	minDateTimeLen = 19
	sepPos         = 10
)

// ResolveDateTime parses an ISO-8601-like date_time specification of the form
//
//	YYYY-MM-DD{T| }hh:mm:ss[(.|,)frac][Z]
//
// The fractional field carries at most MaxFracDigits()-1 digits. A
// trailing Z interprets the calendar fields as UTC and, as a deliberate
// side effect, forces the process-wide TZ context to UTC for the rest of
// the process lifetime. Without Z the local timezone applies, with
// auto-detected daylight saving.
func (r *Resolver) ResolveDateTime(spec string) (Pair, error) {
	n := len(spec)
	maxLen := 20 + r.maxFracDigits + 1
	if n < minDateTimeLen || n >= maxLen {
		return Pair{}, NewInvalidFormatError("date_time length out of range", spec)
	}

	sep := spec[sepPos]
	if sep != 'T' && sep != ' ' {
		return Pair{}, NewInvalidFormatError("date and time must be separated by 'T' or space", spec)
	}

	ct, err := parseCalendar(spec)
	if err != nil {
		return Pair{}, err
	}

	nsec, consumed, err := r.parseFrac(spec[minDateTimeLen:])
	if err != nil {
		return Pair{}, err
	}
	rest := spec[minDateTimeLen+consumed:]

	zone := ZoneLocal
	if len(rest) > 0 && rest[0] == 'Z' {
		if envErr := r.sys.SetTimezoneUTC(); envErr != nil {
			return Pair{}, NewEnvironmentError(envErr)
		}
		zone = ZoneUTC
		rest = rest[1:]
	}

	if rest != "" {
		return Pair{}, NewInvalidFormatError("trailing characters after date_time", spec)
	}

	epoch, err := r.sys.ResolveEpoch(ct, zone)
	if err != nil {
		return Pair{}, NewTimeResolutionError(spec, err)
	}

	ts := Timespec{Sec: epoch, Nsec: nsec}
	return Pair{Access: ts, Modify: ts}, nil
}

// parseCalendar extracts the YYYY-MM-DD{sep}hh:mm:ss fields at their fixed
// offsets. The separator at offset 10 has already been validated.
func parseCalendar(spec string) (CalendarTime, error) {
	if spec[4] != '-' || spec[7] != '-' || spec[13] != ':' || spec[16] != ':' {
		return CalendarTime{}, NewInvalidFormatError("malformed date_time structure", spec)
	}

	var ct CalendarTime
	var ok [6]bool
	ct.Year, ok[0] = digitsField(spec, 0, 4)
	ct.Month, ok[1] = digitsField(spec, 5, 2)
	ct.Day, ok[2] = digitsField(spec, 8, 2)
	ct.Hour, ok[3] = digitsField(spec, 11, 2)
	ct.Minute, ok[4] = digitsField(spec, 14, 2)
	ct.Second, ok[5] = digitsField(spec, 17, 2)
	for _, fieldOK := range ok {
		if !fieldOK {
			return CalendarTime{}, NewInvalidFormatError("non-numeric calendar field", spec)
		}
	}

	if err := validateFieldRanges(ct); err != nil {
		return CalendarTime{}, NewInvalidFormatError(err.Error(), spec)
	}
	return ct, nil
}
