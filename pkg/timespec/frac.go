package timespec

// nsecPerSec converts a fractional second to nanoseconds.
const nsecPerSec = 1e9

// parseFrac consumes an optional fractional-seconds field at the start of
// s. If s does not begin with '.' or ',' nothing is consumed and zero
// nanoseconds are reported; that is not an error.
//
// Otherwise the separator plus up to MaxFracDigits()-1 following digits are
// consumed, the literal ".<digits>" is converted through the System
// primitive, and the result is truncated toward zero to nanoseconds.
// Digits beyond the cap are not consumed; the caller sees them as trailing
// input. A separator followed by zero digits converts the bare "." and
// therefore fails with a NumericConversion error, the same way historical
// strtod-based touch implementations behave.
//
// Returns nanoseconds, the number of bytes consumed, and an error.
func (r *Resolver) parseFrac(s string) (int64, int, error) {
	if len(s) == 0 || (s[0] != '.' && s[0] != ',') {
		return 0, 0, nil
	}

	digits := 0
	for digits < r.maxFracDigits-1 && 1+digits < len(s) && isDigit(s[1+digits]) {
		digits++
	}

	lit := "." + s[1:1+digits]
	frac, err := r.sys.ParseFrac(lit)
	if err != nil {
		return 0, 0, NewNumericConversionError(lit, err)
	}

	return int64(frac * nsecPerSec), 1 + digits, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
