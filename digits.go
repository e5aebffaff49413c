package isodate

// IsDigit reports whether c is an ASCII digit '0'..'9'.
func IsDigit(c byte) bool {
	return c-'0' <= 9
}

// TryGetTwoDigits reads exactly two ASCII digits from b starting at *i and
// returns their value (0..99).  *i is advanced past the digits only when
// both bytes are present and are digits.
func TryGetTwoDigits(b []byte, i *int) (int, bool) {
	idx := *i
	if idx < 0 || len(b)-idx < 2 {
		return 0, false
	}
	d1 := b[idx] - '0'
	d2 := b[idx+1] - '0'
	if d1 > 9 || d2 > 9 {
		return 0, false
	}
	*i = idx + 2
	return int(d1)*10 + int(d2), true
}
