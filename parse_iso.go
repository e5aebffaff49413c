package isodate

import "unsafe"

// Flexible ISO 8601 subset, one of
//
//	YYYY-MM-DD                    1997-07-16
//	YYYY-MM-DDThh:mm              1997-07-16T19:20
//	YYYY-MM-DDThh:mm:ss           1997-07-16T19:20:30
//	YYYY-MM-DDThh:mm:ss.s         1997-07-16T19:20:30.45
//	YYYY-MM-DDThh:mmTZD           1997-07-16T19:20+01:00
//	YYYY-MM-DDThh:mm:ssTZD        1997-07-16T19:20:30+01:00
//	YYYY-MM-DDThh:mm:ss.sTZD      1997-07-16T19:20:30.45Z
//	YYYY-MM-DDThh:mm:ss.sTZD      1997-07-16T19:20:30.45-01:00
type isoState uint8

const (
	isoYear isoState = iota
	isoMonth
	isoDay
	isoHour
	isoMinute
	isoSecond
	isoFraction
	isoOffsetHours
	isoOffsetMinutes
)

// Parse recognizes the longest well formed ISO 8601 prefix of b and returns
// the validated result plus the number of bytes consumed.  Bytes after a
// legal stop point are ignored, never an error.  On failure the Result is
// zero, n is 0 and err wraps ErrSyntax or ErrRange.
//
// Parse does not allocate and does not retain b.
func Parse(b []byte) (r Result, n int, err error) {
	var (
		year, month, day     int
		hour, minute, second int
		fraction             int
		offHours, offMinutes int
		sign                 byte
		i                    int
		state                = isoYear
	)

iterBytes:
	for {
		switch state {
		case isoYear:
			// four wide, so not the two digit helper
			if len(b) < 4 {
				return Result{}, 0, errSyntaxYear
			}
			d1, d2, d3, d4 := b[0]-'0', b[1]-'0', b[2]-'0', b[3]-'0'
			if d1 > 9 || d2 > 9 || d3 > 9 || d4 > 9 {
				return Result{}, 0, errSyntaxYear
			}
			year = int(d1)*1000 + int(d2)*100 + int(d3)*10 + int(d4)
			i = 4
			if i == len(b) || b[i] != '-' {
				return Result{}, 0, errSyntaxYear
			}
			i++
			state = isoMonth
		case isoMonth:
			v, ok := TryGetTwoDigits(b, &i)
			if !ok || i == len(b) || b[i] != '-' {
				return Result{}, 0, errSyntaxMonth
			}
			month = v
			i++
			state = isoDay
		case isoDay:
			v, ok := TryGetTwoDigits(b, &i)
			if !ok {
				return Result{}, 0, errSyntaxDay
			}
			day = v
			if i == len(b) {
				break iterBytes
			}
			switch b[i] {
			case 'T':
				i++
				state = isoHour
			case 'Z', '+', '-':
				return Result{}, 0, errSyntaxDesignator
			default:
				break iterBytes
			}
		case isoHour:
			v, ok := TryGetTwoDigits(b, &i)
			if !ok || i == len(b) || b[i] != ':' {
				return Result{}, 0, errSyntaxHour
			}
			hour = v
			i++
			state = isoMinute
		case isoMinute:
			v, ok := TryGetTwoDigits(b, &i)
			if !ok {
				return Result{}, 0, errSyntaxMinute
			}
			minute = v
			if i == len(b) {
				break iterBytes
			}
			switch c := b[i]; c {
			case ':':
				i++
				state = isoSecond
			case 'Z':
				sign = c
				i++
				break iterBytes
			case '+', '-':
				sign = c
				i++
				state = isoOffsetHours
			default:
				break iterBytes
			}
		case isoSecond:
			v, ok := TryGetTwoDigits(b, &i)
			if !ok {
				return Result{}, 0, errSyntaxSecond
			}
			second = v
			if i == len(b) {
				break iterBytes
			}
			switch c := b[i]; c {
			case '.':
				i++
				state = isoFraction
			case 'Z':
				sign = c
				i++
				break iterBytes
			case '+', '-':
				sign = c
				i++
				state = isoOffsetHours
			default:
				break iterBytes
			}
		case isoFraction:
			for i < len(b) && IsDigit(b[i]) {
				d := int(b[i] - '0')
				i++
				if fraction*10+d > MaxFraction {
					// the overflowing digit is consumed, the rest of the
					// run is left for the caller
					break
				}
				fraction = fraction*10 + d
			}
			// left pad to tick scale, ".45" becomes 4500000
			if fraction != 0 {
				for fraction*10 <= MaxFraction {
					fraction *= 10
				}
			}
			if i == len(b) {
				break iterBytes
			}
			switch c := b[i]; c {
			case 'Z':
				sign = c
				i++
				break iterBytes
			case '+', '-':
				sign = c
				i++
				state = isoOffsetHours
			default:
				break iterBytes
			}
		case isoOffsetHours:
			v, ok := TryGetTwoDigits(b, &i)
			if !ok || i == len(b) || b[i] != ':' {
				return Result{}, 0, errSyntaxOffsetHours
			}
			offHours = v
			i++
			state = isoOffsetMinutes
		case isoOffsetMinutes:
			v, ok := TryGetTwoDigits(b, &i)
			if !ok {
				return Result{}, 0, errSyntaxOffsetMinutes
			}
			offMinutes = v
			break iterBytes
		}
	}

	r = Result{
		Year:     year,
		Month:    month,
		Day:      day,
		Hour:     hour,
		Minute:   minute,
		Second:   second,
		Fraction: fraction,
	}
	switch sign {
	case 'Z':
		r.Disposition = UTC
	case '+', '-':
		r.Disposition = FixedOffset
		r.Offset = Offset{Negative: sign == '-', Hours: offHours, Minutes: offMinutes}
	}
	if err = r.validate(); err != nil {
		return Result{}, 0, err
	}
	return r, i, nil
}

// ParseString is Parse for a string, without copying it.
func ParseString(s string) (Result, int, error) {
	return Parse(unsafe.Slice(unsafe.StringData(s), len(s)))
}
