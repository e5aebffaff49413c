package isodate

import "time"

var (
	minInstant = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxInstant = time.Date(9999, time.December, 31, 23, 59, 59, MaxFraction*100, time.UTC)
)

var daysInMonth = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysIn returns the number of days in month of year, month in 1..12.
func daysIn(month, year int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

// validate checks the scanned fields against the calendar and, for zoned
// results, that the absolute instant is representable.
func (r *Result) validate() error {
	switch {
	case r.Year < 1 || r.Year > 9999:
		return errRangeYear
	case r.Month < 1 || r.Month > 12:
		return errRangeMonth
	case r.Day < 1 || r.Day > daysIn(r.Month, r.Year):
		return errRangeDay
	case r.Hour > 23:
		return errRangeHour
	case r.Minute > 59:
		return errRangeMinute
	case r.Second > 59:
		return errRangeSecond
	}

	var offset int
	switch r.Disposition {
	case Local:
		return nil
	case FixedOffset:
		o := r.Offset
		if o.Hours > maxOffsetHours || o.Minutes > 59 || (o.Hours == maxOffsetHours && o.Minutes != 0) {
			return errRangeOffset
		}
		offset = o.Seconds()
	}

	t := time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, r.Second, r.Nanosecond(), time.UTC)
	t = t.Add(-time.Duration(offset) * time.Second)
	if t.Before(minInstant) || t.After(maxInstant) {
		return errRangeAbs
	}
	return nil
}
