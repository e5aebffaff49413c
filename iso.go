package isodate

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MaxFraction is the largest sub-second value a Result can hold, in
	// 100ns ticks.
	MaxFraction = 9999999

	// TicksPerSecond is the resolution of Result.Fraction.
	TicksPerSecond = MaxFraction + 1

	maxOffsetHours = 14
)

// Disposition describes how the wall clock fields of a Result relate to
// an absolute instant.
type Disposition uint8

const (
	// Local means no zone designator was present, the fields are local
	// or unspecified time.
	Local Disposition = iota
	// UTC means the input ended in 'Z'.
	UTC
	// FixedOffset means the input carried a +hh:mm or -hh:mm designator.
	FixedOffset
)

func (d Disposition) String() string {
	switch d {
	case Local:
		return "Local"
	case UTC:
		return "UTC"
	case FixedOffset:
		return "FixedOffset"
	}
	return fmt.Sprintf("Disposition(%d)", uint8(d))
}

// Kind is the coarser three way classification some callers expect:
// unspecified, utc, or local.  Note a fixed offset reports KindLocal.
type Kind uint8

const (
	// KindUnspecified is reported for Local results.
	KindUnspecified Kind = iota
	// KindUTC is reported for UTC results.
	KindUTC
	// KindLocal is reported for FixedOffset results.
	KindLocal
)

func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "Unspecified"
	case KindUTC:
		return "Utc"
	case KindLocal:
		return "Local"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kind maps the disposition onto the Unspecified/Utc/Local triple.
func (d Disposition) Kind() Kind {
	switch d {
	case UTC:
		return KindUTC
	case FixedOffset:
		return KindLocal
	}
	return KindUnspecified
}

// Offset is a fixed utc offset as written in the input.
type Offset struct {
	Negative bool
	Hours    int
	Minutes  int
}

// Seconds returns the signed offset east of UTC in seconds.
func (o Offset) Seconds() int {
	s := o.Hours*3600 + o.Minutes*60
	if o.Negative {
		return -s
	}
	return s
}

func (o Offset) String() string {
	sign := byte('+')
	if o.Negative {
		sign = '-'
	}
	return fmt.Sprintf("%c%02d:%02d", sign, o.Hours, o.Minutes)
}

// Result is a validated timestamp as recognized by Parse.
type Result struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	// Fraction of a second in 100ns ticks, 0..MaxFraction.
	Fraction int

	Disposition Disposition
	// Offset is only set for FixedOffset, UTC is always +00:00.
	Offset Offset
}

// Nanosecond returns the sub-second part in nanoseconds.
func (r Result) Nanosecond() int {
	return r.Fraction * 100
}

// Time materializes the result as a time.Time.  Local results are
// interpreted in loc (time.Local if loc is nil), UTC results are in
// time.UTC and fixed offsets get an unnamed fixed zone.
func (r Result) Time(loc *time.Location) time.Time {
	switch r.Disposition {
	case UTC:
		loc = time.UTC
	case FixedOffset:
		loc = time.FixedZone("", r.Offset.Seconds())
	default:
		if loc == nil {
			loc = time.Local
		}
	}
	return time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, r.Second, r.Nanosecond(), loc)
}

var (
	// ErrSyntax is returned (wrapped) when a required digit run or
	// delimiter is missing or malformed.
	ErrSyntax = errors.New("isodate: syntax error")
	// ErrRange is returned (wrapped) when every token scanned but a field
	// or the resulting instant is out of range.
	ErrRange = errors.New("isodate: value out of range")
)

// ParseError names the field that failed and wraps ErrSyntax or ErrRange.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error() + ": " + e.Field
}

func (e *ParseError) Unwrap() error { return e.Err }

// preallocated so a failing Parse does not allocate either
var (
	errSyntaxYear          = &ParseError{"year", ErrSyntax}
	errSyntaxMonth         = &ParseError{"month", ErrSyntax}
	errSyntaxDay           = &ParseError{"day", ErrSyntax}
	errSyntaxDesignator    = &ParseError{"zone designator without time", ErrSyntax}
	errSyntaxHour          = &ParseError{"hour", ErrSyntax}
	errSyntaxMinute        = &ParseError{"minute", ErrSyntax}
	errSyntaxSecond        = &ParseError{"second", ErrSyntax}
	errSyntaxOffsetHours   = &ParseError{"offset hours", ErrSyntax}
	errSyntaxOffsetMinutes = &ParseError{"offset minutes", ErrSyntax}

	errRangeYear   = &ParseError{"year", ErrRange}
	errRangeMonth  = &ParseError{"month", ErrRange}
	errRangeDay    = &ParseError{"day", ErrRange}
	errRangeHour   = &ParseError{"hour", ErrRange}
	errRangeMinute = &ParseError{"minute", ErrRange}
	errRangeSecond = &ParseError{"second", ErrRange}
	errRangeOffset = &ParseError{"offset", ErrRange}
	errRangeAbs    = &ParseError{"instant", ErrRange}
)
