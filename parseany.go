// Package isodate parses a flexible ISO 8601 subset straight from bytes,
// without allocating, and reports exactly how much of the input it used.
//
// Parse is the byte level primitive.  ParseAny and friends are a front door
// that try the ISO grammar first and fall back to a list of common Go
// layouts.
package isodate

import (
	"fmt"
	"time"

	u "github.com/araddon/gou"
)

// fallbackLayouts are tried in order when the ISO grammar does not match
// the whole input.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,

	// Unusual formats, prefer formats with timezones
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,

	// Go's own String() layout
	"2006-01-02 15:04:05.999999999 -0700 MST",

	// No timezone information
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 03:04:05 PM",
	"2006-01-02 15:04:05,999",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

type parser struct {
	loc           *time.Location
	isoOnly       bool
	allowTrailing bool
}

// ParserOption defines a function signature implemented by options
// Options defined like this accept the parser and operate on the data within
type ParserOption func(*parser) error

// PreferLocation sets the location used for inputs without zone
// information.  nil means time.Local.
func PreferLocation(loc *time.Location) ParserOption {
	return func(p *parser) error {
		p.loc = loc
		return nil
	}
}

// ISOOnly disables the fallback layouts.
func ISOOnly(only bool) ParserOption {
	return func(p *parser) error {
		p.isoOnly = only
		return nil
	}
}

// AllowTrailing accepts an ISO 8601 prefix followed by bytes that are not
// part of the grammar, "2009-08-12T22:15Z trailing" for example.
func AllowTrailing(allow bool) ParserOption {
	return func(p *parser) error {
		p.allowTrailing = allow
		return nil
	}
}

func newParser(opts ...ParserOption) (*parser, error) {
	p := &parser{}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.loc == nil {
		p.loc = time.Local
	}
	return p, nil
}

// ParseAny parses an unknown date format, trying ISO 8601 first.  Inputs
// without zone information are read in time.Local.
func ParseAny(datestr string, opts ...ParserOption) (time.Time, error) {
	p, err := newParser(opts...)
	if err != nil {
		return time.Time{}, err
	}
	return p.parse(datestr)
}

// ParseIn parses with the given location for inputs without zone
// information.
func ParseIn(datestr string, loc *time.Location, opts ...ParserOption) (time.Time, error) {
	p, err := newParser(opts...)
	if err != nil {
		return time.Time{}, err
	}
	if loc != nil {
		p.loc = loc
	}
	return p.parse(datestr)
}

// ParseLocal is ParseIn with time.Local.
func ParseLocal(datestr string, opts ...ParserOption) (time.Time, error) {
	return ParseIn(datestr, time.Local, opts...)
}

// MustParse is ParseAny but panics if it cannot parse.
func MustParse(datestr string, opts ...ParserOption) time.Time {
	t, err := ParseAny(datestr, opts...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// ParseStrict accepts only the ISO 8601 grammar and only when it covers
// the whole input.
func ParseStrict(datestr string) (time.Time, error) {
	return ParseAny(datestr, ISOOnly(true))
}

func (p *parser) parse(datestr string) (time.Time, error) {
	r, n, err := ParseString(datestr)
	if err == nil && n == len(datestr) {
		return r.Time(p.loc), nil
	}
	// an iso prefix with trailing data is only a last resort, a layout
	// covering the whole input wins
	prefix := err == nil && p.allowTrailing
	if err == nil {
		err = fmt.Errorf("unexpected trailing data %q after %d bytes", datestr[n:], n)
	}

	if !p.isoOnly {
		u.Debugf("iso 8601 rejected %q: %v", datestr, err)
		for _, layout := range fallbackLayouts {
			t, lerr := time.ParseInLocation(layout, datestr, p.loc)
			if lerr == nil {
				return t, nil
			}
		}
	}
	if prefix {
		return r.Time(p.loc), nil
	}
	if p.isoOnly {
		return time.Time{}, fmt.Errorf("Could not parse %q as ISO 8601: %w", datestr, err)
	}
	u.Warnf("no layout matched %q", datestr)
	return time.Time{}, fmt.Errorf("Could not find format for %q: %w", datestr, err)
}
