package isodate

import (
	"fmt"
	"testing"
	"time"
)

/*

go test -bench Parse

Compare the byte level state machine with the traditional approach of
looping over time.Parse layouts.

*/
func BenchmarkShotgunParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, dateStr := range testDates {
			// This is the non isodate traditional approach
			parseShotgunStyle(dateStr)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, in := range testDateBytes {
			Parse(in)
		}
	}
}

func BenchmarkParseAny(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, dateStr := range testDates {
			ParseAny(dateStr)
		}
	}
}

var (
	testDates = []string{
		"2009-08-12T22:15:09-07:00",
		"2009-08-12T22:15:09.99Z",
		"2009-08-12T22:15:09.9999999+01:00",
		"2009-08-12T22:15",
		"2014-04-26T17:24:37.3186369",
		"2014-04-26",
	}

	testDateBytes = func() [][]byte {
		out := make([][]byte, len(testDates))
		for i, s := range testDates {
			out[i] = []byte(s)
		}
		return out
	}()

	DateFormatError = fmt.Errorf("Invalid Date Format")

	timeFormats = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

func parseShotgunStyle(raw string) (time.Time, error) {

	for _, format := range timeFormats {
		t, err := time.Parse(format, raw)
		if err == nil {
			// Parsed successfully
			return t, nil
		}
	}
	return time.Time{}, DateFormatError
}
