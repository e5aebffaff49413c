package main

import (
	"flag"
	"fmt"
	"time"

	u "github.com/araddon/gou"
	"github.com/araddon/isodate"
	"github.com/scylladb/termtables"
)

var (
	timezone = ""
	logLevel = ""
)

func main() {
	flag.StringVar(&timezone, "timezone", "", "Timezone aka `America/Los_Angeles` used for inputs without a zone designator")
	flag.StringVar(&logLevel, "log", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	u.SetupLogging(logLevel)
	u.SetColorIfTerminal()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass   ./isodate "2009-08-12T22:15:09.99Z"`)
		return
	}

	loc := time.Local
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			panic(err.Error())
		}
	}

	table := termtables.CreateTable()
	table.AddHeaders("Input", "Disposition", "Consumed", "Parsed in "+loc.String(), "Parsed UTC")

	for _, datestr := range flag.Args() {
		table.AddRow(row(datestr, loc)...)
	}

	fmt.Println(table.Render())
}

// row renders one input as Input, Disposition, Consumed, Parsed, Parsed UTC.
// Consumed is always "consumed/total".
func row(datestr string, loc *time.Location) []interface{} {
	consumed := func(n int) string { return fmt.Sprintf("%d/%d", n, len(datestr)) }

	r, n, err := isodate.ParseString(datestr)
	if err != nil {
		u.Debugf("iso 8601 failed for %q: %v", datestr, err)
		// fall back to the layout list so the table still says something useful
		t, ferr := isodate.ParseIn(datestr, loc)
		if ferr != nil {
			return []interface{}{datestr, "-", consumed(0), ferr.Error(), ""}
		}
		return []interface{}{datestr, "layout", consumed(len(datestr)), fmt.Sprintf("%v", t), fmt.Sprintf("%v", t.In(time.UTC))}
	}
	disposition := r.Disposition.String()
	if r.Disposition == isodate.FixedOffset {
		disposition += " " + r.Offset.String()
	}
	t := r.Time(loc)
	return []interface{}{datestr, disposition, consumed(n), fmt.Sprintf("%v", t), fmt.Sprintf("%v", t.In(time.UTC))}
}
