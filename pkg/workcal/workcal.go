// Package workcal answers whether a calendar date is a national holiday.
//
// The data source is the rule-based calendars from rickar/cal; when the
// configured region is empty or unrecognized the package degrades to an
// unavailable calendar whose lookups return Unknown, and callers fall back
// to weekend-only detection.
package workcal

import (
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"
)

// Result is the tri-state outcome of a holiday lookup.
type Result int

const (
	// ResultUnknown means no holiday data is available for the query;
	// callers must treat the date as not-a-holiday.
	ResultUnknown Result = iota
	ResultWorkday
	ResultHoliday
)

var regions = map[string][]*cal.Holiday{
	"us": us.Holidays,
	"gb": gb.Holidays,
	"de": de.Holidays,
	"fr": fr.Holidays,
}

// Entry is one national holiday occurrence within a year.
type Entry struct {
	Date time.Time
	Name string
}

type Calendar struct {
	region string
	cal    *cal.BusinessCalendar
}

// New builds a holiday calendar for the given region code. An empty or
// unrecognized region yields an unavailable calendar, never an error.
func New(region string) *Calendar {
	region = strings.ToLower(strings.TrimSpace(region))

	holidays, ok := regions[region]
	if !ok {
		return &Calendar{region: region}
	}

	c := cal.NewBusinessCalendar()
	c.AddHoliday(holidays...)

	return &Calendar{region: region, cal: c}
}

// Available reports whether national-holiday data is loaded. When false the
// surrounding system runs in weekend-only mode.
func (c *Calendar) Available() bool {
	return c.cal != nil
}

func (c *Calendar) Region() string {
	return c.region
}

// Lookup classifies a date against the national calendar. The second return
// value is the holiday name when the result is ResultHoliday.
func (c *Calendar) Lookup(date time.Time) (Result, string) {
	if c.cal == nil {
		return ResultUnknown, ""
	}

	actual, _, holiday := c.cal.IsHoliday(date)
	if !actual || holiday == nil {
		return ResultWorkday, ""
	}

	return ResultHoliday, holiday.Name
}

// HolidaysInYear lists the national holidays of a year that fall on a
// weekday. Weekend occurrences are skipped: they are already non-workdays.
func (c *Calendar) HolidaysInYear(year int) []Entry {
	if c.cal == nil {
		return nil
	}

	var entries []Entry
	day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	for day.Year() == year {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			if actual, _, holiday := c.cal.IsHoliday(day); actual && holiday != nil {
				entries = append(entries, Entry{Date: day, Name: holiday.Name})
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return entries
}
