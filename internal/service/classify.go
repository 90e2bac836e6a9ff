package service

import (
	"time"
	"wio-tracker/internal/models"
	"wio-tracker/pkg/workcal"
)

// HolidayInfo is the resolver's answer for a single date. A query always
// gets a definite answer: missing national-holiday data shows up as
// NationalKnown=false with National=false.
type HolidayInfo struct {
	Weekend       bool
	National      bool
	Custom        bool
	NationalKnown bool
	Label         string
}

// NonWorkday reports whether the date is excluded from workday counting.
func (h HolidayInfo) NonWorkday() bool {
	return h.Weekend || h.National || h.Custom
}

// ResolveHoliday decides whether a date is a non-workday. customDates is the
// set of user-declared holidays keyed by DateKey; calendar supplies national
// holidays and may be unavailable.
func ResolveHoliday(date time.Time, customDates map[string]string, calendar *workcal.Calendar) HolidayInfo {
	info := HolidayInfo{}

	wd := date.Weekday()
	info.Weekend = wd == time.Saturday || wd == time.Sunday

	if label, ok := customDates[models.DateKey(date)]; ok {
		info.Custom = true
		info.Label = label
	}

	result, name := calendar.Lookup(date)
	info.NationalKnown = result != workcal.ResultUnknown
	if result == workcal.ResultHoliday {
		info.National = true
		if info.Label == "" {
			info.Label = name
		}
	}

	return info
}

// ClassifyDay assigns the single authoritative classification for a date.
// Precedence, first match wins:
//
//  1. custom holiday
//  2. national holiday
//  3. weekend
//  4. stored status
//  5. date after today -> FUTURE
//  6. otherwise -> UNSET
//
// A stored status on a day later marked as holiday is superseded, not
// deleted: removing the holiday restores the original decision.
func ClassifyDay(date time.Time, status string, info HolidayInfo, today time.Time) models.DayClassification {
	switch {
	case info.Custom, info.National:
		return models.ClassHoliday
	case info.Weekend:
		return models.ClassWeekend
	}

	switch status {
	case models.StatusWIO:
		return models.ClassWIO
	case models.StatusWFH:
		return models.ClassWFH
	case models.StatusLeave:
		return models.ClassLeave
	case models.StatusSick:
		return models.ClassSick
	}

	if dateAfter(date, today) {
		return models.ClassFuture
	}

	return models.ClassUnset
}

// dateAfter compares calendar days, ignoring time of day.
func dateAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
