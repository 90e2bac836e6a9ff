package models

import (
	"fmt"
	"time"
)

// DayClassification is the single resolved category assigned to a calendar
// date for display and statistics. It is derived, never persisted.
type DayClassification string

const (
	ClassWIO     DayClassification = "WIO"
	ClassWFH     DayClassification = "WFH"
	ClassLeave   DayClassification = "LEAVE"
	ClassSick    DayClassification = "SICK"
	ClassHoliday DayClassification = "HOLIDAY"
	ClassWeekend DayClassification = "WEEKEND"
	ClassFuture  DayClassification = "FUTURE"
	ClassUnset   DayClassification = "UNSET"
)

// IsWorkday reports whether the classification counts toward the month's
// workday total: any day that requires (or required) a status decision.
func (c DayClassification) IsWorkday() bool {
	switch c {
	case ClassWIO, ClassWFH, ClassLeave, ClassSick, ClassUnset:
		return true
	}
	return false
}

// DayView is one calendar cell of the month view.
type DayView struct {
	Date           string            `json:"date"`
	Day            int               `json:"day"`
	Weekday        int               `json:"weekday"` // Monday=0 .. Sunday=6
	Classification DayClassification `json:"classification"`
	HolidayLabel   string            `json:"holiday_label,omitempty"`
}

// MonthlyStatistics are the aggregate counters for one month, restricted to
// the elapsed portion (days at or before the reference date).
type MonthlyStatistics struct {
	WIODays       int     `json:"wio_days"`
	WFHDays       int     `json:"wfh_days"`
	LeaveDays     int     `json:"leave_days"`
	SickDays      int     `json:"sick_days"`
	TotalWorkdays int     `json:"total_workdays"`
	Percentage    float64 `json:"percentage"` // rounded to one decimal for display

	// RawPercentage is the unrounded value used for target comparisons.
	RawPercentage float64 `json:"-"`
}

// TargetProjection says what it would take to still hit the target this month.
type TargetProjection struct {
	TargetPercentage  float64 `json:"target_percentage"`
	DaysNeeded        int     `json:"days_needed"`
	RemainingWorkdays int     `json:"remaining_workdays"`
	Achievable        bool    `json:"achievable"`
}

// MonthView is the full response for one queried month.
type MonthView struct {
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Days       []DayView         `json:"calendar"`
	Stats      MonthlyStatistics `json:"stats"`
	Projection TargetProjection  `json:"projection"`

	// HolidayDataAvailable is false when national-holiday detection is
	// degraded to weekend-only mode.
	HolidayDataAvailable bool `json:"holiday_data_available"`
}

// DateKey formats a date the way it is exchanged over the API and stored
// in date columns.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateKeyYMD builds the same key from the persisted year/month/day columns,
// sidestepping timezone drift in round-tripped timestamps.
func DateKeyYMD(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
