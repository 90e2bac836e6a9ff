package service

import (
	"math"
	"time"
	"wio-tracker/internal/models"
)

// ClassifiedDay is one date of a month after classification.
type ClassifiedDay struct {
	Date           time.Time
	Classification models.DayClassification
}

// AggregateMonth computes the month's counters over the elapsed portion:
// only days at or before the reference date feed the totals, so a planned
// status on a future date shows on the calendar without moving the
// percentage. For a past month every day has elapsed; for a future month
// the totals are all zero.
func AggregateMonth(days []ClassifiedDay, today time.Time) models.MonthlyStatistics {
	stats := models.MonthlyStatistics{}

	for _, d := range days {
		if dateAfter(d.Date, today) {
			continue
		}

		switch d.Classification {
		case models.ClassWIO:
			stats.WIODays++
		case models.ClassWFH:
			stats.WFHDays++
		case models.ClassLeave:
			stats.LeaveDays++
		case models.ClassSick:
			stats.SickDays++
		}

		if d.Classification.IsWorkday() {
			stats.TotalWorkdays++
		}
	}

	if stats.TotalWorkdays > 0 {
		stats.RawPercentage = float64(stats.WIODays) / float64(stats.TotalWorkdays) * 100
	}
	stats.Percentage = roundOneDecimal(stats.RawPercentage)

	return stats
}

// RemainingWorkdays counts the days after the reference date still available
// to be classified as WIO: everything that is not already a weekend or
// holiday, including future days carrying a planned status.
func RemainingWorkdays(days []ClassifiedDay, today time.Time) int {
	remaining := 0
	for _, d := range days {
		if !dateAfter(d.Date, today) {
			continue
		}
		if d.Classification == models.ClassWeekend || d.Classification == models.ClassHoliday {
			continue
		}
		remaining++
	}
	return remaining
}

// ProjectTarget computes how many additional office days are needed to hit
// the target once the month completes.
//
// DaysNeeded is the smallest n such that
// (wioDays+n)/projectedTotal >= target/100, i.e. the threshold is rounded
// up so the target is met or exceeded, never approximated from below. When
// the target cannot be met even if every remaining workday becomes WIO,
// Achievable is false; DaysNeeded is reported as computed, not clamped.
func ProjectTarget(stats models.MonthlyStatistics, targetPct float64, remainingWorkdays int) models.TargetProjection {
	projection := models.TargetProjection{
		TargetPercentage:  targetPct,
		RemainingWorkdays: remainingWorkdays,
		Achievable:        true,
	}

	projectedTotal := stats.TotalWorkdays + remainingWorkdays
	if projectedTotal == 0 {
		return projection
	}

	// Small epsilon so exact divisions (40% of 20 = 8) do not round up
	// to an extra day through float noise.
	required := int(math.Ceil(targetPct/100*float64(projectedTotal) - 1e-9))

	needed := required - stats.WIODays
	if needed < 0 {
		needed = 0
	}

	projection.DaysNeeded = needed
	projection.Achievable = needed <= remainingWorkdays

	return projection
}

// roundOneDecimal rounds half away from zero to one decimal place, for
// display only; comparisons use the raw value.
func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
