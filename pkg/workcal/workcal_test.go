package workcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNewKnownRegion(t *testing.T) {
	for _, region := range []string{"us", "gb", "de", "fr", "US", " us "} {
		c := New(region)
		assert.True(t, c.Available(), "region %q", region)
	}
}

func TestNewUnknownRegionDegrades(t *testing.T) {
	for _, region := range []string{"", "atlantis", "zz"} {
		c := New(region)
		assert.False(t, c.Available(), "region %q", region)

		result, name := c.Lookup(day(2025, time.January, 1))
		assert.Equal(t, ResultUnknown, result)
		assert.Empty(t, name)
		assert.Nil(t, c.HolidaysInYear(2025))
	}
}

func TestLookupFixedHolidays(t *testing.T) {
	c := New("us")

	result, name := c.Lookup(day(2025, time.July, 4))
	assert.Equal(t, ResultHoliday, result)
	assert.NotEmpty(t, name)

	result, name = c.Lookup(day(2025, time.December, 25))
	assert.Equal(t, ResultHoliday, result)
	assert.NotEmpty(t, name)

	result, _ = c.Lookup(day(2025, time.March, 11))
	assert.Equal(t, ResultWorkday, result)
}

func TestHolidaysInYearSkipsWeekends(t *testing.T) {
	c := New("us")

	entries := c.HolidaysInYear(2025)
	assert.NotEmpty(t, entries)

	dates := make(map[string]bool, len(entries))
	for _, e := range entries {
		wd := e.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
		assert.Equal(t, 2025, e.Date.Year())
		assert.NotEmpty(t, e.Name)
		dates[e.Date.Format("2006-01-02")] = true
	}

	// 2025-01-01 and 2025-12-25 are weekday holidays.
	assert.True(t, dates["2025-01-01"])
	assert.True(t, dates["2025-12-25"])
}
