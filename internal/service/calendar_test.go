package service

import (
	"testing"
	"time"
	"wio-tracker/internal/models"
	"wio-tracker/internal/repository"
	"wio-tracker/pkg/workcal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	calendar *CalendarService
	status   *StatusService
	holidays *HolidayService
	settings *SettingsService
}

// newTestEnv wires the engine over an in-memory database with national
// holiday data disabled, so tests control every non-workday explicitly.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Named per test: shared-cache keeps the database alive across pooled
	// connections without leaking state between tests.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statusRepo, err := repository.NewGormDailyStatusRepository(db)
	require.NoError(t, err)
	holidayRepo, err := repository.NewGormCustomHolidayRepository(db)
	require.NoError(t, err)
	settingsRepo, err := repository.NewGormSettingsRepository(db)
	require.NoError(t, err)

	holidayService := NewHolidayService(holidayRepo, workcal.New(""))
	settingsService := NewSettingsService(settingsRepo)

	return &testEnv{
		calendar: NewCalendarService(statusRepo, holidayService, settingsService),
		status:   NewStatusService(statusRepo),
		holidays: holidayService,
		settings: settingsService,
	}
}

func (e *testEnv) dayClass(t *testing.T, view *models.MonthView, day int) models.DayClassification {
	t.Helper()
	require.True(t, day >= 1 && day <= len(view.Days))
	return view.Days[day-1].Classification
}

func TestGetMonthViewGoldenScenario(t *testing.T) {
	env := newTestEnv(t)
	today := date(2025, time.September, 20)

	require.NoError(t, env.holidays.Add(date(2025, time.September, 1), "moving day"))
	require.NoError(t, env.holidays.Add(date(2025, time.September, 10), "team offsite"))

	for _, d := range []int{2, 3, 4, 5, 8, 9, 11, 12, 15, 16} {
		require.NoError(t, env.status.SetDayStatus(date(2025, time.September, d), models.StatusWIO))
	}
	require.NoError(t, env.status.SetDayStatus(date(2025, time.September, 17), models.StatusWFH))
	require.NoError(t, env.status.SetDayStatus(date(2025, time.September, 18), models.StatusLeave))
	require.NoError(t, env.status.SetDayStatus(date(2025, time.September, 19), models.StatusSick))

	view, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)

	assert.Len(t, view.Days, 30)
	assert.Equal(t, models.ClassHoliday, env.dayClass(t, view, 1))
	assert.Equal(t, models.ClassHoliday, env.dayClass(t, view, 10))
	assert.Equal(t, models.ClassWeekend, env.dayClass(t, view, 6))
	assert.Equal(t, models.ClassWIO, env.dayClass(t, view, 2))
	assert.Equal(t, models.ClassWFH, env.dayClass(t, view, 17))
	assert.Equal(t, models.ClassFuture, env.dayClass(t, view, 25))
	assert.Equal(t, 0, view.Days[0].Weekday) // Sept 1 2025 is a Monday

	assert.Equal(t, 10, view.Stats.WIODays)
	assert.Equal(t, 13, view.Stats.TotalWorkdays)
	assert.Equal(t, 76.9, view.Stats.Percentage)
	assert.False(t, view.HolidayDataAvailable)

	// Default 40% target is already met; 7 workdays remain.
	assert.Equal(t, 40.0, view.Projection.TargetPercentage)
	assert.Equal(t, 0, view.Projection.DaysNeeded)
	assert.Equal(t, 7, view.Projection.RemainingWorkdays)
	assert.True(t, view.Projection.Achievable)
}

func TestGetMonthViewUnreachableTarget(t *testing.T) {
	env := newTestEnv(t)
	today := date(2025, time.September, 20)

	require.NoError(t, env.settings.SetTargetPercentage(90))
	require.NoError(t, env.status.SetDayStatus(date(2025, time.September, 2), models.StatusWIO))

	view, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)

	// 15 elapsed workdays + 7 remaining = 22 projected; 90% needs 20 WIO
	// days, 19 more than recorded, but only 7 days are left.
	assert.Equal(t, 15, view.Stats.TotalWorkdays)
	assert.Equal(t, 19, view.Projection.DaysNeeded)
	assert.Equal(t, 7, view.Projection.RemainingWorkdays)
	assert.False(t, view.Projection.Achievable)
}

func TestGetMonthViewHolidayDominatesStoredStatus(t *testing.T) {
	env := newTestEnv(t)
	today := date(2025, time.September, 20)
	target := date(2025, time.September, 10)

	require.NoError(t, env.status.SetDayStatus(target, models.StatusWIO))

	before, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)
	assert.Equal(t, models.ClassWIO, env.dayClass(t, before, 10))
	wioBefore := before.Stats.WIODays

	require.NoError(t, env.holidays.Add(target, "bridge day"))

	during, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)
	assert.Equal(t, models.ClassHoliday, env.dayClass(t, during, 10))
	assert.Equal(t, wioBefore-1, during.Stats.WIODays)
	assert.Equal(t, before.Stats.TotalWorkdays-1, during.Stats.TotalWorkdays)

	// Removing the holiday restores the superseded decision.
	require.NoError(t, env.holidays.Remove(target))

	after, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)
	assert.Equal(t, models.ClassWIO, env.dayClass(t, after, 10))
	assert.Equal(t, before.Stats, after.Stats)
}

func TestGetMonthViewHolidayRoundTripOnWeekend(t *testing.T) {
	env := newTestEnv(t)
	today := date(2025, time.September, 20)
	saturday := date(2025, time.September, 6)

	require.NoError(t, env.holidays.Add(saturday, "on a weekend anyway"))
	view, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)
	assert.Equal(t, models.ClassHoliday, env.dayClass(t, view, 6))

	require.NoError(t, env.holidays.Remove(saturday))
	view, err = env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)
	assert.Equal(t, models.ClassWeekend, env.dayClass(t, view, 6))
}

func TestSetDayStatusIdempotent(t *testing.T) {
	env := newTestEnv(t)
	today := date(2025, time.September, 20)
	target := date(2025, time.September, 2)

	require.NoError(t, env.status.SetDayStatus(target, models.StatusWIO))
	once, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)

	require.NoError(t, env.status.SetDayStatus(target, models.StatusWIO))
	twice, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)

	assert.Equal(t, once.Stats, twice.Stats)
	assert.Equal(t, once.Days, twice.Days)
}

func TestSetDayStatusInvalidLeavesStoreUntouched(t *testing.T) {
	env := newTestEnv(t)
	target := date(2025, time.September, 2)

	err := env.status.SetDayStatus(target, "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	stored, err := env.status.GetDayStatus(target)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSetDayStatusClear(t *testing.T) {
	env := newTestEnv(t)
	today := date(2025, time.September, 20)
	target := date(2025, time.September, 2)

	require.NoError(t, env.status.SetDayStatus(target, models.StatusWFH))
	require.NoError(t, env.status.SetDayStatus(target, ""))

	view, err := env.calendar.GetMonthView(2025, 9, today)
	require.NoError(t, err)
	assert.Equal(t, models.ClassUnset, env.dayClass(t, view, 2))

	// Clearing an already-clear date is fine.
	require.NoError(t, env.status.SetDayStatus(target, ""))
}

func TestGetMonthViewFutureMonth(t *testing.T) {
	env := newTestEnv(t)
	today := date(2025, time.September, 20)

	view, err := env.calendar.GetMonthView(2025, 10, today)
	require.NoError(t, err)

	assert.Equal(t, 0, view.Stats.TotalWorkdays)
	assert.Equal(t, 0.0, view.Stats.Percentage)
	for _, d := range view.Days {
		assert.NotEqual(t, models.ClassUnset, d.Classification)
	}
}

func TestGetMonthViewInvalidMonth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.calendar.GetMonthView(2025, 13, time.Now())
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = env.calendar.GetMonthView(2025, 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAddHolidayDuplicate(t *testing.T) {
	env := newTestEnv(t)
	target := date(2025, time.September, 10)

	require.NoError(t, env.holidays.Add(target, "first"))

	err := env.holidays.Add(target, "second")
	assert.ErrorIs(t, err, ErrDuplicateHoliday)

	// The first entry is preserved unchanged.
	list, err := env.holidays.ListYear(2025)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Label)
}

func TestRemoveHolidayNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.holidays.Remove(date(2025, time.September, 10))
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}
