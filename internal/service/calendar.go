package service

import (
	"time"
	"wio-tracker/internal/models"
	"wio-tracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// CalendarService assembles the month view: every day of the month
// classified, plus the aggregate statistics and target projection. The view
// is recomputed on every call from the stored records, the holiday calendar
// and the reference date; nothing derived is cached or persisted.
type CalendarService struct {
	statusRepo repository.DailyStatusRepository
	holidays   *HolidayService
	settings   *SettingsService
	logger     *logrus.Logger
}

func NewCalendarService(
	statusRepo repository.DailyStatusRepository,
	holidays *HolidayService,
	settings *SettingsService,
) *CalendarService {
	return &CalendarService{
		statusRepo: statusRepo,
		holidays:   holidays,
		settings:   settings,
		logger:     newServiceLogger(),
	}
}

// GetMonthView builds the view for one month. The reference date is an
// explicit parameter so callers (and tests) control what "today" means.
func (s *CalendarService) GetMonthView(year, month int, today time.Time) (*models.MonthView, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidDate
	}

	statuses, err := s.statusRepo.GetByYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	statusByDate := make(map[string]string, len(statuses))
	for _, st := range statuses {
		statusByDate[models.DateKeyYMD(st.Year, st.Month, st.Day)] = st.Status
	}

	customDates, err := s.holidays.CustomDatesIn(year, month)
	if err != nil {
		return nil, err
	}

	target, err := s.settings.TargetPercentage()
	if err != nil {
		return nil, err
	}

	calendar := s.holidays.Calendar()
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()

	view := &models.MonthView{
		Year:                 year,
		Month:                month,
		Days:                 make([]models.DayView, 0, daysInMonth),
		HolidayDataAvailable: calendar.Available(),
	}
	classified := make([]ClassifiedDay, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

		info := ResolveHoliday(date, customDates, calendar)
		class := ClassifyDay(date, statusByDate[models.DateKey(date)], info, today)

		view.Days = append(view.Days, models.DayView{
			Date:           models.DateKey(date),
			Day:            day,
			Weekday:        (int(date.Weekday()) + 6) % 7, // Monday=0 .. Sunday=6
			Classification: class,
			HolidayLabel:   info.Label,
		})
		classified = append(classified, ClassifiedDay{Date: date, Classification: class})
	}

	view.Stats = AggregateMonth(classified, today)
	view.Projection = ProjectTarget(view.Stats, target, RemainingWorkdays(classified, today))

	s.logger.WithFields(logrus.Fields{
		"year":           year,
		"month":          month,
		"total_workdays": view.Stats.TotalWorkdays,
		"wio_days":       view.Stats.WIODays,
	}).Debug("Month view computed")

	return view, nil
}
