package service

import (
	"time"
	"wio-tracker/internal/models"
	"wio-tracker/internal/repository"
	"wio-tracker/pkg/workcal"

	"github.com/sirupsen/logrus"
)

// HolidayService manages user-declared holidays and fronts the national
// holiday calendar.
type HolidayService struct {
	repo     repository.CustomHolidayRepository
	calendar *workcal.Calendar
	logger   *logrus.Logger
}

func NewHolidayService(repo repository.CustomHolidayRepository, calendar *workcal.Calendar) *HolidayService {
	return &HolidayService{
		repo:     repo,
		calendar: calendar,
		logger:   newServiceLogger(),
	}
}

func (s *HolidayService) Calendar() *workcal.Calendar {
	return s.calendar
}

// ListYear returns the user-declared holidays of a year.
func (s *HolidayService) ListYear(year int) ([]models.CustomHoliday, error) {
	return s.repo.GetByYear(year)
}

// NationalInYear returns the year's national weekday holidays, empty in
// degraded mode.
func (s *HolidayService) NationalInYear(year int) []workcal.Entry {
	return s.calendar.HolidaysInYear(year)
}

// Add declares a custom holiday. Adding a date that already has one fails
// with ErrDuplicateHoliday and leaves the first entry untouched.
func (s *HolidayService) Add(date time.Time, label string) error {
	exists, err := s.repo.Exists(date)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateHoliday
	}

	holiday := &models.CustomHoliday{Date: date, Label: label}
	if err := s.repo.Create(holiday); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"date":  models.DateKey(date),
		"label": label,
	}).Info("Custom holiday added")

	return nil
}

// Remove deletes a custom holiday, failing with ErrHolidayNotFound when the
// date has none. Any daily status stored underneath is untouched and takes
// effect again.
func (s *HolidayService) Remove(date time.Time) error {
	err := s.repo.DeleteByDate(date)
	if err == repository.ErrNoRows {
		return ErrHolidayNotFound
	}
	if err != nil {
		return err
	}

	s.logger.WithField("date", models.DateKey(date)).Info("Custom holiday removed")
	return nil
}

// CustomDatesIn returns the month's custom holidays as a DateKey -> label
// map for the resolver.
func (s *HolidayService) CustomDatesIn(year, month int) (map[string]string, error) {
	holidays, err := s.repo.GetByYearMonth(year, month)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]string, len(holidays))
	for _, h := range holidays {
		dates[models.DateKeyYMD(h.Year, h.Month, h.Day)] = h.Label
	}
	return dates, nil
}
