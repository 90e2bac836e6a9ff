package service

import (
	"time"
	"wio-tracker/internal/models"
	"wio-tracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// StatusService records the user's per-day decisions.
type StatusService struct {
	repo   repository.DailyStatusRepository
	logger *logrus.Logger
}

func NewStatusService(repo repository.DailyStatusRepository) *StatusService {
	return &StatusService{repo: repo, logger: newServiceLogger()}
}

// SetDayStatus stores the status for a date, overwriting any previous value.
// An empty status clears the date back to UNSET. An unrecognized label fails
// with ErrInvalidStatus before anything is written.
func (s *StatusService) SetDayStatus(date time.Time, status string) error {
	if status == "" {
		return s.repo.DeleteByDate(date)
	}

	if !models.IsValidStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.Upsert(date, status); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"date":   models.DateKey(date),
		"status": status,
	}).Info("Day status set")

	return nil
}

// GetDayStatus returns the stored status for a date, nil when unset.
func (s *StatusService) GetDayStatus(date time.Time) (*models.DailyStatus, error) {
	return s.repo.GetByDate(date)
}
