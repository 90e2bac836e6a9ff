package service

import (
	"strconv"
	"wio-tracker/internal/models"
	"wio-tracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// SettingsService owns the single process-wide configuration record.
type SettingsService struct {
	repo   repository.SettingsRepository
	logger *logrus.Logger
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo, logger: newServiceLogger()}
}

// TargetPercentage returns the monthly WIO target, seeding the default on
// first access.
func (s *SettingsService) TargetPercentage() (float64, error) {
	value, ok, err := s.repo.Get(models.SettingWIOTarget)
	if err != nil {
		return 0, err
	}

	if !ok {
		if err := s.repo.Set(models.SettingWIOTarget, formatTarget(models.DefaultWIOTarget)); err != nil {
			return 0, err
		}
		return models.DefaultWIOTarget, nil
	}

	target, err := strconv.ParseFloat(value, 64)
	if err != nil {
		s.logger.WithField("value", value).Warn("Unparsable WIO target in settings, using default")
		return models.DefaultWIOTarget, nil
	}

	return target, nil
}

// SetTargetPercentage updates the target, failing with ErrOutOfRange
// outside [0,100]. Nothing is written on failure.
func (s *SettingsService) SetTargetPercentage(target float64) error {
	if target < 0 || target > 100 {
		return ErrOutOfRange
	}

	if err := s.repo.Set(models.SettingWIOTarget, formatTarget(target)); err != nil {
		return err
	}

	s.logger.WithField("target", target).Info("WIO target updated")
	return nil
}

func formatTarget(target float64) string {
	return strconv.FormatFloat(target, 'f', -1, 64)
}
