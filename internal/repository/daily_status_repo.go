package repository

import (
	"errors"
	"time"
	"wio-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DailyStatusRepository interface {
	Upsert(date time.Time, status string) error
	GetByDate(date time.Time) (*models.DailyStatus, error)
	GetByYearMonth(year, month int) ([]models.DailyStatus, error)
	DeleteByDate(date time.Time) error
}

type GormDailyStatusRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormDailyStatusRepository(db *gorm.DB) (*GormDailyStatusRepository, error) {
	if err := db.AutoMigrate(&models.DailyStatus{}); err != nil {
		return nil, err
	}

	return &GormDailyStatusRepository{db: db, logger: newRepoLogger()}, nil
}

// Upsert writes the status for a date, replacing any previous value.
// The write is a single statement, so a concurrent update for the same
// date resolves to last-write-wins.
func (r *GormDailyStatusRepository) Upsert(date time.Time, status string) error {
	record := models.DailyStatus{
		Date:   date,
		Year:   date.Year(),
		Month:  int(date.Month()),
		Day:    date.Day(),
		Status: status,
	}

	if !record.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"date":   models.DateKey(date),
			"status": status,
		}).Warn("Invalid daily status data")
		return errors.New("invalid daily status data")
	}

	existing, err := r.GetByDate(date)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.Status = status
		if err := r.db.Save(existing).Error; err != nil {
			r.logger.WithError(err).Error("Failed to update daily status")
			return err
		}
		return nil
	}

	if err := r.db.Create(&record).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create daily status")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"date":   models.DateKey(date),
		"status": status,
	}).Debug("Daily status saved")

	return nil
}

func (r *GormDailyStatusRepository) GetByDate(date time.Time) (*models.DailyStatus, error) {
	var record models.DailyStatus
	err := r.db.Where("year = ? AND month = ? AND day = ?",
		date.Year(), int(date.Month()), date.Day()).First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to get daily status by date")
		return nil, err
	}

	return &record, nil
}

func (r *GormDailyStatusRepository) GetByYearMonth(year, month int) ([]models.DailyStatus, error) {
	var records []models.DailyStatus
	err := r.db.Where("year = ? AND month = ?", year, month).Order("day ASC").Find(&records).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to get daily statuses by month")
		return nil, err
	}
	return records, nil
}

// DeleteByDate clears a date back to UNSET. Deleting an absent row is not
// an error: the date is already unset.
func (r *GormDailyStatusRepository) DeleteByDate(date time.Time) error {
	result := r.db.Where("year = ? AND month = ? AND day = ?",
		date.Year(), int(date.Month()), date.Day()).Delete(&models.DailyStatus{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete daily status")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"date":          models.DateKey(date),
		"rows_affected": result.RowsAffected,
	}).Debug("Daily status cleared")

	return nil
}
