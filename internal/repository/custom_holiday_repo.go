package repository

import (
	"errors"
	"time"
	"wio-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNoRows is returned by deletes that matched nothing, so callers can
// distinguish "absent" from a storage failure.
var ErrNoRows = errors.New("no rows affected")

type CustomHolidayRepository interface {
	Create(holiday *models.CustomHoliday) error
	GetByDate(date time.Time) (*models.CustomHoliday, error)
	GetByYear(year int) ([]models.CustomHoliday, error)
	GetByYearMonth(year, month int) ([]models.CustomHoliday, error)
	DeleteByDate(date time.Time) error
	Exists(date time.Time) (bool, error)
}

type GormCustomHolidayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormCustomHolidayRepository(db *gorm.DB) (*GormCustomHolidayRepository, error) {
	if err := db.AutoMigrate(&models.CustomHoliday{}); err != nil {
		return nil, err
	}

	return &GormCustomHolidayRepository{db: db, logger: newRepoLogger()}, nil
}

func (r *GormCustomHolidayRepository) Create(holiday *models.CustomHoliday) error {
	holiday.Year = holiday.Date.Year()
	holiday.Month = int(holiday.Date.Month())
	holiday.Day = holiday.Date.Day()

	if err := r.db.Create(holiday).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create custom holiday")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"date":  models.DateKey(holiday.Date),
		"label": holiday.Label,
	}).Debug("Custom holiday created")

	return nil
}

func (r *GormCustomHolidayRepository) GetByDate(date time.Time) (*models.CustomHoliday, error) {
	var holiday models.CustomHoliday
	err := r.db.Where("year = ? AND month = ? AND day = ?",
		date.Year(), int(date.Month()), date.Day()).First(&holiday).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to get custom holiday by date")
		return nil, err
	}

	return &holiday, nil
}

func (r *GormCustomHolidayRepository) GetByYear(year int) ([]models.CustomHoliday, error) {
	var holidays []models.CustomHoliday
	err := r.db.Where("year = ?", year).Order("month ASC, day ASC").Find(&holidays).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to get custom holidays by year")
		return nil, err
	}
	return holidays, nil
}

func (r *GormCustomHolidayRepository) GetByYearMonth(year, month int) ([]models.CustomHoliday, error) {
	var holidays []models.CustomHoliday
	err := r.db.Where("year = ? AND month = ?", year, month).Order("day ASC").Find(&holidays).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to get custom holidays by month")
		return nil, err
	}
	return holidays, nil
}

func (r *GormCustomHolidayRepository) DeleteByDate(date time.Time) error {
	result := r.db.Where("year = ? AND month = ? AND day = ?",
		date.Year(), int(date.Month()), date.Day()).Delete(&models.CustomHoliday{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete custom holiday")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRows
	}

	r.logger.WithField("date", models.DateKey(date)).Debug("Custom holiday deleted")
	return nil
}

func (r *GormCustomHolidayRepository) Exists(date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.CustomHoliday{}).
		Where("year = ? AND month = ? AND day = ?",
			date.Year(), int(date.Month()), date.Day()).
		Count(&count).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to check custom holiday existence")
		return false, err
	}
	return count > 0, nil
}
