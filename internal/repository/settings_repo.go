package repository

import (
	"errors"
	"wio-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

type GormSettingsRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormSettingsRepository(db *gorm.DB) (*GormSettingsRepository, error) {
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, err
	}

	return &GormSettingsRepository{db: db, logger: newRepoLogger()}, nil
}

// Get returns the stored value for key and whether the key exists.
func (r *GormSettingsRepository) Get(key string) (string, bool, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to get setting")
		return "", false, err
	}

	return setting.Value, true, nil
}

func (r *GormSettingsRepository) Set(key, value string) error {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{Key: key, Value: value}
		if err := r.db.Create(&setting).Error; err != nil {
			r.logger.WithError(err).Error("Failed to create setting")
			return err
		}
		return nil
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to load setting for update")
		return err
	}

	setting.Value = value
	if err := r.db.Save(&setting).Error; err != nil {
		r.logger.WithError(err).Error("Failed to update setting")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"key":   key,
		"value": value,
	}).Debug("Setting saved")

	return nil
}
