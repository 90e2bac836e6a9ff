package models

import (
	"time"
)

// Setting is a single key/value configuration row.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

const (
	// SettingWIOTarget holds the monthly work-in-office target percentage.
	SettingWIOTarget = "wio_target"

	// DefaultWIOTarget is seeded on first access.
	DefaultWIOTarget = 40.0
)
