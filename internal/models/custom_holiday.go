package models

import (
	"time"
)

type CustomHoliday struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;uniqueIndex" json:"date"`
	Year      int       `gorm:"index" json:"year"`
	Month     int       `gorm:"index" json:"month"`
	Day       int       `json:"day"`
	Label     string    `gorm:"type:varchar(255)" json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomHoliday) TableName() string {
	return "custom_holidays"
}
