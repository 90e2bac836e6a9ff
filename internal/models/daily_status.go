package models

import (
	"time"
)

// Status labels a user can record for a workday.
const (
	StatusWIO   = "WIO"
	StatusWFH   = "WFH"
	StatusLeave = "LEAVE"
	StatusSick  = "SICK"
)

type DailyStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;uniqueIndex" json:"date"`
	Year      int       `gorm:"index" json:"year"`
	Month     int       `gorm:"index" json:"month"`
	Day       int       `json:"day"`
	Status    string    `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyStatus) TableName() string {
	return "daily_statuses"
}

// IsValidStatus reports whether s is one of the recordable status labels.
func IsValidStatus(s string) bool {
	switch s {
	case StatusWIO, StatusWFH, StatusLeave, StatusSick:
		return true
	}
	return false
}

// IsValid checks that the record can be persisted.
func (ds *DailyStatus) IsValid() bool {
	if ds.Date.IsZero() {
		return false
	}
	return IsValidStatus(ds.Status)
}
