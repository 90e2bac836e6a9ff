package service

import (
	"errors"
)

// Request-scoped validation errors. Every operation is atomic: when one of
// these is returned nothing has been written.
var (
	ErrInvalidStatus    = errors.New("invalid status label")
	ErrInvalidDate      = errors.New("invalid date")
	ErrOutOfRange       = errors.New("target percentage out of range")
	ErrDuplicateHoliday = errors.New("holiday already exists for this date")
	ErrHolidayNotFound  = errors.New("holiday not found")
)
