package utils

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	minScheduleYear = 2020
	maxScheduleYear = 2100
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD with a year between 2020 and 2100")

// ParseScheduledDate turns a strict YYYY-MM-DD string into a UTC calendar date.
func ParseScheduledDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if d.Year() < minScheduleYear || d.Year() > maxScheduleYear {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ValidClock reports whether s is a 24h HH:MM time.
func ValidClock(s string) bool {
	if len(s) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
