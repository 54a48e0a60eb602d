// Package workdays computes internship end dates by walking the calendar one
// day at a time, counting only working days. A working day is any date that is
// neither a Saturday, a Sunday, nor present in the supplied holiday set.
package workdays

import (
	"errors"
	"time"
)

// ErrInvalidCount is returned when the requested working-day count is below 1.
var ErrInvalidCount = errors.New("working day count must be at least 1")

// DateKey formats a date the way HolidaySet keys are stored.
const DateKey = "2006-01-02"

// HolidaySet is a lookup of non-working dates keyed by YYYY-MM-DD.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a HolidaySet from a list of dates.
func NewHolidaySet(dates []time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, date := range dates {
		set[date.Format(DateKey)] = struct{}{}
	}
	return set
}

// Contains reports whether the given date is in the set.
func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[date.Format(DateKey)]
	return ok
}

// IsWorkingDay reports whether the date counts toward an internship duration.
func IsWorkingDay(date time.Time, holidays HolidaySet) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !holidays.Contains(date)
}

// EndDate returns the date of the count-th working day, counting from and
// including start. A start date that is itself a working day counts as day one.
func EndDate(start time.Time, count int, holidays HolidaySet) (time.Time, error) {
	if count < 1 {
		return time.Time{}, ErrInvalidCount
	}

	// Normalize to midnight so day arithmetic is not affected by the clock.
	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	counted := 0
	for {
		if IsWorkingDay(current, holidays) {
			counted++
			if counted == count {
				return current, nil
			}
		}
		current = current.AddDate(0, 0, 1)
	}
}
