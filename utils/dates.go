// utils/dates.go
package utils

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// Dashboard range presets.
const (
	RangeToday      = "today"
	RangeYesterday  = "yesterday"
	RangeLast7Days  = "last7Days"
	RangeLast30Days = "last30Days"
	RangeThisMonth  = "thisMonth"
	RangeLastMonth  = "lastMonth"
	RangeCustom     = "custom"
)

var ErrCustomRange = errors.New("custom range requires both startDate and endDate")

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// DateRange resolves a preset to inclusive start and end dates (YYYY-MM-DD)
// relative to now. An empty preset means the last 30 days.
func DateRange(preset string, now time.Time, customStart, customEnd string) (string, string, error) {
	today := BeginningOfDay(now)
	var start, end time.Time

	switch preset {
	case RangeToday:
		start, end = today, today
	case RangeYesterday:
		start = today.AddDate(0, 0, -1)
		end = start
	case RangeLast7Days:
		start, end = today.AddDate(0, 0, -6), today
	case "", RangeLast30Days:
		start, end = today.AddDate(0, 0, -29), today
	case RangeThisMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end = start.AddDate(0, 1, -1)
	case RangeLastMonth:
		start = time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
		end = start.AddDate(0, 1, -1)
	case RangeCustom:
		if customStart == "" || customEnd == "" {
			return "", "", ErrCustomRange
		}
		s, err := time.Parse(DateLayout, customStart)
		if err != nil {
			return "", "", errors.New("invalid startDate")
		}
		e, err := time.Parse(DateLayout, customEnd)
		if err != nil {
			return "", "", errors.New("invalid endDate")
		}
		if e.Before(s) {
			return "", "", errors.New("endDate is before startDate")
		}
		return customStart, customEnd, nil
	default:
		return "", "", errors.New("unknown date range: " + preset)
	}

	return start.Format(DateLayout), end.Format(DateLayout), nil
}

// NextAnniversary returns the next occurrence of date's month and day on or
// after from. Feb 29 falls on Feb 28 in common years.
func NextAnniversary(date, from time.Time) time.Time {
	from = BeginningOfDay(from)
	for year := from.Year(); ; year++ {
		month, day := date.Month(), date.Day()
		if month == time.February && day == 29 && !isLeap(year) {
			day = 28
		}
		next := time.Date(year, month, day, 0, 0, 0, 0, from.Location())
		if !next.Before(from) {
			return next
		}
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
