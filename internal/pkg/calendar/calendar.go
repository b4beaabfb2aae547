// Package calendar provides the working-day and time-of-day helpers behind
// salary computations. Dates are treated as (day, month, year) triples; time
// zones and clock components are ignored except where a function says
// otherwise.
package calendar

import (
	"fmt"
	"time"
)

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

// IsWeekend reports whether the date's weekday name is in the configured
// weekend set. An empty set defaults to Sunday-only.
func IsWeekend(date time.Time, weekendDays []string) bool {
	if len(weekendDays) == 0 {
		weekendDays = []string{time.Sunday.String()}
	}
	name := date.Weekday().String()
	for _, d := range weekendDays {
		if d == name {
			return true
		}
	}
	return false
}

// IsHoliday reports whether the date matches any holiday entry.
func IsHoliday(date time.Time, holidays []time.Time) bool {
	for _, h := range holidays {
		if SameDate(date, h) {
			return true
		}
	}
	return false
}

// WorkingDaysInMonth counts the days of the month that are neither weekend
// days nor holidays. A pathological configuration can produce zero; callers
// deriving rates must guard against that.
func WorkingDaysInMonth(year, month int, weekendDays []string, holidays []time.Time) int {
	workingDays := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if IsWeekend(date, weekendDays) {
			continue
		}
		if IsHoliday(date, holidays) {
			continue
		}
		workingDays++
	}
	return workingDays
}

// MonthDetails describes one calendar month's day composition.
type MonthDetails struct {
	Year        int
	Month       int
	MonthName   string
	TotalDays   int
	WorkingDays int
	WeekendDays int
}

// GetMonthDetails returns the month's name and day composition under the
// given weekend/holiday configuration.
func GetMonthDetails(year, month int, weekendDays []string, holidays []time.Time) MonthDetails {
	totalDays := DaysInMonth(year, month)
	weekendCount := 0
	for day := 1; day <= totalDays; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if IsWeekend(date, weekendDays) {
			weekendCount++
		}
	}

	return MonthDetails{
		Year:        year,
		Month:       month,
		MonthName:   time.Month(month).String(),
		TotalDays:   totalDays,
		WorkingDays: WorkingDaysInMonth(year, month, weekendDays, holidays),
		WeekendDays: weekendCount,
	}
}

// UpcomingMonths projects month details for count months starting at the
// month containing from.
func UpcomingMonths(from time.Time, count int, weekendDays []string, holidays []time.Time) []MonthDetails {
	months := make([]MonthDetails, 0, count)
	for i := 0; i < count; i++ {
		target := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		months = append(months, GetMonthDetails(target.Year(), int(target.Month()), weekendDays, holidays))
	}
	return months
}

// ParseTimeOfDay parses a 24h "HH:MM" clock time and returns the hour and
// minute components.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// At combines a calendar day with an "HH:MM" time of day, in the day's
// location.
func At(date time.Time, timeOfDay string) (time.Time, error) {
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// WorkingHours returns the hour span between two "HH:MM" clock times,
// clamped to zero when end is not after start.
func WorkingHours(startTime, endTime string) (float64, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}

	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0, nil
	}
	return hours, nil
}

// FormatMinutes renders a minute count as "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
