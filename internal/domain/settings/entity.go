package settings

import (
	"time"
)

// Settings - singleton system configuration consumed by the salary engine.
// WorkingHoursStart/End are clock times in "HH:MM" (24h) format.
// HolidayDates carry no time component; only the (day, month, year) triple
// is significant.
type Settings struct {
	ID                string
	WorkingHoursStart string
	WorkingHoursEnd   string
	HolidayDates      []time.Time
	WeekendDays       []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EffectiveWeekendDays returns the configured weekend day names,
// defaulting to Sunday-only when none are configured.
func (s Settings) EffectiveWeekendDays() []string {
	if len(s.WeekendDays) == 0 {
		return []string{time.Sunday.String()}
	}
	return s.WeekendDays
}
