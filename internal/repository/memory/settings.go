// Package memory provides in-memory snapshot repositories. They back the
// engine's tests and let embedders that already hold the period's data in
// memory run calculations without wiring a database.
package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type SettingsRepository struct {
	mu      sync.RWMutex
	current *settings.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Set stores the singleton settings record, replacing any previous one.
func (r *SettingsRepository) Set(s settings.Settings) error {
	if !validator.IsValidTimeOfDay(s.WorkingHoursStart) || !validator.IsValidTimeOfDay(s.WorkingHoursEnd) {
		return settings.ErrInvalidWorkingHours
	}
	span, err := calendar.WorkingHours(s.WorkingHoursStart, s.WorkingHoursEnd)
	if err != nil {
		return err
	}
	if span <= 0 {
		return settings.ErrInvalidWorkingHours
	}
	for _, day := range s.WeekendDays {
		if !validator.IsValidWeekdayName(day) {
			return settings.ErrInvalidWeekendDay
		}
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = &s
	return nil
}

func (r *SettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return *r.current, nil
}
