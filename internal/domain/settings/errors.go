package settings

import "errors"

var (
	ErrSettingsNotFound    = errors.New("system settings not found")
	ErrInvalidWorkingHours = errors.New("working hours start must be before working hours end")
	ErrInvalidWeekendDay   = errors.New("weekend day is not a valid weekday name")
)
