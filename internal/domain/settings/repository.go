package settings

import (
	"context"
)

// SettingsRepository defines read access to the singleton settings record.
type SettingsRepository interface {
	// Get retrieves the settings record.
	// Returns ErrSettingsNotFound when no record exists.
	Get(ctx context.Context) (Settings, error)
}
