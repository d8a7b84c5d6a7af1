package contract

import "app-catalog-be/internal/entity"

// SettingsRepository persists the singleton site settings document. Load
// falls back to zero-value settings when the file is missing or unreadable.
type SettingsRepository interface {
	Load() entity.Settings
	Save(settings entity.Settings) error
}
