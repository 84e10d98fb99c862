package driving

import "github.com/custodia-labs/fixtodict/internal/core/domain"

// SettingsService resolves run configuration.
type SettingsService interface {
	// Get returns the configured settings merged over the defaults.
	Get() (domain.Settings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Set stores a configuration value and persists it.
	Set(key string, value any) error
}
