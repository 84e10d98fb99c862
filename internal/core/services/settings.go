package services

import (
	"fmt"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyIndent           = "output.indent"
	keyCopyright        = "output.copyright"
	keyLegal            = "output.legal"
	keySchemaPath       = "schema.path"
	keyFragmentsPrefix  = "fragments."
	keyEnumSuppressions = "policy.enum_suppressions"
	keyExtensionPack    = "policy.extension_pack"
	keyTypos            = "docs.typos"
	keyLedgerEnabled    = "ledger.enabled"
	keyLedgerPath       = "ledger.path"
)

// SettingsService resolves run settings from configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the configured settings merged over the defaults.
// Values of the wrong type fall back to the default; values that name
// unknown kinds are an error.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	if _, ok := s.configStore.Get(keyIndent); ok {
		indent := s.configStore.GetInt(keyIndent)
		if indent < 0 {
			return domain.Settings{}, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyIndent)
		}
		settings.Indent = indent
	}
	settings.Copyright = s.getString(keyCopyright, settings.Copyright)
	settings.Legal = s.getString(keyLegal, settings.Legal)
	settings.SchemaPath = s.configStore.GetString(keySchemaPath)

	for kind := range settings.Fragments {
		settings.Fragments[kind] = s.getString(keyFragmentsPrefix+string(kind), settings.Fragments[kind])
	}

	// An explicitly empty list disables suppression.
	if _, ok := s.configStore.Get(keyEnumSuppressions); ok {
		settings.Policy.EnumSuppressions = s.configStore.GetStringSlice(keyEnumSuppressions)
	}
	for container, extractor := range s.configStore.GetStringMap(keyExtensionPack) {
		c, e := domain.Kind(container), domain.Kind(extractor)
		if !c.IsKeyed() || !e.IsKeyed() {
			return domain.Settings{}, fmt.Errorf("%w: %s.%s = %q: unknown kind", domain.ErrInvalidInput, keyExtensionPack, container, extractor)
		}
		settings.Policy.ExtensionPackExtractors[c] = e
	}

	for from, to := range s.configStore.GetStringMap(keyTypos) {
		settings.Typos[from] = to
	}

	if _, ok := s.configStore.Get(keyLedgerEnabled); ok {
		settings.Ledger.Enabled = s.configStore.GetBool(keyLedgerEnabled)
	}
	settings.Ledger.Dir = s.configStore.GetString(keyLedgerPath)

	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Set stores a configuration value and persists it.
func (s *SettingsService) Set(key string, value any) error {
	if s.configStore == nil {
		return fmt.Errorf("set %s: config store not configured", key)
	}
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}
