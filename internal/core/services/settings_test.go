package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fixtodict/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

func TestSettingsService_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Equal(t, domain.DefaultSettings(), svc.GetDefaults())
}

func TestSettingsService_NilStore(t *testing.T) {
	svc := NewSettingsService(nil)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIndent, settings.Indent)

	assert.Error(t, svc.Set("output.indent", 4))
}

func TestSettingsService_StoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set("output.indent", 4))
	require.NoError(t, svc.Set("output.copyright", "Copyright (c) Example"))
	require.NoError(t, svc.Set("schema.path", "schema/v1.json"))
	require.NoError(t, svc.Set("fragments.fields", "MyFields.xml"))
	require.NoError(t, svc.Set("policy.enum_suppressions", []any{"RefMsgType", "MsgType"}))
	require.NoError(t, svc.Set("docs.typos", map[string]any{"Recieve": "Receive"}))
	require.NoError(t, svc.Set("docs.typos.Seperate", "Separate"))
	require.NoError(t, svc.Set("ledger.enabled", false))
	require.NoError(t, svc.Set("ledger.path", "/var/lib/fixtodict"))

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 4, settings.Indent)
	assert.Equal(t, "Copyright (c) Example", settings.Copyright)
	assert.Equal(t, domain.DefaultLegal, settings.Legal)
	assert.Equal(t, "schema/v1.json", settings.SchemaPath)
	assert.Equal(t, "MyFields.xml", settings.Fragments[domain.KindField])
	assert.Equal(t, domain.DefaultFragments()[domain.KindMessage], settings.Fragments[domain.KindMessage])
	assert.Equal(t, []string{"RefMsgType", "MsgType"}, settings.Policy.EnumSuppressions)
	assert.Equal(t, map[string]string{"Recieve": "Receive", "Seperate": "Separate"}, settings.Typos)
	assert.False(t, settings.Ledger.Enabled)
	assert.Equal(t, "/var/lib/fixtodict", settings.Ledger.Dir)
}

func TestSettingsService_EmptySuppressions(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("policy.enum_suppressions", []string{}))

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Empty(t, settings.Policy.EnumSuppressions)
	assert.False(t, settings.Policy.SuppressesEnum("RefMsgType"))
}

func TestSettingsService_ExtensionPackPolicy(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		store := memory.NewConfigStore()
		require.NoError(t, store.Set("policy.extension_pack.components", "components"))

		settings, err := NewSettingsService(store).Get()
		require.NoError(t, err)
		assert.Equal(t, domain.KindComponent, settings.Policy.ExtractorFor(domain.KindComponent))
		assert.Equal(t, domain.KindField, settings.Policy.ExtractorFor(domain.KindField))

		// defaults are not shared between calls
		assert.Equal(t, domain.KindAbbreviation, domain.DefaultPolicy().ExtractorFor(domain.KindComponent))
	})

	t.Run("unknown kind", func(t *testing.T) {
		store := memory.NewConfigStore()
		require.NoError(t, store.Set("policy.extension_pack", map[string]any{"components": "widgets"}))

		_, err := NewSettingsService(store).Get()
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "widgets")
	})
}

func TestSettingsService_NegativeIndent(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("output.indent", -1))

	_, err := NewSettingsService(store).Get()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_ZeroIndent(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("output.indent", 0))

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, 0, settings.Indent)
}
