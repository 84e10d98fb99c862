package extractors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

func TestHistory(t *testing.T) {
	el := element(t, `<Field added="FIX.4.2" updated="FIX.5.0SP1" updatedEP="97" deprecated="FIX.5.0" issue="SPEC-12"/>`)

	h, err := History(el, HistoryOptions{})
	require.NoError(t, err)

	assert.Equal(t, version(t, "FIX.4.2"), h.Added)
	assert.Equal(t, &domain.Version{Protocol: "fix", Major: "5", Minor: "0", ServicePack: "1", ExtensionPack: "97"}, h.Updated)
	assert.Equal(t, version(t, "FIX.5.0"), h.Deprecated)
	assert.Equal(t, []string{"SPEC-12"}, h.Issues)
	assert.Nil(t, h.Replaced)
}

func TestHistory_Replaced(t *testing.T) {
	el := element(t, `<Field added="FIX.4.0" replaced="FIX.4.3" ReplacedByField="1111"/>`)

	h, err := History(el, HistoryOptions{})
	require.NoError(t, err)
	assert.Nil(t, h.Replaced)
	assert.Empty(t, h.Replacement)

	h, err = History(el, HistoryOptions{Replaced: true})
	require.NoError(t, err)
	assert.Equal(t, version(t, "FIX.4.3"), h.Replaced)
	assert.Equal(t, "1111", h.Replacement)
}

func TestHistory_MissingAdded(t *testing.T) {
	el := element(t, `<Field updated="FIX.4.4"/>`)

	_, err := History(el, HistoryOptions{})
	require.ErrorIs(t, err, domain.ErrRequiredFieldMissing)

	var ee *domain.EntityError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "added", ee.Field)

	h, err := History(el, HistoryOptions{Partial: true})
	require.NoError(t, err)
	assert.Nil(t, h.Added)
	assert.NotNil(t, h.Updated)
}

func TestHistory_EmptyAddedIsMissing(t *testing.T) {
	_, err := History(element(t, `<Field added=""/>`), HistoryOptions{})
	assert.ErrorIs(t, err, domain.ErrRequiredFieldMissing)
}

func TestHistory_Malformed(t *testing.T) {
	_, err := History(element(t, `<Field added="FIX.4.2" deprecated="FIX5"/>`), HistoryOptions{})
	require.ErrorIs(t, err, domain.ErrMalformedVersion)

	var ee *domain.EntityError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "deprecated", ee.Field)
}
