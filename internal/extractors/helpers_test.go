package extractors

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

func element(t *testing.T, xml string) *etree.Element {
	t.Helper()
	el, err := Parse([]byte(xml))
	require.NoError(t, err)
	return el
}

func version(t *testing.T, raw string) *domain.Version {
	t.Helper()
	v, err := domain.ParseVersion(raw, "")
	require.NoError(t, err)
	return &v
}

func boolPtr(b bool) *bool {
	return &b
}
