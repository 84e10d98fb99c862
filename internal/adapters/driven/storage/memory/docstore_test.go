package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

func TestDocumentStore_ReadWrite(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()

	data := []byte(`{"meta":{}}`)
	require.NoError(t, store.Write(ctx, "out/fix-4-4.json", data))
	data[0] = 'x'

	got, err := store.Read(ctx, "out/./fix-4-4.json")
	require.NoError(t, err)
	assert.Equal(t, `{"meta":{}}`, string(got))

	got[0] = 'y'
	again, _ := store.Read(ctx, "out/fix-4-4.json")
	assert.Equal(t, byte('{'), again[0])

	_, err = store.Read(ctx, "out/missing.json")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Fragment(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()
	require.NoError(t, store.Write(ctx, "src/Fields.xml", []byte("<Fields/>")))

	frag, err := store.Fragment(ctx, "src", domain.KindField, "Fields.xml")
	require.NoError(t, err)
	assert.Equal(t, domain.KindField, frag.Kind)
	assert.Equal(t, "Fields.xml", frag.Name)
	assert.Equal(t, "<Fields/>", string(frag.Data))

	_, err = store.Fragment(ctx, "src", domain.KindEnum, "Enums.xml")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, []string{"src/Fields.xml"}, store.Paths())
}
