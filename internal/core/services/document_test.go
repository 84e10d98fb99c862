package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fixtodict/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

func TestDocumentService_Validate(t *testing.T) {
	store := newFixtureStore(t)
	base := baseDocument(t, store)
	require.NoError(t, store.Write(context.Background(), "doc.json", base))
	require.NoError(t, store.Write(context.Background(), "bad.json", []byte(`{"meta":{}}`)))
	svc := NewDocumentService(store, validator(t))

	assert.NoError(t, svc.Validate(context.Background(), "doc.json"))

	err := svc.Validate(context.Background(), "bad.json")
	require.ErrorIs(t, err, domain.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "bad.json")

	assert.ErrorIs(t, svc.Validate(context.Background(), "missing.json"), domain.ErrNotFound)
}

func TestDocumentService_Schema(t *testing.T) {
	svc := NewDocumentService(memory.NewDocumentStore(), validator(t))

	raw := svc.Schema()
	require.NotEmpty(t, raw)
	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	assert.Contains(t, schema, "$defs")

	assert.Nil(t, NewDocumentService(nil, nil).Schema())
}

func TestDocumentService_Review(t *testing.T) {
	store := newFixtureStore(t)
	base := baseDocument(t, store)
	require.NoError(t, store.Write(context.Background(), "doc.json", base))
	svc := NewDocumentService(store, validator(t))

	review, err := svc.Review(context.Background(), "doc.json")
	require.NoError(t, err)
	assert.Equal(t, "5", review.Version.Major)
	assert.Equal(t, 3, review.Counts[domain.KindField])
	assert.Equal(t, 1, review.Counts[domain.KindMessage])
	assert.Equal(t, 1, review.Counts[domain.KindComponent])
	assert.Equal(t, 0, review.Counts[domain.KindSection])
	assert.Empty(t, review.Sections)
}

func TestDocumentService_Review_InvalidJSON(t *testing.T) {
	store := memory.NewDocumentStore()
	require.NoError(t, store.Write(context.Background(), "doc.json", []byte("not json")))

	_, err := NewDocumentService(store, nil).Review(context.Background(), "doc.json")
	assert.Error(t, err)
}

func TestDocumentService_NotConfigured(t *testing.T) {
	svc := NewDocumentService(nil, nil)

	assert.Error(t, svc.Validate(context.Background(), "doc.json"))
	_, err := svc.Review(context.Background(), "doc.json")
	assert.Error(t, err)
}
