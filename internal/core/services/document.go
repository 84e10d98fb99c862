package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService inspects canonical documents.
type DocumentService struct {
	docStore  driven.DocumentStore
	validator driven.SchemaValidator
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore, validator driven.SchemaValidator) *DocumentService {
	return &DocumentService{
		docStore:  docStore,
		validator: validator,
	}
}

// Validate checks the document at path against the canonical schema.
func (s *DocumentService) Validate(ctx context.Context, path string) error {
	if s.validator == nil {
		return errors.New("schema validator not configured")
	}
	data, err := s.read(ctx, path)
	if err != nil {
		return err
	}
	if err := s.validator.Validate(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Schema returns the canonical schema, or nil without a validator.
func (s *DocumentService) Schema() []byte {
	if s.validator == nil {
		return nil
	}
	return s.validator.Schema()
}

// Review summarises the document at path.
func (s *DocumentService) Review(ctx context.Context, path string) (*domain.Review, error) {
	data, err := s.read(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := domain.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return domain.NewReview(doc), nil
}

func (s *DocumentService) read(ctx context.Context, path string) ([]byte, error) {
	if s.docStore == nil {
		return nil, errors.New("document store not configured")
	}
	data, err := s.docStore.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
