package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
)

var testTime = time.Date(2024, 6, 1, 9, 30, 15, 0, time.UTC)

var testVersion = domain.Version{Protocol: "fix", Major: "5", Minor: "0", ServicePack: "2"}

type mockRepositoryService struct {
	lastRequest driving.BuildRequest
	err         error
}

func (m *mockRepositoryService) Normalise(_ context.Context, _, _ string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Document{Meta: domain.Meta{Version: testVersion}}, nil
}

func (m *mockRepositoryService) Build(_ context.Context, req driving.BuildRequest) (*driving.BuildResult, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return &driving.BuildResult{
		Path:     req.Destination + "/fix-5-0-sp2.json",
		Document: &domain.Document{Meta: domain.Meta{Version: testVersion}},
		RecordID: "run-1",
	}, nil
}

type mockPatchService struct {
	lastPatch driving.PatchRequest
	err       error
}

func (m *mockPatchService) ExtensionPack(_ context.Context, _ string) (*domain.ChangeSet, []domain.PatchOperation, error) {
	return nil, nil, m.err
}

func (m *mockPatchService) ConvertExtensionPack(_ context.Context, _, _ string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return 2, nil
}

func (m *mockPatchService) Apply(_ context.Context, doc []byte, _ []domain.PatchOperation) ([]byte, error) {
	return doc, m.err
}

func (m *mockPatchService) ApplyExtensionPack(_ context.Context, doc []byte, _ string) ([]byte, error) {
	return doc, m.err
}

func (m *mockPatchService) ApplyPatchFile(_ context.Context, doc []byte, _ string) ([]byte, error) {
	return doc, m.err
}

func (m *mockPatchService) Patch(_ context.Context, req driving.PatchRequest) (*driving.PatchResult, error) {
	m.lastPatch = req
	if m.err != nil {
		return nil, m.err
	}
	result := &driving.PatchResult{Document: []byte(`{"meta":{}}`), Operations: 1}
	if req.Output != "" {
		result.RecordID = "run-2"
	}
	return result, nil
}

type mockDocumentService struct {
	err error
}

func (m *mockDocumentService) Validate(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) Schema() []byte {
	return []byte(`{"$schema": "https://json-schema.org/draft/2020-12/schema"}` + "\n")
}

func (m *mockDocumentService) Review(_ context.Context, _ string) (*domain.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Review{
		Version: testVersion,
		Counts:  map[domain.Kind]int{domain.KindField: 3, domain.KindMessage: 1},
		Sections: []domain.SectionReview{{
			ID:         "Session",
			Messages:   1,
			Categories: []domain.CategoryReview{{ID: "Session", Messages: 1}},
		}},
	}, nil
}

type mockLedgerService struct {
	records []domain.GenerationRecord
}

func (m *mockLedgerService) List(_ context.Context, limit int) ([]domain.GenerationRecord, error) {
	if limit > 0 && len(m.records) > limit {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *mockLedgerService) Get(_ context.Context, id string) (*domain.GenerationRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type mockSettingsService struct {
	values map[string]any
	err    error
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	if m.err != nil {
		return domain.Settings{}, m.err
	}
	s := domain.DefaultSettings()
	if v, ok := m.values["output.indent"].(int); ok {
		s.Indent = v
	}
	return s, nil
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (m *mockSettingsService) Set(key string, value any) error {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
	return nil
}

type testServices struct {
	repo     *mockRepositoryService
	patch    *mockPatchService
	document *mockDocumentService
	ledger   *mockLedgerService
	settings *mockSettingsService
}

// setupTestServices installs mock services and returns them with a
// function restoring the previous ones.
func setupTestServices() (*testServices, func()) {
	prev := Services{
		Repository: repositoryService,
		Patch:      patchService,
		Document:   documentService,
		Ledger:     ledgerService,
		Settings:   settingsService,
	}

	ts := &testServices{
		repo:     &mockRepositoryService{},
		patch:    &mockPatchService{},
		document: &mockDocumentService{},
		ledger: &mockLedgerService{records: []domain.GenerationRecord{
			{ID: "run-2", Operation: domain.OperationPatch, Version: testVersion,
				Source: "doc.json", Output: "patched.json", Patches: []string{"fix.json"},
				CreatedAt: testTime.Add(time.Hour)},
			{ID: "run-1", Operation: domain.OperationRepo, Version: testVersion,
				Source: "src", Output: "out/fix-5-0-sp2.json", Checksum: "cafebabe",
				CreatedAt: testTime},
		}},
		settings: &mockSettingsService{},
	}
	SetServices(Services{
		Repository: ts.repo,
		Patch:      ts.patch,
		Document:   ts.document,
		Ledger:     ts.ledger,
		Settings:   ts.settings,
	})
	return ts, func() { SetServices(prev) }
}
