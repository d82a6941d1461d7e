package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"claimlens-backend/llm"
	"claimlens-backend/models"

	"github.com/google/uuid"
)

// shrinkBackoff drops the retry delay to keep tests that exhaust attempts
// fast, restoring it afterwards.
func shrinkBackoff(t *testing.T) {
	old := initialBackoff
	initialBackoff = time.Millisecond
	t.Cleanup(func() { initialBackoff = old })
}

// stubDocumentStore is an in-memory DocumentStore recording the calls the
// workflows make against it.
type stubDocumentStore struct {
	docs map[uuid.UUID]*models.Document

	existingURLs map[string]bool
	existsErr    error
	createErr    error

	createdDocs     []*models.Document
	enrichmentCalls []enrichmentCall
	updatedPaths    map[uuid.UUID]string
	deletedIDs      []uuid.UUID
}

type enrichmentCall struct {
	id           uuid.UUID
	summary      string
	name         string
	documentType string
}

func newStubDocumentStore() *stubDocumentStore {
	return &stubDocumentStore{
		docs:         make(map[uuid.UUID]*models.Document),
		existingURLs: make(map[string]bool),
		updatedPaths: make(map[uuid.UUID]string),
	}
}

func (s *stubDocumentStore) Create(_ context.Context, doc *models.Document) error {
	if s.createErr != nil {
		return s.createErr
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	s.docs[doc.ID] = doc
	s.createdDocs = append(s.createdDocs, doc)
	return nil
}

func (s *stubDocumentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return doc, nil
}

func (s *stubDocumentStore) List(_ context.Context) ([]*models.Document, error) {
	out := make([]*models.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (s *stubDocumentStore) Update(_ context.Context, doc *models.Document) error {
	s.docs[doc.ID] = doc
	return nil
}

func (s *stubDocumentStore) UpdateEnrichment(_ context.Context, id uuid.UUID, summary, name, documentType string) error {
	s.enrichmentCalls = append(s.enrichmentCalls, enrichmentCall{
		id:           id,
		summary:      summary,
		name:         name,
		documentType: documentType,
	})
	if doc, ok := s.docs[id]; ok {
		doc.Summary = summary
		doc.Name = name
		doc.DocumentType = &documentType
	}
	return nil
}

func (s *stubDocumentStore) UpdateRawStoragePath(_ context.Context, id uuid.UUID, path string) error {
	s.updatedPaths[id] = path
	return nil
}

func (s *stubDocumentStore) ExistsByURL(_ context.Context, url string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.existingURLs[url], nil
}

func (s *stubDocumentStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.docs, id)
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

// stubClaimEditStore is an in-memory ClaimEditStore.
type stubClaimEditStore struct {
	edits     []*models.ClaimEdit
	joined    []*models.ClaimEditWithDocument
	batchErr  error
	batches   [][]*models.ClaimEdit
	listErr   error
	joinedErr error
}

func (s *stubClaimEditStore) CreateBatch(_ context.Context, edits []*models.ClaimEdit) error {
	if s.batchErr != nil {
		return s.batchErr
	}
	s.batches = append(s.batches, edits)
	for _, edit := range edits {
		if edit.ID == uuid.Nil {
			edit.ID = uuid.New()
		}
		s.edits = append(s.edits, edit)
	}
	return nil
}

func (s *stubClaimEditStore) ListByDocumentID(_ context.Context, documentID uuid.UUID) ([]*models.ClaimEdit, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*models.ClaimEdit
	for _, edit := range s.edits {
		if edit.DocumentID == documentID {
			out = append(out, edit)
		}
	}
	return out, nil
}

func (s *stubClaimEditStore) ListAll(_ context.Context) ([]*models.ClaimEdit, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.edits, nil
}

func (s *stubClaimEditStore) ListAllWithDocumentName(_ context.Context) ([]*models.ClaimEditWithDocument, error) {
	if s.joinedErr != nil {
		return nil, s.joinedErr
	}
	return s.joined, nil
}

// stubLLM is an llm.Client returning scripted responses while capturing
// every request it receives.
type stubLLM struct {
	responses []string
	errs      []error
	requests  []llm.Request
	calls     int
}

func (s *stubLLM) Name() string { return "stub" }

func (s *stubLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	s.requests = append(s.requests, req)
	i := s.calls
	s.calls++

	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	if len(s.responses) > 0 {
		return s.responses[len(s.responses)-1], nil
	}
	return "", errors.New("no scripted response")
}
