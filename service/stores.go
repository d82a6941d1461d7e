package service

import (
	"context"

	"claimlens-backend/models"

	"github.com/google/uuid"
)

// DocumentStore is the persistence contract the workflows need for
// documents. *repository.DocumentRepository implements it; tests use stubs.
type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	List(ctx context.Context) ([]*models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	UpdateEnrichment(ctx context.Context, id uuid.UUID, summary, name, documentType string) error
	UpdateRawStoragePath(ctx context.Context, id uuid.UUID, path string) error
	ExistsByURL(ctx context.Context, url string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClaimEditStore is the persistence contract for claim edits, implemented
// by *repository.ClaimEditRepository.
type ClaimEditStore interface {
	CreateBatch(ctx context.Context, edits []*models.ClaimEdit) error
	ListByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*models.ClaimEdit, error)
	ListAll(ctx context.Context) ([]*models.ClaimEdit, error)
	ListAllWithDocumentName(ctx context.Context) ([]*models.ClaimEditWithDocument, error)
}
