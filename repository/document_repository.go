package repository

import (
	"context"

	"claimlens-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			name, source_url, content, summary, document_type, raw_storage_path
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.Name,
		doc.SourceURL,
		doc.Content,
		doc.Summary,
		doc.DocumentType,
		doc.RawStoragePath,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)

	return err
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, name, source_url, content, summary, document_type,
			raw_storage_path, created_at, updated_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Name,
		&doc.SourceURL,
		&doc.Content,
		&doc.Summary,
		&doc.DocumentType,
		&doc.RawStoragePath,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// List retrieves all documents, newest first
func (r *DocumentRepository) List(ctx context.Context) ([]*models.Document, error) {
	query := `
		SELECT id, name, source_url, content, summary, document_type,
			raw_storage_path, created_at, updated_at
		FROM documents
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.Name,
			&doc.SourceURL,
			&doc.Content,
			&doc.Summary,
			&doc.DocumentType,
			&doc.RawStoragePath,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// Update updates a document's user-editable fields
func (r *DocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := `
		UPDATE documents SET
			name = $2,
			content = $3,
			summary = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.Name,
		doc.Content,
		doc.Summary,
	).Scan(&doc.UpdatedAt)

	return err
}

// UpdateEnrichment overwrites the three LLM-generated fields together, so a
// document is never left with a new summary but a stale name or type.
func (r *DocumentRepository) UpdateEnrichment(ctx context.Context, id uuid.UUID, summary, name, documentType string) error {
	query := `
		UPDATE documents SET
			summary = $2,
			name = $3,
			document_type = $4,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, summary, name, documentType)
	return err
}

// UpdateRawStoragePath records where the original payload was archived
func (r *DocumentRepository) UpdateRawStoragePath(ctx context.Context, id uuid.UUID, path string) error {
	query := `
		UPDATE documents SET
			raw_storage_path = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, path)
	return err
}

// ExistsByURL reports whether a document was already created from the URL
func (r *DocumentRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM documents WHERE source_url = $1)`

	err := r.db.QueryRow(ctx, query, url).Scan(&exists)
	return exists, err
}

// Delete deletes a document; claim edits go with it via the cascade
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
