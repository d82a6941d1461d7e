package repository

import (
	"context"

	"claimlens-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClaimEditRepository handles database operations for claim edits
type ClaimEditRepository struct {
	db *pgxpool.Pool
}

// NewClaimEditRepository creates a new claim edit repository
func NewClaimEditRepository(db *pgxpool.Pool) *ClaimEditRepository {
	return &ClaimEditRepository{db: db}
}

// CreateBatch inserts all edits of one extraction invocation in a single
// transaction: either every row commits or none does.
func (r *ClaimEditRepository) CreateBatch(ctx context.Context, edits []*models.ClaimEdit) error {
	if len(edits) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO claim_edits (
			document_id, description, message, conditions, non_conditions
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at`

	for _, edit := range edits {
		err := tx.QueryRow(
			ctx, query,
			edit.DocumentID,
			edit.Description,
			edit.Message,
			edit.Conditions,
			edit.NonConditions,
		).Scan(&edit.ID, &edit.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListByDocumentID retrieves all claim edits for one document
func (r *ClaimEditRepository) ListByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*models.ClaimEdit, error) {
	query := `
		SELECT id, document_id, description, message, conditions, non_conditions, created_at
		FROM claim_edits
		WHERE document_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClaimEdits(rows)
}

// ListAll retrieves every claim edit across all documents
func (r *ClaimEditRepository) ListAll(ctx context.Context) ([]*models.ClaimEdit, error) {
	query := `
		SELECT id, document_id, description, message, conditions, non_conditions, created_at
		FROM claim_edits
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClaimEdits(rows)
}

// ListAllWithDocumentName joins every claim edit with its owning document's
// display name. Internal ids are not selected; the result feeds the
// conflict analysis payload as-is.
func (r *ClaimEditRepository) ListAllWithDocumentName(ctx context.Context) ([]*models.ClaimEditWithDocument, error) {
	query := `
		SELECT d.name, e.description, e.message, e.conditions, e.non_conditions
		FROM claim_edits e
		JOIN documents d ON d.id = e.document_id
		ORDER BY e.created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edits []*models.ClaimEditWithDocument
	for rows.Next() {
		edit := &models.ClaimEditWithDocument{}
		err := rows.Scan(
			&edit.DocumentName,
			&edit.Description,
			&edit.Message,
			&edit.Conditions,
			&edit.NonConditions,
		)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}

	return edits, rows.Err()
}

func scanClaimEdits(rows pgx.Rows) ([]*models.ClaimEdit, error) {
	var edits []*models.ClaimEdit
	for rows.Next() {
		edit := &models.ClaimEdit{}
		err := rows.Scan(
			&edit.ID,
			&edit.DocumentID,
			&edit.Description,
			&edit.Message,
			&edit.Conditions,
			&edit.NonConditions,
			&edit.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}

	return edits, rows.Err()
}
