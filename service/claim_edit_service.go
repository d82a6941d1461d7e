package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"claimlens-backend/llm"
	"claimlens-backend/models"

	"github.com/google/uuid"
)

const extractSystemPrompt = "Extract claim edits from the given document."

// claimEditsSchema is the structured-output contract of the extraction
// workflow. An empty claim_edits array is a valid result.
var claimEditsSchema = llm.ResponseSchema{
	Name: "claim_edits",
	Schema: llm.Object(map[string]*llm.SchemaObject{
		"claim_edits": llm.Array(
			llm.Object(map[string]*llm.SchemaObject{
				"edit_description":    llm.String("Description of the claim edit."),
				"edit_message":        llm.String("Message for the claim edit."),
				"edit_conditions":     llm.String("Conditions for the claim edit."),
				"edit_non_conditions": llm.String("Non-conditions for the claim edit."),
			}, "edit_description", "edit_message", "edit_conditions", "edit_non_conditions"),
			"List of claim edits extracted from the document.",
		),
	}, "claim_edits"),
}

type claimEditsResponse struct {
	ClaimEdits []struct {
		Description   string `json:"edit_description"`
		Message       string `json:"edit_message"`
		Conditions    string `json:"edit_conditions"`
		NonConditions string `json:"edit_non_conditions"`
	} `json:"claim_edits"`
}

// ClaimEditService runs the claim-edit extraction workflow
type ClaimEditService struct {
	documentRepo  DocumentStore
	claimEditRepo ClaimEditStore
	llmClient     llm.Client
}

// ClaimEditServiceOption is a functional option for ClaimEditService
type ClaimEditServiceOption func(*ClaimEditService)

// ClaimEditWithDocumentStore sets the document store
func ClaimEditWithDocumentStore(repo DocumentStore) ClaimEditServiceOption {
	return func(s *ClaimEditService) {
		s.documentRepo = repo
	}
}

// ClaimEditWithClaimEditStore sets the claim edit store
func ClaimEditWithClaimEditStore(repo ClaimEditStore) ClaimEditServiceOption {
	return func(s *ClaimEditService) {
		s.claimEditRepo = repo
	}
}

// ClaimEditWithLLMClient sets the LLM client
func ClaimEditWithLLMClient(client llm.Client) ClaimEditServiceOption {
	return func(s *ClaimEditService) {
		s.llmClient = client
	}
}

// NewClaimEditService creates a new claim edit service
func NewClaimEditService(opts ...ClaimEditServiceOption) *ClaimEditService {
	s := &ClaimEditService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractClaimEditsRequest represents a request to extract claim edits
type ExtractClaimEditsRequest struct {
	DocumentID uuid.UUID
}

// ExtractClaimEditsResult reports how many claim edit rows were created
type ExtractClaimEditsResult struct {
	Created int
}

// ExtractClaimEdits sends the document's text to the LLM verbatim and
// persists one ClaimEdit row per extracted rule, committing the whole
// batch in one transaction. Repeated invocations append; nothing is
// deduplicated.
func (s *ClaimEditService) ExtractClaimEdits(ctx context.Context, req ExtractClaimEditsRequest) (*ExtractClaimEditsResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document store not set")
	}
	if s.claimEditRepo == nil {
		return nil, errors.New("claim edit store not set")
	}
	if s.llmClient == nil {
		return nil, errors.New("LLM client not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, req.DocumentID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	if strings.TrimSpace(doc.Content) == "" {
		return nil, ErrEmptyContent
	}

	content, err := completeWithRetry(ctx, s.llmClient, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: extractSystemPrompt},
			{Role: llm.RoleUser, Content: doc.Content},
		},
		Schema: &claimEditsSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClaimEditExtractionFailed, err)
	}

	var parsed claimEditsResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrClaimEditExtractionFailed, err)
	}

	edits := make([]*models.ClaimEdit, 0, len(parsed.ClaimEdits))
	for _, item := range parsed.ClaimEdits {
		edits = append(edits, &models.ClaimEdit{
			DocumentID:    doc.ID,
			Description:   item.Description,
			Message:       item.Message,
			Conditions:    item.Conditions,
			NonConditions: item.NonConditions,
		})
	}

	if err := s.claimEditRepo.CreateBatch(ctx, edits); err != nil {
		return nil, fmt.Errorf("failed to store claim edits: %w", err)
	}

	return &ExtractClaimEditsResult{Created: len(edits)}, nil
}

// ListClaimEdits retrieves all claim edits for one document
func (s *ClaimEditService) ListClaimEdits(ctx context.Context, documentID uuid.UUID) ([]*models.ClaimEdit, error) {
	if s.claimEditRepo == nil {
		return nil, errors.New("claim edit store not set")
	}

	return s.claimEditRepo.ListByDocumentID(ctx, documentID)
}

// ListAllClaimEdits retrieves every claim edit across all documents
func (s *ClaimEditService) ListAllClaimEdits(ctx context.Context) ([]*models.ClaimEdit, error) {
	if s.claimEditRepo == nil {
		return nil, errors.New("claim edit store not set")
	}

	return s.claimEditRepo.ListAll(ctx)
}
