package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"claimlens-backend/llm"
	"claimlens-backend/models"
)

const conflictSystemPrompt = "You are a helpful assistant that analyzes claim edits and identifies conflicting logic."

// conflictSchema is the structured-output contract of the conflict
// analysis workflow: a single markdown report.
var conflictSchema = llm.ResponseSchema{
	Name: "document_summary",
	Schema: llm.Object(map[string]*llm.SchemaObject{
		"summary": llm.String("Detailed list of conflicting claim edits based on the provided " +
			"data. Use Markdown headers for each of the conflicts with bullet points below to " +
			"give details of the segments in the claim that would conflict, and a recommendation " +
			"of if this logic needs to be changed. The bullet points below each header should " +
			"always be formatted using asterisks such as * First item * Second item * Third item. " +
			"Start each bullet point with a bolded title, followed by a colon, then a one sentence " +
			"detailed description free of filler words. For each conflicting edit, make sure to " +
			"include a bullet point that highlights the specific Claim Data Segment and the data " +
			"in that segment being validated by each edit. Make sure to highlight specific logic " +
			"to ignore claim data segment validations if those directions to ignore edits are " +
			"found in one edit, but the validations are required in another edit."),
	}, "summary"),
}

type conflictResponse struct {
	Summary string `json:"summary"`
}

// ConflictService runs the cross-document conflict analysis workflow
type ConflictService struct {
	claimEditRepo ClaimEditStore
	llmClient     llm.Client
}

// ConflictServiceOption is a functional option for ConflictService
type ConflictServiceOption func(*ConflictService)

// ConflictWithClaimEditStore sets the claim edit store
func ConflictWithClaimEditStore(repo ClaimEditStore) ConflictServiceOption {
	return func(s *ConflictService) {
		s.claimEditRepo = repo
	}
}

// ConflictWithLLMClient sets the LLM client
func ConflictWithLLMClient(client llm.Client) ConflictServiceOption {
	return func(s *ConflictService) {
		s.llmClient = client
	}
}

// NewConflictService creates a new conflict service
func NewConflictService(opts ...ConflictServiceOption) *ConflictService {
	s := &ConflictService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeConflictsResult carries the markdown conflict report
type AnalyzeConflictsResult struct {
	Summary string
}

// AnalyzeConflicts loads every claim edit joined with its document's name,
// ships the whole set to the LLM in one request and returns the markdown
// report verbatim. Nothing is persisted. Cost scales with the total edit
// count; there is no chunking, so a very large edit set can exceed the
// request size limit.
func (s *ConflictService) AnalyzeConflicts(ctx context.Context) (*AnalyzeConflictsResult, error) {
	if s.claimEditRepo == nil {
		return nil, errors.New("claim edit store not set")
	}
	if s.llmClient == nil {
		return nil, errors.New("LLM client not set")
	}

	edits, err := s.claimEditRepo.ListAllWithDocumentName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claim edits: %w", err)
	}
	if edits == nil {
		edits = []*models.ClaimEditWithDocument{}
	}

	payload, err := json.MarshalIndent(edits, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize claim edits: %w", err)
	}

	userPrompt := fmt.Sprintf("Here is the JSON data of all claim edits, including input "+
		"names:\n\n%s\n\nPlease analyze this data and provide a summary of conflicting logic "+
		"between claim edits. This should specifically highlight where there is conflicting "+
		"logic referencing the same Claim Data Segments. For example if one edit discusses "+
		"specific formats of a segment, and then another edit says to ignore this segment if "+
		"certain criteria is met. This is what should be highlighted.", payload)

	content, err := completeWithRetry(ctx, s.llmClient, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: conflictSystemPrompt},
			{Role: llm.RoleUser, Content: userPrompt},
		},
		Schema: &conflictSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	var parsed conflictResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrAnalysisFailed, err)
	}

	return &AnalyzeConflictsResult{Summary: parsed.Summary}, nil
}
