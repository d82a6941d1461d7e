package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"claimlens-backend/llm"

	"github.com/google/uuid"
)

const summarizeSystemPrompt = "You are a helpful assistant that summarizes documents."

// summarySchema is the structured-output contract of the summarization
// workflow: all three fields are required and written back together.
var summarySchema = llm.ResponseSchema{
	Name: "document_summary",
	Schema: llm.Object(map[string]*llm.SchemaObject{
		"summary": llm.String("Markdown summary of the document: 3 bullet points that each " +
			"start with an emoji that distinctly represents the bullet, then a bolded title, " +
			"a colon, and a one sentence description, with a blank line between bullets."),
		"generated_name": llm.String("Display name for the document: the organization name " +
			"followed by a descriptive title, under 100 characters."),
		"document_type": llm.String("Short category label for the document, such as " +
			"Companion Guide, Payer Policy, Technical Specification, or another fitting label."),
	}, "summary", "generated_name", "document_type"),
}

type summaryResponse struct {
	Summary       string `json:"summary"`
	GeneratedName string `json:"generated_name"`
	DocumentType  string `json:"document_type"`
}

// SummaryService runs the per-document summarization workflow
type SummaryService struct {
	documentRepo DocumentStore
	llmClient    llm.Client
}

// SummaryServiceOption is a functional option for SummaryService
type SummaryServiceOption func(*SummaryService)

// SummaryWithDocumentStore sets the document store
func SummaryWithDocumentStore(repo DocumentStore) SummaryServiceOption {
	return func(s *SummaryService) {
		s.documentRepo = repo
	}
}

// SummaryWithLLMClient sets the LLM client
func SummaryWithLLMClient(client llm.Client) SummaryServiceOption {
	return func(s *SummaryService) {
		s.llmClient = client
	}
}

// NewSummaryService creates a new summary service
func NewSummaryService(opts ...SummaryServiceOption) *SummaryService {
	s := &SummaryService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SummarizeRequest represents a request to summarize a document
type SummarizeRequest struct {
	DocumentID uuid.UUID
}

// SummarizeResult carries the three LLM-generated fields back to the caller
type SummarizeResult struct {
	Summary       string
	GeneratedName string
	DocumentType  string
}

// Summarize sends the document's full text to the LLM and overwrites the
// document's summary, name and type with the structured result. The
// document row itself is never touched on failure, so a caller that just
// created it keeps the created row when enrichment fails.
func (s *SummaryService) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document store not set")
	}
	if s.llmClient == nil {
		return nil, errors.New("LLM client not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, req.DocumentID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	userPrompt := fmt.Sprintf("Please summarize the following document. This summary should "+
		"contain 3 bullet points that each start with an emoji that distinctly represents the "+
		"bullet, a bolded title and a one sentence description:\n\n%s", doc.Content)

	content, err := completeWithRetry(ctx, s.llmClient, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: summarizeSystemPrompt},
			{Role: llm.RoleUser, Content: userPrompt},
		},
		Schema: &summarySchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	var parsed summaryResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrSummarizationFailed, err)
	}

	err = s.documentRepo.UpdateEnrichment(ctx, doc.ID, parsed.Summary, parsed.GeneratedName, parsed.DocumentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store summary: %w", err)
	}

	return &SummarizeResult{
		Summary:       parsed.Summary,
		GeneratedName: parsed.GeneratedName,
		DocumentType:  parsed.DocumentType,
	}, nil
}
