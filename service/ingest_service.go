package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"claimlens-backend/extract"
	"claimlens-backend/models"
	"claimlens-backend/storage"

	"github.com/google/uuid"
)

// legacyDocumentType marks documents created from pasted text rather than
// a fetched URL.
const legacyDocumentType = "Legacy Code"

// IngestService creates documents from URLs or pasted text and owns the
// rest of the document CRUD surface.
type IngestService struct {
	documentRepo DocumentStore
	archive      storage.Storage
	httpClient   *http.Client
}

// IngestServiceOption is a functional option for IngestService
type IngestServiceOption func(*IngestService)

// IngestWithDocumentStore sets the document store
func IngestWithDocumentStore(repo DocumentStore) IngestServiceOption {
	return func(s *IngestService) {
		s.documentRepo = repo
	}
}

// IngestWithArchive sets the raw-payload archive
func IngestWithArchive(archive storage.Storage) IngestServiceOption {
	return func(s *IngestService) {
		s.archive = archive
	}
}

// IngestWithHTTPClient sets the HTTP client used for document fetches
func IngestWithHTTPClient(client *http.Client) IngestServiceOption {
	return func(s *IngestService) {
		s.httpClient = client
	}
}

// NewIngestService creates a new ingest service
func NewIngestService(opts ...IngestServiceOption) *IngestService {
	s := &IngestService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFromURLRequest represents a request to ingest a document by URL
type CreateFromURLRequest struct {
	URL string
}

// CreateFromURLResult represents the result of ingesting a document
type CreateFromURLResult struct {
	Document *models.Document
}

// CreateFromURL fetches a URL, extracts its text and persists a new
// document. A URL already present in the store is rejected before any
// network I/O. Fetch, decode and extraction failures all surface as the
// single ErrFetchFailed, so callers present one uniform failure.
func (s *IngestService) CreateFromURL(ctx context.Context, req CreateFromURLRequest) (*CreateFromURLResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document store not set")
	}

	exists, err := s.documentRepo.ExistsByURL(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate URL: %w", err)
	}
	if exists {
		return nil, ErrDuplicateURL
	}

	doc, raw, contentType, err := s.fetch(ctx, req.URL)
	if err != nil {
		log.Printf("Warning: failed to create document from %s: %v", req.URL, err)
		return nil, ErrFetchFailed
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	// Archive the original payload for later re-extraction. Failures here
	// never fail the ingest.
	if s.archive != nil {
		storagePath, err := s.archive.Archive(ctx, doc.ID, contentType, bytes.NewReader(raw))
		if err != nil {
			log.Printf("Warning: failed to archive payload for document %s: %v", doc.ID, err)
		} else if err := s.documentRepo.UpdateRawStoragePath(ctx, doc.ID, storagePath); err != nil {
			log.Printf("Warning: failed to record archive path for document %s: %v", doc.ID, err)
		} else {
			doc.RawStoragePath = &storagePath
		}
	}

	return &CreateFromURLResult{Document: doc}, nil
}

// fetch performs the single HTTP GET and dispatches extraction on the
// declared content type.
func (s *IngestService) fetch(ctx context.Context, rawURL string) (*models.Document, []byte, string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, "", fmt.Errorf("invalid URL: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")

	content, err := extract.Extract(raw, contentType)
	if err != nil {
		return nil, nil, "", err
	}

	doc := &models.Document{
		Name:      defaultDocumentName(rawURL, contentType, content),
		SourceURL: &rawURL,
		Content:   content.Text,
	}

	return doc, raw, contentType, nil
}

// defaultDocumentName picks the pre-summarization display name: the URL's
// last path segment for PDFs, the page title for HTML, the URL otherwise.
func defaultDocumentName(rawURL, contentType string, content *extract.Content) string {
	ct := strings.ToLower(contentType)

	if strings.Contains(ct, "application/pdf") {
		if parsed, err := url.Parse(rawURL); err == nil {
			if segment := path.Base(parsed.Path); segment != "" && segment != "." && segment != "/" {
				return segment
			}
		}
		return rawURL
	}

	if extract.IsHTMLContentType(ct) && content.Title != "" {
		return content.Title
	}

	return rawURL
}

// CreateFromTextRequest represents a request to create a document from
// pasted text
type CreateFromTextRequest struct {
	Name    string
	Content string
}

// CreateFromTextResult represents the result of creating a pasted document
type CreateFromTextResult struct {
	Document *models.Document
}

// CreateFromText persists a document directly from user-supplied text,
// with no URL and no fetch.
func (s *IngestService) CreateFromText(ctx context.Context, req CreateFromTextRequest) (*CreateFromTextResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document store not set")
	}

	name := req.Name
	if name == "" {
		name = legacyDocumentType
	}
	documentType := legacyDocumentType

	doc := &models.Document{
		Name:         name,
		Content:      req.Content,
		DocumentType: &documentType,
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return &CreateFromTextResult{Document: doc}, nil
}

// GetDocument retrieves one document
func (s *IngestService) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document store not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	return doc, nil
}

// ListDocuments retrieves all documents
func (s *IngestService) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document store not set")
	}

	return s.documentRepo.List(ctx)
}

// UpdateDocumentRequest represents a user edit of a document. Nil fields
// are left unchanged.
type UpdateDocumentRequest struct {
	ID      uuid.UUID
	Name    *string
	Content *string
	Summary *string
}

// UpdateDocument applies a user edit to name, content or summary
func (s *IngestService) UpdateDocument(ctx context.Context, req UpdateDocumentRequest) (*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document store not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Content != nil {
		doc.Content = *req.Content
	}
	if req.Summary != nil {
		doc.Summary = *req.Summary
	}

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument removes a document; its claim edits go with it via the
// database cascade, and any archived payload is cleaned up best-effort.
func (s *IngestService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if s.documentRepo == nil {
		return errors.New("document store not set")
	}

	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return ErrDocumentNotFound
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.archive != nil && doc.RawStoragePath != nil {
		if err := s.archive.Delete(ctx, *doc.RawStoragePath); err != nil {
			log.Printf("Warning: failed to delete archived payload for document %s: %v", id, err)
		}
	}

	return nil
}
