package service

import "errors"

var (
	ErrDocumentNotFound          = errors.New("document not found")
	ErrDuplicateURL              = errors.New("a document with this URL already exists")
	ErrFetchFailed               = errors.New("failed to create document from URL")
	ErrEmptyContent              = errors.New("document has no content to extract from")
	ErrSummarizationFailed       = errors.New("failed to summarize document")
	ErrClaimEditExtractionFailed = errors.New("failed to extract claim edits")
	ErrAnalysisFailed            = errors.New("failed to analyze claim edit conflicts")
)
