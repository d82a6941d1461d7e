package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a unit of ingested content: a page or PDF fetched from
// a URL, or text pasted directly by the user. Name starts out as the URL,
// page title, or file name and is overwritten once summarization runs.
type Document struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"document_name"`
	SourceURL      *string   `json:"document_url,omitempty"`
	Content        string    `json:"document_contents"`
	Summary        string    `json:"document_summary"`
	DocumentType   *string   `json:"document_type,omitempty"`
	RawStoragePath *string   `json:"raw_storage_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
