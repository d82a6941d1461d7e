package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimEdit represents one business rule extracted from a document.
// Rows are only ever created by the extraction workflow and are removed
// through the parent document's cascade.
type ClaimEdit struct {
	ID            uuid.UUID `json:"id"`
	DocumentID    uuid.UUID `json:"document_id"`
	Description   string    `json:"edit_description"`
	Message       string    `json:"edit_message"`
	Conditions    string    `json:"edit_conditions"`
	NonConditions string    `json:"edit_non_conditions"`
	CreatedAt     time.Time `json:"created_at"`
}

// ClaimEditWithDocument is a claim edit joined with its owning document's
// display name, used by the conflict analysis workflow. Internal ids are
// deliberately excluded from the serialized form.
type ClaimEditWithDocument struct {
	DocumentName  string `json:"input_name"`
	Description   string `json:"edit_description"`
	Message       string `json:"edit_message"`
	Conditions    string `json:"edit_conditions"`
	NonConditions string `json:"edit_non_conditions"`
}
