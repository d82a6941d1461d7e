package handlers

import (
	"errors"
	"log"
	"net/http"

	"claimlens-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for documents and their claim edits
type DocumentHandler struct {
	ingestService    *service.IngestService
	summaryService   *service.SummaryService
	claimEditService *service.ClaimEditService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	ingestService *service.IngestService,
	summaryService *service.SummaryService,
	claimEditService *service.ClaimEditService,
) *DocumentHandler {
	return &DocumentHandler{
		ingestService:    ingestService,
		summaryService:   summaryService,
		claimEditService: claimEditService,
	}
}

// CreateDocumentRequest represents the request body for ingesting a URL
type CreateDocumentRequest struct {
	DocumentURL string `json:"document_url" binding:"required"`
}

// CreateDocument handles POST /api/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "No URL provided",
			},
		})
		return
	}

	result, err := h.ingestService.CreateFromURL(c.Request.Context(), service.CreateFromURLRequest{
		URL: req.DocumentURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateURL):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DUPLICATE_URL",
					"message": err.Error(),
				},
			})
		case errors.Is(err, service.ErrFetchFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FETCH_FAILED",
					"message": "Failed to create document from URL",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CREATE_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	// Enrichment is best-effort: a summarization failure must not undo the
	// ingest that already committed.
	summary, err := h.summaryService.Summarize(c.Request.Context(), service.SummarizeRequest{
		DocumentID: result.Document.ID,
	})
	if err != nil {
		log.Printf("Error summarizing document %s: %v", result.Document.ID, err)
		c.JSON(http.StatusCreated, gin.H{
			"success":         true,
			"message":         "Document added successfully, but summarization failed",
			"data":            result.Document,
			"summarize_error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        "Document added and summarized successfully",
		"data":           result.Document,
		"summary":        summary.Summary,
		"generated_name": summary.GeneratedName,
	})
}

// CreateDocumentFromTextRequest represents the request body for pasted text
type CreateDocumentFromTextRequest struct {
	Name    string `json:"document_name"`
	Content string `json:"content" binding:"required"`
}

// CreateDocumentFromText handles POST /api/documents/text
func (h *DocumentHandler) CreateDocumentFromText(c *gin.Context) {
	var req CreateDocumentFromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "No content provided",
			},
		})
		return
	}

	result, err := h.ingestService.CreateFromText(c.Request.Context(), service.CreateFromTextRequest{
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), service.SummarizeRequest{
		DocumentID: result.Document.ID,
	})
	if err != nil {
		log.Printf("Error summarizing document %s: %v", result.Document.ID, err)
		c.JSON(http.StatusCreated, gin.H{
			"success":         true,
			"message":         "Document added successfully, but summarization failed",
			"data":            result.Document,
			"summarize_error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        "Document added and summarized successfully",
		"data":           result.Document,
		"summary":        summary.Summary,
		"generated_name": summary.GeneratedName,
	})
}

// ListDocuments handles GET /api/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.ingestService.ListDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    docs,
	})
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	doc, err := h.ingestService.GetDocument(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}

// UpdateDocumentRequest represents the request body for a user edit
type UpdateDocumentRequest struct {
	Name    *string `json:"document_name"`
	Content *string `json:"document_contents"`
	Summary *string `json:"document_summary"`
}

// UpdateDocument handles PUT /api/documents/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	doc, err := h.ingestService.UpdateDocument(c.Request.Context(), service.UpdateDocumentRequest{
		ID:      id,
		Name:    req.Name,
		Content: req.Content,
		Summary: req.Summary,
	})
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Document not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	err := h.ingestService.DeleteDocument(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Document not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// SummarizeDocument handles POST /api/documents/:id/summarize
func (h *DocumentHandler) SummarizeDocument(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.summaryService.Summarize(c.Request.Context(), service.SummarizeRequest{
		DocumentID: id,
	})
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Document not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUMMARIZATION_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"summary":        result.Summary,
		"generated_name": result.GeneratedName,
		"document_type":  result.DocumentType,
	})
}

// GenerateClaimEdits handles POST /api/documents/:id/claim-edits
func (h *DocumentHandler) GenerateClaimEdits(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.claimEditService.ExtractClaimEdits(c.Request.Context(), service.ExtractClaimEditsRequest{
		DocumentID: id,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Document not found",
				},
			})
		case errors.Is(err, service.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_CONTENT",
					"message": err.Error(),
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EXTRACTION_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"created": result.Created,
		},
	})
}

// ListClaimEdits handles GET /api/documents/:id/claim-edits
func (h *DocumentHandler) ListClaimEdits(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	edits, err := h.claimEditService.ListClaimEdits(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    edits,
	})
}

// ListAllClaimEdits handles GET /api/claim-edits
func (h *DocumentHandler) ListAllClaimEdits(c *gin.Context) {
	edits, err := h.claimEditService.ListAllClaimEdits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    edits,
	})
}

// parseID parses the :id route parameter, writing the error response itself
func (h *DocumentHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return uuid.Nil, false
	}
	return id, true
}
