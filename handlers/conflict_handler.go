package handlers

import (
	"net/http"

	"claimlens-backend/service"

	"github.com/gin-gonic/gin"
)

// ConflictHandler handles HTTP requests for conflict analysis
type ConflictHandler struct {
	conflictService *service.ConflictService
}

// NewConflictHandler creates a new conflict handler
func NewConflictHandler(conflictService *service.ConflictService) *ConflictHandler {
	return &ConflictHandler{
		conflictService: conflictService,
	}
}

// AnalyzeConflicts handles GET /api/conflicts
func (h *ConflictHandler) AnalyzeConflicts(c *gin.Context) {
	result, err := h.conflictService.AnalyzeConflicts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ANALYSIS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": result.Summary,
	})
}
