package handlers

import (
	"errors"
	"net/http"

	"dealroom/middleware"
	"dealroom/models"
	"dealroom/services/document"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler serves data-room endpoints.
type DocumentHandler struct {
	DocumentService document.DocumentService
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc document.DocumentService) *DocumentHandler {
	return &DocumentHandler{DocumentService: svc}
}

// AddDocumentHandler handles POST /api/deals/:id/documents.
func (h *DocumentHandler) AddDocumentHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.DocumentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.DocumentService.AddDocument(usr, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrNotPermitted):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, document.ErrInvalidTier):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to add document", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// ListDocumentsHandler handles GET /api/deals/:id/documents.
func (h *DocumentHandler) ListDocumentsHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	docs, err := h.DocumentService.ListDocuments(usr, c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to list documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// RemoveDocumentHandler handles DELETE /api/deals/:id/documents/:documentId.
func (h *DocumentHandler) RemoveDocumentHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	if err := h.DocumentService.RemoveDocument(usr, c.Param("id"), c.Param("documentId")); err != nil {
		if errors.Is(err, document.ErrNotPermitted) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document removed"})
}
