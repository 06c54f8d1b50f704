package handlers

import (
	"errors"
	"net/http"

	"dealroom/middleware"
	"dealroom/models"
	"dealroom/services/checklist"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChecklistHandler serves closing-checklist endpoints.
type ChecklistHandler struct {
	ChecklistService checklist.ChecklistService
}

// NewChecklistHandler creates a ChecklistHandler.
func NewChecklistHandler(svc checklist.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{ChecklistService: svc}
}

// AddItemHandler handles POST /api/deals/:id/checklist.
func (h *ChecklistHandler) AddItemHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.ChecklistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.ChecklistService.AddItem(usr, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, checklist.ErrNotPermitted) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to add checklist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListItemsHandler handles GET /api/deals/:id/checklist.
func (h *ChecklistHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.ChecklistService.ListItems(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to list checklist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list checklist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SetItemDoneHandler handles PATCH /api/deals/:id/checklist/:itemId.
func (h *ChecklistHandler) SetItemDoneHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.ChecklistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.ChecklistService.SetDone(usr, c.Param("itemId"), req.Done)
	if err != nil {
		if errors.Is(err, checklist.ErrNotPermitted) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}
