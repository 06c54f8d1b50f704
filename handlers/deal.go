package handlers

import (
	"errors"
	"net/http"

	"dealroom/middleware"
	"dealroom/models"
	"dealroom/services/deal"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DealHandler serves deal lifecycle and read-model endpoints.
type DealHandler struct {
	DealService deal.DealService
}

// NewDealHandler creates a DealHandler.
func NewDealHandler(svc deal.DealService) *DealHandler {
	return &DealHandler{DealService: svc}
}

// ListDealsHandler handles GET /api/deals.
func (h *DealHandler) ListDealsHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	deals, err := h.DealService.ListDealsFor(usr)
	if err != nil {
		utils.GetLogger().Error("Failed to list deals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": deals})
}

// CreateDealHandler handles POST /api/deals.
func (h *DealHandler) CreateDealHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.DealCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.DealService.CreateDeal(usr, req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetDealHandler handles GET /api/deals/:id.
func (h *DealHandler) GetDealHandler(c *gin.Context) {
	d, err := h.DealService.GetDeal(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateDealHandler handles PATCH /api/deals/:id.
func (h *DealHandler) UpdateDealHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.DealUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.DealService.UpdateDeal(usr, c.Param("id"), req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// AdvanceStageHandler handles PATCH /api/deals/:id/stage.
func (h *DealHandler) AdvanceStageHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.DealService.AdvanceStage(usr, c.Param("id"), req.Stage)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetDealContextHandler handles GET /api/deals/:id/context.
func (h *DealHandler) GetDealContextHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	ctx, err := h.DealService.GetDealContext(usr, c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to build deal context",
			zap.String("dealId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, ctx)
}

// GetDeadlinesHandler handles GET /api/deals/:id/deadlines.
func (h *DealHandler) GetDeadlinesHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	deadlines, err := h.DealService.GetDeadlines(usr, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deadlines": deadlines})
}

// GetLogsHandler handles GET /api/deals/:id/logs.
func (h *DealHandler) GetLogsHandler(c *gin.Context) {
	logs, err := h.DealService.GetLogs(c.Param("id"), 200)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func respondDealError(c *gin.Context, err error) {
	var notPermitted deal.NotPermittedError
	var badStage deal.StageTransitionError
	switch {
	case errors.As(err, &notPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &badStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Deal operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
