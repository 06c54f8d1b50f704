package handlers

import (
	"errors"
	"net/http"

	"dealroom/middleware"
	"dealroom/models"
	"dealroom/services/commitment"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommitmentHandler serves order-book endpoints.
type CommitmentHandler struct {
	CommitmentService commitment.CommitmentService
}

// NewCommitmentHandler creates a CommitmentHandler.
func NewCommitmentHandler(svc commitment.CommitmentService) *CommitmentHandler {
	return &CommitmentHandler{CommitmentService: svc}
}

// SubmitCommitmentHandler handles POST /api/deals/:id/commitments.
func (h *CommitmentHandler) SubmitCommitmentHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.CommitmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cm, err := h.CommitmentService.SubmitCommitment(usr, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, commitment.ErrNotPermitted) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to submit commitment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// GetBookHandler handles GET /api/deals/:id/book.
func (h *CommitmentHandler) GetBookHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	book, err := h.CommitmentService.GetBook(usr, c.Param("id"))
	if err != nil {
		if errors.Is(err, commitment.ErrNotPermitted) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to build book", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, book)
}

// ListOwnCommitmentsHandler handles GET /api/deals/:id/commitments.
func (h *CommitmentHandler) ListOwnCommitmentsHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	commitments, err := h.CommitmentService.ListOwn(usr, c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to list commitments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list commitments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitments": commitments})
}

// SetCommitmentStatusHandler handles PATCH /api/deals/:id/commitments/:commitmentId/status.
func (h *CommitmentHandler) SetCommitmentStatusHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cm, err := h.CommitmentService.SetStatus(usr, c.Param("id"), c.Param("commitmentId"), req.Status)
	if err != nil {
		if errors.Is(err, commitment.ErrNotPermitted) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, commitment.ErrNotOnDeal) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cm)
}
