package handlers

import (
	"net/http"
	"time"

	lenderRepo "dealroom/database/repository/lender"
	"dealroom/models"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LenderHandler serves the lender directory.
type LenderHandler struct {
	Repo lenderRepo.LenderRepository
}

// NewLenderHandler creates a LenderHandler.
func NewLenderHandler(repo lenderRepo.LenderRepository) *LenderHandler {
	return &LenderHandler{Repo: repo}
}

// ListLendersHandler handles GET /api/lenders.
func (h *LenderHandler) ListLendersHandler(c *gin.Context) {
	lenders, err := h.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list lenders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list lenders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lenders": lenders})
}

// CreateLenderHandler handles POST /api/lenders.
func (h *LenderHandler) CreateLenderHandler(c *gin.Context) {
	var req models.LenderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lender := &models.Lender{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Type:         req.Type,
		ContactEmail: req.ContactEmail,
		CreatedAt:    time.Now(),
	}
	if err := h.Repo.Create(lender); err != nil {
		utils.GetLogger().Error("Failed to create lender", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lender)
}
