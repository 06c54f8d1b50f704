package handlers

import (
	"errors"
	"net/http"

	"dealroom/middleware"
	"dealroom/models"
	"dealroom/services/invitation"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvitationHandler serves lender invitation, NDA, and tier endpoints.
type InvitationHandler struct {
	InvitationService invitation.InvitationService
}

// NewInvitationHandler creates an InvitationHandler.
func NewInvitationHandler(svc invitation.InvitationService) *InvitationHandler {
	return &InvitationHandler{InvitationService: svc}
}

// InviteLenderHandler handles POST /api/deals/:id/invitations. The binding
// tag validates the lender contact email; a bad address blocks submission.
func (h *InvitationHandler) InviteLenderHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.InvitationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.InvitationService.InviteLender(usr, c.Param("id"), req)
	if err != nil {
		respondInvitationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInvitationsHandler handles GET /api/deals/:id/invitations.
func (h *InvitationHandler) ListInvitationsHandler(c *gin.Context) {
	invitations, err := h.InvitationService.ListByDeal(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to list invitations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invitations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

// SignNDAHandler handles POST /api/deals/:id/nda/sign.
func (h *InvitationHandler) SignNDAHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	inv, err := h.InvitationService.SignNDA(usr, c.Param("id"))
	if err != nil {
		respondInvitationError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ChangeTierHandler handles PATCH /api/deals/:id/invitations/:lenderId/tier.
func (h *InvitationHandler) ChangeTierHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.TierUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.InvitationService.ChangeTier(usr, c.Param("id"), c.Param("lenderId"), req.AccessTier)
	if err != nil {
		respondInvitationError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func respondInvitationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, invitation.ErrNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, invitation.ErrNotInvited):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, invitation.ErrInvalidTier), errors.Is(err, invitation.ErrNoNDARequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Invitation operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
