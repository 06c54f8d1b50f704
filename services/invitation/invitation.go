package invitation

import (
	"fmt"
	"time"

	"dealroom/models"
	"dealroom/services/access"
	"dealroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validTier(tier string) bool {
	return tier == models.AccessTierEarly || tier == models.AccessTierFull || tier == models.AccessTierLegal
}

// InviteLender invites a lender into a deal and grants the lender's users
// access to it.
func (s *DefaultInvitationService) InviteLender(actor *models.User, dealID string, req models.InvitationCreateRequest) (*models.Invitation, error) {
	if !access.CapabilitiesFor(actor.Role).InviteLenders {
		return nil, ErrNotPermitted
	}

	if _, err := s.Lenders.GetByID(req.LenderID); err != nil {
		return nil, fmt.Errorf("lookup lender %s: %w", req.LenderID, err)
	}

	tier := req.AccessTier
	if tier == "" {
		tier = models.AccessTierEarly
	}
	if !validTier(tier) {
		return nil, ErrInvalidTier
	}

	now := time.Now()
	inv := &models.Invitation{
		ID:          uuid.New().String(),
		DealID:      dealID,
		LenderID:    req.LenderID,
		Email:       req.Email,
		Status:      models.InvitationStatusPending,
		NDARequired: req.NDARequired,
		AccessTier:  tier,
		TierHistory: []models.TierChange{{Tier: tier, ChangedBy: actor.ID, ChangedAt: now}},
		InvitedBy:   actor.ID,
	}
	if err := s.Repo.Create(inv); err != nil {
		return nil, err
	}

	// Open the deal to every user attached to the lender.
	users, err := s.Users.FindByLenderID(req.LenderID)
	if err != nil {
		utils.GetLogger().Warn("failed to list lender users for access grant",
			zap.String("lenderId", req.LenderID), zap.Error(err))
	}
	for _, u := range users {
		if err := s.Users.GrantDealAccess(u.ID, dealID); err != nil {
			utils.GetLogger().Warn("failed to grant deal access",
				zap.String("userId", u.ID), zap.Error(err))
		}
	}

	s.log(dealID, actor, "invitation.sent", req.LenderID)
	return inv, nil
}

// ListByDeal returns all invitations on a deal.
func (s *DefaultInvitationService) ListByDeal(dealID string) ([]models.Invitation, error) {
	return s.Repo.ListByDeal(dealID)
}

// InvitationFor returns the invitation for a (deal, lender) pair.
func (s *DefaultInvitationService) InvitationFor(dealID, lenderID string) (*models.Invitation, error) {
	return s.Repo.GetByDealAndLender(dealID, lenderID)
}

// SignNDA records the acting investor's NDA signature. Signing an already
// signed invitation is a no-op rather than an error.
func (s *DefaultInvitationService) SignNDA(actor *models.User, dealID string) (*models.Invitation, error) {
	if !access.CapabilitiesFor(actor.Role).SignNDA {
		return nil, ErrNotPermitted
	}

	inv, err := s.Repo.GetByDealAndLender(dealID, actor.LenderID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNotInvited
	}
	if !inv.NDARequired {
		return nil, ErrNoNDARequired
	}
	if inv.NDASignedAt != nil {
		return inv, nil
	}

	now := time.Now()
	inv.NDASignedAt = &now
	inv.Status = models.InvitationStatusAccepted
	if err := s.Repo.Update(inv); err != nil {
		return nil, err
	}

	s.log(dealID, actor, "nda.signed", actor.LenderID)
	return inv, nil
}

// ChangeTier moves a lender's access tier and appends to the tier history.
func (s *DefaultInvitationService) ChangeTier(actor *models.User, dealID, lenderID, tier string) (*models.Invitation, error) {
	if !access.CapabilitiesFor(actor.Role).ChangeAccessTier {
		return nil, ErrNotPermitted
	}
	if !validTier(tier) {
		return nil, ErrInvalidTier
	}

	inv, err := s.Repo.GetByDealAndLender(dealID, lenderID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNotInvited
	}
	if inv.AccessTier == tier {
		return inv, nil
	}

	inv.AccessTier = tier
	inv.TierHistory = append(inv.TierHistory, models.TierChange{
		Tier:      tier,
		ChangedBy: actor.ID,
		ChangedAt: time.Now(),
	})
	if err := s.Repo.Update(inv); err != nil {
		return nil, err
	}

	s.log(dealID, actor, "invitation.tier_changed", lenderID+" -> "+tier)
	return inv, nil
}

func (s *DefaultInvitationService) log(dealID string, actor *models.User, action, detail string) {
	entry := &models.Activity{
		ID:     uuid.New().String(),
		DealID: dealID,
		Actor:  actor.ID,
		Role:   string(access.NormalizeRole(actor.Role)),
		Action: action,
		Detail: detail,
		At:     time.Now(),
	}
	if err := s.Activity.Append(entry); err != nil {
		utils.GetLogger().Warn("failed to append activity", zap.String("action", action), zap.Error(err))
	}
}
