package invitation

import (
	activityRepo "dealroom/database/repository/activity"
	invitationRepo "dealroom/database/repository/invitation"
	lenderRepo "dealroom/database/repository/lender"
	userRepo "dealroom/database/repository/user"
	"dealroom/models"
)

// InvitationService manages lender participation in deals: invitations,
// NDA signing, and access-tier changes.
type InvitationService interface {
	// InviteLender invites a lender into a deal (capability: inviteLenders).
	// The invitation is unique per (deal, lender); inviting twice fails.
	InviteLender(actor *models.User, dealID string, req models.InvitationCreateRequest) (*models.Invitation, error)
	// ListByDeal returns all invitations on a deal.
	ListByDeal(dealID string) ([]models.Invitation, error)
	// InvitationFor returns the invitation for a (deal, lender) pair, nil when absent.
	InvitationFor(dealID, lenderID string) (*models.Invitation, error)
	// SignNDA records the acting investor's NDA signature on a deal.
	SignNDA(actor *models.User, dealID string) (*models.Invitation, error)
	// ChangeTier moves a lender's access tier, appending to the tier history.
	ChangeTier(actor *models.User, dealID, lenderID, tier string) (*models.Invitation, error)
}

// DefaultInvitationService is the production implementation.
type DefaultInvitationService struct {
	Repo     invitationRepo.InvitationRepository
	Lenders  lenderRepo.LenderRepository
	Users    userRepo.UserRepository
	Activity activityRepo.ActivityRepository
}
