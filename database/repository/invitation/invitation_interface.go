package invitationRepo

import "dealroom/models"

// InvitationRepository defines methods for invitation data access. At most
// one invitation exists per (dealId, lenderId) pair; Create fails when the
// pair is already present.
type InvitationRepository interface {
	// Create inserts a new invitation record.
	Create(inv *models.Invitation) error
	// GetByDealAndLender retrieves the invitation for a pair, nil when absent.
	GetByDealAndLender(dealID, lenderID string) (*models.Invitation, error)
	// ListByDeal retrieves all invitations on a deal.
	ListByDeal(dealID string) ([]models.Invitation, error)
	// ListByLender retrieves all invitations held by a lender.
	ListByLender(lenderID string) ([]models.Invitation, error)
	// Update modifies an existing invitation record.
	Update(inv *models.Invitation) error
}
