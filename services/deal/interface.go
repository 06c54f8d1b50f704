package deal

import (
	activityRepo "dealroom/database/repository/activity"
	dealRepo "dealroom/database/repository/deal"
	invitationRepo "dealroom/database/repository/invitation"
	"dealroom/models"
)

// DealService exposes deal lifecycle and read-model operations.
type DealService interface {
	// CreateDeal registers a new deal (capability: createDeal).
	CreateDeal(actor *models.User, req models.DealCreateRequest) (*models.Deal, error)
	// GetDeal retrieves one deal.
	GetDeal(id string) (*models.Deal, error)
	// ListDealsFor returns the deals visible to the user: investors see
	// only their access set, everyone else sees all deals.
	ListDealsFor(user *models.User) ([]models.Deal, error)
	// UpdateDeal patches deal terms (capability: editTerms).
	UpdateDeal(actor *models.User, id string, req models.DealUpdateRequest) (*models.Deal, error)
	// AdvanceStage moves a deal along its lifecycle (capability: advanceStage).
	AdvanceStage(actor *models.User, id, stage string) (*models.Deal, error)
	// GetDealContext assembles the viewer's composite read model.
	GetDealContext(user *models.User, id string) (*Context, error)
	// GetDeadlines derives the deadline sequence for the viewer.
	GetDeadlines(user *models.User, id string) ([]models.Deadline, error)
	// GetLogs returns a deal's audit trail, newest first.
	GetLogs(dealID string, limit int64) ([]models.Activity, error)
}

// DefaultDealService is the production implementation.
type DefaultDealService struct {
	Repo        dealRepo.DealRepository
	Invitations invitationRepo.InvitationRepository
	Activity    activityRepo.ActivityRepository
}
