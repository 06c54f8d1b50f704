package deal

import (
	"fmt"
	"time"

	"dealroom/models"
	"dealroom/services/access"
	"dealroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// stageTransitions is the allowed lifecycle graph.
var stageTransitions = map[string][]string{
	models.DealStagePreMarketing: {models.DealStageLive},
	models.DealStageLive:         {models.DealStageAllocation},
	models.DealStageAllocation:   {models.DealStageClosing},
	models.DealStageClosing:      {models.DealStageClosed},
	models.DealStageClosed:       {},
}

// CreateDeal registers a new deal in pre-marketing.
func (s *DefaultDealService) CreateDeal(actor *models.User, req models.DealCreateRequest) (*models.Deal, error) {
	if !access.CapabilitiesFor(actor.Role).CreateDeal {
		return nil, NotPermittedError{Action: "createDeal"}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	d := &models.Deal{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Sponsor:       req.Sponsor,
		Industry:      req.Industry,
		Instrument:    req.Instrument,
		Size:          req.Size,
		Currency:      currency,
		Stage:         models.DealStagePreMarketing,
		LaunchDate:    req.LaunchDate,
		CloseDate:     req.CloseDate,
		HardCloseDate: req.HardCloseDate,
		CreatedBy:     actor.ID,
	}
	if err := s.Repo.Create(d); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	s.log(d.ID, actor, "deal.created", d.Name)
	return d, nil
}

// GetDeal retrieves one deal.
func (s *DefaultDealService) GetDeal(id string) (*models.Deal, error) {
	return s.Repo.GetByID(id)
}

// ListDealsFor returns the deals visible to the user.
func (s *DefaultDealService) ListDealsFor(user *models.User) ([]models.Deal, error) {
	if access.NormalizeRole(user.Role) == access.RoleInvestor {
		return s.Repo.GetByIDs(user.DealAccess)
	}
	return s.Repo.GetAll()
}

// UpdateDeal patches deal terms.
func (s *DefaultDealService) UpdateDeal(actor *models.User, id string, req models.DealUpdateRequest) (*models.Deal, error) {
	if !access.CapabilitiesFor(actor.Role).EditTerms {
		return nil, NotPermittedError{Action: "editTerms"}
	}

	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Sponsor != nil {
		d.Sponsor = *req.Sponsor
	}
	if req.Industry != nil {
		d.Industry = *req.Industry
	}
	if req.Instrument != nil {
		d.Instrument = *req.Instrument
	}
	if req.Size != nil {
		d.Size = *req.Size
	}
	if req.Currency != nil {
		d.Currency = *req.Currency
	}
	if req.LaunchDate != nil {
		d.LaunchDate = req.LaunchDate
	}
	if req.CloseDate != nil {
		d.CloseDate = *req.CloseDate
	}
	if req.HardCloseDate != nil {
		d.HardCloseDate = req.HardCloseDate
	}

	if err := s.Repo.Update(d); err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}

	s.log(d.ID, actor, "deal.terms_updated", "")
	return d, nil
}

// AdvanceStage moves a deal along the lifecycle graph.
func (s *DefaultDealService) AdvanceStage(actor *models.User, id, stage string) (*models.Deal, error) {
	if !access.CapabilitiesFor(actor.Role).AdvanceStage {
		return nil, NotPermittedError{Action: "advanceStage"}
	}

	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	allowed, ok := stageTransitions[d.Stage]
	if !ok {
		return nil, StageTransitionError{From: d.Stage, To: stage}
	}
	valid := false
	for _, next := range allowed {
		if next == stage {
			valid = true
			break
		}
	}
	if !valid {
		return nil, StageTransitionError{From: d.Stage, To: stage}
	}

	d.Stage = stage
	if err := s.Repo.Update(d); err != nil {
		return nil, fmt.Errorf("advance stage: %w", err)
	}

	s.log(d.ID, actor, "deal.stage_advanced", stage)
	return d, nil
}

// GetDealContext assembles the viewer's composite read model. Investors
// get the invitation held by their lender; other roles view ungated.
func (s *DefaultDealService) GetDealContext(user *models.User, id string) (*Context, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	var inv *models.Invitation
	if access.NormalizeRole(user.Role) == access.RoleInvestor && user.LenderID != "" {
		inv, err = s.Invitations.GetByDealAndLender(id, user.LenderID)
		if err != nil {
			return nil, fmt.Errorf("fetch invitation: %w", err)
		}
	}

	ctx := BuildContext(d, inv, user, time.Now())
	return &ctx, nil
}

// GetDeadlines derives the deadline sequence for the viewer.
func (s *DefaultDealService) GetDeadlines(user *models.User, id string) ([]models.Deadline, error) {
	ctx, err := s.GetDealContext(user, id)
	if err != nil {
		return nil, err
	}
	return ctx.Deadlines, nil
}

// GetLogs returns a deal's audit trail, newest first.
func (s *DefaultDealService) GetLogs(dealID string, limit int64) ([]models.Activity, error) {
	return s.Activity.ListByDeal(dealID, limit)
}

func (s *DefaultDealService) log(dealID string, actor *models.User, action, detail string) {
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
