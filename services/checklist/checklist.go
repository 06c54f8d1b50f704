// Package checklist tracks a deal's closing checklist.
package checklist

import (
	"errors"
	"time"

	activityRepo "dealroom/database/repository/activity"
	checklistRepo "dealroom/database/repository/checklist"
	"dealroom/models"
	"dealroom/services/access"
	"dealroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotPermitted signals a capability check failed for the acting user.
var ErrNotPermitted = errors.New("not permitted")

// ChecklistService manages closing-checklist items.
type ChecklistService interface {
	AddItem(actor *models.User, dealID string, req models.ChecklistCreateRequest) (*models.ChecklistItem, error)
	ListItems(dealID string) ([]models.ChecklistItem, error)
	SetDone(actor *models.User, itemID string, done bool) (*models.ChecklistItem, error)
}

// DefaultChecklistService is the production implementation.
type DefaultChecklistService struct {
	Repo     checklistRepo.ChecklistRepository
	Activity activityRepo.ActivityRepository
}

// AddItem appends a checklist entry (capability: manageChecklist).
func (s *DefaultChecklistService) AddItem(actor *models.User, dealID string, req models.ChecklistCreateRequest) (*models.ChecklistItem, error) {
	if !access.CapabilitiesFor(actor.Role).ManageChecklist {
		return nil, ErrNotPermitted
	}

	item := &models.ChecklistItem{
		ID:        uuid.New().String(),
		DealID:    dealID,
		Title:     req.Title,
		OwnerRole: string(access.NormalizeRole(req.OwnerRole)),
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}

	s.audit(dealID, actor, "checklist.item_added", item.Title)
	return item, nil
}

// ListItems returns a deal's checklist in creation order.
func (s *DefaultChecklistService) ListItems(dealID string) ([]models.ChecklistItem, error) {
	return s.Repo.ListByDeal(dealID)
}

// SetDone marks an item complete or reopens it.
func (s *DefaultChecklistService) SetDone(actor *models.User, itemID string, done bool) (*models.ChecklistItem, error) {
	if !access.CapabilitiesFor(actor.Role).ManageChecklist {
		return nil, ErrNotPermitted
	}

	item, err := s.Repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}

	item.Done = done
	if done {
		now := time.Now()
		item.CompletedBy = actor.ID
		item.CompletedAt = &now
	} else {
		item.CompletedBy = ""
		item.CompletedAt = nil
	}
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}

	action := "checklist.item_completed"
	if !done {
		action = "checklist.item_reopened"
	}
	s.audit(item.DealID, actor, action, item.Title)
	return item, nil
}

func (s *DefaultChecklistService) audit(dealID string, actor *models.User, action, detail string) {
	err := s.Activity.Append(&models.Activity{
		ID:     uuid.New().String(),
		DealID: dealID,
		Actor:  actor.ID,
		Role:   string(access.NormalizeRole(actor.Role)),
		Action: action,
		Detail: detail,
		At:     time.Now(),
	})
	if err != nil {
		utils.GetLogger().Warn("failed to append activity", zap.String("action", action), zap.Error(err))
	}
}
