// Package document manages data-room entries. Only metadata is stored;
// binary content lives outside this service.
package document

import (
	"errors"
	"time"

	activityRepo "dealroom/database/repository/activity"
	documentRepo "dealroom/database/repository/document"
	invitationRepo "dealroom/database/repository/invitation"
	"dealroom/models"
	"dealroom/services/access"
	"dealroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotPermitted signals a capability check failed for the acting user.
	ErrNotPermitted = errors.New("not permitted")
	// ErrInvalidTier signals a tier outside {early, full, legal}.
	ErrInvalidTier = errors.New("document tier must be one of early, full, legal")
)

// DocumentService manages data-room document metadata.
type DocumentService interface {
	// AddDocument registers a data-room entry (capability: uploadDocuments).
	AddDocument(actor *models.User, dealID string, req models.DocumentCreateRequest) (*models.Document, error)
	// ListDocuments returns the entries visible to the user. Investors see
	// only documents at or below their invitation's access tier; an
	// unsigned required NDA hides everything.
	ListDocuments(user *models.User, dealID string) ([]models.Document, error)
	// RemoveDocument deletes a data-room entry.
	RemoveDocument(actor *models.User, dealID, documentID string) error
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Repo        documentRepo.DocumentRepository
	Invitations invitationRepo.InvitationRepository
	Activity    activityRepo.ActivityRepository
}

// AddDocument registers a data-room entry.
func (s *DefaultDocumentService) AddDocument(actor *models.User, dealID string, req models.DocumentCreateRequest) (*models.Document, error) {
	if !access.CapabilitiesFor(actor.Role).UploadDocuments {
		return nil, ErrNotPermitted
	}

	tier := req.Tier
	if tier == "" {
		tier = models.AccessTierEarly
	}
	if models.TierRank(tier) == 0 {
		return nil, ErrInvalidTier
	}

	doc := &models.Document{
		ID:         uuid.New().String(),
		DealID:     dealID,
		Name:       req.Name,
		Category:   req.Category,
		Tier:       tier,
		UploadedBy: actor.ID,
		UploadedAt: time.Now(),
	}
	if err := s.Repo.Create(doc); err != nil {
		return nil, err
	}

	s.audit(dealID, actor, "document.added", doc.Name)
	return doc, nil
}

// ListDocuments returns the entries visible to the user.
func (s *DefaultDocumentService) ListDocuments(user *models.User, dealID string) ([]models.Document, error) {
	docs, err := s.Repo.ListByDeal(dealID)
	if err != nil {
		return nil, err
	}

	if access.CapabilitiesFor(user.Role).ViewAllDocuments {
		return docs, nil
	}

	inv, err := s.Invitations.GetByDealAndLender(dealID, user.LenderID)
	if err != nil {
		return nil, err
	}
	if inv == nil || !inv.NDASigned() {
		return nil, nil
	}

	viewerRank := models.TierRank(inv.AccessTier)
	var visible []models.Document
	for _, d := range docs {
		if models.TierRank(d.Tier) <= viewerRank {
			visible = append(visible, d)
		}
	}
	return visible, nil
}

// RemoveDocument deletes a data-room entry.
func (s *DefaultDocumentService) RemoveDocument(actor *models.User, dealID, documentID string) error {
	if !access.CapabilitiesFor(actor.Role).UploadDocuments {
		return ErrNotPermitted
	}
	if err := s.Repo.Delete(documentID); err != nil {
		return err
	}
	s.audit(dealID, actor, "document.removed", documentID)
	return nil
}

func (s *DefaultDocumentService) audit(dealID string, actor *models.User, action, detail string) {
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
