// Package commitment manages the order book: lenders submit indications of
// interest and firm orders; the book is visible to issuers and bookrunners.
package commitment

import (
	"errors"
	"time"

	activityRepo "dealroom/database/repository/activity"
	commitmentRepo "dealroom/database/repository/commitment"
	"dealroom/models"
	"dealroom/services/access"
	"dealroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotPermitted signals a capability check failed for the acting user.
	ErrNotPermitted = errors.New("not permitted")
	// ErrNotOnDeal signals a commitment ID that belongs to a different deal.
	ErrNotOnDeal = errors.New("commitment is not on this deal")
)

// BookEntry is one line of the aggregated order book.
type BookEntry struct {
	Commitment models.Commitment `json:"commitment"`
}

// Book is the order-book view served to issuers and bookrunners.
type Book struct {
	DealID      string              `json:"dealId"`
	Total       float64             `json:"total"`
	FirmTotal   float64             `json:"firmTotal"`
	Commitments []models.Commitment `json:"commitments"`
}

// CommitmentService manages commitment submission and the order book.
type CommitmentService interface {
	// SubmitCommitment records an IOI or firm order for the actor's lender.
	SubmitCommitment(actor *models.User, dealID string, req models.CommitmentCreateRequest) (*models.Commitment, error)
	// GetBook aggregates the full order book (capability: viewBook).
	GetBook(actor *models.User, dealID string) (*Book, error)
	// ListOwn returns the actor's lender's commitments on a deal.
	ListOwn(actor *models.User, dealID string) ([]models.Commitment, error)
	// SetStatus moves a deal's commitment to allocated or declined.
	SetStatus(actor *models.User, dealID, commitmentID, status string) (*models.Commitment, error)
}

// DefaultCommitmentService is the production implementation.
type DefaultCommitmentService struct {
	Repo     commitmentRepo.CommitmentRepository
	Activity activityRepo.ActivityRepository
}

// SubmitCommitment records an IOI or firm order for the actor's lender.
func (s *DefaultCommitmentService) SubmitCommitment(actor *models.User, dealID string, req models.CommitmentCreateRequest) (*models.Commitment, error) {
	if !access.CapabilitiesFor(actor.Role).SubmitCommitment {
		return nil, ErrNotPermitted
	}

	c := &models.Commitment{
		ID:          uuid.New().String(),
		DealID:      dealID,
		LenderID:    actor.LenderID,
		Amount:      req.Amount,
		Type:        req.Type,
		Status:      models.CommitmentStatusSubmitted,
		SubmittedBy: actor.ID,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}

	s.audit(dealID, actor, "commitment.submitted", c.Type)
	return c, nil
}

// GetBook aggregates the full order book.
func (s *DefaultCommitmentService) GetBook(actor *models.User, dealID string) (*Book, error) {
	if !access.CapabilitiesFor(actor.Role).ViewBook {
		return nil, ErrNotPermitted
	}

	commitments, err := s.Repo.ListByDeal(dealID)
	if err != nil {
		return nil, err
	}

	book := &Book{DealID: dealID, Commitments: commitments}
	for _, c := range commitments {
		if c.Status == models.CommitmentStatusDeclined {
			continue
		}
		book.Total += c.Amount
		if c.Type == models.CommitmentTypeFirm {
			book.FirmTotal += c.Amount
		}
	}
	return book, nil
}

// ListOwn returns the actor's lender's commitments on a deal.
func (s *DefaultCommitmentService) ListOwn(actor *models.User, dealID string) ([]models.Commitment, error) {
	return s.Repo.ListByDealAndLender(dealID, actor.LenderID)
}

// SetStatus moves a deal's commitment to allocated or declined.
func (s *DefaultCommitmentService) SetStatus(actor *models.User, dealID, commitmentID, status string) (*models.Commitment, error) {
	if !access.CapabilitiesFor(actor.Role).ViewBook {
		return nil, ErrNotPermitted
	}
	if status != models.CommitmentStatusAllocated && status != models.CommitmentStatusDeclined {
		return nil, errors.New("status must be allocated or declined")
	}

	c, err := s.Repo.GetByID(commitmentID)
	if err != nil {
		return nil, err
	}
	if c.DealID != dealID {
		return nil, ErrNotOnDeal
	}
	c.Status = status
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}

	s.audit(c.DealID, actor, "commitment.status_changed", status)
	return c, nil
}

func (s *DefaultCommitmentService) audit(dealID string, actor *models.User, action, detail string) {
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
