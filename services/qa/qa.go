// Package qa implements the deal Q&A thread: invited lenders raise
// questions, issuers and bookrunners answer them.
package qa

import (
	"errors"
	"time"

	activityRepo "dealroom/database/repository/activity"
	questionRepo "dealroom/database/repository/question"
	"dealroom/models"
	"dealroom/services/access"
	"dealroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotPermitted signals a capability check failed for the acting user.
	ErrNotPermitted = errors.New("not permitted")
	// ErrAlreadyAnswered signals a second answer to a closed question.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// QAService manages a deal's question-and-answer thread.
type QAService interface {
	// AskQuestion opens a question on behalf of the investor's lender.
	AskQuestion(actor *models.User, dealID, body string) (*models.Question, error)
	// AnswerQuestion closes an open question with an answer.
	AnswerQuestion(actor *models.User, questionID, answer string) (*models.Question, error)
	// ListQuestions returns the thread visible to the user: investors
	// see only their own lender's questions.
	ListQuestions(user *models.User, dealID string) ([]models.Question, error)
}

// DefaultQAService is the production implementation.
type DefaultQAService struct {
	Repo     questionRepo.QuestionRepository
	Activity activityRepo.ActivityRepository
}

// AskQuestion opens a question on behalf of the investor's lender.
func (s *DefaultQAService) AskQuestion(actor *models.User, dealID, body string) (*models.Question, error) {
	if !access.CapabilitiesFor(actor.Role).AskQuestions {
		return nil, ErrNotPermitted
	}

	q := &models.Question{
		ID:       uuid.New().String(),
		DealID:   dealID,
		LenderID: actor.LenderID,
		Body:     body,
		AskedBy:  actor.ID,
		Status:   models.QuestionStatusOpen,
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}

	s.audit(dealID, actor, "question.asked", q.ID)
	return q, nil
}

// AnswerQuestion closes an open question with an answer.
func (s *DefaultQAService) AnswerQuestion(actor *models.User, questionID, answer string) (*models.Question, error) {
	if !access.CapabilitiesFor(actor.Role).AnswerQuestions {
		return nil, ErrNotPermitted
	}

	q, err := s.Repo.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if q.Status == models.QuestionStatusAnswered {
		return nil, ErrAlreadyAnswered
	}

	now := time.Now()
	q.Answer = answer
	q.AnsweredBy = actor.ID
	q.AnsweredAt = &now
	q.Status = models.QuestionStatusAnswered
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}

	s.audit(q.DealID, actor, "question.answered", q.ID)
	return q, nil
}

// ListQuestions returns the thread visible to the user.
func (s *DefaultQAService) ListQuestions(user *models.User, dealID string) ([]models.Question, error) {
	if access.NormalizeRole(user.Role) == access.RoleInvestor {
		return s.Repo.ListByDealAndLender(dealID, user.LenderID)
	}
	return s.Repo.ListByDeal(dealID)
}

func (s *DefaultQAService) audit(dealID string, actor *models.User, action, detail string) {
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
