// models/question.go
package models

import "time"

// Question statuses.
const (
	QuestionStatusOpen     = "open"
	QuestionStatusAnswered = "answered"
)

// Question is a Q&A thread entry raised by an invited lender against a deal.
type Question struct {
	ID         string     `bson:"id" json:"id"`
	DealID     string     `bson:"dealId" json:"dealId"`
	LenderID   string     `bson:"lenderId" json:"lenderId"`
	Body       string     `bson:"body" json:"body"`
	AskedBy    string     `bson:"askedBy" json:"askedBy"`
	Status     string     `bson:"status" json:"status"`
	Answer     string     `bson:"answer,omitempty" json:"answer,omitempty"`
	AnsweredBy string     `bson:"answeredBy,omitempty" json:"answeredBy,omitempty"`
	AnsweredAt *time.Time `bson:"answeredAt,omitempty" json:"answeredAt,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// QuestionCreateRequest is the payload for POST /api/deals/:id/questions.
type QuestionCreateRequest struct {
	Body string `json:"body" binding:"required"`
}

// AnswerRequest is the payload for POST .../questions/:questionId/answer.
type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}
