// models/commitment.go
package models

import "time"

// Commitment types and statuses.
const (
	CommitmentTypeIOI  = "ioi"
	CommitmentTypeFirm = "firm"

	CommitmentStatusSubmitted = "submitted"
	CommitmentStatusAllocated = "allocated"
	CommitmentStatusDeclined  = "declined"
)

// Commitment is a lender's indication of interest or firm order in a deal.
type Commitment struct {
	ID          string    `bson:"id" json:"id"`
	DealID      string    `bson:"dealId" json:"dealId"`
	LenderID    string    `bson:"lenderId" json:"lenderId"`
	Amount      float64   `bson:"amount" json:"amount"`
	Type        string    `bson:"type" json:"type"`
	Status      string    `bson:"status" json:"status"`
	SubmittedBy string    `bson:"submittedBy" json:"submittedBy"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CommitmentCreateRequest is the payload for POST /api/deals/:id/commitments.
type CommitmentCreateRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,oneof=ioi firm"`
}
