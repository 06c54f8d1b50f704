// models/checklist.go
package models

import "time"

// ChecklistItem is one entry on a deal's closing checklist.
type ChecklistItem struct {
	ID          string     `bson:"id" json:"id"`
	DealID      string     `bson:"dealId" json:"dealId"`
	Title       string     `bson:"title" json:"title"`
	OwnerRole   string     `bson:"ownerRole" json:"ownerRole"`
	Done        bool       `bson:"done" json:"done"`
	CompletedBy string     `bson:"completedBy,omitempty" json:"completedBy,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// ChecklistCreateRequest is the payload for POST /api/deals/:id/checklist.
type ChecklistCreateRequest struct {
	Title     string `json:"title" binding:"required"`
	OwnerRole string `json:"ownerRole"`
}

// ChecklistUpdateRequest is the payload for PATCH .../checklist/:itemId.
type ChecklistUpdateRequest struct {
	Done bool `json:"done"`
}
