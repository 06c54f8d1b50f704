// models/lender.go
package models

import "time"

// Lender is an investing institution that can be invited into deals.
type Lender struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Type         string    `bson:"type" json:"type"` // e.g. bank, CLO, credit fund
	ContactEmail string    `bson:"contactEmail" json:"contactEmail"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LenderCreateRequest is the payload for POST /api/lenders.
type LenderCreateRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
}
